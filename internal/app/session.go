// Package app wires the todo store, the navigation controller and the form
// drafts into one session. Each exported method handles exactly one user
// event; renderers read Snapshot and never touch the store directly.
package app

import (
	"log/slog"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/nav"
	"github.com/idilsaglam/todos/internal/store"
)

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Todos []model.Todo
	View  nav.State
	// AddDraft is the add form's buffer. It exists on every view.
	AddDraft model.Draft
	// EditDraft is only meaningful when HasEditDraft is true.
	EditDraft    model.Draft
	HasEditDraft bool
}

// Selected resolves the item being edited against Todos.
func (s Snapshot) Selected() (model.Todo, bool) {
	id, ok := s.View.ItemID()
	if !ok {
		return model.Todo{}, false
	}
	for _, t := range s.Todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

type Session struct {
	store *store.Store
	nav   *nav.Controller
	log   *slog.Logger

	add  model.Draft
	edit *model.Draft

	nextSub int
	subs    map[int]func(Snapshot)
}

// NewSession starts on the list view with an empty collection.
// A nil logger discards.
func NewSession(log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		store: store.New(),
		nav:   nav.NewController(),
		log:   log,
		subs:  map[int]func(Snapshot){},
	}
	s.store.Subscribe(func(todos []model.Todo) {
		done, pending := store.Stats(todos)
		s.log.Debug("todos changed", "total", len(todos), "done", done, "pending", pending)
	})
	s.nav.Subscribe(func(st nav.State) {
		s.log.Debug("view changed", "view", st.String())
	})
	return s
}

// Store exposes the underlying collection for read-only callers.
func (s *Session) Store() *store.Store { return s.store }

func (s *Session) View() nav.State { return s.nav.Current() }

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Todos:    s.store.Snapshot(),
		View:     s.nav.Current(),
		AddDraft: s.add,
	}
	if s.edit != nil {
		snap.EditDraft = *s.edit
		snap.HasEditDraft = true
	}
	return snap
}

// Subscribe registers fn to receive a snapshot after every handled event,
// including events that changed nothing. The returned func removes it.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Session) changed() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for i := 0; i < s.nextSub; i++ {
		if fn, ok := s.subs[i]; ok {
			fn(snap)
		}
	}
}

// ---- add form ----

func (s *Session) SetAddName(v string) {
	s.add.Name = v
	s.changed()
}

func (s *Session) SetAddDescription(v string) {
	s.add.Description = v
	s.changed()
}

// SubmitAdd commits the add draft and clears it. Empty fields are accepted.
func (s *Session) SubmitAdd() model.Todo {
	t := s.store.Add(s.add.Name, s.add.Description)
	s.add = model.Draft{}
	s.log.Info("add todo", "id", t.ID, "name", t.Name)
	s.changed()
	return t
}

// ToggleItem flips an item straight from the list without opening it.
func (s *Session) ToggleItem(id int) {
	if !s.store.ToggleCompleted(id) {
		s.log.Debug("toggle: no such todo", "id", id)
	}
	s.changed()
}

// ---- edit form ----

// Select opens the edit form for id. The draft is copied from the store once;
// later store changes do not reach it. An absent id yields an empty draft.
// Selecting while already editing discards the previous draft.
func (s *Session) Select(id int) {
	t, ok := s.store.FindByID(id)
	if !ok {
		s.log.Debug("select: no such todo", "id", id)
	}
	d := model.DraftOf(t)
	s.edit = &d
	s.nav.Select(id)
	s.changed()
}

func (s *Session) SetEditName(v string) {
	defer s.changed()
	if s.edit == nil {
		return
	}
	s.edit.Name = v
}

func (s *Session) SetEditDescription(v string) {
	defer s.changed()
	if s.edit == nil {
		return
	}
	s.edit.Description = v
}

// Save commits the edit draft and returns to the list.
func (s *Session) Save() {
	defer s.changed()
	id, ok := s.nav.Current().ItemID()
	if !ok {
		return
	}
	if s.edit != nil {
		s.store.UpdateFields(id, s.edit.Name, s.edit.Description)
	}
	s.log.Debug("save todo", "id", id)
	s.edit = nil
	s.nav.SaveAndClose()
}

// ToggleCompleted flips the edited item immediately. The draft and the open
// form are unaffected.
func (s *Session) ToggleCompleted() {
	defer s.changed()
	id, ok := s.nav.Current().ItemID()
	if !ok {
		return
	}
	s.store.ToggleCompleted(id)
}

// Delete removes the edited item and returns to the list.
func (s *Session) Delete() {
	defer s.changed()
	id, ok := s.nav.Current().ItemID()
	if !ok {
		return
	}
	if s.store.Delete(id) {
		s.log.Info("delete todo", "id", id)
	}
	s.edit = nil
	s.nav.DeleteAndClose()
}

// Back discards the edit draft.
func (s *Session) Back() {
	s.edit = nil
	s.nav.Back()
	s.changed()
}

package store

import (
	"sync"

	"github.com/idilsaglam/todos/internal/model"
)

// In-memory todo collection. Nothing is persisted; the list lives as long as
// the process does.
//
// IDs are dense: after every structural change the items are re-indexed so
// that IDs read 1..N in order. Delete pays O(N) for that on every call. For
// large lists a never-reused counter would be the better identifier.

// Store owns the ordered todo collection.
// All access goes through a single mutex so there is exactly one writer at a
// time; subscribers are called after the lock is released.
type Store struct {
	mu    sync.Mutex
	items []model.Todo

	subMu  sync.Mutex
	nextID int
	subs   map[int]func([]model.Todo)
}

func New() *Store {
	return &Store{subs: map[int]func([]model.Todo){}}
}

// Add appends a new, not completed todo and returns it.
func (s *Store) Add(name, description string) model.Todo {
	s.mu.Lock()
	t := model.Todo{
		ID:          len(s.items) + 1,
		Name:        name,
		Description: description,
	}
	s.items = append(s.items, t)
	s.mu.Unlock()

	s.notify()
	return t
}

// ToggleCompleted flips the completed flag of the todo with the given id.
// It reports whether a todo matched; a miss changes nothing.
func (s *Store) ToggleCompleted(id int) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items[i].Completed = !s.items[i].Completed
	s.mu.Unlock()

	s.notify()
	return true
}

// UpdateFields replaces name and description of the matching todo.
// ID and Completed are left alone.
func (s *Store) UpdateFields(id int, name, description string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items[i].Name = name
	s.items[i].Description = description
	s.mu.Unlock()

	s.notify()
	return true
}

// Delete removes the matching todo and re-indexes the rest.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	reindex(s.items)
	s.mu.Unlock()

	s.notify()
	return true
}

// FindByID returns a copy of the matching todo.
// ok is false when no todo has that id; the returned Todo is then the zero
// value and must not be treated as an item.
func (s *Store) FindByID(id int) (t model.Todo, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.Todo{}, false
	}
	return s.items[i], true
}

// Snapshot returns a copy of the collection in order.
func (s *Store) Snapshot() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Stats counts completed and pending todos.
func (s *Store) Stats() (done, pending int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats(s.items)
}

// Subscribe registers fn to receive a snapshot after every change.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func([]model.Todo)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func([]model.Todo), 0, len(s.subs))
	for i := 0; i < s.nextID; i++ {
		if fn, ok := s.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	s.subMu.Unlock()
	if len(fns) == 0 {
		return
	}

	snap := s.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) snapshotLocked() []model.Todo {
	out := make([]model.Todo, len(s.items))
	copy(out, s.items)
	return out
}

// linear scan; ids are unique so the first hit is the only one
func (s *Store) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func reindex(items []model.Todo) {
	for i := range items {
		items[i].ID = i + 1
	}
}

// Stats counts completed and pending entries of items.
func Stats(items []model.Todo) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Package nav tracks which screen is active: the list, or the edit form of
// one item.
package nav

import (
	"fmt"
	"sync"
)

type Kind int

const (
	ListView Kind = iota
	EditingItem
)

func (k Kind) String() string {
	switch k {
	case ListView:
		return "list"
	case EditingItem:
		return "editing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is the current view. The zero value is ListView.
// An EditingItem state may reference an id that no longer exists; readers
// resolve it through the store and render an empty form on a miss.
type State struct {
	kind Kind
	id   int
}

func List() State { return State{kind: ListView} }

func Editing(id int) State { return State{kind: EditingItem, id: id} }

func (s State) Kind() Kind { return s.kind }

// ItemID returns the id being edited. ok is false on ListView.
func (s State) ItemID() (id int, ok bool) {
	if s.kind != EditingItem {
		return 0, false
	}
	return s.id, true
}

func (s State) String() string {
	if s.kind == EditingItem {
		return fmt.Sprintf("editing(%d)", s.id)
	}
	return s.kind.String()
}

// Controller owns the current view. No transition is ever rejected.
type Controller struct {
	mu     sync.Mutex
	state  State
	nextID int
	subs   map[int]func(State)
}

func NewController() *Controller {
	return &Controller{state: List(), subs: map[int]func(State){}}
}

func (c *Controller) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Select opens the edit view for id.
func (c *Controller) Select(id int) { c.set(Editing(id)) }

func (c *Controller) Back() { c.set(List()) }

func (c *Controller) SaveAndClose() { c.set(List()) }

func (c *Controller) DeleteAndClose() { c.set(List()) }

// Subscribe registers fn to be called with the new state after each
// transition, in subscription order. The returned func removes it.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Controller) set(s State) {
	c.mu.Lock()
	c.state = s
	subs := make([]func(State), 0, len(c.subs))
	for i := 0; i < c.nextID; i++ {
		if fn, ok := c.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

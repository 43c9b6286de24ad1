package app

import "fmt"

// EventKind names a user-input event forwarded by a renderer.
type EventKind string

const (
	EventAddName         EventKind = "add.name"
	EventAddDescription  EventKind = "add.description"
	EventAddSubmit       EventKind = "add.submit"
	EventSelect          EventKind = "select"
	EventEditName        EventKind = "edit.name"
	EventEditDescription EventKind = "edit.description"
	EventSave            EventKind = "save"
	EventToggle          EventKind = "toggle"
	EventDelete          EventKind = "delete"
	EventBack            EventKind = "back"
	EventToggleItem      EventKind = "toggle-item"
)

// EventKinds lists every kind Dispatch understands, in a stable order.
var EventKinds = []EventKind{
	EventAddName, EventAddDescription, EventAddSubmit,
	EventSelect, EventEditName, EventEditDescription,
	EventSave, EventToggle, EventDelete, EventBack,
	EventToggleItem,
}

// TakesID reports whether the event carries an item id payload.
func (k EventKind) TakesID() bool {
	return k == EventSelect || k == EventToggleItem
}

// TakesText reports whether the event carries a text payload.
func (k EventKind) TakesText() bool {
	switch k {
	case EventAddName, EventAddDescription, EventEditName, EventEditDescription:
		return true
	}
	return false
}

// Event is a click (with an optional id) or a text change (with the new
// field value).
type Event struct {
	Kind EventKind
	ID   int
	Text string
}

func (e Event) String() string {
	switch {
	case e.Kind.TakesID():
		return fmt.Sprintf("%s %d", e.Kind, e.ID)
	case e.Kind.TakesText():
		return fmt.Sprintf("%s %q", e.Kind, e.Text)
	default:
		return string(e.Kind)
	}
}

// Dispatch runs the one operation e maps to. The only error is an unknown
// kind; every known event succeeds.
func (s *Session) Dispatch(e Event) error {
	s.log.Debug("event", "kind", string(e.Kind), "id", e.ID)
	switch e.Kind {
	case EventAddName:
		s.SetAddName(e.Text)
	case EventAddDescription:
		s.SetAddDescription(e.Text)
	case EventAddSubmit:
		s.SubmitAdd()
	case EventSelect:
		s.Select(e.ID)
	case EventEditName:
		s.SetEditName(e.Text)
	case EventEditDescription:
		s.SetEditDescription(e.Text)
	case EventSave:
		s.Save()
	case EventToggle:
		s.ToggleCompleted()
	case EventDelete:
		s.Delete()
	case EventBack:
		s.Back()
	case EventToggleItem:
		s.ToggleItem(e.ID)
	default:
		return fmt.Errorf("unknown event %q", e.Kind)
	}
	return nil
}

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/nav"
)

func TestDispatch_ScenarioB(t *testing.T) {
	s := NewSession(nil)
	events := []Event{
		{Kind: EventAddName, Text: "Buy milk"},
		{Kind: EventAddDescription, Text: "2% gal"},
		{Kind: EventAddSubmit},
		{Kind: EventAddName, Text: "Walk dog"},
		{Kind: EventAddSubmit},
		{Kind: EventSelect, ID: 1},
		{Kind: EventDelete},
		{Kind: EventSelect, ID: 1},
		{Kind: EventEditName, Text: "Walk the dog"},
		{Kind: EventEditDescription, Text: "30 min"},
		{Kind: EventSave},
	}
	for _, e := range events {
		require.NoError(t, s.Dispatch(e), e.String())
	}

	snap := s.Snapshot()
	assert.Equal(t, []model.Todo{{ID: 1, Name: "Walk the dog", Description: "30 min"}}, snap.Todos)
	assert.Equal(t, nav.List(), snap.View)
}

func TestDispatch_ToggleAndBack(t *testing.T) {
	s := NewSession(nil)
	require.NoError(t, s.Dispatch(Event{Kind: EventAddSubmit}))
	require.NoError(t, s.Dispatch(Event{Kind: EventToggleItem, ID: 1}))
	require.NoError(t, s.Dispatch(Event{Kind: EventSelect, ID: 1}))
	require.NoError(t, s.Dispatch(Event{Kind: EventToggle}))
	require.NoError(t, s.Dispatch(Event{Kind: EventToggle}))
	require.NoError(t, s.Dispatch(Event{Kind: EventBack}))

	assert.True(t, s.Snapshot().Todos[0].Completed)
}

func TestDispatch_UnknownKind(t *testing.T) {
	s := NewSession(nil)
	err := s.Dispatch(Event{Kind: "launch"})
	assert.ErrorContains(t, err, `unknown event "launch"`)
}

func TestEventKinds_AllDispatchable(t *testing.T) {
	s := NewSession(nil)
	for _, k := range EventKinds {
		assert.NoError(t, s.Dispatch(Event{Kind: k, ID: 1}), string(k))
	}
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "select 3", Event{Kind: EventSelect, ID: 3}.String())
	assert.Equal(t, `add.name "Buy milk"`, Event{Kind: EventAddName, Text: "Buy milk"}.String())
	assert.Equal(t, "save", Event{Kind: EventSave}.String())
}

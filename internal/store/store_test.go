package store

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
)

func requireContiguous(t *testing.T, items []model.Todo) {
	t.Helper()
	for i, it := range items {
		require.Equalf(t, i+1, it.ID, "item at position %d", i)
	}
}

func seeded(names ...string) *Store {
	s := New()
	for _, n := range names {
		s.Add(n, n+" description")
	}
	return s
}

func TestAdd_AssignsNextID(t *testing.T) {
	s := New()

	first := s.Add("Buy milk", "2% gal")
	second := s.Add("Walk dog", "")

	assert.Equal(t, model.Todo{ID: 1, Name: "Buy milk", Description: "2% gal"}, first)
	assert.Equal(t, model.Todo{ID: 2, Name: "Walk dog"}, second)
	assert.Equal(t, 2, s.Len())
}

func TestAdd_AcceptsEmptyAndDuplicateNames(t *testing.T) {
	s := New()
	s.Add("", "")
	s.Add("same", "")
	s.Add("same", "")

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	requireContiguous(t, snap)
	assert.Equal(t, "", snap[0].Name)
}

func TestScenarioA_DeleteReindexes(t *testing.T) {
	s := New()
	s.Add("Buy milk", "2% gal")
	assert.Equal(t, []model.Todo{{ID: 1, Name: "Buy milk", Description: "2% gal"}}, s.Snapshot())

	s.Add("Walk dog", "")
	assert.Equal(t, []model.Todo{
		{ID: 1, Name: "Buy milk", Description: "2% gal"},
		{ID: 2, Name: "Walk dog"},
	}, s.Snapshot())

	require.True(t, s.Delete(1))
	assert.Equal(t, []model.Todo{{ID: 1, Name: "Walk dog"}}, s.Snapshot())
}

func TestDelete_MiddlePreservesOrder(t *testing.T) {
	s := seeded("a", "b", "c", "d")
	s.ToggleCompleted(3)

	require.True(t, s.Delete(2))

	snap := s.Snapshot()
	requireContiguous(t, snap)
	names := []string{}
	for _, it := range snap {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"a", "c", "d"}, names)
	assert.True(t, snap[1].Completed, "completed flag travels with the item")
}

func TestContiguity_RandomAddDelete(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := New()
	for step := 0; step < 500; step++ {
		if s.Len() == 0 || rng.Intn(3) > 0 {
			s.Add("item", "")
		} else {
			s.Delete(rng.Intn(s.Len()) + 1)
		}
		requireContiguous(t, s.Snapshot())
	}
}

func TestToggleCompleted_TwiceRestores(t *testing.T) {
	s := seeded("a", "b", "c")
	before := s.Snapshot()

	require.True(t, s.ToggleCompleted(2))
	mid, _ := s.FindByID(2)
	assert.True(t, mid.Completed)

	require.True(t, s.ToggleCompleted(2))
	assert.Equal(t, before, s.Snapshot())
}

func TestUpdateFields_OnlyTouchesNameAndDescription(t *testing.T) {
	s := seeded("a", "b", "c")
	s.ToggleCompleted(2)
	before := s.Snapshot()

	require.True(t, s.UpdateFields(2, "B", "new"))

	after := s.Snapshot()
	assert.Equal(t, model.Todo{ID: 2, Name: "B", Description: "new", Completed: true}, after[1])
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
}

func TestMissingID_NoOp(t *testing.T) {
	s := seeded("a", "b")
	s.ToggleCompleted(1)
	before := s.Snapshot()

	calls := 0
	unsub := s.Subscribe(func([]model.Todo) { calls++ })
	defer unsub()

	for _, id := range []int{0, -1, 3, 99} {
		assert.False(t, s.ToggleCompleted(id))
		assert.False(t, s.UpdateFields(id, "x", "y"))
		assert.False(t, s.Delete(id))
	}

	assert.Equal(t, before, s.Snapshot())
	assert.Zero(t, calls, "no-ops must not notify")
}

func TestFindByID(t *testing.T) {
	s := seeded("a", "b")

	got, ok := s.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)

	got, ok = s.FindByID(99)
	assert.False(t, ok)
	assert.Equal(t, model.Todo{}, got)

	_, ok = s.FindByID(-1)
	assert.False(t, ok)
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	s := seeded("a")
	got, _ := s.FindByID(1)
	got.Name = "mutated"

	again, _ := s.FindByID(1)
	assert.Equal(t, "a", again.Name)
}

func TestSnapshot_IsDetached(t *testing.T) {
	s := seeded("a", "b")
	snap := s.Snapshot()
	snap[0].Name = "mutated"
	s.Add("c", "")

	assert.Len(t, snap, 2)
	assert.Equal(t, "a", s.Snapshot()[0].Name)
}

func TestSubscribe_ReceivesSnapshots(t *testing.T) {
	s := New()
	var got [][]model.Todo
	unsub := s.Subscribe(func(items []model.Todo) { got = append(got, items) })

	s.Add("a", "")
	s.Add("b", "")
	s.Delete(1)
	unsub()
	s.Add("c", "")

	require.Len(t, got, 3)
	assert.Equal(t, []model.Todo{{ID: 1, Name: "b"}}, got[2])
}

func TestSubscriber_MayReadStore(t *testing.T) {
	s := New()
	var seen int
	s.Subscribe(func([]model.Todo) { seen = s.Len() })

	s.Add("a", "")
	assert.Equal(t, 1, seen)
}

func TestStats(t *testing.T) {
	s := seeded("a", "b", "c")
	s.ToggleCompleted(1)

	done, pending := s.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}

func TestConcurrentWriters_KeepContiguous(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	s.Subscribe(func(items []model.Todo) {
		for i, it := range items {
			if it.ID != i+1 {
				t.Errorf("snapshot not contiguous at %d: %+v", i, it)
				return
			}
		}
	})

	const workers, rounds = 8, 200
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				s.Add("item", "")
				s.ToggleCompleted(1)
				s.UpdateFields(1, "renamed", "")
				s.Delete(1)
				_, _ = s.FindByID(1)
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	requireContiguous(t, snap)
	assert.Len(t, snap, 0)
}

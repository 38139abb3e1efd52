package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, budget int) *Store {
	t.Helper()
	s, err := NewStore(budget)
	require.NoError(t, err)
	return s
}

func TestNewStore_InvalidBudget(t *testing.T) {
	_, err := NewStore(0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStore_Add_AssignsIDsInOrder(t *testing.T) {
	s := newTestStore(t, 60)

	a, err := s.Add("A", 10, PriorityLow, testNow)
	require.NoError(t, err)
	b, err := s.Add("B", 20, PriorityHigh, testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, testNow, a.Created)

	tasks := s.Snapshot()
	require.Len(t, tasks, 2)
	assert.Equal(t, "A", tasks[0].Name)
	assert.Equal(t, "B", tasks[1].Name)
}

func TestStore_Add_RejectsInvalidWithoutChange(t *testing.T) {
	s := newTestStore(t, 60)
	_, err := s.Add("keep", 5, PriorityHigh, testNow)
	require.NoError(t, err)

	_, err = s.Add("   ", 5, PriorityHigh, testNow)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 5, s.Total())
}

func TestStore_Add_RejectsOverBudget(t *testing.T) {
	s := newTestStore(t, 30)
	_, err := s.Add("A", 20, PriorityHigh, testNow)
	require.NoError(t, err)

	_, err = s.Add("B", 11, PriorityHigh, testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	var berr *BudgetExceededError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, 30, berr.Budget)
	assert.Equal(t, 20, berr.Committed)
	assert.Equal(t, 11, berr.Requested)
	assert.Equal(t, 1, berr.Over())
	assert.Equal(t, "total duration will exceed available time (30 minutes)", berr.Error())

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 20, s.Total())
}

func TestStore_Add_HugeDurationRejected(t *testing.T) {
	s := newTestStore(t, 60)
	_, err := s.Add("A", 10, PriorityHigh, testNow)
	require.NoError(t, err)

	_, err = s.Add("huge", math.MaxInt, PriorityHigh, testNow)
	require.ErrorIs(t, err, ErrBudgetExceeded)

	var berr *BudgetExceededError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, math.MaxInt-50, berr.Over())

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 10, s.Total())
	assert.Equal(t, 50, s.Remaining())
	assert.False(t, s.Overcommitted())
}

func TestStore_Add_ExactFit(t *testing.T) {
	s := newTestStore(t, 30)
	_, err := s.Add("A", 30, PriorityHigh, testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Remaining())
}

func TestStore_TotalNeverExceedsBudget(t *testing.T) {
	s := newTestStore(t, 50)
	for _, d := range []int{7, 13, 40, 1, 25, 9, 3, 60, 2} {
		_, _ = s.Add("t", d, PriorityMedium, testNow)
		assert.LessOrEqual(t, s.Total(), s.Budget())
	}
}

func TestStore_Remove(t *testing.T) {
	s := newTestStore(t, 60)
	a, _ := s.Add("A", 5, PriorityHigh, testNow)
	b, _ := s.Add("B", 5, PriorityHigh, testNow)
	c, _ := s.Add("C", 5, PriorityHigh, testNow)

	require.NoError(t, s.Remove(b.ID))

	tasks := s.Snapshot()
	require.Len(t, tasks, 2)
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, c.ID, tasks[1].ID)

	assert.ErrorIs(t, s.Remove(b.ID), ErrTaskNotFound)
}

func TestStore_Remove_IDsNotReused(t *testing.T) {
	s := newTestStore(t, 60)
	a, _ := s.Add("A", 5, PriorityHigh, testNow)
	require.NoError(t, s.Remove(a.ID))

	b, err := s.Add("B", 5, PriorityHigh, testNow)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t, 60)
	assert.Equal(t, 0, s.Clear())

	_, _ = s.Add("A", 5, PriorityHigh, testNow)
	_, _ = s.Add("B", 5, PriorityHigh, testNow)

	assert.Equal(t, 2, s.Clear())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 60, s.Remaining())
}

func TestStore_Snapshot_IsCopy(t *testing.T) {
	s := newTestStore(t, 60)
	_, _ = s.Add("A", 5, PriorityHigh, testNow)

	snap := s.Snapshot()
	snap[0].Name = "mutated"

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)
}

func TestStore_SetBudget_BelowCommitted(t *testing.T) {
	s := newTestStore(t, 60)
	_, _ = s.Add("A", 40, PriorityHigh, testNow)

	require.NoError(t, s.SetBudget(30))

	assert.Equal(t, 1, s.Len(), "tasks are kept when the budget shrinks")
	assert.Equal(t, -10, s.Remaining())
	assert.Equal(t, 0, s.DisplayRemaining())
	assert.True(t, s.Overcommitted())

	_, err := s.Add("B", 1, PriorityHigh, testNow)
	assert.ErrorIs(t, err, ErrBudgetExceeded)

	state := s.State()
	assert.Equal(t, 30, state.Budget)
	assert.True(t, state.Overcommitted())
	assert.Equal(t, 0, state.DisplayRemaining())
}

func TestStore_SetBudget_Invalid(t *testing.T) {
	s := newTestStore(t, 60)
	assert.ErrorIs(t, s.SetBudget(0), ErrValidation)
	assert.Equal(t, 60, s.Budget())
}

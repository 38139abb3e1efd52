package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/taskplan/internal/domain"
	"github.com/runoshun/taskplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearTasks_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository(60)
	_, _ = repo.Add("A", 10, domain.PriorityHigh)
	_, _ = repo.Add("B", 20, domain.PriorityLow)
	uc := NewClearTasks(repo, nil)

	out, err := uc.Execute(context.Background(), ClearTasksInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Cleared)
	assert.Equal(t, 0, repo.Store.Len())
	assert.Equal(t, 60, repo.Store.Budget(), "budget survives a clear")
}

func TestClearTasks_Execute_Empty(t *testing.T) {
	repo := testutil.NewMockTaskRepository(60)
	uc := NewClearTasks(repo, nil)

	out, err := uc.Execute(context.Background(), ClearTasksInput{})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Cleared)
}

func TestClearTasks_Execute_Error(t *testing.T) {
	repo := testutil.NewMockTaskRepository(60)
	repo.ClearErr = errors.New("locked")
	uc := NewClearTasks(repo, nil)

	_, err := uc.Execute(context.Background(), ClearTasksInput{})

	assert.ErrorContains(t, err, "clear tasks: locked")
}

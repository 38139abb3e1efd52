// Package memstore provides an in-memory implementation of TaskRepository.
// Its contents live only as long as the process.
package memstore

import (
	"sync"

	"github.com/runoshun/taskplan/internal/domain"
)

// Store implements domain.TaskRepository on top of a domain.Store.
// Access is serialised because TUI commands run on their own goroutines.
type Store struct {
	store *domain.Store
	clock domain.Clock
	mu    sync.Mutex
}

// New creates an empty Store with the given budget.
func New(budget int, clock domain.Clock) (*Store, error) {
	s, err := domain.NewStore(budget)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{store: s, clock: clock}, nil
}

// Add validates and appends a task.
func (s *Store) Add(name string, duration int, priority domain.Priority) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Add(name, duration, priority, s.clock.Now())
}

// Get retrieves a task by ID.
func (s *Store) Get(id int) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.store.Get(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, nil
}

// Remove deletes a task by ID.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Remove(id)
}

// Clear removes all tasks.
func (s *Store) Clear() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear(), nil
}

// State returns a copy of the tasks and budget.
func (s *Store) State() (domain.StoreState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.State(), nil
}

// SetBudget changes the budget.
func (s *Store) SetBudget(budget int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SetBudget(budget)
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

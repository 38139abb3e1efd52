package domain

import (
	"slices"
	"time"
)

// Store is the ordered task list of one session together with its budget.
// The zero value is not usable; create stores with NewStore.
//
// Store is not safe for concurrent use.
type Store struct {
	tasks  []Task
	budget int
	nextID int
}

// NewStore creates an empty store with the given budget.
func NewStore(budget int) (*Store, error) {
	if err := validateBudget(budget); err != nil {
		return nil, err
	}
	return &Store{budget: budget, nextID: 1}, nil
}

func validateBudget(budget int) error {
	if budget < 1 {
		return &ValidationError{Field: "budget", Reason: "must be at least 1 minute"}
	}
	return nil
}

// Add validates and appends a task, stamping it with an ID and creation time.
// The store is unchanged when an error is returned.
func (s *Store) Add(name string, duration int, priority Priority, now time.Time) (Task, error) {
	task, err := NewTask(name, duration, priority)
	if err != nil {
		return Task{}, err
	}

	committed := s.Total()
	if task.Duration > s.budget-committed {
		return Task{}, &BudgetExceededError{
			Budget:    s.budget,
			Committed: committed,
			Requested: task.Duration,
		}
	}

	task.ID = s.nextID
	task.Created = now
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task, nil
}

// Get returns the task with the given ID.
func (s *Store) Get(id int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Remove deletes the task with the given ID, keeping the order of the rest.
func (s *Store) Remove(id int) error {
	i := s.index(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// Clear empties the task list and returns how many tasks were dropped.
func (s *Store) Clear() int {
	n := len(s.tasks)
	s.tasks = nil
	return n
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Snapshot returns a copy of the tasks in insertion order.
func (s *Store) Snapshot() []Task {
	return slices.Clone(s.tasks)
}

// Budget returns the configured time budget in minutes.
func (s *Store) Budget() int {
	return s.budget
}

// SetBudget changes the budget. Tasks already stored are kept even if they no
// longer fit; see Overcommitted.
func (s *Store) SetBudget(budget int) error {
	if err := validateBudget(budget); err != nil {
		return err
	}
	s.budget = budget
	return nil
}

// Total returns the sum of stored task durations.
func (s *Store) Total() int {
	return TotalDuration(s.tasks)
}

// Remaining returns budget minus committed time. Negative after the budget was
// lowered below the committed total.
func (s *Store) Remaining() int {
	return s.budget - s.Total()
}

// DisplayRemaining is Remaining floored at zero.
func (s *Store) DisplayRemaining() int {
	return max(0, s.Remaining())
}

// Overcommitted reports whether stored tasks exceed the current budget.
func (s *Store) Overcommitted() bool {
	return s.Remaining() < 0
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

// State returns a copy of the tasks together with the budget.
func (s *Store) State() StoreState {
	return StoreState{Tasks: s.Snapshot(), Budget: s.budget}
}

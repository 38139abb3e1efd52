// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"time"

	"github.com/runoshun/taskplan/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskRepository is a test double for domain.TaskRepository backed by a
// real domain.Store. Set the *Err fields to force failures.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Store     *domain.Store
	AddErr    error
	StateErr  error
	ClearErr  error
	RemoveErr error
	AddCalls  int
}

// NewMockTaskRepository creates a MockTaskRepository with the given budget.
func NewMockTaskRepository(budget int) *MockTaskRepository {
	s, err := domain.NewStore(budget)
	if err != nil {
		panic(fmt.Sprintf("testutil: invalid budget %d", budget))
	}
	return &MockTaskRepository{Store: s}
}

// Add appends a task through the backing store.
func (m *MockTaskRepository) Add(name string, duration int, priority domain.Priority) (domain.Task, error) {
	m.AddCalls++
	if m.AddErr != nil {
		return domain.Task{}, m.AddErr
	}
	return m.Store.Add(name, duration, priority, time.Time{})
}

// Get retrieves a task by ID.
func (m *MockTaskRepository) Get(id int) (domain.Task, error) {
	t, ok := m.Store.Get(id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, nil
}

// Remove deletes a task by ID.
func (m *MockTaskRepository) Remove(id int) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	return m.Store.Remove(id)
}

// Clear removes all tasks.
func (m *MockTaskRepository) Clear() (int, error) {
	if m.ClearErr != nil {
		return 0, m.ClearErr
	}
	return m.Store.Clear(), nil
}

// State returns the backing store state.
func (m *MockTaskRepository) State() (domain.StoreState, error) {
	if m.StateErr != nil {
		return domain.StoreState{}, m.StateErr
	}
	return m.Store.State(), nil
}

// SetBudget changes the budget.
func (m *MockTaskRepository) SetBudget(budget int) error {
	return m.Store.SetBudget(budget)
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }
func (m *MockLogger) Info(category, msg string)  { m.add("INFO", category, msg) }
func (m *MockLogger) Warn(category, msg string)  { m.add("WARN", category, msg) }
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured Config, or defaults when unset.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal behaves like Load.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr     error
	GlobalInfo  domain.ConfigInfo
	LocalInfo   domain.ConfigInfo
	InitGlobal  bool
	InitLocal   bool
	InitedForce bool
}

// GetGlobalConfigInfo returns GlobalInfo.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// GetLocalConfigInfo returns LocalInfo.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(force bool) (string, error) {
	m.InitGlobal = true
	m.InitedForce = force
	return m.GlobalInfo.Path, m.InitErr
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig(force bool) (string, error) {
	m.InitLocal = true
	m.InitedForce = force
	return m.LocalInfo.Path, m.InitErr
}

var (
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
	_ domain.ConfigLoader   = (*MockConfigLoader)(nil)
	_ domain.ConfigManager  = (*MockConfigManager)(nil)
)

// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/google/uuid"

	"github.com/runoshun/taskplan/internal/domain"
	"github.com/runoshun/taskplan/internal/infra/config"
	"github.com/runoshun/taskplan/internal/infra/logging"
	"github.com/runoshun/taskplan/internal/infra/memstore"
	"github.com/runoshun/taskplan/internal/infra/taskfile"
	"github.com/runoshun/taskplan/internal/usecase"
)

// Paths holds the directories the container was built for.
type Paths struct {
	WorkDir   string // Directory holding the local config file
	AppDir    string // Global config and log directory ("" if unknown)
	LogPath   string // Log file path ("" if logging is disabled)
	SessionID string // Tags every log line of this process
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// A container owns exactly one session: one task list and one budget.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Parser        domain.TaskFileParser
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	closer    interface{ Close() error }

	// Configuration
	Paths Paths
}

// New creates a Container for the given working directory.
// budget overrides the configured budget when it is greater than zero.
func New(workDir string, budget int) (*Container, error) {
	appDir := config.DefaultGlobalConfigDir()

	configLoader := config.NewLoaderWithGlobalDir(workDir, appDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	if budget <= 0 {
		budget = appConfig.Schedule.Budget
	}

	clock := domain.RealClock{}
	tasks, err := memstore.New(budget, clock)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	logger := logging.New(appDir, sessionID, logging.ParseLevel(appConfig.Log.Level))

	paths := Paths{
		WorkDir:   workDir,
		AppDir:    appDir,
		SessionID: sessionID,
	}
	if appDir != "" {
		paths.LogPath = domain.LogPath(appDir)
	}

	logger.Info("app", "session started")

	return &Container{
		Tasks:         tasks,
		Clock:         clock,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(workDir, appDir),
		Parser:        taskfile.New(),
		Logger:        logger,
		AppConfig:     appConfig,
		closer:        logger,
		Paths:         paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// Nil ports fall back to in-process defaults.
func NewWithDeps(tasks domain.TaskRepository, loader domain.ConfigLoader, manager domain.ConfigManager, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	appConfig := domain.NewDefaultConfig()
	if loader != nil {
		if cfg, err := loader.Load(); err == nil {
			appConfig = cfg
		}
	}
	return &Container{
		Tasks:         tasks,
		Clock:         domain.RealClock{},
		ConfigLoader:  loader,
		ConfigManager: manager,
		Parser:        taskfile.New(),
		Logger:        logger,
		AppConfig:     appConfig,
	}
}

// Close flushes and closes the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	c.Logger.Info("app", "session ended")
	return c.closer.Close()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Logger)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Tasks, c.Logger)
}

// ClearTasksUseCase returns a new ClearTasks use case.
func (c *Container) ClearTasksUseCase() *usecase.ClearTasks {
	return usecase.NewClearTasks(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// SetBudgetUseCase returns a new SetBudget use case.
func (c *Container) SetBudgetUseCase() *usecase.SetBudget {
	return usecase.NewSetBudget(c.Tasks, c.Logger)
}

// ScheduleTasksUseCase returns a new ScheduleTasks use case.
func (c *Container) ScheduleTasksUseCase() *usecase.ScheduleTasks {
	return usecase.NewScheduleTasks(c.Tasks, c.ConfigLoader, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Parser, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Schedule ScheduleConfig `toml:"schedule"`
	Log      LogConfig      `toml:"log"`
}

// ScheduleConfig holds settings from the [schedule] section.
type ScheduleConfig struct {
	Policy string `toml:"policy,omitempty"` // "stop" (default) or "skip"
	Budget int    `toml:"budget,omitempty"` // Initial available time in minutes
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultBudget   = 60
	DefaultLogLevel = "info"
)

// Directory and file names.
const (
	AppDirName      = "taskplan"       // Directory name under the config home
	ConfigFileName  = "config.toml"    // Global config file name
	LocalConfigName = ".taskplan.toml" // Config file name in the working directory
	LogFileName     = "taskplan.log"   // Log file name under <app dir>/logs
)

// GlobalAppDir returns the global application directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// LocalConfigPath returns the config path inside dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigName)
}

// LogPath returns the log file path inside the application directory.
func LogPath(appDir string) string {
	return filepath.Join(appDir, "logs", LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			Budget: DefaultBudget,
			Policy: string(DefaultPolicy),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// SchedulePolicy returns the configured policy, falling back to the default
// for invalid values.
func (c *Config) SchedulePolicy() Policy {
	p, err := ParsePolicy(c.Schedule.Policy)
	if err != nil {
		return DefaultPolicy
	}
	return p
}

// RenderConfigTemplate renders the commented config file written by
// "config init", filled with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, cfg)
	return buf.String()
}

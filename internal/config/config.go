// Package config handles loading triage.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/triage/internal/paths"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = "triage.toml"

const (
	defaultTasksFile   = "tasks.json"
	defaultArchiveFile = "archived.json"
	defaultArchiveDays = 7
)

// Config represents the triage.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Archive Archive `toml:"archive"`
}

// Storage contains task file locations.
type Storage struct {
	// DataDir holds the task files. Defaults to ~/.local/share/triage.
	DataDir string `toml:"data-dir,omitempty"`

	// TasksFile is the active task file name, relative to DataDir.
	TasksFile string `toml:"tasks-file,omitempty"`

	// ArchiveFile is the archive file name, relative to DataDir.
	ArchiveFile string `toml:"archive-file,omitempty"`
}

// Archive contains archiving configuration.
type Archive struct {
	// AfterDays is how many days a done task waits before archiving.
	AfterDays int `toml:"after-days,omitempty"`
}

// Load loads configuration from the global config file and the project
// file in dir. Project values win where they are defined.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := merged.applyDefaults(); err != nil {
		return nil, err
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.DataDir = mergeString(projectMeta.IsDefined("storage", "data-dir"), projectCfg.Storage.DataDir, globalCfg.Storage.DataDir)
	merged.Storage.TasksFile = mergeString(projectMeta.IsDefined("storage", "tasks-file"), projectCfg.Storage.TasksFile, globalCfg.Storage.TasksFile)
	merged.Storage.ArchiveFile = mergeString(projectMeta.IsDefined("storage", "archive-file"), projectCfg.Storage.ArchiveFile, globalCfg.Storage.ArchiveFile)
	if projectMeta.IsDefined("archive", "after-days") {
		merged.Archive.AfterDays = projectCfg.Archive.AfterDays
	} else if globalMeta.IsDefined("archive", "after-days") {
		merged.Archive.AfterDays = globalCfg.Archive.AfterDays
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func (cfg *Config) applyDefaults() error {
	if cfg.Storage.DataDir == "" {
		dir, err := paths.DefaultDataDir()
		if err != nil {
			return err
		}
		cfg.Storage.DataDir = dir
	} else {
		dir, err := paths.ExpandHome(cfg.Storage.DataDir)
		if err != nil {
			return err
		}
		cfg.Storage.DataDir = dir
	}
	if cfg.Storage.TasksFile == "" {
		cfg.Storage.TasksFile = defaultTasksFile
	}
	if cfg.Storage.ArchiveFile == "" {
		cfg.Storage.ArchiveFile = defaultArchiveFile
	}
	if cfg.Archive.AfterDays == 0 {
		cfg.Archive.AfterDays = defaultArchiveDays
	}
	return nil
}

func (cfg *Config) validate() error {
	if cfg.Archive.AfterDays < 0 {
		return fmt.Errorf("archive.after-days must be positive, got %d", cfg.Archive.AfterDays)
	}
	if cfg.Storage.TasksFile == cfg.Storage.ArchiveFile {
		return fmt.Errorf("storage.tasks-file and storage.archive-file must differ")
	}
	return nil
}

// TasksPath returns the full path of the active task file.
func (cfg *Config) TasksPath() string {
	return resolveFile(cfg.Storage.DataDir, cfg.Storage.TasksFile)
}

// ArchivePath returns the full path of the archive file.
func (cfg *Config) ArchivePath() string {
	return resolveFile(cfg.Storage.DataDir, cfg.Storage.ArchiveFile)
}

func resolveFile(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

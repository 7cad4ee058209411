package testsupport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/amonks/triage/internal/config"
)

// EnsureHomeDirs creates the triage data and config directories under homeDir.
func EnsureHomeDirs(homeDir string) error {
	for _, dir := range []string{
		filepath.Join(homeDir, ".local", "share", "triage"),
		filepath.Join(homeDir, ".config", "triage"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// SetupTestHome points HOME at a fresh temp directory with the triage
// directories in place.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	if err := EnsureHomeDirs(homeDir); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", homeDir)
	return homeDir
}

// WriteGlobalConfig writes cfg as the global config.toml under homeDir.
// Zero-valued fields are left out, so they fall through to defaults.
func WriteGlobalConfig(t testing.TB, homeDir string, cfg config.Config) string {
	t.Helper()

	return writeConfig(t, filepath.Join(homeDir, ".config", "triage", "config.toml"), cfg)
}

// WriteProjectConfig writes cfg as triage.toml in dir.
// Zero-valued fields are left out, so they fall through to the global config.
func WriteProjectConfig(t testing.TB, dir string, cfg config.Config) string {
	t.Helper()

	return writeConfig(t, filepath.Join(dir, config.ProjectFile), cfg)
}

func writeConfig(t testing.TB, path string, cfg config.Config) string {
	t.Helper()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

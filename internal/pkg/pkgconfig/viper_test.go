package pkgconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, "int: 42\nbool: true\nstring: hi\nduration: 250ms\ntime: 2024-01-01T00:00:00Z\n")

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}
	defer func() {
		if err := cfg.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	if got := cfg.GetInt("int"); got != 42 {
		t.Fatalf("GetInt: expected 42, got %d", got)
	}
	if got := cfg.GetBool("bool"); got != true {
		t.Fatalf("GetBool: expected true, got %v", got)
	}
	if got := cfg.GetString("string"); got != "hi" {
		t.Fatalf("GetString: expected hi, got %q", got)
	}
	if got := cfg.GetDuration("duration"); got != 250*time.Millisecond {
		t.Fatalf("GetDuration: expected 250ms, got %v", got)
	}
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := cfg.GetTime("time"); !got.Equal(want) {
		t.Fatalf("GetTime: expected %v, got %v", want, got)
	}
}

func TestViperMissingKeysAreZero(t *testing.T) {
	path := writeConfigFile(t, "present: 1\n")

	cfg, err := NewViper(path)
	if err != nil {
		t.Fatalf("NewViper: %v", err)
	}

	if got := cfg.GetInt("absent"); got != 0 {
		t.Fatalf("expected 0 for absent int, got %d", got)
	}
	if got := cfg.GetTime("absent"); !got.IsZero() {
		t.Fatalf("expected zero time for absent key, got %v", got)
	}
}

func TestViperMissingFile(t *testing.T) {
	if _, err := NewViper("/does/not/exist/config.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

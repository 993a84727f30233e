package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDir_UnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := Dir(), filepath.Join(home, ".wasmpack"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(FilePath(), filepath.Join(".wasmpack", "config.yaml")) {
		t.Errorf("FilePath() = %q, want config.yaml under the settings dir", FilePath())
	}
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	Load()
	if got := Get("some.unset.key"); got != "" {
		t.Errorf("unset key = %q, want empty", got)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	Load()

	if err := Set("init.license", "MIT"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	// A fresh Load must see the persisted value.
	Load()
	if got := Get("init.license"); got != "MIT" {
		t.Errorf("Get(init.license) = %q, want MIT", got)
	}
}

package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wasmpack-labs/wasmpack/internal/manifest"
)

func TestTemplateManifest(t *testing.T) {
	plain := TemplateManifest("", "demo")
	if !strings.Contains(plain, `name = "demo"`) {
		t.Errorf("expected plain name, got:\n%s", plain)
	}

	namespaced := TemplateManifest("owner", "demo")
	if !strings.Contains(namespaced, `name = "owner/demo"`) {
		t.Errorf("expected namespaced name, got:\n%s", namespaced)
	}
	if !strings.Contains(namespaced, `version = "0.1.0"`) {
		t.Errorf("expected 0.1.0 starting version, got:\n%s", namespaced)
	}
}

func TestCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")

	path, err := Create(dir, "owner", "demo")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if path != manifest.PathInDirectory(dir) {
		t.Errorf("path = %q, want %q", path, manifest.PathInDirectory(dir))
	}

	// The template must parse as a manifest.
	m, err := manifest.FindInDirectory(dir)
	if err != nil {
		t.Fatalf("template manifest does not parse: %v", err)
	}
	if m.Package.Name != "owner/demo" || m.Package.Version != "0.1.0" {
		t.Errorf("package = %+v, want owner/demo 0.1.0", m.Package)
	}
}

func TestCreate_RefusesExistingManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(manifest.PathInDirectory(dir), []byte("[package]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Create(dir, "", "demo")
	if !errors.Is(err, manifest.ErrManifestExists) {
		t.Fatalf("expected ErrManifestExists, got %v", err)
	}
}

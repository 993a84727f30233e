package scaffold

import (
	"fmt"
	"os"

	"github.com/wasmpack-labs/wasmpack/internal/manifest"
)

// TemplateManifest returns the text of a minimal manifest for a new
// package. When owner is non-empty the package name is namespaced as
// owner/name.
func TemplateManifest(owner, name string) string {
	if owner != "" {
		name = owner + "/" + name
	}
	return fmt.Sprintf(`[package]
name = %q
version = "0.1.0"
description = ""
`, name)
}

// Create writes a template manifest for owner/name into dir, creating the
// directory if needed. It refuses with manifest.ErrManifestExists when dir
// already contains a manifest file, and returns the path of the file it
// wrote.
func Create(dir, owner, name string) (string, error) {
	path := manifest.PathInDirectory(dir)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w in %s", manifest.ErrManifestExists, dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating package directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(TemplateManifest(owner, name)), 0o644); err != nil {
		return "", fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return path, nil
}

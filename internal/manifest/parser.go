package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ErrManifestExists reports that a manifest file is already present in a
// directory that was expected not to have one.
var ErrManifestExists = errors.New("manifest file already exists")

// PathInDirectory returns the manifest file path under dir.
func PathInDirectory(dir string) string {
	return filepath.Join(dir, ManifestFileName)
}

// ExistsInDirectory reports whether dir contains a manifest file.
func ExistsInDirectory(dir string) bool {
	_, err := os.Stat(PathInDirectory(dir))
	return err == nil
}

// FindInDirectory reads and parses the manifest file under dir.
func FindInDirectory(dir string) (*Manifest, error) {
	path := PathInDirectory(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	m.Path = dir
	return &m, nil
}

// FilePath returns the path of the manifest file this manifest belongs to.
func (m *Manifest) FilePath() string {
	return PathInDirectory(m.Path)
}

// Render serializes the manifest to its TOML text form.
func (m *Manifest) Render() (string, error) {
	out, err := toml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("rendering manifest: %w", err)
	}
	return string(out), nil
}

// Save renders the manifest and writes it to its manifest file,
// overwriting any existing file.
func (m *Manifest) Save() error {
	text, err := m.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.FilePath(), []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", m.FilePath(), err)
	}
	return nil
}

package wizard

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wasmpack-labs/wasmpack/internal/manifest"
)

// EnsureIgnored makes sure dir's .gitignore covers the package install
// directory, appending an entry when missing. The .gitignore must already
// exist; creating one is out of scope.
//
// The check is a plain substring scan, not a gitignore-pattern match: a
// line ignoring some other path that happens to contain the entry is
// treated as already covering it.
func EnsureIgnored(dir string) error {
	path := filepath.Join(dir, ".gitignore")

	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("opening .gitignore: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("reading .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		if strings.Contains(line, manifest.InstallDirName) {
			return nil
		}
	}

	if _, err := f.WriteString("\n" + manifest.InstallDirName); err != nil {
		return fmt.Errorf("writing to .gitignore: %w", err)
	}
	return nil
}

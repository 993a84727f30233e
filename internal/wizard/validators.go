package wizard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SourceNone is the reserved module-source value that terminates the
// module-collection loop.
const SourceNone = "none"

// SourceExtension is the file extension every real module source must have.
const SourceExtension = ".wasm"

// nameSegment is the naming rule for packages, modules, and commands.
var nameSegment = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateName accepts a package, module, or command identifier. Package
// names may carry a single owner/name namespace separator.
func ValidateName(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("the name cannot be empty")
	}
	segments := strings.Split(raw, "/")
	if len(segments) > 2 {
		return "", fmt.Errorf("%q is not a valid name: at most one namespace separator is allowed", raw)
	}
	for _, seg := range segments {
		if !nameSegment.MatchString(seg) {
			return "", fmt.Errorf("%q is not a valid name: use alphanumerics, '-' and '_', starting with an alphanumeric", raw)
		}
	}
	return raw, nil
}

// ValidateLicense accepts a license identifier. It shares the identifier
// rule with names; no further semantic check is applied.
func ValidateLicense(raw string) (string, error) {
	return ValidateName(raw)
}

// ValidateVersion accepts a strict semantic version (major.minor.patch plus
// optional pre-release and build metadata) and returns the parsed version.
func ValidateVersion(raw string) (*semver.Version, error) {
	return semver.StrictNewVersion(raw)
}

// ValidateSource accepts the literal sentinel "none" or any path ending in
// the wasm extension.
func ValidateSource(raw string) (string, error) {
	if raw == SourceNone || strings.HasSuffix(raw, SourceExtension) {
		return raw, nil
	}
	return "", fmt.Errorf("the module source path must have a %s extension", SourceExtension)
}

// ValidateCommandList accepts an empty string (no commands) or a
// space-separated list of command names. Each token must satisfy the name
// rule; the raw string is returned unsplit.
func ValidateCommandList(raw string) (string, error) {
	if raw == "" {
		return raw, nil
	}
	for _, tok := range strings.Fields(raw) {
		if _, err := ValidateName(tok); err != nil {
			return "", err
		}
	}
	return raw, nil
}

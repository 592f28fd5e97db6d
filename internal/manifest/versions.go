package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dependency specifiers that point somewhere other than the registry.
var nonRegistryPrefixes = []string{"file:", "link:", "workspace:", "npm:", "git+", "git:", "github:", "http:", "https:"}

// distTags are accepted in place of a version range.
var distTags = map[string]bool{"latest": true, "next": true}

// CheckVersion returns an error unless v is a strict semantic version such as "0.1.0".
func CheckVersion(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("version %q is not valid semver: %w", v, err)
	}
	return nil
}

// CheckDependencyRange returns an error unless r is a parseable semver range,
// a dist-tag, or a non-registry specifier (file:, link:, git URLs, ...).
func CheckDependencyRange(r string) error {
	r = strings.TrimSpace(r)
	if r == "" {
		return fmt.Errorf("dependency range is empty")
	}
	for _, p := range nonRegistryPrefixes {
		if strings.HasPrefix(r, p) {
			return nil
		}
	}
	if distTags[r] {
		return nil
	}
	if _, err := semver.NewConstraint(r); err != nil {
		return fmt.Errorf("dependency range %q is not valid: %w", r, err)
	}
	return nil
}

// IsLocalLink reports whether a dependency value references a local path.
func IsLocalLink(r string) bool {
	return strings.HasPrefix(r, "file:") || strings.HasPrefix(r, "link:")
}

// DependencyFor returns the value written for the framework dependency.
// When linkLocal is set it becomes a file: reference relative to projectDir;
// otherwise version is used as a registry range.
func DependencyFor(linkLocal, projectDir, version string) (string, error) {
	if linkLocal == "" {
		if err := CheckDependencyRange(version); err != nil {
			return "", err
		}
		return version, nil
	}

	target, err := filepath.Abs(linkLocal)
	if err != nil {
		return "", fmt.Errorf("resolving link path %s: %w", linkLocal, err)
	}
	base, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("resolving project path %s: %w", projectDir, err)
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("relating %s to %s: %w", target, base, err)
	}
	return "file:" + filepath.ToSlash(rel), nil
}

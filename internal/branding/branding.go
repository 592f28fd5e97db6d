// Package branding provides compile-time identity values for the CLI and the
// framework it scaffolds.
//
// The values come from branding.yaml, which Go's //go:embed bakes into the
// binary. Forks that target a renamed framework only need to edit that file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	FrameworkPackage string `yaml:"framework_package"`
	FrameworkClass   string `yaml:"framework_class"`
	FrameworkVersion string `yaml:"framework_version"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "smoothjs",
			DisplayName:      "SmoothJS",
			Description:      "Project scaffolding and structure validation for SmoothJS apps",
			HomeDir:          ".smoothjs",
			EnvPrefix:        "SMOOTHJS",
			FrameworkPackage: "smoothjs",
			FrameworkClass:   "SmoothComponent",
			FrameworkVersion: "^1.0.0",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "smoothjs").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "SmoothJS").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".smoothjs").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SMOOTHJS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// FrameworkPackage returns the npm package name generated projects depend on.
func FrameworkPackage() string { load(); return defaults.FrameworkPackage }

// FrameworkClass returns the base class exported by the framework. Generated
// components extend it and the validator looks for it in the app entry file.
func FrameworkClass() string { load(); return defaults.FrameworkClass }

// FrameworkVersion returns the registry version range used when a project is
// not linked to a local checkout of the framework.
func FrameworkVersion() string { load(); return defaults.FrameworkVersion }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SMOOTHJS_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

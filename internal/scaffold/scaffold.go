package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/console"
	"github.com/ooyeku/smoothjs-cli/internal/layout"
	"github.com/ooyeku/smoothjs-cli/internal/manifest"
	"github.com/ooyeku/smoothjs-cli/internal/naming"
	"github.com/ooyeku/smoothjs-cli/internal/platform"
	"github.com/ooyeku/smoothjs-cli/internal/templates"
)

// ErrProjectExists is returned when the project directory is already taken.
var ErrProjectExists = errors.New("project directory already exists")

// Options configures Create.
type Options struct {
	Name      string // project name, ^[a-z0-9-]+$
	TargetDir string // parent directory; defaults to "."
	// LinkLocal points the framework dependency at a local checkout
	// (written as file:<relative path>) instead of a registry range.
	LinkLocal string
	// FrameworkVersion is the registry range; defaults to the branding value.
	FrameworkVersion string
	Log              console.Logger
}

// Result holds the outcome of a scaffold run.
type Result struct {
	ProjectDir  string
	Directories []string
	Files       []string // project-relative, forward slashes, in write order
	Warnings    []string
}

// Create generates a new project at TargetDir/Name.
func Create(opts Options) (*Result, error) {
	if err := naming.ValidateProjectName(opts.Name); err != nil {
		return nil, err
	}

	targetDir := opts.TargetDir
	if targetDir == "" {
		targetDir = "."
	}
	projectDir := filepath.Join(targetDir, opts.Name)

	if platform.Exists(projectDir) {
		return nil, platform.InvalidInput(ErrProjectExists, "cannot create %s", projectDir)
	}

	version := opts.FrameworkVersion
	if version == "" {
		version = branding.FrameworkVersion()
	}
	dependency, err := manifest.DependencyFor(opts.LinkLocal, projectDir, version)
	if err != nil {
		return nil, platform.InvalidInput(err, "resolving %s dependency", branding.FrameworkPackage())
	}

	log := opts.Log
	log.Info("Creating %s project %s", branding.DisplayName(), projectDir)

	if err := os.MkdirAll(projectDir, platform.DirMode); err != nil {
		return nil, platform.Filesystem("creating project directory", projectDir, err)
	}

	result := &Result{ProjectDir: projectDir}

	for _, d := range layout.Directories() {
		dir := filepath.Join(projectDir, d.Name)
		if err := os.MkdirAll(dir, platform.DirMode); err != nil {
			return nil, platform.Filesystem("creating directory", dir, err)
		}
		result.Directories = append(result.Directories, d.Name)
		log.Step("%s/", d.Name)
	}

	data := templates.NewProjectData(opts.Name, dependency)

	files := append(templates.ProjectFiles(), templates.ExampleFiles()...)
	for _, f := range files {
		content, err := templates.Render(f, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.Path, err)
		}
		if err := platform.WriteFile(filepath.Join(projectDir, filepath.FromSlash(f.Path)), []byte(content)); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f.Path)
		log.Step("%s", f.Path)
	}

	// Validate the generated manifest against the package.json schema.
	manifestFile := filepath.Join(projectDir, layout.ManifestFile)
	valResult, valErr := manifest.ValidateFile(manifestFile)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate %s: %v", layout.ManifestFile, valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, layout.ManifestFile+" "+issue.String())
		}
	}
	for _, w := range result.Warnings {
		log.Warn("%s", w)
	}

	log.Success("Created %s with %d files", projectDir, len(result.Files))
	return result, nil
}

package scaffold

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ooyeku/smoothjs-cli/internal/console"
	"github.com/ooyeku/smoothjs-cli/internal/exports"
	"github.com/ooyeku/smoothjs-cli/internal/layout"
	"github.com/ooyeku/smoothjs-cli/internal/manifest"
	"github.com/ooyeku/smoothjs-cli/internal/naming"
	"github.com/ooyeku/smoothjs-cli/internal/platform"
	"github.com/ooyeku/smoothjs-cli/internal/templates"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	// ErrInvalidItemType is returned for types other than component, page, store and util.
	ErrInvalidItemType = errors.New("invalid item type")
	// ErrItemExists is returned when the item file is already present and Force is not set.
	ErrItemExists = errors.New("item file already exists")
)

// AddOptions configures AddItem.
type AddOptions struct {
	Type        string
	Name        string
	ProjectPath string
	// Force overwrites an existing item file.
	Force bool
	// DryRun renders everything but writes nothing.
	DryRun bool
	Log    console.Logger
}

// AddResult describes what AddItem wrote (or would write).
type AddResult struct {
	File         string // project-relative, forward slashes
	ExportName   string
	Content      string
	Index        string // project-relative index file
	IndexUpdated bool
	// Diff is a line diff of the index file change; empty when unchanged.
	Diff string
}

// Item is the resolved target of an add.
type Item struct {
	Type       layout.ItemType
	File       string // project-relative, forward slashes
	ExportName string
}

// ResolveItem computes the file path and exported identifier for an item.
//
//	component Button  -> components/Button.js      export Button
//	page      settings -> pages/SettingsPage.js    export SettingsPage
//	store     cart    -> stores/cart.js            export cartStore
//	util      slugify -> utils/slugify.js          export slugify
func ResolveItem(itemType, name string) (*Item, error) {
	t, ok := layout.ParseItemType(itemType)
	if !ok {
		return nil, platform.InvalidInput(ErrInvalidItemType, "invalid type %q: must be one of component, page, store, util", itemType)
	}
	if err := naming.ValidateItemName(name); err != nil {
		return nil, err
	}

	pascal := naming.Pascal(name)
	camel := naming.Camel(name)
	item := &Item{Type: t}

	switch t {
	case layout.Component:
		item.File = path.Join(layout.DirFor(t), pascal+".js")
		item.ExportName = pascal
	case layout.Page:
		base := strings.TrimSuffix(pascal, "Page") + "Page"
		item.File = path.Join(layout.DirFor(t), base+".js")
		item.ExportName = base
	case layout.Store:
		item.File = path.Join(layout.DirFor(t), camel+".js")
		item.ExportName = strings.TrimSuffix(camel, "Store") + "Store"
	case layout.Util:
		item.File = path.Join(layout.DirFor(t), camel+".js")
		item.ExportName = camel
	}
	return item, nil
}

// AddItem writes a new item file into an existing project and re-exports it
// from the matching index file.
func AddItem(opts AddOptions) (*AddResult, error) {
	item, err := ResolveItem(opts.Type, opts.Name)
	if err != nil {
		return nil, err
	}

	projectPath := opts.ProjectPath
	if projectPath == "" {
		projectPath = "."
	}
	if !platform.IsDir(projectPath) {
		return nil, platform.InvalidInput(nil, "project path %s is not a directory", projectPath)
	}

	filePath := filepath.Join(projectPath, filepath.FromSlash(item.File))
	if platform.Exists(filePath) && !opts.Force {
		return nil, platform.InvalidInput(ErrItemExists, "%s already exists (use --force to overwrite)", item.File)
	}

	data := projectData(projectPath).WithItem(opts.Name, item.ExportName)
	content, err := templates.RenderItem(item.Type, data)
	if err != nil {
		return nil, err
	}

	result := &AddResult{
		File:       item.File,
		ExportName: item.ExportName,
		Content:    content,
		Index:      layout.IndexFor(item.Type),
	}

	indexPath := filepath.Join(projectPath, filepath.FromSlash(result.Index))
	before, err := readOptional(indexPath)
	if err != nil {
		return nil, err
	}
	index := exports.Parse(before)
	result.IndexUpdated = index.Add(exports.Named(item.ExportName, "./"+path.Base(item.File)))
	after := index.String()
	if result.IndexUpdated {
		result.Diff = lineDiff(before, after)
	}

	log := opts.Log
	if opts.DryRun {
		log.Info("Dry run: %s would be written", item.File)
		return result, nil
	}

	if err := platform.WriteFile(filePath, []byte(content)); err != nil {
		return nil, err
	}
	log.Step("%s", item.File)

	if result.IndexUpdated {
		if err := platform.WriteFile(indexPath, []byte(after)); err != nil {
			return nil, err
		}
		log.Step("%s (export %s)", result.Index, item.ExportName)
	}

	log.Success("Added %s %s", item.Type, item.ExportName)
	return result, nil
}

// projectData builds template data for an existing project, taking the
// project name from package.json when it can be read.
func projectData(projectPath string) *templates.Data {
	name := filepath.Base(projectPath)
	if abs, err := filepath.Abs(projectPath); err == nil {
		name = filepath.Base(abs)
	}
	if pkg, err := manifest.ParseFile(filepath.Join(projectPath, layout.ManifestFile)); err == nil && pkg.Name != "" {
		name = pkg.Name
	}
	return templates.NewProjectData(name, "")
}

func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", platform.Filesystem("reading", path, err)
	}
	return string(data), nil
}

// lineDiff renders a line-oriented diff with "+ ", "- " and "  " prefixes.
func lineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(l, "\n"))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

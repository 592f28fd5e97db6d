// Package templates is the catalog of files written into new projects and
// the per-item boilerplate used by the add command. Every template is a pure
// function of Data: rendering has no side effects and depends on nothing but
// its input.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/layout"
	"github.com/ooyeku/smoothjs-cli/internal/naming"
)

// The all: prefix keeps dotfiles such as .gitignore.tmpl.
//
//go:embed all:files
var filesFS embed.FS

const (
	projectRoot = "files/project"
	itemsRoot   = "files/items"
	tmplExt     = ".tmpl"
)

// File is one generated file, identified by its project-relative path with
// forward slashes.
type File struct {
	Path string
}

func (f File) source() string {
	return path.Join(projectRoot, f.Path+tmplExt)
}

// Data holds all variables available to templates.
type Data struct {
	ProjectName      string // e.g., "my-app"
	Title            string // e.g., "My App"
	CLIName          string // e.g., "smoothjs"
	FrameworkName    string // e.g., "SmoothJS"
	FrameworkPackage string // e.g., "smoothjs"
	FrameworkClass   string // e.g., "SmoothComponent"
	Dependency       string // package.json value for the framework, e.g. "^1.0.0" or "file:../smoothjs"
	Directories      []layout.Directory

	// Item fields, set only for add.
	ItemName   string // as typed by the user, e.g., "user-profile"
	Pascal     string // e.g., "UserProfile"
	Camel      string // e.g., "userProfile"
	ExportName string // identifier re-exported from the index file
}

// NewProjectData returns Data for a new project with branding defaults.
func NewProjectData(projectName, dependency string) *Data {
	return &Data{
		ProjectName:      projectName,
		Title:            naming.Title(projectName),
		CLIName:          branding.CLIName(),
		FrameworkName:    branding.DisplayName(),
		FrameworkPackage: branding.FrameworkPackage(),
		FrameworkClass:   branding.FrameworkClass(),
		Dependency:       dependency,
		Directories:      layout.Directories(),
	}
}

// WithItem returns a copy of d with the item fields filled in.
func (d Data) WithItem(name, exportName string) *Data {
	d.ItemName = name
	d.Pascal = naming.Pascal(name)
	d.Camel = naming.Camel(name)
	d.ExportName = exportName
	return &d
}

var projectFiles = []File{
	{Path: "package.json"},
	{Path: "README.md"},
	{Path: "index.html"},
	{Path: "app.js"},
	{Path: ".gitignore"},
	{Path: "vite.config.js"},
	{Path: "jsconfig.json"},
	{Path: "components/index.js"},
	{Path: "pages/index.js"},
	{Path: "stores/index.js"},
	{Path: "router/index.js"},
	{Path: "utils/index.js"},
	{Path: "styles/index.css"},
}

var exampleFiles = []File{
	{Path: "components/Header.js"},
	{Path: "components/Counter.js"},
	{Path: "pages/HomePage.js"},
	{Path: "pages/AboutPage.js"},
	{Path: "stores/counterStore.js"},
	{Path: "router/routes.js"},
	{Path: "utils/helpers.js"},
	{Path: "styles/theme.css"},
}

// ProjectFiles returns the top-level template files in write order.
func ProjectFiles() []File {
	return append([]File(nil), projectFiles...)
}

// ExampleFiles returns the example files in write order. They import each
// other through the index files listed in ProjectFiles.
func ExampleFiles() []File {
	return append([]File(nil), exampleFiles...)
}

// Render executes the template for f.
func Render(f File, data *Data) (string, error) {
	return execute(f.source(), data)
}

// RenderItem executes the boilerplate template for an item type.
func RenderItem(t layout.ItemType, data *Data) (string, error) {
	return execute(path.Join(itemsRoot, string(t)+".js"+tmplExt), data)
}

func execute(name string, data *Data) (string, error) {
	raw, err := fs.ReadFile(filesFS, name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}

	tmpl, err := template.New(path.Base(name)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

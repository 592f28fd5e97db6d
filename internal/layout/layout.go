// Package layout is the static description of a conventional SmoothJS
// project: which directories and files it has, which of them the validator
// requires, and where each kind of item lives.
package layout

// Directory describes one conventional top-level directory.
type Directory struct {
	Name        string
	Description string
	Files       []string
}

// ItemType is a kind of source file the add command can generate.
type ItemType string

const (
	Component ItemType = "component"
	Page      ItemType = "page"
	Store     ItemType = "store"
	Util      ItemType = "util"
)

// ItemTypes lists the supported item types in display order.
var ItemTypes = []ItemType{Component, Page, Store, Util}

var directories = []Directory{
	{Name: "components", Description: "reusable UI components", Files: []string{"index.js", "Header.js", "Counter.js"}},
	{Name: "pages", Description: "route-level page components", Files: []string{"index.js", "HomePage.js", "AboutPage.js"}},
	{Name: "stores", Description: "state stores and selectors", Files: []string{"index.js", "counterStore.js"}},
	{Name: "router", Description: "router configuration", Files: []string{"index.js", "routes.js"}},
	{Name: "utils", Description: "shared helper functions", Files: []string{"index.js", "helpers.js"}},
	{Name: "assets", Description: "images, fonts and other static files"},
	{Name: "styles", Description: "global stylesheets", Files: []string{"index.css", "theme.css"}},
	{Name: "tests", Description: "unit and integration tests"},
}

// Required and recommended entries checked by the validator.
var (
	RequiredDirs     = []string{"components", "pages", "stores", "router"}
	RecommendedDirs  = []string{"utils", "assets", "styles", "tests"}
	RequiredFiles    = []string{ManifestFile, "index.html", EntryFile}
	RecommendedFiles = []string{"README.md", ".gitignore", "vite.config.js", "jsconfig.json"}
)

const (
	// ManifestFile is the npm package manifest.
	ManifestFile = "package.json"
	// EntryFile is the application entry module.
	EntryFile = "app.js"
	// TestsDir holds tests; files there are not placement-checked.
	TestsDir = "tests"
)

// SourceExtensions are the file extensions treated as source files.
var SourceExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// DefaultExcludes are directory patterns skipped by the validator's source
// scan in addition to dot-directories.
var DefaultExcludes = []string{"node_modules", "dist", "build", "coverage"}

// Directories returns the fixed, ordered set of scaffolded subdirectories.
func Directories() []Directory {
	out := make([]Directory, len(directories))
	copy(out, directories)
	return out
}

// Describe returns the description of a conventional directory, or "".
func Describe(name string) string {
	for _, d := range directories {
		if d.Name == name {
			return d.Description
		}
	}
	return ""
}

// ParseItemType validates s as an ItemType.
func ParseItemType(s string) (ItemType, bool) {
	for _, t := range ItemTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// DirFor returns the directory that holds items of type t.
func DirFor(t ItemType) string {
	switch t {
	case Component:
		return "components"
	case Page:
		return "pages"
	case Store:
		return "stores"
	case Util:
		return "utils"
	}
	return ""
}

// IndexFor returns the project-relative index file re-exporting items of type t.
func IndexFor(t ItemType) string {
	if dir := DirFor(t); dir != "" {
		return dir + "/index.js"
	}
	return ""
}

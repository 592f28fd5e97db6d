package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"github.com/ooyeku/smoothjs-cli/internal/layout"
	"github.com/ooyeku/smoothjs-cli/internal/manifest"
)

// Penalties applied per issue and per warning.
const (
	IssuePenalty   = 20
	WarningPenalty = 5
)

// Band is the qualitative reading of a score.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandNeedsWork Band = "needs-work"
)

// Options tunes the source scan.
type Options struct {
	// Exclude adds doublestar patterns to layout.DefaultExcludes. A pattern
	// matches a directory or file by base name or by project-relative path.
	Exclude []string
	// NoGitignore disables honoring the project's .gitignore.
	NoGitignore bool
}

// Result is the report of one validation run.
type Result struct {
	Path        string   `json:"path" yaml:"path"`
	IsValid     bool     `json:"isValid" yaml:"is_valid"`
	Score       int      `json:"score" yaml:"score"`
	Band        Band     `json:"band" yaml:"band"`
	Issues      []string `json:"issues" yaml:"issues"`
	Warnings    []string `json:"warnings" yaml:"warnings"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// Score computes max(0, 100 - 20*issues - 5*warnings).
func Score(issues, warnings int) int {
	s := 100 - IssuePenalty*issues - WarningPenalty*warnings
	if s < 0 {
		return 0
	}
	return s
}

// BandFor classifies a score.
func BandFor(score int) Band {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 75:
		return BandGood
	case score >= 50:
		return BandFair
	default:
		return BandNeedsWork
	}
}

var importRe = regexp.MustCompile(`(?m)^\s*import\s`)

type run struct {
	root   string
	opts   Options
	result *Result
}

func (r *run) issue(format string, args ...any) {
	r.result.Issues = append(r.result.Issues, fmt.Sprintf(format, args...))
}

func (r *run) warn(format string, args ...any) {
	r.result.Warnings = append(r.result.Warnings, fmt.Sprintf(format, args...))
}

func (r *run) suggest(format string, args ...any) {
	r.result.Suggestions = append(r.result.Suggestions, fmt.Sprintf(format, args...))
}

// Validate inspects the project at projectPath.
func Validate(projectPath string, opts Options) *Result {
	r := &run{
		root: projectPath,
		opts: opts,
		result: &Result{
			Path:        projectPath,
			Issues:      []string{},
			Warnings:    []string{},
			Suggestions: []string{},
		},
	}

	info, err := os.Stat(projectPath)
	switch {
	case os.IsNotExist(err):
		r.issue("Project directory does not exist: %s", projectPath)
		return r.finish(true)
	case err != nil:
		r.issue("Cannot access project directory %s: %v", projectPath, err)
		return r.finish(true)
	case !info.IsDir():
		r.issue("Project path is not a directory: %s", projectPath)
		return r.finish(true)
	}

	r.checkRequiredDirs()
	r.checkRecommendedDirs()
	r.checkRequiredFiles()
	r.checkRecommendedFiles()
	r.scanSources()

	return r.finish(false)
}

func (r *run) finish(fatal bool) *Result {
	res := r.result
	res.IsValid = len(res.Issues) == 0
	if fatal {
		res.Score = 0
	} else {
		res.Score = Score(len(res.Issues), len(res.Warnings))
	}
	res.Band = BandFor(res.Score)
	return res
}

func (r *run) path(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}

func (r *run) checkRequiredDirs() {
	for _, d := range layout.RequiredDirs {
		info, err := os.Stat(r.path(d))
		switch {
		case os.IsNotExist(err):
			r.issue("Missing required directory: %s", d)
			continue
		case err != nil:
			r.issue("Cannot access directory %s: %v", d, err)
			continue
		case !info.IsDir():
			r.issue("%s exists but is not a directory", d)
			continue
		}

		entries, err := os.ReadDir(r.path(d))
		if err != nil {
			r.warn("Cannot read directory %s: %v", d, err)
			continue
		}
		if len(entries) == 0 {
			r.warn("Directory %s is empty", d)
		}
	}
}

func (r *run) checkRecommendedDirs() {
	for _, d := range layout.RecommendedDirs {
		info, err := os.Stat(r.path(d))
		if err == nil && info.IsDir() {
			continue
		}
		r.suggest("Consider adding %s/ directory (%s)", d, layout.Describe(d))
	}
}

func (r *run) checkRequiredFiles() {
	for _, f := range layout.RequiredFiles {
		info, err := os.Stat(r.path(f))
		switch {
		case os.IsNotExist(err):
			r.issue("Missing required file: %s", f)
			continue
		case err != nil:
			r.issue("Cannot access %s: %v", f, err)
			continue
		case info.IsDir():
			r.issue("%s exists but is not a file", f)
			continue
		}

		switch f {
		case layout.EntryFile:
			r.checkEntry()
		case layout.ManifestFile:
			r.checkManifest()
		}
	}
}

func (r *run) checkEntry() {
	data, err := os.ReadFile(r.path(layout.EntryFile))
	if err != nil {
		r.warn("Cannot read %s: %v", layout.EntryFile, err)
		return
	}
	content := string(data)

	if !importRe.MatchString(content) {
		r.warn("%s should import its dependencies", layout.EntryFile)
	}
	if !strings.Contains(content, branding.FrameworkClass()) {
		r.warn("%s should reference %s", layout.EntryFile, branding.FrameworkClass())
	}
	if !strings.Contains(content, "router") {
		r.warn("%s should set up the router", layout.EntryFile)
	}
}

func (r *run) checkManifest() {
	data, err := os.ReadFile(r.path(layout.ManifestFile))
	if err != nil {
		r.issue("Cannot read %s: %v", layout.ManifestFile, err)
		return
	}
	if err := json.Unmarshal(data, new(any)); err != nil {
		r.issue("%s is not valid JSON: %v", layout.ManifestFile, err)
		return
	}
	pkg, err := manifest.Parse(data)
	if err != nil {
		r.issue("%s must contain a JSON object", layout.ManifestFile)
		return
	}
	if result, err := manifest.Validate(data); err == nil {
		for _, issue := range result.Issues {
			if issue.Keyword == "type" {
				r.warn("%s %s", layout.ManifestFile, issue)
			}
		}
	}

	if !pkg.IsModule() {
		r.warn("%s should have type %s", layout.ManifestFile, manifest.ModuleType)
	}
	if _, ok := pkg.Dependency(branding.FrameworkPackage()); !ok {
		r.warn("%s is missing the %s dependency", layout.ManifestFile, branding.FrameworkPackage())
	}
	if !pkg.HasScript(manifest.DevScript) {
		r.suggest("Add a %q script to %s", manifest.DevScript, layout.ManifestFile)
	}
	if err := manifest.CheckVersion(pkg.Version); err != nil {
		r.warn("%s %v", layout.ManifestFile, err)
	}
	for _, deps := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		for _, name := range sortedKeys(deps) {
			if err := manifest.CheckDependencyRange(deps[name]); err != nil {
				r.warn("%s dependency %s: %v", layout.ManifestFile, name, err)
			}
		}
	}
}

func (r *run) checkRecommendedFiles() {
	for _, f := range layout.RecommendedFiles {
		if _, err := os.Stat(r.path(f)); err != nil {
			r.suggest("Consider adding %s", f)
		}
	}
}

// scanSources walks the project and flags PascalCase files that live
// outside the directory their name implies.
func (r *run) scanSources() {
	excludes := r.excludePatterns()
	ignore := r.loadGitignore()

	err := filepath.WalkDir(r.root, func(p string, d fs.DirEntry, walkErr error) error {
		if p == r.root {
			return walkErr
		}
		rel, relErr := filepath.Rel(r.root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			r.warn("Cannot read %s: %v", rel, walkErr)
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") || matchesAny(excludes, d.Name(), rel) || ignored(ignore, rel, true) {
				return filepath.SkipDir
			}
			if rel == layout.TestsDir {
				return filepath.SkipDir
			}
			return nil
		}

		if !isSource(d.Name()) || matchesAny(excludes, d.Name(), rel) || ignored(ignore, rel, false) {
			return nil
		}
		r.checkPlacement(rel)
		return nil
	})
	if err != nil {
		r.warn("Cannot scan source files: %v", err)
	}
}

func (r *run) checkPlacement(rel string) {
	base := path.Base(rel)
	stem := strings.TrimSuffix(base, path.Ext(base))
	if !isPascal(stem) {
		return
	}

	top := ""
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		top = rel[:i]
	}

	if strings.HasSuffix(stem, "Page") && stem != "Page" {
		if top != "pages" {
			r.warn("%s looks like a page and should live in pages/", rel)
		}
		return
	}
	if top != "components" && top != "pages" {
		r.warn("%s looks like a component and should live in components/", rel)
	}
}

func (r *run) excludePatterns() []string {
	var out []string
	for _, p := range append(append([]string(nil), layout.DefaultExcludes...), r.opts.Exclude...) {
		p = strings.Trim(filepath.ToSlash(strings.TrimSpace(p)), "/")
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			r.warn("Ignoring invalid exclude pattern %q", p)
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *run) loadGitignore() gitignore.GitIgnore {
	if r.opts.NoGitignore {
		return nil
	}
	data, err := os.ReadFile(r.path(".gitignore"))
	if err != nil {
		if !os.IsNotExist(err) {
			r.warn("Cannot read .gitignore: %v", err)
		}
		return nil
	}
	root, err := filepath.Abs(r.root)
	if err != nil {
		root = r.root
	}
	return gitignore.New(bytes.NewReader(data), root, nil)
}

func matchesAny(patterns []string, name, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func ignored(ig gitignore.GitIgnore, rel string, isDir bool) bool {
	if ig == nil {
		return false
	}
	m := ig.Relative(rel, isDir)
	return m != nil && m.Ignore()
}

func isSource(name string) bool {
	ext := path.Ext(name)
	for _, e := range layout.SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func isPascal(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package exports models JavaScript index files: modules whose only job is to
// re-export siblings. A file is parsed into an ordered list of lines where
// each re-export statement becomes an Entry, and everything else (comments,
// blank lines, other code) is kept verbatim. New entries are inserted after
// the last existing entry, so trailing comments or blank lines are never
// split or overwritten.
package exports

import (
	"regexp"
	"strings"
)

var (
	namedRe = regexp.MustCompile(`^export\s*\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]\s*;?\s*$`)
	starRe  = regexp.MustCompile(`^export\s*\*\s*(?:as\s+([A-Za-z_$][\w$]*)\s+)?from\s*['"]([^'"]+)['"]\s*;?\s*$`)
)

// Entry is one re-export statement.
type Entry struct {
	// Specifiers are the items inside the braces as written, e.g. "Button"
	// or "default as Button". Empty for star exports.
	Specifiers []string
	// Namespace is set for `export * as ns from '...'`.
	Namespace string
	// Star is true for `export * from '...'` and `export * as ns from '...'`.
	Star   bool
	Source string
}

// Named returns the entry `export { name } from 'source';`.
func Named(name, source string) Entry {
	return Entry{Specifiers: []string{name}, Source: source}
}

// Names returns the identifiers the entry makes visible to importers.
// Star exports without a namespace return nil.
func (e Entry) Names() []string {
	if e.Star {
		if e.Namespace != "" {
			return []string{e.Namespace}
		}
		return nil
	}
	names := make([]string, 0, len(e.Specifiers))
	for _, spec := range e.Specifiers {
		fields := strings.Fields(spec)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[len(fields)-1])
	}
	return names
}

// String renders the entry in canonical single-line form.
func (e Entry) String() string {
	switch {
	case e.Star && e.Namespace != "":
		return "export * as " + e.Namespace + " from '" + e.Source + "';"
	case e.Star:
		return "export * from '" + e.Source + "';"
	default:
		return "export { " + strings.Join(e.Specifiers, ", ") + " } from '" + e.Source + "';"
	}
}

type line struct {
	// raw holds the original text; a multi-line export keeps all its lines.
	raw   []string
	entry *Entry
}

// File is a parsed index file.
type File struct {
	lines []line
	// eol is the line ending detected in the parsed content.
	eol string
}

// Parse splits content into entries and verbatim lines. It never fails:
// anything it does not recognize is preserved as-is. Comments trailing an
// export statement do not stop it from being recognized. CRLF files keep
// CRLF endings when rendered.
func Parse(content string) *File {
	f := &File{eol: "\n"}
	if strings.Contains(content, "\r\n") {
		f.eol = "\r\n"
		content = strings.ReplaceAll(content, "\r\n", "\n")
	}
	if content == "" {
		return f
	}
	raw := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	for i := 0; i < len(raw); i++ {
		trimmed := stripComments(raw[i])

		if !strings.HasPrefix(trimmed, "export") {
			f.lines = append(f.lines, line{raw: []string{raw[i]}})
			continue
		}

		// Multi-line brace list: gather until the closing brace.
		if strings.Contains(trimmed, "{") && !strings.Contains(trimmed, "}") {
			end := i
			for end < len(raw) && !strings.Contains(stripComments(raw[end]), "}") {
				end++
			}
			if end < len(raw) {
				joined := strings.Join(trimLines(raw[i:end+1]), " ")
				if e, ok := parseEntry(joined); ok {
					f.lines = append(f.lines, line{raw: raw[i : end+1], entry: &e})
					i = end
					continue
				}
			}
			f.lines = append(f.lines, line{raw: []string{raw[i]}})
			continue
		}

		if e, ok := parseEntry(trimmed); ok {
			f.lines = append(f.lines, line{raw: []string{raw[i]}, entry: &e})
			continue
		}
		f.lines = append(f.lines, line{raw: []string{raw[i]}})
	}
	return f
}

func parseEntry(s string) (Entry, bool) {
	if m := namedRe.FindStringSubmatch(s); m != nil {
		var specs []string
		for _, part := range strings.Split(m[1], ",") {
			if part = strings.Join(strings.Fields(part), " "); part != "" {
				specs = append(specs, part)
			}
		}
		return Entry{Specifiers: specs, Source: m[2]}, true
	}
	if m := starRe.FindStringSubmatch(s); m != nil {
		return Entry{Star: true, Namespace: m[1], Source: m[2]}, true
	}
	return Entry{}, false
}

func trimLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = stripComments(l)
	}
	return out
}

// stripComments removes // and /* */ comments outside string literals and
// trims the result. An unterminated block comment runs to the end of line.
func stripComments(s string) string {
	var b strings.Builder
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			b.WriteByte(c)
			switch c {
			case '\\':
				if i+1 < len(s) {
					i++
					b.WriteByte(s[i])
				}
			case quote:
				quote = 0
			}
			continue
		}
		switch {
		case c == '\'' || c == '"' || c == '`':
			quote = c
			b.WriteByte(c)
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			return strings.TrimSpace(b.String())
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return strings.TrimSpace(b.String())
			}
			b.WriteByte(' ')
			i += end + 3
		default:
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}

// Entries returns the parsed export entries in file order.
func (f *File) Entries() []Entry {
	var out []Entry
	for _, l := range f.lines {
		if l.entry != nil {
			out = append(out, *l.entry)
		}
	}
	return out
}

// Has reports whether any entry exports name.
func (f *File) Has(name string) bool {
	for _, e := range f.Entries() {
		for _, n := range e.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}

// HasSource reports whether any entry re-exports from source. "./Button",
// "./Button.js" and "Button.js" are treated as the same module.
func (f *File) HasSource(source string) bool {
	want := normalizeSource(source)
	for _, e := range f.Entries() {
		if normalizeSource(e.Source) == want {
			return true
		}
	}
	return false
}

// Add inserts e after the last existing entry, or after the last non-blank
// line when the file has no entries yet. It returns false and leaves the file
// unchanged when one of e's names or its source is already exported.
func (f *File) Add(e Entry) bool {
	if f.HasSource(e.Source) {
		return false
	}
	for _, n := range e.Names() {
		if f.Has(n) {
			return false
		}
	}

	at := -1
	for i, l := range f.lines {
		if l.entry != nil {
			at = i
		}
	}
	if at == -1 {
		for i, l := range f.lines {
			if strings.TrimSpace(strings.Join(l.raw, "")) != "" {
				at = i
			}
		}
	}

	entry := e
	nl := line{raw: []string{e.String()}, entry: &entry}
	f.lines = append(f.lines, line{})
	copy(f.lines[at+2:], f.lines[at+1:])
	f.lines[at+1] = nl
	return true
}

// String renders the file with its original line ending. Output always ends
// with a line break.
func (f *File) String() string {
	if len(f.lines) == 0 {
		return ""
	}
	eol := f.eol
	if eol == "" {
		eol = "\n"
	}
	var b strings.Builder
	for _, l := range f.lines {
		for _, r := range l.raw {
			b.WriteString(r)
			b.WriteString(eol)
		}
	}
	return b.String()
}

func normalizeSource(s string) string {
	s = strings.TrimPrefix(s, "./")
	for _, ext := range []string{".js", ".jsx", ".ts", ".tsx", ".mjs"} {
		if strings.HasSuffix(s, ext) {
			return strings.TrimSuffix(s, ext)
		}
	}
	return s
}

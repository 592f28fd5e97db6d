// Package naming validates user supplied names and derives the identifier
// forms used in generated code.
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ooyeku/smoothjs-cli/internal/platform"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	projectNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	itemNamePattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// ValidateProjectName checks name against ^[a-z0-9-]+$.
func ValidateProjectName(name string) error {
	if name == "" {
		return platform.InvalidInput(nil, "project name is required")
	}
	if !projectNamePattern.MatchString(name) {
		return platform.InvalidInput(nil, "invalid project name %q: use lowercase letters, numbers, and hyphens only", name)
	}
	return nil
}

// ValidateItemName checks that name can be turned into a JS identifier.
func ValidateItemName(name string) error {
	if name == "" {
		return platform.InvalidInput(nil, "item name is required")
	}
	if !itemNamePattern.MatchString(name) {
		return platform.InvalidInput(nil, "invalid name %q: must start with a letter and contain only letters, numbers, '-' or '_'", name)
	}
	return nil
}

// Pascal converts "user-profile" or "userProfile" to "UserProfile".
func Pascal(name string) string {
	var b strings.Builder
	for _, word := range words(name) {
		b.WriteString(titleCase(word))
	}
	return b.String()
}

// Camel converts "user-profile" or "UserProfile" to "userProfile".
func Camel(name string) string {
	p := Pascal(name)
	if p == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(p)
	return string(unicode.ToLower(r)) + p[size:]
}

// Title converts a project name such as "my-app" to "My App".
func Title(name string) string {
	ws := words(name)
	for i, w := range ws {
		ws[i] = titleCase(w)
	}
	return strings.Join(ws, " ")
}

// titleCase upper-cases the first letter of word. NoLower keeps inner
// capitals, so "myButton" becomes "MyButton". Casers hold state and are not
// safe for concurrent use, so each call gets its own.
func titleCase(word string) string {
	return cases.Title(language.English, cases.NoLower).String(word)
}

func words(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
}

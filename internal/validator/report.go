package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ooyeku/smoothjs-cli/internal/branding"
	"go.yaml.in/yaml/v3"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported report formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Render writes r to w in the named format.
func Render(w io.Writer, r *Result, format string) error {
	switch format {
	case "", FormatText:
		return RenderText(w, r)
	case FormatJSON:
		return RenderJSON(w, r)
	case FormatYAML:
		return RenderYAML(w, r)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// RenderJSON writes r as indented JSON.
func RenderJSON(w io.Writer, r *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// RenderYAML writes r as YAML.
func RenderYAML(w io.Writer, r *Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

type reportStyles struct {
	title      lipgloss.Style
	issue      lipgloss.Style
	warning    lipgloss.Style
	suggestion lipgloss.Style
	subtle     lipgloss.Style
	bands      map[Band]lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	re := lipgloss.NewRenderer(w)
	return reportStyles{
		title:      re.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		issue:      re.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		warning:    re.NewStyle().Foreground(lipgloss.Color("#FFA500")),
		suggestion: re.NewStyle().Foreground(lipgloss.Color("#00BFFF")),
		subtle:     re.NewStyle().Foreground(lipgloss.Color("#888888")),
		bands: map[Band]lipgloss.Style{
			BandExcellent: re.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
			BandGood:      re.NewStyle().Foreground(lipgloss.Color("#04B575")),
			BandFair:      re.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true),
			BandNeedsWork: re.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		},
	}
}

// RenderText writes a human-readable report. Colors are used only when w is
// a terminal.
func RenderText(w io.Writer, r *Result) error {
	s := newReportStyles(w)
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", s.title.Render(branding.DisplayName()+" project validation"))
	fmt.Fprintf(&b, "%s\n\n", s.subtle.Render(r.Path))
	fmt.Fprintf(&b, "Score: %d/100 (%s)\n", r.Score, s.bands[r.Band].Render(string(r.Band)))

	section := func(title, marker string, style lipgloss.Style, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s (%d):\n", title, len(items))
		for _, item := range items {
			fmt.Fprintf(&b, "  %s %s\n", style.Render(marker), item)
		}
	}
	section("Issues", "x", s.issue, r.Issues)
	section("Warnings", "!", s.warning, r.Warnings)
	section("Suggestions", "-", s.suggestion, r.Suggestions)

	b.WriteString("\n")
	if r.IsValid {
		b.WriteString("Project structure is valid.\n")
	} else {
		fmt.Fprintf(&b, "Project structure has %d issue(s).\n", len(r.Issues))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Package cli implements the polyglotid command's rendering logic,
// kept separate from main so it can be unit tested without going
// through cobra.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tassa-yoniso-manasi-karoto/polyglotid"
)

// Options controls how Run renders its output.
type Options struct {
	Explain bool
	NoColor bool
}

// ReadInput returns the text to classify: the joined positional args,
// or stdin if none were given.
func ReadInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("cli: failed to read stdin: %w", err)
	}
	return string(b), nil
}

// langPalette assigns a fixed 256-color ANSI code to each of the 20
// supported languages plus "unknown".
var langPalette = map[string]lipgloss.Color{
	"en": "39", "id": "214", "zh": "196", "ja": "201", "ko": "135",
	"th": "220", "vi": "82", "hi": "208", "bn": "172", "ar": "33",
	"ur": "105", "ru": "160", "de": "45", "fr": "99", "es": "202",
	"pt": "34", "it": "198", "pl": "27", "nl": "121", "tr": "166",
	"unknown": "240",
}

func styleFor(lang string, noColor bool) lipgloss.Style {
	if noColor {
		return lipgloss.NewStyle()
	}
	color, ok := langPalette[lang]
	if !ok {
		color = "240"
	}
	return lipgloss.NewStyle().Foreground(color)
}

// Run classifies text and writes the rendered segments to w.
func Run(w io.Writer, text string, opts Options) error {
	if opts.Explain {
		segments, traces, err := polyglotid.DetectVerbose(text)
		if err != nil {
			return err
		}
		renderSegments(w, segments, opts)
		fmt.Fprintln(w)
		renderTrace(w, traces)
		return nil
	}

	segments, err := polyglotid.Detect(text)
	if err != nil {
		return err
	}
	renderSegments(w, segments, opts)
	return nil
}

func renderSegments(w io.Writer, segments []polyglotid.Segment, opts Options) {
	tag := lipgloss.NewStyle().Faint(true)
	for _, seg := range segments {
		style := styleFor(seg.Language, opts.NoColor)
		fmt.Fprintf(w, "%s%s ", style.Render(seg.Text), tag.Render("["+seg.Language+"]"))
	}
	fmt.Fprintln(w)
}

func renderTrace(w io.Writer, traces []polyglotid.TokenTrace) {
	header := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(w, header.Render("token\tlabel\tpostFused\tdisambiguated"))
	for _, tr := range traces {
		fmt.Fprintf(w, "%-16s %-8s %v\t%v\n", tr.Token.Surface, tr.Label, tr.PostFused, tr.Disambiguated)
	}
}

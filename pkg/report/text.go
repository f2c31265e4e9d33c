package report

import (
	"fmt"
	"io"

	"github.com/aqbifzl/rscheck/internal/utils"
	"github.com/aqbifzl/rscheck/pkg/checker"
	"github.com/charmbracelet/lipgloss"
)

type textStyles struct {
	path    lipgloss.Style
	word    lipgloss.Style
	line    lipgloss.Style
	err     lipgloss.Style
	banner  lipgloss.Style
	counter lipgloss.Style
}

func newTextStyles(w io.Writer, color bool) textStyles {
	if !color {
		return textStyles{}
	}
	r := lipgloss.NewRenderer(w)
	return textStyles{
		path: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		word: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		line: r.NewStyle().Faint(true),
		err: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ea9a97"}),
		banner: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
		counter: r.NewStyle().Italic(true),
	}
}

// TextReporter prints a human readable report.
type TextReporter struct {
	w      io.Writer
	styles textStyles
}

// NewTextReporter creates a text reporter. Styling is dropped when color is
// false or when w is not a terminal.
func NewTextReporter(w io.Writer, color bool) *TextReporter {
	return &TextReporter{
		w:      w,
		styles: newTextStyles(w, color),
	}
}

func (r *TextReporter) FileStarted(path string) {
	fmt.Fprintf(r.w, "-> %s\n", r.styles.path.Render(path))
}

func (r *TextReporter) Typo(t checker.Typo) {
	fmt.Fprintf(r.w, "  * %s:%s\n", r.styles.word.Render(t.Word), r.styles.line.Render(fmt.Sprint(t.Line)))
}

func (r *TextReporter) FileError(path string, err error) {
	fmt.Fprintln(r.w, r.styles.err.Render(ErrorMessage(path, err)))
}

func (r *TextReporter) FileDone(string) {
	fmt.Fprintln(r.w)
}

func (r *TextReporter) Summary(stats checker.Stats) {
	fmt.Fprintln(r.w, r.styles.banner.Render("===SUCCESSFULLY FINISHED==="))
	fmt.Fprintf(r.w, "->Files checked: %s\n", r.styles.counter.Render(fmt.Sprint(stats.FilesChecked)))
	fmt.Fprintf(r.w, "->Dirs checked: %s\n", r.styles.counter.Render(fmt.Sprint(stats.DirsChecked)))
	fmt.Fprintf(r.w, "->Typos found: %s\n", r.styles.counter.Render(fmt.Sprint(stats.Typos)))
	fmt.Fprintf(r.w, "->Errors: %s\n", r.styles.counter.Render(fmt.Sprint(stats.Errors)))
	fmt.Fprintln(r.w, r.styles.banner.Render("===THANKS FOR USING THIS SOFTWARE!==="))
}

// ErrorMessage describes a failed read of path the way the console report does.
func ErrorMessage(path string, err error) string {
	switch kind := utils.ClassifyError(err); kind {
	case utils.KindNotFound, utils.KindPermissionDenied:
		return fmt.Sprintf("Error occurred reading %s %s", path, kind)
	default:
		return fmt.Sprintf("Unknown error occurred reading %s", path)
	}
}

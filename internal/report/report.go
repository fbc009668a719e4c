// Package report renders formatting results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/titleformat/internal/host"
	"github.com/llehouerou/titleformat/internal/titlefmt"
)

const stageColumn = 18

type styles struct {
	label   lipgloss.Style
	before  lipgloss.Style
	after   lipgloss.Style
	arrow   lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// Printer writes one line per changed or failed item and a closing summary.
type Printer struct {
	w      io.Writer
	width  int
	styles styles
}

// New creates a Printer writing to w. Titles wider than width cells are
// truncated; zero disables truncation. Colors follow w's capabilities.
func New(w io.Writer, width int) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		width: width,
		styles: styles{
			label:   r.NewStyle().Bold(true),
			before:  r.NewStyle().Foreground(lipgloss.Color("245")),
			after:   r.NewStyle().Foreground(lipgloss.Color("42")),
			arrow:   r.NewStyle().Foreground(lipgloss.Color("240")),
			failure: r.NewStyle().Foreground(lipgloss.Color("196")),
			muted:   r.NewStyle().Faint(true),
		},
	}
}

// Change prints "label: before → after" when out changed the item.
func (p *Printer) Change(label string, out host.Outcome) {
	if !out.Changed {
		return
	}
	fmt.Fprintf(p.w, "%s %s %s %s\n",
		p.styles.label.Render(Sanitize(label)+":"),
		p.styles.before.Render(strconv.Quote(Truncate(out.Before, p.width))),
		p.styles.arrow.Render("→"),
		p.styles.after.Render(strconv.Quote(Truncate(out.After, p.width))),
	)
}

// Failure prints an error line for label.
func (p *Printer) Failure(label string, msg string) {
	fmt.Fprintf(p.w, "%s %s\n",
		p.styles.label.Render(Sanitize(label)+":"),
		p.styles.failure.Render(Sanitize(msg)),
	)
}

// Trace prints the value after every pipeline stage.
func (p *Printer) Trace(steps []titlefmt.Step) {
	for _, step := range steps {
		fmt.Fprintf(p.w, "  %s %s\n",
			p.styles.muted.Render(Pad(string(step.Stage), stageColumn)),
			strconv.Quote(Truncate(step.Value, p.width)),
		)
	}
}

// Tally counts outcomes for the summary line.
type Tally struct {
	Total   int
	Changed int
	Skipped int
	Failed  int
}

// Add records one item's result.
func (t *Tally) Add(out host.Outcome, err error) {
	t.Total++
	switch {
	case err != nil:
		t.Failed++
	case out.Skipped:
		t.Skipped++
	case out.Changed:
		t.Changed++
	}
}

// Summary prints the tally, e.g. "Formatted 3 of 1,204 titles (2 skipped)".
// With dryRun set the verb becomes "Would format".
func (p *Printer) Summary(t Tally, dryRun bool) {
	fmt.Fprintln(p.w, p.styles.muted.Render(summaryLine(t, dryRun)))
}

func summaryLine(t Tally, dryRun bool) string {
	verb := "Formatted"
	if dryRun {
		verb = "Would format"
	}
	line := fmt.Sprintf("%s %s of %s %s", verb,
		humanize.Comma(int64(t.Changed)),
		humanize.Comma(int64(t.Total)),
		english.PluralWord(t.Total, "title", ""),
	)

	var extra []string
	if t.Skipped > 0 {
		extra = append(extra, humanize.Comma(int64(t.Skipped))+" skipped")
	}
	if t.Failed > 0 {
		extra = append(extra, humanize.Comma(int64(t.Failed))+" failed")
	}
	if len(extra) > 0 {
		line += " (" + english.OxfordWordSeries(extra, "and") + ")"
	}
	return line
}

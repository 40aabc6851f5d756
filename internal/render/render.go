// Package render draws a board view as terminal text for the CLI.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/starford/scratchpad/internal/board"
	"github.com/starford/scratchpad/internal/models"
)

// DefaultWidth is used when Options.Width is not positive.
const DefaultWidth = 80

const (
	bullet    = "• "
	collapsed = "▸ "
	indent    = "  "
)

// Options controls the layout.
type Options struct {
	Width   int
	ShowIDs bool
}

// Board writes the tracker line, every live group under a heading in its
// palette color, and a one-line trash summary.
func Board(w io.Writer, v board.View, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	r := lipgloss.NewRenderer(w)
	faint := r.NewStyle().Faint(true)

	var sb strings.Builder
	doc := v.Document
	title := doc.CurrentFileName
	if v.Dirty {
		title += " *"
	}
	sb.WriteString(r.NewStyle().Bold(true).Underline(true).Render(title))
	sb.WriteString("\n")
	sb.WriteString(Tracker(doc.Tracker))
	sb.WriteString("\n")

	for _, g := range doc.Groups {
		sb.WriteString("\n")
		heading := r.NewStyle().Bold(true).Foreground(lipgloss.Color(g.Color())).Render(g.Name)
		sb.WriteString(heading)
		sb.WriteString(faint.Render(fmt.Sprintf(" (%d)", len(g.Notes))))
		if opts.ShowIDs {
			sb.WriteString(faint.Render(" " + g.ID))
		}
		sb.WriteString("\n")
		if len(g.Notes) == 0 {
			sb.WriteString(indent + faint.Italic(true).Render("none") + "\n")
		}
		for _, n := range g.Notes {
			writeNote(&sb, n, opts, faint)
		}
	}

	if len(v.Trash) > 0 {
		sb.WriteString("\n")
		sb.WriteString(faint.Render(fmt.Sprintf("Trash: %d notes", len(v.Trash))))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Tracker renders the four counters with their short labels.
func Tracker(t models.Tracker) string {
	parts := make([]string, len(models.Counters))
	for i, c := range models.Counters {
		parts[i] = fmt.Sprintf("%s %d", c.Label(), t.Get(c))
	}
	return strings.Join(parts, "  ")
}

func writeNote(sb *strings.Builder, n *models.Note, opts Options, faint lipgloss.Style) {
	avail := opts.Width - runewidth.StringWidth(indent+bullet)
	if avail < 1 {
		avail = 1
	}
	suffix := ""
	if opts.ShowIDs {
		suffix = faint.Render(" " + n.ID)
	}
	if n.Collapsed {
		sb.WriteString(indent + collapsed + Truncate(n.Display(), avail) + suffix + "\n")
		return
	}
	lines := strings.Split(n.Text, "\n")
	for i, line := range lines {
		lead := indent + bullet
		if i > 0 {
			lead = indent + strings.Repeat(" ", runewidth.StringWidth(bullet))
		}
		sb.WriteString(lead + Truncate(line, avail))
		if i == 0 {
			sb.WriteString(suffix)
		}
		sb.WriteString("\n")
	}
}

// Truncate shortens s to at most width terminal cells, marking the cut.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jbmorgado/resdiff/pkg/compare"
	"github.com/jbmorgado/resdiff/pkg/report"
)

// Terminal renders pair reports as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
	num   *message.Printer
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, num: message.NewPrinter(language.English)}
}

// Render formats all pair reports for terminal display.
func (t *Terminal) Render(pairs []report.Pair) string {
	sections := make([]string, 0, len(pairs))
	for _, p := range pairs {
		sections = append(sections, t.renderPair(p))
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderPair(p report.Pair) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(p.Title()))
	sb.WriteString("\n")

	keyWidth := 0
	for _, row := range p.Meta {
		if w := runewidth.StringWidth(row.Key); w > keyWidth {
			keyWidth = w
		}
	}
	for _, row := range p.Meta {
		sb.WriteString("  ")
		key := runewidth.FillRight(row.Key, keyWidth)
		if row.Equal {
			sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Bullet + " " + key))
			sb.WriteString("  " + row.A)
		} else {
			sb.WriteString(t.theme.Error.Render(t.theme.Icons.Unequal + " " + key))
			sb.WriteString("  " + row.A + " ≠ " + row.B)
		}
		sb.WriteString("\n")
	}

	res := p.Result
	sb.WriteString("  ")
	switch {
	case res.Mismatch != nil:
		sb.WriteString(t.theme.Error.Render(t.theme.Icons.Unequal + " " + res.Mismatch.String()))
		sb.WriteString("\n")
	case res.Equal:
		sb.WriteString(t.theme.Success.Render(t.theme.Icons.Equal + " identical within tolerance"))
		sb.WriteString("\n")
		t.writeStats(&sb, res)
	default:
		sb.WriteString(t.theme.Error.Render(t.theme.Icons.Unequal + " differences found"))
		sb.WriteString("\n")
		t.writeStats(&sb, res)
	}
	return sb.String()
}

func (t *Terminal) writeStats(sb *strings.Builder, res compare.Result) {
	sb.WriteString("    ")
	sb.WriteString(t.num.Sprintf("%d", res.EqualPoints))
	sb.WriteString(" of ")
	sb.WriteString(t.num.Sprintf("%d", res.TotalPoints))
	sb.WriteString(" points within tolerance\n")
	sb.WriteString("    ")
	sb.WriteString(t.theme.Muted.Render(fmt.Sprintf(
		"max %.2e  mean %.2e  std %.2e  tol %.2e",
		res.MaxDiff, res.MeanDiff, res.StdDiff, res.Tolerance)))
	sb.WriteString("\n")
}

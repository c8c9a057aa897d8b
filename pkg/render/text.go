package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jbmorgado/resdiff/pkg/report"
)

// Text renders pair reports as plain ASCII, suitable for piped output or
// writing to a file.
type Text struct {
	num *message.Printer
}

// NewText creates a plain-text renderer.
func NewText() *Text {
	return &Text{num: message.NewPrinter(language.English)}
}

const textRuleWidth = 80

// Render formats all pair reports as plain text.
func (t *Text) Render(pairs []report.Pair) string {
	sections := make([]string, 0, len(pairs))
	for _, p := range pairs {
		sections = append(sections, t.renderPair(p))
	}
	return strings.Join(sections, "\n")
}

func (t *Text) renderPair(p report.Pair) string {
	var sb strings.Builder
	rule := strings.Repeat("=", textRuleWidth)
	sb.WriteString(rule + "\n")
	sb.WriteString("COMPARISON: " + p.Title() + "\n")
	sb.WriteString(rule + "\n")

	sb.WriteString("\nMETADATA COMPARISON:\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	for _, row := range p.Meta {
		if row.Equal {
			sb.WriteString(fmt.Sprintf("  %-20s: %s\n", row.Key, row.A))
		} else {
			sb.WriteString(fmt.Sprintf("  %-20s: %s != %s\n", row.Key, row.A, row.B))
		}
	}

	sb.WriteString("\nDATA COMPARISON:\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n")

	res := p.Result
	if res.Mismatch != nil {
		sb.WriteString("  ERROR: " + res.Mismatch.String() + "\n")
		return sb.String()
	}

	if res.Equal {
		sb.WriteString("  IDENTICAL within tolerance\n")
	} else {
		sb.WriteString("  DIFFERENCES FOUND\n")
	}
	sb.WriteString(t.num.Sprintf("  Total points:     %d\n", res.TotalPoints))
	sb.WriteString(t.num.Sprintf("  Equal points:     %d\n", res.EqualPoints))
	sb.WriteString(fmt.Sprintf("  Max difference:   %.2e\n", res.MaxDiff))
	sb.WriteString(fmt.Sprintf("  Mean difference:  %.2e\n", res.MeanDiff))
	sb.WriteString(fmt.Sprintf("  Std difference:   %.2e\n", res.StdDiff))
	sb.WriteString(fmt.Sprintf("  Tolerance:        %.2e\n", res.Tolerance))
	return sb.String()
}

// Package render provides output renderers for comparison reports.
package render

import "github.com/jbmorgado/resdiff/pkg/report"

// Renderer converts pair reports to formatted output.
type Renderer interface {
	Render(pairs []report.Pair) string
}

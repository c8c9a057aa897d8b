package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbmorgado/resdiff/pkg/report"
)

func TestTerminal_RenderStatistics(t *testing.T) {
	t.Parallel()

	out := NewTerminal(MonoTheme(), 80).Render([]report.Pair{statsPair()})

	assert.Contains(t, out, "a.txt vs b.txt")
	assert.Contains(t, out, "differences found")
	assert.Contains(t, out, "11.8 ≠ 12.2")
	assert.Contains(t, out, "1,048,570 of 1,048,576 points within tolerance")
	assert.Contains(t, out, "max 3.20e-09")
	assert.Contains(t, out, "tol 1.00e-10")
}

func TestTerminal_RenderEqual(t *testing.T) {
	t.Parallel()

	p := statsPair()
	p.Result.Equal = true

	out := NewTerminal(MonoTheme(), 80).Render([]report.Pair{p})

	assert.Contains(t, out, "identical within tolerance")
	assert.NotContains(t, out, "differences found")
}

func TestTerminal_RenderMismatch(t *testing.T) {
	t.Parallel()

	out := NewTerminal(MonoTheme(), 80).Render([]report.Pair{mismatchPair()})

	assert.Contains(t, out, "different lengths: 10 vs 12")
	assert.NotContains(t, out, "points within tolerance")
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "orca", ThemeByName("orca").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("nope").Name)
}

package render

import (
	"encoding/json"

	"github.com/jbmorgado/resdiff/pkg/report"
)

// JSON renders pair reports as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string     `json:"version"`
	Pairs   []jsonPair `json:"pairs"`
}

type jsonPair struct {
	FileA      string         `json:"file_a"`
	FileB      string         `json:"file_b"`
	Metadata   []jsonMetaRow  `json:"metadata"`
	Comparison jsonComparison `json:"comparison"`
}

type jsonMetaRow struct {
	Key   string `json:"key"`
	A     string `json:"a"`
	B     string `json:"b"`
	Equal bool   `json:"equal"`
}

type jsonComparison struct {
	Equal       bool    `json:"equal"`
	Error       string  `json:"error,omitempty"`
	TotalPoints int     `json:"total_points"`
	EqualPoints int     `json:"equal_points"`
	MaxDiff     float64 `json:"max_difference"`
	MeanDiff    float64 `json:"mean_difference"`
	StdDiff     float64 `json:"std_difference"`
	Tolerance   float64 `json:"tolerance"`
}

// Render formats all pair reports as JSON.
func (j *JSON) Render(pairs []report.Pair) string {
	out := jsonOutput{
		Version: "1.0",
		Pairs:   make([]jsonPair, 0, len(pairs)),
	}

	for _, p := range pairs {
		jp := jsonPair{
			FileA:    p.FileA,
			FileB:    p.FileB,
			Metadata: make([]jsonMetaRow, 0, len(p.Meta)),
			Comparison: jsonComparison{
				Equal:       p.Result.Equal,
				TotalPoints: p.Result.TotalPoints,
				EqualPoints: p.Result.EqualPoints,
				MaxDiff:     p.Result.MaxDiff,
				MeanDiff:    p.Result.MeanDiff,
				StdDiff:     p.Result.StdDiff,
				Tolerance:   p.Result.Tolerance,
			},
		}
		if p.Result.Mismatch != nil {
			jp.Comparison.Error = p.Result.Mismatch.String()
		}
		for _, row := range p.Meta {
			jp.Metadata = append(jp.Metadata, jsonMetaRow(row))
		}
		out.Pairs = append(out.Pairs, jp)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}

package render

import (
	"encoding/json"
	"io"

	"cryptoanalyzer/internal/model"
)

// JSONRenderer writes rows as an indented JSON array.
type JSONRenderer struct{}

func (JSONRenderer) Format() string { return "json" }

func (JSONRenderer) Render(w io.Writer, rows []model.AnalyzedRow) error {
	if rows == nil {
		rows = []model.AnalyzedRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

package render

import (
	"encoding/csv"
	"io"

	"cryptoanalyzer/internal/model"
	"cryptoanalyzer/internal/table"
)

// CSVRenderer writes rows as CSV with a header of column titles.
type CSVRenderer struct{}

func (CSVRenderer) Format() string { return "csv" }

func (CSVRenderer) Render(w io.Writer, rows []model.AnalyzedRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Titles()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(table.Cells(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cryptoanalyzer/internal/model"
	"cryptoanalyzer/internal/table"
)

// TextRenderer writes aligned columns under a header of column titles.
type TextRenderer struct{}

func (TextRenderer) Format() string { return "text" }

func (TextRenderer) Render(w io.Writer, rows []model.AnalyzedRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(table.Titles(), "\t")); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(table.Cells(r), "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"cryptoanalyzer/internal/model"
)

// ErrUnsupportedFormat is returned for an output format no Renderer writes.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Renderer writes a table view.
type Renderer interface {
	Format() string
	Render(w io.Writer, rows []model.AnalyzedRow) error
}

// NewRenderer creates a Renderer by format (text, csv, json).
func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return TextRenderer{}, nil
	case "csv":
		return CSVRenderer{}, nil
	case "json":
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"cryptoanalyzer/internal/model"
)

// JSONSource reads records from a JSON array file.
type JSONSource struct {
	path   string
	logger *slog.Logger
}

// NewJSONSource creates a new JSONSource.
func NewJSONSource(path string, logger *slog.Logger) *JSONSource {
	return &JSONSource{path: path, logger: logger}
}

func (s *JSONSource) Name() string {
	return "json"
}

// Load decodes the whole file into memory.
func (s *JSONSource) Load(ctx context.Context) ([]model.CurrencyDayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	records, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	s.logger.Debug("JSONSource: loaded records", "path", s.path, "records", len(records))
	return records, nil
}

func decodeJSON(data []byte) ([]model.CurrencyDayRecord, error) {
	var rows []recordRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return toRecords(rows), nil
}

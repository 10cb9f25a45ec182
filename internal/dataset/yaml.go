package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"cryptoanalyzer/internal/model"
)

// YAMLSource reads records from a YAML sequence file.
type YAMLSource struct {
	path   string
	logger *slog.Logger
}

// NewYAMLSource creates a new YAMLSource.
func NewYAMLSource(path string, logger *slog.Logger) *YAMLSource {
	return &YAMLSource{path: path, logger: logger}
}

func (s *YAMLSource) Name() string {
	return "yaml"
}

// Load decodes the whole file into memory. Times must be quoted in the
// file so that YAML keeps their leading zeros.
func (s *YAMLSource) Load(ctx context.Context) ([]model.CurrencyDayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var rows []recordRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	s.logger.Debug("YAMLSource: loaded records", "path", s.path, "records", len(rows))
	return toRecords(rows), nil
}

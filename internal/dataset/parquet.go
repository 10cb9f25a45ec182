package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parquet-go/parquet-go"

	"cryptoanalyzer/internal/model"
)

// ParquetSource reads records from a Parquet file with a repeated quotes group.
type ParquetSource struct {
	path   string
	logger *slog.Logger
}

// NewParquetSource creates a new ParquetSource.
func NewParquetSource(path string, logger *slog.Logger) *ParquetSource {
	return &ParquetSource{path: path, logger: logger}
}

func (s *ParquetSource) Name() string {
	return "parquet"
}

func (s *ParquetSource) Load(ctx context.Context) ([]model.CurrencyDayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := parquet.ReadFile[recordRow](s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	s.logger.Debug("ParquetSource: loaded records", "path", s.path, "records", len(rows))
	return toRecords(rows), nil
}

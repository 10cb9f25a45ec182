package dataset

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"cryptoanalyzer/internal/model"
)

//go:embed bundled/crypto_data.json
var bundledData []byte

// BundledSource serves the sample dataset compiled into the binary.
type BundledSource struct {
	logger *slog.Logger
}

// NewBundledSource creates a new BundledSource.
func NewBundledSource(logger *slog.Logger) *BundledSource {
	return &BundledSource{logger: logger}
}

func (s *BundledSource) Name() string {
	return "bundled"
}

func (s *BundledSource) Load(ctx context.Context) ([]model.CurrencyDayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := decodeJSON(bundledData)
	if err != nil {
		return nil, fmt.Errorf("decode bundled dataset: %w", err)
	}
	s.logger.Debug("BundledSource: loaded records", "records", len(records))
	return records, nil
}

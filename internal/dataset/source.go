package dataset

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"cryptoanalyzer/internal/model"
)

// ErrUnsupportedFormat is returned for a dataset format no Source can read.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Source defines the standard interface for loading quote records.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]model.CurrencyDayRecord, error)
}

// recordRow is the on-disk shape shared by every file format.
type recordRow struct {
	Currency string     `json:"currency" yaml:"currency" parquet:"currency"`
	Date     string     `json:"date" yaml:"date" parquet:"date"`
	Quotes   []quoteRow `json:"quotes" yaml:"quotes" parquet:"quotes"`
}

type quoteRow struct {
	Time  string  `json:"time" yaml:"time" parquet:"time"`
	Price float64 `json:"price" yaml:"price" parquet:"price"`
}

func toRecords(rows []recordRow) []model.CurrencyDayRecord {
	records := make([]model.CurrencyDayRecord, 0, len(rows))
	for _, r := range rows {
		quotes := make([]model.Quote, 0, len(r.Quotes))
		for _, q := range r.Quotes {
			quotes = append(quotes, model.Quote{Time: q.Time, Price: decimal.NewFromFloat(q.Price)})
		}
		records = append(records, model.CurrencyDayRecord{
			Currency: r.Currency,
			Date:     r.Date,
			Quotes:   quotes,
		})
	}
	return records
}

package analyzer

import (
	"errors"
	"fmt"
	"strconv"

	"cryptoanalyzer/internal/model"
)

// Midday is the first clock value of the selling window.
const Midday = 1200

// ErrNoQuotes is returned for a record without any quotes.
var ErrNoQuotes = errors.New("record has no quotes")

// InvalidRecordError reports a record that cannot be analyzed.
type InvalidRecordError struct {
	Index    int
	Currency string
	Date     string
	Err      error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("record %d (%s %s): %v", e.Index, e.Currency, e.Date, e.Err)
}

func (e *InvalidRecordError) Unwrap() error { return e.Err }

// Analyze maps every record to its AnalyzedRow, preserving order.
// It stops at the first record that has no quotes.
func Analyze(records []model.CurrencyDayRecord) ([]model.AnalyzedRow, error) {
	rows := make([]model.AnalyzedRow, 0, len(records))
	for i, rec := range records {
		row, err := AnalyzeRecord(rec)
		if err != nil {
			var invalid *InvalidRecordError
			if errors.As(err, &invalid) {
				invalid.Index = i
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AnalyzeRecord selects the best buying and selling quotes of one record
// and derives the profit between them.
func AnalyzeRecord(rec model.CurrencyDayRecord) (model.AnalyzedRow, error) {
	if len(rec.Quotes) == 0 {
		return model.AnalyzedRow{}, &InvalidRecordError{Currency: rec.Currency, Date: rec.Date, Err: ErrNoQuotes}
	}

	buy := BestBuy(rec.Quotes)
	sell := BestSell(rec.Quotes)

	return model.AnalyzedRow{
		Date:             FormatDate(rec.Date),
		Currency:         rec.Currency,
		BestBuyingPrice:  buy.Price,
		BestBuyingTime:   FormatTime(buy.Time),
		BestSellingPrice: sell.Price,
		BestSellingTime:  FormatTime(sell.Time),
		Profit:           sell.Price.Sub(buy.Price).Round(2),
	}, nil
}

// BestBuy returns the cheapest morning quote. The first quote seeds the
// search, so it is returned when no morning quote is cheaper, even if it
// was itself quoted after midday. Ties keep the earlier quote.
func BestBuy(quotes []model.Quote) model.Quote {
	return fold(quotes, func(best, q model.Quote) bool {
		return IsMorning(q.Time) && q.Price.LessThan(best.Price)
	})
}

// BestSell returns the most expensive quote at or after midday, seeded
// with the first quote the same way as BestBuy.
func BestSell(quotes []model.Quote) model.Quote {
	return fold(quotes, func(best, q model.Quote) bool {
		return !IsMorning(q.Time) && q.Price.GreaterThan(best.Price)
	})
}

func fold(quotes []model.Quote, replaces func(best, q model.Quote) bool) model.Quote {
	best := quotes[0]
	for _, q := range quotes[1:] {
		if replaces(best, q) {
			best = q
		}
	}
	return best
}

// IsMorning reports whether a 24-hour time falls before midday.
// Zero padding keeps the numeric order of "0915" < "1200" intact;
// a time that is not a number is never morning.
func IsMorning(t string) bool {
	n, err := strconv.Atoi(t)
	return err == nil && n < Midday
}

// FormatDate turns "yyyymmdd" into "yyyy-mm-dd". The input is not checked
// against the calendar; other lengths produce a garbled result.
func FormatDate(date string) string {
	g := pairs(date, 4)
	return g[0] + g[1] + "-" + g[2] + "-" + g[3]
}

// pairs splits s into two-character groups, padding with empty groups up to n.
func pairs(s string, n int) []string {
	var out []string
	for len(s) > 2 {
		out = append(out, s[:2])
		s = s[2:]
	}
	if s != "" {
		out = append(out, s)
	}
	for len(out) < n {
		out = append(out, "")
	}
	return out
}

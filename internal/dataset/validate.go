package dataset

import (
	"errors"
	"fmt"

	"cryptoanalyzer/internal/analyzer"
	"cryptoanalyzer/internal/model"
)

// Validate checks the shape the analyzer assumes: an 8-digit date, at least
// one quote, and four digit times. Every problem found is reported.
func Validate(records []model.CurrencyDayRecord) error {
	var errs []error
	for i, rec := range records {
		if !isDigits(rec.Date, 8) {
			errs = append(errs, fmt.Errorf("record %d (%s): invalid date %q: want yyyymmdd", i, rec.Currency, rec.Date))
		}
		if len(rec.Quotes) == 0 {
			errs = append(errs, &analyzer.InvalidRecordError{Index: i, Currency: rec.Currency, Date: rec.Date, Err: analyzer.ErrNoQuotes})
		}
		for j, q := range rec.Quotes {
			if _, err := analyzer.ParseTime(q.Time); err != nil {
				errs = append(errs, fmt.Errorf("record %d (%s %s) quote %d: %w", i, rec.Currency, rec.Date, j, err))
			}
		}
	}
	return errors.Join(errs...)
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

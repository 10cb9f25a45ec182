package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Quote represents one observed price at one instant of a trading day.
// Time is a 4-digit, zero-padded 24-hour clock value such as "0915".
type Quote struct {
	Time  string
	Price decimal.Decimal
}

// CurrencyDayRecord holds all quotes for one currency on one day.
// Date is formatted as "yyyymmdd" and Quotes is expected to be non-empty.
type CurrencyDayRecord struct {
	Currency string
	Date     string
	Quotes   []Quote
}

// AnalyzedRow is the best buy and best sell of one CurrencyDayRecord.
type AnalyzedRow struct {
	Date             string
	Currency         string
	BestBuyingPrice  decimal.Decimal
	BestBuyingTime   string
	BestSellingPrice decimal.Decimal
	BestSellingTime  string
	Profit           decimal.Decimal
}

// ProfitString returns the profit with exactly two decimal places.
func (r AnalyzedRow) ProfitString() string {
	return r.Profit.StringFixed(2)
}

type analyzedRowJSON struct {
	Date             string      `json:"date"`
	Currency         string      `json:"currency"`
	BestBuyingPrice  json.Number `json:"bestBuyingPrice"`
	BestBuyingTime   string      `json:"bestBuyingTime"`
	BestSellingPrice json.Number `json:"bestSellingPrice"`
	BestSellingTime  string      `json:"bestSellingTime"`
	Profit           string      `json:"profit"`
}

// MarshalJSON encodes prices as numbers and profit as a fixed two-decimal string.
func (r AnalyzedRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(analyzedRowJSON{
		Date:             r.Date,
		Currency:         r.Currency,
		BestBuyingPrice:  json.Number(r.BestBuyingPrice.String()),
		BestBuyingTime:   r.BestBuyingTime,
		BestSellingPrice: json.Number(r.BestSellingPrice.String()),
		BestSellingTime:  r.BestSellingTime,
		Profit:           r.ProfitString(),
	})
}

package table

import (
	"cryptoanalyzer/internal/model"
)

// FilterKind names the filter widget a column offers.
type FilterKind string

const (
	NoFilter   FilterKind = ""
	TextFilter FilterKind = "text"
	DateFilter FilterKind = "date"
)

// Column is static metadata for one table column.
type Column struct {
	Field    string
	Title    string
	Sortable bool
	Filter   FilterKind
}

// Field names of the analyzed row columns.
const (
	FieldDate             = "date"
	FieldCurrency         = "currency"
	FieldBestBuyingPrice  = "bestBuyingPrice"
	FieldBestBuyingTime   = "bestBuyingTime"
	FieldBestSellingPrice = "bestSellingPrice"
	FieldBestSellingTime  = "bestSellingTime"
	FieldProfit           = "profit"
)

// Columns lists the table columns in display order.
var Columns = []Column{
	{Field: FieldDate, Title: "Date", Filter: DateFilter},
	{Field: FieldCurrency, Title: "Currency", Sortable: true, Filter: TextFilter},
	{Field: FieldBestBuyingPrice, Title: "Buy", Sortable: true},
	{Field: FieldBestBuyingTime, Title: "Best Buy At", Sortable: true},
	{Field: FieldBestSellingPrice, Title: "Sell", Sortable: true},
	{Field: FieldBestSellingTime, Title: "Best Sell At", Sortable: true},
	{Field: FieldProfit, Title: "Profit", Sortable: true},
}

// ColumnByField looks up a column by its field name.
func ColumnByField(field string) (Column, bool) {
	for _, c := range Columns {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

// Titles returns the column titles in display order.
func Titles() []string {
	titles := make([]string, len(Columns))
	for i, c := range Columns {
		titles[i] = c.Title
	}
	return titles
}

// Text returns the display value of the column for a row.
func (c Column) Text(row model.AnalyzedRow) string {
	switch c.Field {
	case FieldDate:
		return row.Date
	case FieldCurrency:
		return row.Currency
	case FieldBestBuyingPrice:
		return row.BestBuyingPrice.String()
	case FieldBestBuyingTime:
		return row.BestBuyingTime
	case FieldBestSellingPrice:
		return row.BestSellingPrice.String()
	case FieldBestSellingTime:
		return row.BestSellingTime
	case FieldProfit:
		return row.ProfitString()
	default:
		return ""
	}
}

// Cells returns the display values of a row in column order.
func Cells(row model.AnalyzedRow) []string {
	cells := make([]string, len(Columns))
	for i, c := range Columns {
		cells[i] = c.Text(row)
	}
	return cells
}

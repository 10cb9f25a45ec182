package table

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoanalyzer/internal/model"
)

func row(date, currency, buy, buyAt, sell, sellAt string) model.AnalyzedRow {
	b := decimal.RequireFromString(buy)
	s := decimal.RequireFromString(sell)
	return model.AnalyzedRow{
		Date:             date,
		Currency:         currency,
		BestBuyingPrice:  b,
		BestBuyingTime:   buyAt,
		BestSellingPrice: s,
		BestSellingTime:  sellAt,
		Profit:           s.Sub(b).Round(2),
	}
}

func fixture() []model.AnalyzedRow {
	return []model.AnalyzedRow{
		row("2018-05-07", "BTC", "34.98", "9:15am", "37.01", "12:30pm"),
		row("2018-05-07", "ETC", "1.45", "9:00am", "2.15", "5:00pm"),
		row("2018-05-07", "LTC", "14.32", "9:30am", "15.03", "12:15pm"),
		row("2018-06-07", "BTC", "35.21", "10:00am", "38.20", "1:30pm"),
		row("2018-06-07", "ETC", "1.80", "9:45am", "2.10", "4:00pm"),
		row("2018-06-08", "LTC", "14.96", "10:30am", "24.96", "12:00am"),
	}
}

func currencies(rows []model.AnalyzedRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Date + " " + r.Currency
	}
	return out
}

func TestView_DefaultSortByProfitDesc(t *testing.T) {
	rows, err := View(fixture(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rows, 6)

	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i-1].Profit.GreaterThanOrEqual(rows[i].Profit),
			"%s before %s", rows[i-1].ProfitString(), rows[i].ProfitString())
	}
	assert.Equal(t, "10.00", rows[0].ProfitString())
}

func TestView_SortIsNumeric(t *testing.T) {
	rows, err := View(fixture(), Options{Sort: SortOptions{Field: FieldBestBuyingPrice, Order: Asc}})
	require.NoError(t, err)
	assert.Equal(t, "1.45", rows[0].BestBuyingPrice.String())
	assert.Equal(t, "35.21", rows[len(rows)-1].BestBuyingPrice.String())
}

func TestView_SortTimesChronologically(t *testing.T) {
	rows, err := View(fixture(), Options{Sort: SortOptions{Field: FieldBestSellingTime, Order: Asc}})
	require.NoError(t, err)
	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.BestSellingTime
	}
	assert.Equal(t, []string{"12:15pm", "12:30pm", "1:30pm", "4:00pm", "5:00pm", "12:00am"}, got)
}

func TestView_SortStable(t *testing.T) {
	rows, err := View(fixture(), Options{Sort: SortOptions{Field: FieldCurrency, Order: Asc}})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2018-05-07 BTC", "2018-06-07 BTC",
		"2018-05-07 ETC", "2018-06-07 ETC",
		"2018-05-07 LTC", "2018-06-08 LTC",
	}, currencies(rows))
}

func TestView_CurrencyFilter(t *testing.T) {
	rows, err := View(fixture(), Options{Currency: "Et"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2018-05-07 ETC", "2018-06-07 ETC"}, currencies(rows))

	rows, err = View(fixture(), Options{Currency: "xrp"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestView_DateFilter(t *testing.T) {
	tests := []struct {
		comparator Comparator
		want       int
	}{
		{NoComparator, 6},
		{EQ, 2},
		{NE, 4},
		{GT, 1},
		{GE, 3},
		{LT, 3},
		{LE, 5},
	}
	for _, tt := range tests {
		opts := Options{Date: DateFilterOptions{Date: DefaultAnchorDate, Comparator: tt.comparator}}
		rows, err := View(fixture(), opts)
		require.NoError(t, err)
		assert.Len(t, rows, tt.want, "comparator %q", tt.comparator)
	}
}

func TestView_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	before := currencies(in)

	_, err := View(in, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, before, currencies(in))
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	err := Options{Sort: SortOptions{Field: "volume", Order: Asc}}.Validate()
	assert.ErrorIs(t, err, ErrUnknownColumn)

	err = Options{Sort: SortOptions{Field: FieldDate, Order: Asc}}.Validate()
	assert.ErrorIs(t, err, ErrNotSortable)

	err = Options{Sort: SortOptions{Field: FieldProfit, Order: "up"}}.Validate()
	assert.ErrorIs(t, err, ErrInvalidSortOrder)

	err = Options{Date: DateFilterOptions{Date: DefaultAnchorDate, Comparator: "=>"}}.Validate()
	assert.ErrorIs(t, err, ErrInvalidComparator)

	err = Options{Date: DateFilterOptions{Date: "07/06/2018", Comparator: EQ}}.Validate()
	assert.Error(t, err)

	_, err = View(fixture(), Options{Sort: SortOptions{Field: "volume"}})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestParseHelpers(t *testing.T) {
	o, err := ParseOrder(" DESC ")
	require.NoError(t, err)
	assert.Equal(t, Desc, o)

	c, err := ParseComparator(">=")
	require.NoError(t, err)
	assert.Equal(t, GE, c)

	_, err = ParseComparator("~")
	assert.ErrorIs(t, err, ErrInvalidComparator)
}

func TestTable_Replace(t *testing.T) {
	rows := fixture()
	tbl := New(rows[:2])
	assert.Equal(t, 2, tbl.Len())

	rows[0].Currency = "XRP"
	assert.Equal(t, "BTC", tbl.Rows()[0].Currency)

	tbl.Replace(rows[2:])
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, "LTC", tbl.Rows()[0].Currency)

	view, err := tbl.View(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "10.00", view[0].ProfitString())
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"Date", "Currency", "Buy", "Best Buy At", "Sell", "Best Sell At", "Profit"}, Titles())

	cells := Cells(fixture()[0])
	assert.Equal(t, []string{"2018-05-07", "BTC", "34.98", "9:15am", "37.01", "12:30pm", "2.03"}, cells)

	_, ok := ColumnByField("volume")
	assert.False(t, ok)
}

package table

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"cryptoanalyzer/internal/model"
)

// View filters and sorts rows according to opts. The input is not modified.
func View(rows []model.AnalyzedRow, opts Options) ([]model.AnalyzedRow, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out := make([]model.AnalyzedRow, 0, len(rows))
	var anchor time.Time
	if opts.Date.Comparator != NoComparator {
		anchor, _ = time.Parse(DateLayout, opts.Date.Date)
	}
	needle := strings.ToLower(strings.TrimSpace(opts.Currency))

	for _, row := range rows {
		if needle != "" && !strings.Contains(strings.ToLower(row.Currency), needle) {
			continue
		}
		if opts.Date.Comparator != NoComparator {
			d, err := time.Parse(DateLayout, row.Date)
			if err != nil || !opts.Date.Comparator.match(d, anchor) {
				continue
			}
		}
		out = append(out, row)
	}

	if opts.Sort.Field != "" {
		compare := comparator(opts.Sort.Field)
		if opts.Sort.Order == Desc {
			asc := compare
			compare = func(a, b model.AnalyzedRow) int { return asc(b, a) }
		}
		slices.SortStableFunc(out, compare)
	}
	return out, nil
}

func comparator(field string) func(a, b model.AnalyzedRow) int {
	switch field {
	case FieldBestBuyingPrice:
		return func(a, b model.AnalyzedRow) int { return a.BestBuyingPrice.Cmp(b.BestBuyingPrice) }
	case FieldBestSellingPrice:
		return func(a, b model.AnalyzedRow) int { return a.BestSellingPrice.Cmp(b.BestSellingPrice) }
	case FieldProfit:
		return func(a, b model.AnalyzedRow) int { return a.Profit.Cmp(b.Profit) }
	case FieldBestBuyingTime:
		return func(a, b model.AnalyzedRow) int { return compareClock(a.BestBuyingTime, b.BestBuyingTime) }
	case FieldBestSellingTime:
		return func(a, b model.AnalyzedRow) int { return compareClock(a.BestSellingTime, b.BestSellingTime) }
	default:
		col, _ := ColumnByField(field)
		return func(a, b model.AnalyzedRow) int { return strings.Compare(col.Text(a), col.Text(b)) }
	}
}

// compareClock orders 12-hour display times chronologically. Times that
// do not parse sort after the ones that do.
func compareClock(a, b string) int {
	ma, okA := minutesOfDay(a)
	mb, okB := minutesOfDay(b)
	switch {
	case okA && okB:
		return cmp.Compare(ma, mb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// minutesOfDay parses "H:MMam" or "H:MMpm". "12:MMam" only comes from the
// end-of-day time, so it sorts after every other time of the day.
func minutesOfDay(s string) (int, bool) {
	if len(s) < 6 {
		return 0, false
	}
	meridiem := s[len(s)-2:]
	h, m, ok := strings.Cut(s[:len(s)-2], ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	switch meridiem {
	case "am":
		if hour == 12 {
			hour = 24
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, false
	}
	return hour*60 + minute, true
}

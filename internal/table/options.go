package table

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout of AnalyzedRow.Date.
const DateLayout = "2006-01-02"

// DefaultAnchorDate is the date the date filter starts out with.
const DefaultAnchorDate = "2018-06-07"

var (
	ErrUnknownColumn     = errors.New("unknown column")
	ErrNotSortable       = errors.New("column is not sortable")
	ErrInvalidComparator = errors.New("invalid date comparator")
	ErrInvalidSortOrder  = errors.New("invalid sort order")
)

// Comparator selects how the date filter compares a row date with its anchor.
// The empty comparator disables the filter.
type Comparator string

const (
	NoComparator Comparator = ""
	EQ           Comparator = "="
	NE           Comparator = "!="
	GT           Comparator = ">"
	GE           Comparator = ">="
	LT           Comparator = "<"
	LE           Comparator = "<="
)

// ParseComparator accepts the symbols above.
func ParseComparator(s string) (Comparator, error) {
	switch c := Comparator(strings.TrimSpace(s)); c {
	case NoComparator, EQ, NE, GT, GE, LT, LE:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidComparator, s)
	}
}

func (c Comparator) match(d, anchor time.Time) bool {
	switch c {
	case EQ:
		return d.Equal(anchor)
	case NE:
		return !d.Equal(anchor)
	case GT:
		return d.After(anchor)
	case GE:
		return !d.Before(anchor)
	case LT:
		return d.Before(anchor)
	case LE:
		return !d.After(anchor)
	default:
		return true
	}
}

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder accepts "asc" or "desc" in any case.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case Asc, Desc:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
}

// DateFilterOptions configures the date column filter.
type DateFilterOptions struct {
	Date       string
	Comparator Comparator
}

// SortOptions configures the sorted column.
type SortOptions struct {
	Field string
	Order Order
}

// Options holds the filters and sort applied by View.
type Options struct {
	Currency string
	Date     DateFilterOptions
	Sort     SortOptions
}

// DefaultOptions sorts by profit, highest first, with no filter active.
func DefaultOptions() Options {
	return Options{
		Date: DateFilterOptions{Date: DefaultAnchorDate},
		Sort: SortOptions{Field: FieldProfit, Order: Desc},
	}
}

// Validate checks the sort column, the order and the date filter.
func (o Options) Validate() error {
	if o.Sort.Field != "" {
		col, ok := ColumnByField(o.Sort.Field)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, o.Sort.Field)
		}
		if !col.Sortable {
			return fmt.Errorf("%w: %q", ErrNotSortable, o.Sort.Field)
		}
		if _, err := ParseOrder(string(o.Sort.Order)); err != nil {
			return err
		}
	}
	if _, err := ParseComparator(string(o.Date.Comparator)); err != nil {
		return err
	}
	if o.Date.Comparator != NoComparator {
		if _, err := time.Parse(DateLayout, o.Date.Date); err != nil {
			return fmt.Errorf("date filter anchor: %w", err)
		}
	}
	return nil
}

package table

import (
	"sync"

	"cryptoanalyzer/internal/model"
)

// Table holds the analyzed row set shown to the user. Each Replace swaps
// the whole set; rows are never edited in place.
type Table struct {
	mu   sync.RWMutex
	rows []model.AnalyzedRow
}

// New creates a Table holding a copy of rows.
func New(rows []model.AnalyzedRow) *Table {
	t := &Table{}
	t.Replace(rows)
	return t
}

// Replace discards the current set and stores a copy of rows.
func (t *Table) Replace(rows []model.AnalyzedRow) {
	cp := make([]model.AnalyzedRow, len(rows))
	copy(cp, rows)

	t.mu.Lock()
	t.rows = cp
	t.mu.Unlock()
}

// Rows returns a copy of the current set in analysis order.
func (t *Table) Rows() []model.AnalyzedRow {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cp := make([]model.AnalyzedRow, len(t.rows))
	copy(cp, t.rows)
	return cp
}

// Len returns the number of rows in the current set.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// View filters and sorts the current set.
func (t *Table) View(opts Options) ([]model.AnalyzedRow, error) {
	return View(t.Rows(), opts)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/grocery-pos/backend/internal/domain/entity"
)

// ReceiptStore persists and retrieves receipt text units keyed by bill
// number. Saving an existing number overwrites deterministically.
type ReceiptStore interface {
	// SaveText persists receipt text and returns its location.
	SaveText(ctx context.Context, billNumber, text string) (string, error)

	// LoadText returns the receipt text for a bill number. A missing or
	// unreadable unit fails with a store error, distinct from an empty
	// result set.
	LoadText(ctx context.Context, billNumber string) (string, error)

	// ListNumbers returns all persisted bill numbers.
	ListNumbers(ctx context.Context) ([]string, error)

	// Exists reports whether a receipt is already stored for the number.
	Exists(ctx context.Context, billNumber string) (bool, error)
}

// RowSetStore persists the flat per-line-item row-set of a bill as an
// independent tabular unit.
type RowSetStore interface {
	// SaveRowSet writes one row per line item and returns the location.
	SaveRowSet(ctx context.Context, billNumber string, rows []entity.SalesRow) (string, error)
}

// SalesRowRepository is the master accumulation of all row-sets. Rows
// are appended once per bill so aggregation never re-merges historical
// per-bill files.
type SalesRowRepository interface {
	// AppendRows appends the rows of one bill to the master store.
	AppendRows(ctx context.Context, rows []entity.SalesRow) error

	// LoadAll returns every accumulated row.
	LoadAll(ctx context.Context) ([]entity.SalesRow, error)
}

// RowSetResult is the outcome of loading one row source. SkippedRows
// counts rows dropped for unparseable dates or missing columns.
type RowSetResult struct {
	Rows        []entity.SalesRow
	SkippedRows int
}

// RowSource supplies one batch of sales rows to the aggregator. A
// failing source is skipped with a warning; it does not abort the
// aggregation of the remaining sources.
type RowSource interface {
	// Name identifies the source in warnings.
	Name() string

	// Load reads the source's rows.
	Load(ctx context.Context) (*RowSetResult, error)
}

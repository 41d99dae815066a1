package billsearch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/domain/receipt"
)

// FindBillsOutput represents a search result. Warnings carry one entry
// per unit that could not be read or parsed; the scan continues over
// the remaining units instead of aborting.
type FindBillsOutput struct {
	BillNumbers []string
	Warnings    []string
}

// FindByCustomerUseCase finds bills whose receipt names a customer.
type FindByCustomerUseCase struct {
	receipts adapter.ReceiptStore
}

// NewFindByCustomerUseCase creates a new FindByCustomerUseCase instance.
func NewFindByCustomerUseCase(receipts adapter.ReceiptStore) *FindByCustomerUseCase {
	return &FindByCustomerUseCase{receipts: receipts}
}

// Execute scans all receipts for the exact customer name. Zero matches
// is an empty result, not an error.
func (uc *FindByCustomerUseCase) Execute(ctx context.Context, customerName string) (*FindBillsOutput, error) {
	return scanReceipts(ctx, uc.receipts, func(text string) bool {
		name, ok := receipt.ExtractCustomerName(text)
		return ok && name == customerName
	})
}

// FindByDateUseCase finds bills created on a calendar date.
type FindByDateUseCase struct {
	receipts adapter.ReceiptStore
}

// NewFindByDateUseCase creates a new FindByDateUseCase instance.
func NewFindByDateUseCase(receipts adapter.ReceiptStore) *FindByDateUseCase {
	return &FindByDateUseCase{receipts: receipts}
}

// Execute scans all receipts for ones dated on the given calendar date,
// regardless of time of day.
func (uc *FindByDateUseCase) Execute(ctx context.Context, date time.Time) (*FindBillsOutput, error) {
	year, month, day := date.Date()
	return scanReceipts(ctx, uc.receipts, func(text string) bool {
		stamped, ok := receipt.ExtractDate(text)
		if !ok {
			return false
		}
		y, m, d := stamped.Date()
		return y == year && m == month && d == day
	})
}

// scanReceipts applies the match predicate to every stored receipt,
// skipping unreadable units with a warning.
func scanReceipts(
	ctx context.Context,
	receipts adapter.ReceiptStore,
	match func(text string) bool,
) (*FindBillsOutput, error) {
	numbers, err := receipts.ListNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	output := &FindBillsOutput{}
	for _, number := range numbers {
		text, err := receipts.LoadText(ctx, number)
		if err != nil {
			output.Warnings = append(output.Warnings, fmt.Sprintf("could not read bill %s: %v", number, err))
			continue
		}
		if match(text) {
			output.BillNumbers = append(output.BillNumbers, number)
		}
	}

	sort.Strings(output.BillNumbers)
	return output, nil
}

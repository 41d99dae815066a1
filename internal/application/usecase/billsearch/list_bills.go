// Package billsearch contains use cases for retrieving persisted bills:
// listing, loading, and searching by customer or date. Searches scan
// every stored receipt and extract header fields from the text layout;
// this linear scan is fine at the scale of hundreds to low thousands of
// bills.
package billsearch

import (
	"context"
	"fmt"
	"sort"

	"github.com/grocery-pos/backend/internal/application/adapter"
)

// ListBillsOutput represents the stored bill numbers.
type ListBillsOutput struct {
	BillNumbers []string
}

// ListBillsUseCase lists all persisted bill numbers.
type ListBillsUseCase struct {
	receipts adapter.ReceiptStore
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(receipts adapter.ReceiptStore) *ListBillsUseCase {
	return &ListBillsUseCase{receipts: receipts}
}

// Execute returns all bill numbers, sorted. An empty store yields an
// empty list, not an error.
func (uc *ListBillsUseCase) Execute(ctx context.Context) (*ListBillsOutput, error) {
	numbers, err := uc.receipts.ListNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	sort.Strings(numbers)
	return &ListBillsOutput{BillNumbers: numbers}, nil
}

// LoadBillOutput represents a loaded receipt.
type LoadBillOutput struct {
	BillNumber  string
	ReceiptText string
}

// LoadBillUseCase loads one receipt by bill number.
type LoadBillUseCase struct {
	receipts adapter.ReceiptStore
}

// NewLoadBillUseCase creates a new LoadBillUseCase instance.
func NewLoadBillUseCase(receipts adapter.ReceiptStore) *LoadBillUseCase {
	return &LoadBillUseCase{receipts: receipts}
}

// Execute loads the receipt text for the given bill number.
func (uc *LoadBillUseCase) Execute(ctx context.Context, billNumber string) (*LoadBillOutput, error) {
	text, err := uc.receipts.LoadText(ctx, billNumber)
	if err != nil {
		return nil, err
	}
	return &LoadBillOutput{BillNumber: billNumber, ReceiptText: text}, nil
}

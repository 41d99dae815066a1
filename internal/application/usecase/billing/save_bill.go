package billing

import (
	"context"
	"fmt"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/domain/entity"
)

// SaveBillInput represents the input for persisting a calculated bill.
type SaveBillInput struct {
	Bill        *entity.Bill
	ReceiptText string
}

// SaveBillOutput represents the locations the bill was persisted to.
type SaveBillOutput struct {
	ReceiptLocation string
	RowSetLocation  string
}

// SaveBillUseCase persists a bill three ways: the receipt text unit,
// the per-bill row-set, and the master accumulation. Re-saving the same
// bill number overwrites the file units deterministically (last write
// wins); collision rejection happens at number generation.
type SaveBillUseCase struct {
	receipts adapter.ReceiptStore
	rowSets  adapter.RowSetStore
	master   adapter.SalesRowRepository
}

// NewSaveBillUseCase creates a new SaveBillUseCase instance.
func NewSaveBillUseCase(
	receipts adapter.ReceiptStore,
	rowSets adapter.RowSetStore,
	master adapter.SalesRowRepository,
) *SaveBillUseCase {
	return &SaveBillUseCase{
		receipts: receipts,
		rowSets:  rowSets,
		master:   master,
	}
}

// Execute persists the bill. On any failure the operation is reported
// as failed as a whole; no partially written receipt text is left
// behind because text writes are atomic.
func (uc *SaveBillUseCase) Execute(ctx context.Context, input SaveBillInput) (*SaveBillOutput, error) {
	receiptLocation, err := uc.receipts.SaveText(ctx, input.Bill.BillNumber, input.ReceiptText)
	if err != nil {
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	rows := input.Bill.SalesRows()

	rowSetLocation, err := uc.rowSets.SaveRowSet(ctx, input.Bill.BillNumber, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to save row-set: %w", err)
	}

	if err := uc.master.AppendRows(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to append to master store: %w", err)
	}

	return &SaveBillOutput{
		ReceiptLocation: receiptLocation,
		RowSetLocation:  rowSetLocation,
	}, nil
}

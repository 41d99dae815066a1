package billing

import (
	"context"
	"fmt"

	"github.com/grocery-pos/backend/internal/application/adapter"
)

// printUnavailableStatus is the informational outcome reported when no
// printing backend is wired or the spooler command cannot be resolved.
const printUnavailableStatus = "printing is not available on this system"

// PrintBillInput represents the input for printing a persisted bill.
type PrintBillInput struct {
	BillNumber string
}

// PrintBillOutput represents the result of a print dispatch.
type PrintBillOutput struct {
	Status string
}

// PrintBillUseCase loads a persisted receipt and hands it to the wired
// print capability.
type PrintBillUseCase struct {
	receipts adapter.ReceiptStore
	printer  adapter.Printer
}

// NewPrintBillUseCase creates a new PrintBillUseCase instance.
func NewPrintBillUseCase(receipts adapter.ReceiptStore, printer adapter.Printer) *PrintBillUseCase {
	return &PrintBillUseCase{
		receipts: receipts,
		printer:  printer,
	}
}

// Execute dispatches the bill to the printer and returns the printer's
// human-readable status. An unavailable printer is an informational
// outcome, not an error.
func (uc *PrintBillUseCase) Execute(ctx context.Context, input PrintBillInput) (*PrintBillOutput, error) {
	text, err := uc.receipts.LoadText(ctx, input.BillNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill %s: %w", input.BillNumber, err)
	}

	if !uc.printer.Available() {
		return &PrintBillOutput{Status: printUnavailableStatus}, nil
	}

	status, err := uc.printer.Print(ctx, text)
	if err != nil {
		return nil, err
	}

	return &PrintBillOutput{Status: status}, nil
}

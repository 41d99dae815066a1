package billing

import (
	"context"
	"testing"

	"github.com/grocery-pos/backend/internal/domain/entity"
)

func TestSaveBillUseCase_Execute(t *testing.T) {
	calculate := NewCalculateBillUseCase(entity.DefaultCatalog())

	calculated, err := calculate.Execute(validInput())
	if err != nil {
		t.Fatalf("failed to calculate bill: %v", err)
	}

	t.Run("persists receipt, row-set, and master rows", func(t *testing.T) {
		receipts := newMemoryReceiptStore()
		rowSets := newMemoryRowSetStore()
		master := &memoryMasterStore{}
		useCase := NewSaveBillUseCase(receipts, rowSets, master)

		output, err := useCase.Execute(context.Background(), SaveBillInput{
			Bill:        calculated.Bill,
			ReceiptText: calculated.ReceiptText,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.ReceiptLocation != "BILL12345.txt" {
			t.Errorf("unexpected receipt location %q", output.ReceiptLocation)
		}
		if output.RowSetLocation != "BILL12345.xlsx" {
			t.Errorf("unexpected row-set location %q", output.RowSetLocation)
		}
		if receipts.texts["BILL12345"] != calculated.ReceiptText {
			t.Error("expected receipt text to be persisted")
		}
		if len(rowSets.rowSets["BILL12345"]) != 2 {
			t.Errorf("expected 2 row-set rows, got %d", len(rowSets.rowSets["BILL12345"]))
		}
		if len(master.rows) != 2 {
			t.Errorf("expected 2 master rows, got %d", len(master.rows))
		}
	})

	t.Run("re-save overwrites deterministically", func(t *testing.T) {
		receipts := newMemoryReceiptStore()
		rowSets := newMemoryRowSetStore()
		master := &memoryMasterStore{}
		useCase := NewSaveBillUseCase(receipts, rowSets, master)

		input := SaveBillInput{Bill: calculated.Bill, ReceiptText: calculated.ReceiptText}
		for i := 0; i < 2; i++ {
			if _, err := useCase.Execute(context.Background(), input); err != nil {
				t.Fatalf("unexpected error on save %d: %v", i+1, err)
			}
		}

		if len(receipts.texts) != 1 {
			t.Errorf("expected one receipt unit, got %d", len(receipts.texts))
		}
		if len(rowSets.rowSets) != 1 {
			t.Errorf("expected one row-set unit, got %d", len(rowSets.rowSets))
		}
	})

	t.Run("receipt failure fails the whole save", func(t *testing.T) {
		receipts := newMemoryReceiptStore()
		receipts.saveErr = errStoreDown
		useCase := NewSaveBillUseCase(receipts, newMemoryRowSetStore(), &memoryMasterStore{})

		if _, err := useCase.Execute(context.Background(), SaveBillInput{
			Bill:        calculated.Bill,
			ReceiptText: calculated.ReceiptText,
		}); err == nil {
			t.Error("expected an error when the receipt store fails")
		}
	})

	t.Run("master failure fails the whole save", func(t *testing.T) {
		master := &memoryMasterStore{appendErr: errStoreDown}
		useCase := NewSaveBillUseCase(newMemoryReceiptStore(), newMemoryRowSetStore(), master)

		if _, err := useCase.Execute(context.Background(), SaveBillInput{
			Bill:        calculated.Bill,
			ReceiptText: calculated.ReceiptText,
		}); err == nil {
			t.Error("expected an error when the master store fails")
		}
	})
}

package billing

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

func validInput() CalculateBillInput {
	return CalculateBillInput{
		BillNumber:   "BILL12345",
		CustomerName: "Asha",
		PhoneNumber:  "9876543210",
		CreatedAt:    time.Date(2025, 3, 14, 15, 4, 5, 0, time.UTC),
		Selections: []entity.LineSelection{
			{ProductName: "Rice", Quantity: 2},
			{ProductName: "Bath Soap", Quantity: 1},
		},
	}
}

func TestCalculateBillUseCase_Execute(t *testing.T) {
	useCase := NewCalculateBillUseCase(entity.DefaultCatalog())

	t.Run("computes category totals and grand total", func(t *testing.T) {
		output, err := useCase.Execute(validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		bill := output.Bill
		groceries := bill.Totals[entity.CategoryGroceries]
		if !groceries.Subtotal.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected groceries subtotal 100, got %s", groceries.Subtotal)
		}
		if !groceries.TaxAmount.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected groceries tax 5, got %s", groceries.TaxAmount)
		}
		if !groceries.FinalTotal.Equal(decimal.NewFromInt(105)) {
			t.Errorf("expected groceries total 105, got %s", groceries.FinalTotal)
		}

		cosmetics := bill.Totals[entity.CategoryCosmetics]
		if !cosmetics.FinalTotal.Equal(decimal.NewFromInt(28)) {
			t.Errorf("expected cosmetics total 28, got %s", cosmetics.FinalTotal)
		}

		if !bill.GrandTotal.Equal(decimal.NewFromInt(133)) {
			t.Errorf("expected grand total 133, got %s", bill.GrandTotal)
		}
	})

	t.Run("renders the receipt", func(t *testing.T) {
		output, err := useCase.Execute(validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output.ReceiptText, "Grand Total: ₹133.00") {
			t.Errorf("expected rendered grand total, got:\n%s", output.ReceiptText)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := useCase.Execute(validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := useCase.Execute(validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ReceiptText != second.ReceiptText {
			t.Error("expected identical receipts for identical input")
		}
	})

	t.Run("drops zero-quantity selections", func(t *testing.T) {
		input := validInput()
		input.Selections = append(input.Selections, entity.LineSelection{ProductName: "Monster", Quantity: 0})

		output, err := useCase.Execute(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Bill.LineItems) != 2 {
			t.Errorf("expected 2 line items, got %d", len(output.Bill.LineItems))
		}
		drinks := output.Bill.Totals[entity.CategoryDrinks]
		if !drinks.FinalTotal.IsZero() {
			t.Errorf("expected zero drinks total, got %s", drinks.FinalTotal)
		}
	})

	t.Run("merges duplicate selections", func(t *testing.T) {
		input := validInput()
		input.Selections = []entity.LineSelection{
			{ProductName: "Rice", Quantity: 1},
			{ProductName: "Rice", Quantity: 1},
		}

		output, err := useCase.Execute(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Bill.LineItems) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(output.Bill.LineItems))
		}
		if output.Bill.LineItems[0].Quantity != 2 {
			t.Errorf("expected merged quantity 2, got %d", output.Bill.LineItems[0].Quantity)
		}
	})

	t.Run("line items keep catalog order within category", func(t *testing.T) {
		input := validInput()
		input.Selections = []entity.LineSelection{
			{ProductName: "Tea", Quantity: 1},
			{ProductName: "Rice", Quantity: 1},
		}

		output, err := useCase.Execute(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Bill.LineItems[0].Product.Name != "Rice" {
			t.Errorf("expected Rice first in catalog order, got %q", output.Bill.LineItems[0].Product.Name)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		input := validInput()
		input.CustomerName = ""
		assertBillingError(t, useCase, input, domainerror.ErrCodeMissingCustomerName)
	})

	t.Run("missing phone number", func(t *testing.T) {
		input := validInput()
		input.PhoneNumber = ""
		assertBillingError(t, useCase, input, domainerror.ErrCodeMissingPhoneNumber)
	})

	t.Run("unknown product", func(t *testing.T) {
		input := validInput()
		input.Selections = []entity.LineSelection{{ProductName: "Bread", Quantity: 1}}
		assertBillingError(t, useCase, input, domainerror.ErrCodeUnknownProduct)
	})

	t.Run("negative quantity", func(t *testing.T) {
		input := validInput()
		input.Selections = []entity.LineSelection{{ProductName: "Rice", Quantity: -1}}
		assertBillingError(t, useCase, input, domainerror.ErrCodeNegativeQuantity)
	})

	t.Run("no items selected", func(t *testing.T) {
		input := validInput()
		input.Selections = []entity.LineSelection{{ProductName: "Rice", Quantity: 0}}
		assertBillingError(t, useCase, input, domainerror.ErrCodeNoItemsSelected)
	})
}

func assertBillingError(t *testing.T, useCase *CalculateBillUseCase, input CalculateBillInput, code domainerror.BillingErrorCode) {
	t.Helper()

	_, err := useCase.Execute(input)
	if err == nil {
		t.Fatal("expected an error")
	}

	var billingErr *domainerror.BillingError
	if !errors.As(err, &billingErr) {
		t.Fatalf("expected a billing error, got %T", err)
	}
	if billingErr.Code != code {
		t.Errorf("expected code %s, got %s", code, billingErr.Code)
	}
}

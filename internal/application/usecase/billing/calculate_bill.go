// Package billing contains checkout-related use cases: bill numbering,
// calculation, persistence, email, and print dispatch.
package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/domain/receipt"
)

// CalculateBillInput represents the input for calculating a bill.
type CalculateBillInput struct {
	BillNumber   string
	CustomerName string
	PhoneNumber  string
	// CreatedAt stamps the bill; the zero value means "now".
	CreatedAt  time.Time
	Selections []entity.LineSelection
}

// CalculateBillOutput represents the output of calculating a bill.
type CalculateBillOutput struct {
	Bill        *entity.Bill
	ReceiptText string
}

// CalculateBillUseCase validates a checkout and computes category
// subtotals, taxes, and the grand total. It is a pure function of its
// input: no persistence, no side effects.
type CalculateBillUseCase struct {
	catalog *entity.Catalog
}

// NewCalculateBillUseCase creates a new CalculateBillUseCase instance.
func NewCalculateBillUseCase(catalog *entity.Catalog) *CalculateBillUseCase {
	return &CalculateBillUseCase{catalog: catalog}
}

// Execute validates the input and returns the calculated bill with its
// rendered receipt text.
func (uc *CalculateBillUseCase) Execute(input CalculateBillInput) (*CalculateBillOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	bill := &entity.Bill{
		BillNumber:   input.BillNumber,
		CustomerName: input.CustomerName,
		PhoneNumber:  input.PhoneNumber,
		CreatedAt:    createdAt,
		Totals:       make(map[entity.Category]entity.CategoryTotals),
		GrandTotal:   decimal.Zero,
	}

	// Zero-quantity selections contribute nothing and are dropped from
	// every downstream view. Line items keep catalog definition order
	// within their category.
	selected := make(map[string]int, len(input.Selections))
	for _, sel := range input.Selections {
		if sel.Quantity > 0 {
			selected[sel.ProductName] += sel.Quantity
		}
	}

	for _, category := range entity.Categories {
		subtotal := decimal.Zero
		for _, name := range uc.catalog.ProductNames(category) {
			qty, ok := selected[name]
			if !ok {
				continue
			}
			product, _ := uc.catalog.Lookup(name)
			lineTotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
			bill.LineItems = append(bill.LineItems, entity.LineItem{
				Product:   product,
				Quantity:  qty,
				LineTotal: lineTotal,
			})
			subtotal = subtotal.Add(lineTotal)
		}

		rate := category.TaxRate()
		tax := subtotal.Mul(rate)
		final := subtotal.Add(tax)
		bill.Totals[category] = entity.CategoryTotals{
			Subtotal:   subtotal,
			TaxRate:    rate,
			TaxAmount:  tax,
			FinalTotal: final,
		}
		bill.GrandTotal = bill.GrandTotal.Add(final)
	}

	return &CalculateBillOutput{
		Bill:        bill,
		ReceiptText: receipt.Render(bill),
	}, nil
}

// validateInput validates the input parameters.
func (uc *CalculateBillUseCase) validateInput(input CalculateBillInput) error {
	if input.CustomerName == "" {
		return domainerror.NewBillingError(
			domainerror.ErrCodeMissingCustomerName,
			"customer name is required",
			domainerror.ErrMissingCustomerName,
		)
	}

	if input.PhoneNumber == "" {
		return domainerror.NewBillingError(
			domainerror.ErrCodeMissingPhoneNumber,
			"phone number is required",
			domainerror.ErrMissingPhoneNumber,
		)
	}

	anySelected := false
	for _, sel := range input.Selections {
		if sel.Quantity < 0 {
			return domainerror.NewBillingError(
				domainerror.ErrCodeNegativeQuantity,
				fmt.Sprintf("quantity for %q must not be negative", sel.ProductName),
				domainerror.ErrNegativeQuantity,
			)
		}
		if _, ok := uc.catalog.Lookup(sel.ProductName); !ok {
			return domainerror.NewBillingError(
				domainerror.ErrCodeUnknownProduct,
				fmt.Sprintf("product %q is not in the catalog", sel.ProductName),
				domainerror.ErrUnknownProduct,
			)
		}
		if sel.Quantity > 0 {
			anySelected = true
		}
	}

	if !anySelected {
		return domainerror.NewBillingError(
			domainerror.ErrCodeNoItemsSelected,
			"at least one product must be selected",
			domainerror.ErrNoItemsSelected,
		)
	}

	return nil
}

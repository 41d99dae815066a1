package dto

import (
	"github.com/grocery-pos/backend/internal/application/usecase/billing"
	"github.com/grocery-pos/backend/internal/domain/entity"
)

// BillItemRequest represents one selected product of a checkout.
type BillItemRequest struct {
	Product  string `json:"product" binding:"required"`
	Quantity int    `json:"quantity"`
}

// CalculateBillRequest represents a checkout to calculate.
type CalculateBillRequest struct {
	// BillNumber is optional; a fresh unused number is issued when empty.
	BillNumber   string            `json:"bill_number"`
	CustomerName string            `json:"customer_name"`
	PhoneNumber  string            `json:"phone_number"`
	Items        []BillItemRequest `json:"items"`
}

// Selections converts the request items to domain line selections.
func (r *CalculateBillRequest) Selections() []entity.LineSelection {
	selections := make([]entity.LineSelection, len(r.Items))
	for i, item := range r.Items {
		selections[i] = entity.LineSelection{
			ProductName: item.Product,
			Quantity:    item.Quantity,
		}
	}
	return selections
}

// SaveBillRequest represents a checkout to calculate and persist.
type SaveBillRequest struct {
	CalculateBillRequest
}

// EmailBillRequest represents a request to mail a persisted bill.
type EmailBillRequest struct {
	BillNumber string `json:"bill_number" binding:"required"`
	Recipient  string `json:"recipient"`

	// SenderEmail and SenderPassword are only used by the SMTP sender.
	SenderEmail    string `json:"sender_email"`
	SenderPassword string `json:"sender_password"`
}

// PrintBillRequest represents a request to print a persisted bill.
type PrintBillRequest struct {
	BillNumber string `json:"bill_number" binding:"required"`
}

// BillLineItemResponse represents one line item of a calculated bill.
type BillLineItemResponse struct {
	Product   string  `json:"product"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// CategoryTotalsResponse represents one category's totals.
type CategoryTotalsResponse struct {
	Category   string  `json:"category"`
	Subtotal   float64 `json:"subtotal"`
	TaxRate    float64 `json:"tax_rate"`
	TaxAmount  float64 `json:"tax_amount"`
	FinalTotal float64 `json:"final_total"`
}

// BillResponse represents a calculated bill.
type BillResponse struct {
	BillNumber   string                   `json:"bill_number"`
	CustomerName string                   `json:"customer_name"`
	PhoneNumber  string                   `json:"phone_number"`
	CreatedAt    string                   `json:"created_at"`
	LineItems    []BillLineItemResponse   `json:"line_items"`
	Totals       []CategoryTotalsResponse `json:"totals"`
	GrandTotal   float64                  `json:"grand_total"`
	ReceiptText  string                   `json:"receipt_text"`
}

// SaveBillResponse represents a persisted bill with its locations.
type SaveBillResponse struct {
	BillResponse
	ReceiptLocation string `json:"receipt_location"`
	RowSetLocation  string `json:"row_set_location"`
}

// EmailBillResponse represents the outcome of mailing a bill.
type EmailBillResponse struct {
	BillNumber string `json:"bill_number"`
	Recipient  string `json:"recipient"`
	ProviderID string `json:"provider_id,omitempty"`
}

// PrintBillResponse represents the outcome of a print dispatch.
type PrintBillResponse struct {
	BillNumber string `json:"bill_number"`
	Status     string `json:"status"`
}

// ToBillResponse converts a CalculateBillOutput to its response DTO.
func ToBillResponse(output *billing.CalculateBillOutput, timeLayout string) BillResponse {
	bill := output.Bill

	lineItems := make([]BillLineItemResponse, len(bill.LineItems))
	for i, item := range bill.LineItems {
		lineItems[i] = BillLineItemResponse{
			Product:   item.Product.Name,
			Category:  string(item.Product.Category),
			Quantity:  item.Quantity,
			UnitPrice: item.Product.UnitPrice.InexactFloat64(),
			LineTotal: item.LineTotal.InexactFloat64(),
		}
	}

	// Categories with no items are omitted, matching the receipt layout.
	totals := make([]CategoryTotalsResponse, 0, len(bill.Totals))
	for _, category := range entity.Categories {
		if len(bill.ItemsByCategory(category)) == 0 {
			continue
		}
		categoryTotals := bill.Totals[category]
		totals = append(totals, CategoryTotalsResponse{
			Category:   string(category),
			Subtotal:   categoryTotals.Subtotal.InexactFloat64(),
			TaxRate:    categoryTotals.TaxRate.InexactFloat64(),
			TaxAmount:  categoryTotals.TaxAmount.InexactFloat64(),
			FinalTotal: categoryTotals.FinalTotal.InexactFloat64(),
		})
	}

	return BillResponse{
		BillNumber:   bill.BillNumber,
		CustomerName: bill.CustomerName,
		PhoneNumber:  bill.PhoneNumber,
		CreatedAt:    bill.CreatedAt.Format(timeLayout),
		LineItems:    lineItems,
		Totals:       totals,
		GrandTotal:   bill.GrandTotal.InexactFloat64(),
		ReceiptText:  output.ReceiptText,
	}
}

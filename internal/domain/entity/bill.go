package entity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// BillNumberPrefix prefixes every generated bill number.
const BillNumberPrefix = "BILL"

// LineSelection is a single product selection at checkout. Quantity 0
// means "not purchased" and is excluded from all downstream views.
type LineSelection struct {
	ProductName string
	Quantity    int
}

// LineItem is a priced, non-zero line on a calculated bill.
type LineItem struct {
	Product   Product
	Quantity  int
	LineTotal decimal.Decimal
}

// CategoryTotals holds the per-category tax computation of a bill.
// FinalTotal equals Subtotal plus TaxAmount exactly; rounding happens
// only at display time.
type CategoryTotals struct {
	Subtotal   decimal.Decimal
	TaxRate    decimal.Decimal
	TaxAmount  decimal.Decimal
	FinalTotal decimal.Decimal
}

// Bill represents one completed checkout transaction. Bills are never
// updated in place; corrections require a new bill.
type Bill struct {
	BillNumber   string
	CustomerName string
	PhoneNumber  string
	CreatedAt    time.Time
	LineItems    []LineItem
	Totals       map[Category]CategoryTotals
	GrandTotal   decimal.Decimal
}

// ItemsByCategory returns the bill's line items for one category,
// preserving their order on the bill.
func (b *Bill) ItemsByCategory(category Category) []LineItem {
	var items []LineItem
	for _, item := range b.LineItems {
		if item.Product.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// SalesRows flattens the bill into one SalesRow per line item, the unit
// consumed by analytics.
func (b *Bill) SalesRows() []SalesRow {
	rows := make([]SalesRow, 0, len(b.LineItems))
	for _, item := range b.LineItems {
		rows = append(rows, SalesRow{
			Date:         b.CreatedAt,
			BillNumber:   b.BillNumber,
			CustomerName: b.CustomerName,
			Phone:        b.PhoneNumber,
			Category:     string(item.Product.Category),
			Product:      item.Product.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.Product.UnitPrice,
			LineTotal:    item.LineTotal,
		})
	}
	return rows
}

// NewBillNumber generates a random bill number of the form BILLnnnnn
// with nnnnn in [10000, 99999]. Uniqueness is the caller's concern.
func NewBillNumber() string {
	return fmt.Sprintf("%s%d", BillNumberPrefix, 10000+rand.Intn(90000))
}

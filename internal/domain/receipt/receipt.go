// Package receipt renders bills into their fixed-width text layout and
// parses that layout back. The layout is a de-facto wire format: search
// features re-extract the customer name and date from persisted
// receipts by scanning for the literal line prefixes below, so those
// prefixes must stay stable.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/grocery-pos/backend/internal/domain/entity"
)

// Line prefixes of the receipt header. Consumed by search; do not change.
const (
	BillNumberPrefix   = "Bill Number:"
	CustomerNamePrefix = "Customer Name:"
	PhoneNumberPrefix  = "Phone Number:"
	DatePrefix         = "Date:"
)

// TimeLayout is the primary receipt timestamp layout (DD-MM-YYYY HH:MM:SS).
const TimeLayout = "02-01-2006 15:04:05"

// FallbackTimeLayout is accepted on read for compatibility with older exports.
const FallbackTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-date form used by date search inputs.
const DateLayout = "02-01-2006"

const (
	ruleWidth      = 70
	title          = "GROCERY BILLING SYSTEM"
	columnHeader   = "Product                 Quantity         Price         Total"
	closingMessage = "Thank you for shopping with us!"
	currencySymbol = "₹"
)

// Render produces the receipt text for a calculated bill. Categories
// without non-zero items are omitted entirely.
func Render(bill *entity.Bill) string {
	var b strings.Builder

	starRule := strings.Repeat("*", ruleWidth)
	equalsRule := strings.Repeat("=", ruleWidth)

	b.WriteString("\n")
	b.WriteString(starRule + "\n")
	b.WriteString(strings.Repeat(" ", 22) + title + "\n")
	b.WriteString(starRule + "\n")
	fmt.Fprintf(&b, "%s %s\n", BillNumberPrefix, bill.BillNumber)
	fmt.Fprintf(&b, "%s %s\n", CustomerNamePrefix, bill.CustomerName)
	fmt.Fprintf(&b, "%s %s\n", PhoneNumberPrefix, bill.PhoneNumber)
	fmt.Fprintf(&b, "%s %s\n", DatePrefix, bill.CreatedAt.Format(TimeLayout))
	b.WriteString(equalsRule + "\n")
	b.WriteString(columnHeader + "\n")
	b.WriteString(equalsRule + "\n")

	for _, category := range entity.Categories {
		items := bill.ItemsByCategory(category)
		if len(items) == 0 {
			continue
		}

		b.WriteString(category.SectionHeading() + "\n")
		for _, item := range items {
			fmt.Fprintf(&b, "%-25s%-15d%-15s%s\n",
				item.Product.Name,
				item.Quantity,
				item.Product.UnitPrice.String(),
				item.LineTotal.String(),
			)
		}

		totals := bill.Totals[category]
		fmt.Fprintf(&b, "%s Tax: %s\n", category.TotalsLabel(), totals.TaxAmount.StringFixed(2))
		fmt.Fprintf(&b, "%s Total: %s\n\n", category.TotalsLabel(), totals.FinalTotal.StringFixed(2))
	}

	b.WriteString(equalsRule + "\n")
	fmt.Fprintf(&b, "Grand Total: %s%s\n", currencySymbol, bill.GrandTotal.StringFixed(2))
	b.WriteString(equalsRule + "\n")
	b.WriteString(closingMessage + "\n")

	return b.String()
}

// ExtractCustomerName scans receipt text for the customer name line.
func ExtractCustomerName(text string) (string, bool) {
	return extractAfterPrefix(text, CustomerNamePrefix)
}

// ExtractDate scans receipt text for the date line and parses it,
// accepting the primary layout and the fallback layout.
func ExtractDate(text string) (time.Time, bool) {
	raw, ok := extractAfterPrefix(text, DatePrefix)
	if !ok {
		return time.Time{}, false
	}
	return ParseTimestamp(raw)
}

// ParseTimestamp parses a receipt timestamp in the primary layout,
// falling back to the secondary layout.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(TimeLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(FallbackTimeLayout, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func extractAfterPrefix(text, prefix string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.Index(line, prefix); idx >= 0 {
			return strings.TrimSpace(line[idx+len(prefix):]), true
		}
	}
	return "", false
}

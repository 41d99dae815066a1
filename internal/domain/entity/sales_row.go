package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalMarkerCategory marks summary rows that certain export layouts
// append to a row-set. Such rows must be excluded before aggregation.
const TotalMarkerCategory = "TOTAL"

// SalesRow is the flat per-line-item analytics unit: one row per
// non-zero line item across all historical bills.
type SalesRow struct {
	Date         time.Time
	BillNumber   string
	CustomerName string
	Phone        string
	Category     string
	Product      string
	Quantity     int
	UnitPrice    decimal.Decimal
	LineTotal    decimal.Decimal
}

// SummaryMetrics are the headline metrics of an aggregation view.
type SummaryMetrics struct {
	TotalSales decimal.Decimal
	// TotalQuantity is the number of items sold.
	TotalQuantity int
	// AverageSaleValue is the mean line total at row granularity, not
	// the mean per-bill total.
	AverageSaleValue decimal.Decimal
	// TransactionCount counts distinct bill numbers.
	TransactionCount int
}

// Grouping selects the time-series bucket for grouped totals.
type Grouping string

const (
	GroupingDay   Grouping = "day"
	GroupingWeek  Grouping = "week"
	GroupingMonth Grouping = "month"
)

// Valid reports whether the grouping is one of day, week, or month.
func (g Grouping) Valid() bool {
	switch g {
	case GroupingDay, GroupingWeek, GroupingMonth:
		return true
	}
	return false
}

// PeriodTotal is one point of a grouped time series.
type PeriodTotal struct {
	Period string
	Total  decimal.Decimal
}

// ProductPeriodStat is one point of the per-product dual series:
// quantity sold and sales amount over the same period.
type ProductPeriodStat struct {
	Period   string
	Quantity int
	Total    decimal.Decimal
}

// CategoryStat is the sales total and quantity of one category.
type CategoryStat struct {
	Category string
	Total    decimal.Decimal
	Quantity int
}

// ProductStat is the sales total and quantity of one product.
type ProductStat struct {
	Product  string
	Total    decimal.Decimal
	Quantity int
}

// ProductMetric combines per-product totals with transaction counts and
// the derived average unit price.
type ProductMetric struct {
	Product          string
	TotalSales       decimal.Decimal
	QuantitySold     int
	TransactionCount int
	AveragePrice     decimal.Decimal
}

// CategoryProductStat is the sales total of one product within a category.
type CategoryProductStat struct {
	Category string
	Product  string
	Total    decimal.Decimal
	Quantity int
}

// CustomerStat is a customer's sales total and distinct purchase count.
type CustomerStat struct {
	Customer  string
	Total     decimal.Decimal
	Purchases int
}

// AggregationView is the filtered, grouped, and summarized projection of
// historical sales rows. It is derived per request and never persisted.
type AggregationView struct {
	Rows     []SalesRow
	Summary  SummaryMetrics
	Grouping Grouping
	// Series is the grouped (period, total) time series, ascending.
	Series []PeriodTotal
	// FocusProduct and ProductSeries are set when a single product is
	// selected for focused analysis.
	FocusProduct  string
	ProductSeries []ProductPeriodStat

	CategorySales      []CategoryStat
	ProductSales       []ProductStat
	ProductMetrics     []ProductMetric
	ProductsByCategory []CategoryProductStat
	TopCustomers       []CustomerStat
	FrequentCustomers  []CustomerStat
}

// Empty reports whether the view has no rows after filtering. This is a
// valid outcome, distinct from a load failure.
func (v *AggregationView) Empty() bool {
	return len(v.Rows) == 0
}

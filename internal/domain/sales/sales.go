// Package sales implements the pure aggregation arithmetic over sales
// rows: normalization, filtering, summary metrics, and grouped series.
// Everything here is deterministic and side-effect free; loading rows
// and choosing filters is the application layer's concern.
package sales

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-pos/backend/internal/domain/entity"
)

// Filter restricts a working set of rows. Zero-value fields are
// inactive; all active fields are applied conjunctively. Dates compare
// by calendar date, inclusive on both ends.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Product   string
}

// All is the filter value that matches every category or product.
const All = "All"

// NormalizeCategory trims and title-cases a category string so that
// "drinks", "Drinks", and "DRINKS " all group into one bucket.
func NormalizeCategory(raw string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

// Clean normalizes categories and removes summary marker rows. Rows
// without a parseable date never reach this layer; sources drop them.
func Clean(rows []entity.SalesRow) []entity.SalesRow {
	clean := make([]entity.SalesRow, 0, len(rows))
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Category), entity.TotalMarkerCategory) {
			continue
		}
		row.Category = NormalizeCategory(row.Category)
		clean = append(clean, row)
	}
	return clean
}

// Apply returns the rows matching the filter.
func Apply(rows []entity.SalesRow, filter Filter) []entity.SalesRow {
	matched := make([]entity.SalesRow, 0, len(rows))
	for _, row := range rows {
		if filter.StartDate != nil && calendarDate(row.Date).Before(calendarDate(*filter.StartDate)) {
			continue
		}
		if filter.EndDate != nil && calendarDate(row.Date).After(calendarDate(*filter.EndDate)) {
			continue
		}
		if active(filter.Category) && row.Category != filter.Category {
			continue
		}
		if active(filter.Product) && row.Product != filter.Product {
			continue
		}
		matched = append(matched, row)
	}
	return matched
}

// Products returns the sorted distinct products of the rows. The
// candidate list for a product filter derives from the already
// category-filtered set.
func Products(rows []entity.SalesRow) []string {
	return distinct(rows, func(r entity.SalesRow) string { return r.Product })
}

// CategoryNames returns the sorted distinct categories of the rows.
func CategoryNames(rows []entity.SalesRow) []string {
	return distinct(rows, func(r entity.SalesRow) string { return r.Category })
}

// Summarize computes the headline metrics of a row set.
func Summarize(rows []entity.SalesRow) entity.SummaryMetrics {
	metrics := entity.SummaryMetrics{
		TotalSales:       decimal.Zero,
		AverageSaleValue: decimal.Zero,
	}
	bills := make(map[string]struct{})
	for _, row := range rows {
		metrics.TotalSales = metrics.TotalSales.Add(row.LineTotal)
		metrics.TotalQuantity += row.Quantity
		bills[row.BillNumber] = struct{}{}
	}
	metrics.TransactionCount = len(bills)
	if len(rows) > 0 {
		metrics.AverageSaleValue = metrics.TotalSales.Div(decimal.NewFromInt(int64(len(rows))))
	}
	return metrics
}

// PeriodKey formats a row date into its grouping bucket: calendar day,
// ISO week with year, or YYYY-MM month.
func PeriodKey(date time.Time, grouping entity.Grouping) string {
	switch grouping {
	case entity.GroupingWeek:
		year, week := date.ISOWeek()
		return formatISOWeek(year, week)
	case entity.GroupingMonth:
		return date.Format("2006-01")
	default:
		return date.Format("2006-01-02")
	}
}

// GroupTotals sums line totals per period, sorted by period ascending.
func GroupTotals(rows []entity.SalesRow, grouping entity.Grouping) []entity.PeriodTotal {
	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		key := PeriodKey(row.Date, grouping)
		totals[key] = totals[key].Add(row.LineTotal)
	}

	series := make([]entity.PeriodTotal, 0, len(totals))
	for period, total := range totals {
		series = append(series, entity.PeriodTotal{Period: period, Total: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Period < series[j].Period })
	return series
}

// GroupProduct builds the dual quantity/total series of one product.
func GroupProduct(rows []entity.SalesRow, product string, grouping entity.Grouping) []entity.ProductPeriodStat {
	type bucket struct {
		quantity int
		total    decimal.Decimal
	}
	buckets := make(map[string]bucket)
	for _, row := range rows {
		if row.Product != product {
			continue
		}
		key := PeriodKey(row.Date, grouping)
		b := buckets[key]
		b.quantity += row.Quantity
		b.total = b.total.Add(row.LineTotal)
		buckets[key] = b
	}

	series := make([]entity.ProductPeriodStat, 0, len(buckets))
	for period, b := range buckets {
		series = append(series, entity.ProductPeriodStat{Period: period, Quantity: b.quantity, Total: b.total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Period < series[j].Period })
	return series
}

// ByCategory sums totals and quantities per category, largest total first.
func ByCategory(rows []entity.SalesRow) []entity.CategoryStat {
	totals := make(map[string]*entity.CategoryStat)
	for _, row := range rows {
		stat, ok := totals[row.Category]
		if !ok {
			stat = &entity.CategoryStat{Category: row.Category}
			totals[row.Category] = stat
		}
		stat.Total = stat.Total.Add(row.LineTotal)
		stat.Quantity += row.Quantity
	}

	stats := make([]entity.CategoryStat, 0, len(totals))
	for _, stat := range totals {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].Total.Equal(stats[j].Total) {
			return stats[i].Total.GreaterThan(stats[j].Total)
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// ByProduct sums totals and quantities per product, largest total first.
func ByProduct(rows []entity.SalesRow) []entity.ProductStat {
	totals := make(map[string]*entity.ProductStat)
	for _, row := range rows {
		stat, ok := totals[row.Product]
		if !ok {
			stat = &entity.ProductStat{Product: row.Product}
			totals[row.Product] = stat
		}
		stat.Total = stat.Total.Add(row.LineTotal)
		stat.Quantity += row.Quantity
	}

	stats := make([]entity.ProductStat, 0, len(totals))
	for _, stat := range totals {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].Total.Equal(stats[j].Total) {
			return stats[i].Total.GreaterThan(stats[j].Total)
		}
		return stats[i].Product < stats[j].Product
	})
	return stats
}

// ProductMetrics combines totals, quantities, distinct transactions,
// and the derived average unit price per product, largest total first.
func ProductMetrics(rows []entity.SalesRow) []entity.ProductMetric {
	type acc struct {
		total    decimal.Decimal
		quantity int
		bills    map[string]struct{}
	}
	accs := make(map[string]*acc)
	for _, row := range rows {
		a, ok := accs[row.Product]
		if !ok {
			a = &acc{bills: make(map[string]struct{})}
			accs[row.Product] = a
		}
		a.total = a.total.Add(row.LineTotal)
		a.quantity += row.Quantity
		a.bills[row.BillNumber] = struct{}{}
	}

	metrics := make([]entity.ProductMetric, 0, len(accs))
	for product, a := range accs {
		m := entity.ProductMetric{
			Product:          product,
			TotalSales:       a.total,
			QuantitySold:     a.quantity,
			TransactionCount: len(a.bills),
		}
		if a.quantity > 0 {
			m.AveragePrice = a.total.Div(decimal.NewFromInt(int64(a.quantity)))
		}
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool {
		if !metrics[i].TotalSales.Equal(metrics[j].TotalSales) {
			return metrics[i].TotalSales.GreaterThan(metrics[j].TotalSales)
		}
		return metrics[i].Product < metrics[j].Product
	})
	return metrics
}

// ProductsByCategory sums totals per (category, product), ordered by
// category ascending, then total descending.
func ProductsByCategory(rows []entity.SalesRow) []entity.CategoryProductStat {
	type key struct{ category, product string }
	totals := make(map[key]*entity.CategoryProductStat)
	for _, row := range rows {
		k := key{row.Category, row.Product}
		stat, ok := totals[k]
		if !ok {
			stat = &entity.CategoryProductStat{Category: row.Category, Product: row.Product}
			totals[k] = stat
		}
		stat.Total = stat.Total.Add(row.LineTotal)
		stat.Quantity += row.Quantity
	}

	stats := make([]entity.CategoryProductStat, 0, len(totals))
	for _, stat := range totals {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Category != stats[j].Category {
			return stats[i].Category < stats[j].Category
		}
		if !stats[i].Total.Equal(stats[j].Total) {
			return stats[i].Total.GreaterThan(stats[j].Total)
		}
		return stats[i].Product < stats[j].Product
	})
	return stats
}

// TopCustomersBySales returns up to limit customers ordered by sales total.
func TopCustomersBySales(rows []entity.SalesRow, limit int) []entity.CustomerStat {
	stats := customerStats(rows)
	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].Total.Equal(stats[j].Total) {
			return stats[i].Total.GreaterThan(stats[j].Total)
		}
		return stats[i].Customer < stats[j].Customer
	})
	return truncate(stats, limit)
}

// TopCustomersByFrequency returns up to limit customers ordered by
// distinct purchase count.
func TopCustomersByFrequency(rows []entity.SalesRow, limit int) []entity.CustomerStat {
	stats := customerStats(rows)
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Purchases != stats[j].Purchases {
			return stats[i].Purchases > stats[j].Purchases
		}
		return stats[i].Customer < stats[j].Customer
	})
	return truncate(stats, limit)
}

func customerStats(rows []entity.SalesRow) []entity.CustomerStat {
	type acc struct {
		total decimal.Decimal
		bills map[string]struct{}
	}
	accs := make(map[string]*acc)
	for _, row := range rows {
		a, ok := accs[row.CustomerName]
		if !ok {
			a = &acc{bills: make(map[string]struct{})}
			accs[row.CustomerName] = a
		}
		a.total = a.total.Add(row.LineTotal)
		a.bills[row.BillNumber] = struct{}{}
	}

	stats := make([]entity.CustomerStat, 0, len(accs))
	for customer, a := range accs {
		stats = append(stats, entity.CustomerStat{
			Customer:  customer,
			Total:     a.total,
			Purchases: len(a.bills),
		})
	}
	return stats
}

func truncate(stats []entity.CustomerStat, limit int) []entity.CustomerStat {
	if limit > 0 && len(stats) > limit {
		return stats[:limit]
	}
	return stats
}

func active(value string) bool {
	return value != "" && !strings.EqualFold(value, All)
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func distinct(rows []entity.SalesRow, key func(entity.SalesRow) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, row := range rows {
		k := key(row)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}

func formatISOWeek(year, week int) string {
	// Zero-padded week keeps lexicographic order aligned with time order.
	return fmt.Sprintf("%d-W%02d", year, week)
}

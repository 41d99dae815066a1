// Package report contains the report export use case: turning an
// aggregation view into downloadable multi-sheet workbooks.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/domain/sales"
)

// Kind selects one of the fixed report layouts.
type Kind string

const (
	KindSalesSummary       Kind = "Sales Summary"
	KindProductPerformance Kind = "Product Performance"
	KindCategoryAnalysis   Kind = "Category Analysis"
	KindTimeSeriesAnalysis Kind = "Time Series Analysis"
)

// Kinds lists all report kinds.
var Kinds = []Kind{KindSalesSummary, KindProductPerformance, KindCategoryAnalysis, KindTimeSeriesAnalysis}

// Valid reports whether the kind is one of the fixed report kinds.
func (k Kind) Valid() bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ExportReportInput represents the input for exporting a report.
type ExportReportInput struct {
	View *entity.AggregationView
	Kind Kind
	// GeneratedAt only affects the suggested filename, never the sheet
	// contents, so identical views export byte-identical workbooks.
	GeneratedAt time.Time
}

// ExportReportOutput represents an exported report document.
type ExportReportOutput struct {
	Filename string
	Data     []byte
}

// ExportReportUseCase renders aggregation views into xlsx workbooks
// with a fixed, named sheet set per report kind. It derives everything
// from the view and performs no independent filtering.
type ExportReportUseCase struct{}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase() *ExportReportUseCase {
	return &ExportReportUseCase{}
}

// Execute builds the workbook for the requested kind.
func (uc *ExportReportUseCase) Execute(input ExportReportInput) (*ExportReportOutput, error) {
	if !input.Kind.Valid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnknownReportKind,
			fmt.Sprintf("unknown report kind %q", input.Kind),
			domainerror.ErrUnknownReportKind,
		)
	}

	if input.View == nil || input.View.Empty() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeEmptyView,
			"no data available for the selected filters",
			domainerror.ErrEmptyView,
		)
	}

	workbook := newWorkbook()

	switch input.Kind {
	case KindSalesSummary:
		uc.writeSalesSummary(workbook, input.View)
	case KindProductPerformance:
		uc.writeProductPerformance(workbook, input.View)
	case KindCategoryAnalysis:
		uc.writeCategoryAnalysis(workbook, input.View)
	case KindTimeSeriesAnalysis:
		uc.writeTimeSeries(workbook, input.View)
	}

	data, err := workbook.bytes()
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportWriteFailed,
			"failed to write report workbook",
			err,
		)
	}

	return &ExportReportOutput{
		Filename: Filename(input.Kind, input.GeneratedAt),
		Data:     data,
	}, nil
}

// Filename returns the suggested download name for a report.
func Filename(kind Kind, generatedAt time.Time) string {
	base := strings.ReplaceAll(strings.ToLower(string(kind)), " ", "_")
	return fmt.Sprintf("%s_%s.xlsx", base, generatedAt.Format("20060102_150405"))
}

func (uc *ExportReportUseCase) writeSalesSummary(w *workbook, view *entity.AggregationView) {
	w.sheet("Summary",
		[]string{"Metric", "Value"},
		[][]any{
			{"Total Sales", "₹" + view.Summary.TotalSales.StringFixed(2)},
			{"Total Items Sold", view.Summary.TotalQuantity},
			{"Average Sale Value", "₹" + view.Summary.AverageSaleValue.StringFixed(2)},
			{"Number of Transactions", view.Summary.TransactionCount},
		},
	)
	w.sheet("Daily Sales", []string{"Date", "Total"}, periodRows(sales.GroupTotals(view.Rows, entity.GroupingDay)))
	w.sheet("Category Sales", []string{"Category", "Total"}, categoryTotalRows(view.CategorySales))
}

func (uc *ExportReportUseCase) writeProductPerformance(w *workbook, view *entity.AggregationView) {
	w.sheet("Product Sales", []string{"Product", "Total"}, productTotalRows(view.ProductSales))

	byQuantity := make([]entity.ProductStat, len(view.ProductSales))
	copy(byQuantity, view.ProductSales)
	sort.Slice(byQuantity, func(i, j int) bool {
		if byQuantity[i].Quantity != byQuantity[j].Quantity {
			return byQuantity[i].Quantity > byQuantity[j].Quantity
		}
		return byQuantity[i].Product < byQuantity[j].Product
	})
	quantityRows := make([][]any, 0, len(byQuantity))
	for _, stat := range byQuantity {
		quantityRows = append(quantityRows, []any{stat.Product, stat.Quantity})
	}
	w.sheet("Product Quantities", []string{"Product", "Quantity"}, quantityRows)

	metricRows := make([][]any, 0, len(view.ProductMetrics))
	for _, m := range view.ProductMetrics {
		metricRows = append(metricRows, []any{
			m.Product,
			m.TotalSales.InexactFloat64(),
			m.QuantitySold,
			m.TransactionCount,
			m.AveragePrice.InexactFloat64(),
		})
	}
	w.sheet("Product Metrics",
		[]string{"Product", "Total Sales", "Quantity Sold", "Number of Transactions", "Average Price"},
		metricRows,
	)
}

func (uc *ExportReportUseCase) writeCategoryAnalysis(w *workbook, view *entity.AggregationView) {
	w.sheet("Category Sales", []string{"Category", "Total"}, categoryTotalRows(view.CategorySales))

	byQuantity := make([]entity.CategoryStat, len(view.CategorySales))
	copy(byQuantity, view.CategorySales)
	sort.Slice(byQuantity, func(i, j int) bool {
		if byQuantity[i].Quantity != byQuantity[j].Quantity {
			return byQuantity[i].Quantity > byQuantity[j].Quantity
		}
		return byQuantity[i].Category < byQuantity[j].Category
	})
	quantityRows := make([][]any, 0, len(byQuantity))
	for _, stat := range byQuantity {
		quantityRows = append(quantityRows, []any{stat.Category, stat.Quantity})
	}
	w.sheet("Category Quantities", []string{"Category", "Quantity"}, quantityRows)

	productRows := make([][]any, 0, len(view.ProductsByCategory))
	for _, stat := range view.ProductsByCategory {
		productRows = append(productRows, []any{stat.Category, stat.Product, stat.Total.InexactFloat64()})
	}
	w.sheet("Products by Category", []string{"Category", "Product", "Total"}, productRows)
}

func (uc *ExportReportUseCase) writeTimeSeries(w *workbook, view *entity.AggregationView) {
	w.sheet("Daily Sales", []string{"Date", "Total"}, periodRows(sales.GroupTotals(view.Rows, entity.GroupingDay)))
	w.sheet("Weekly Sales", []string{"Period", "Total"}, periodRows(sales.GroupTotals(view.Rows, entity.GroupingWeek)))
	w.sheet("Monthly Sales", []string{"Month", "Total"}, periodRows(sales.GroupTotals(view.Rows, entity.GroupingMonth)))
}

func periodRows(series []entity.PeriodTotal) [][]any {
	rows := make([][]any, 0, len(series))
	for _, point := range series {
		rows = append(rows, []any{point.Period, point.Total.InexactFloat64()})
	}
	return rows
}

func categoryTotalRows(stats []entity.CategoryStat) [][]any {
	rows := make([][]any, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, []any{stat.Category, stat.Total.InexactFloat64()})
	}
	return rows
}

func productTotalRows(stats []entity.ProductStat) [][]any {
	rows := make([][]any, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, []any{stat.Product, stat.Total.InexactFloat64()})
	}
	return rows
}

// workbook wraps excelize with ordered sheet creation: the first sheet
// replaces the default sheet, later ones are appended.
type workbook struct {
	file   *excelize.File
	sheets int
	err    error
}

func newWorkbook() *workbook {
	return &workbook{file: excelize.NewFile()}
}

func (w *workbook) sheet(name string, header []string, rows [][]any) {
	if w.err != nil {
		return
	}

	if w.sheets == 0 {
		w.err = w.file.SetSheetName(w.file.GetSheetName(0), name)
	} else {
		_, w.err = w.file.NewSheet(name)
	}
	if w.err != nil {
		return
	}
	w.sheets++

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			w.err = err
			return
		}
		if err := w.file.SetCellValue(name, cell, title); err != nil {
			w.err = err
			return
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				w.err = err
				return
			}
			if err := w.file.SetCellValue(name, cell, value); err != nil {
				w.err = err
				return
			}
		}
	}
}

func (w *workbook) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	defer w.file.Close()

	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

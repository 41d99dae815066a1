// Package analytics contains the sales aggregation use case: loading
// historical row-sets, filtering, and deriving summary metrics and
// grouped series for reports and charts.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/domain/sales"
)

// topCustomerLimit caps the customer leaderboards.
const topCustomerLimit = 10

// AggregateSalesInput represents the input for aggregating sales rows.
type AggregateSalesInput struct {
	Sources []adapter.RowSource

	StartDate *time.Time
	EndDate   *time.Time
	// Category and Product filter exactly; empty or "All" match
	// everything. Filters apply conjunctively.
	Category string
	Product  string

	// Grouping selects the time-series bucket; the zero value means day.
	Grouping entity.Grouping

	// FocusProduct selects a single product for the dual
	// quantity/total series. Defaults to the Product filter when that
	// names a single product.
	FocusProduct string
}

// AggregateSalesOutput represents the outcome of an aggregation.
type AggregateSalesOutput struct {
	View *entity.AggregationView
	// AvailableCategories lists filterable categories over the whole
	// working set; AvailableProducts derives from the category-filtered
	// set, so selecting a category narrows the product choices.
	AvailableCategories []string
	AvailableProducts   []string
	// Warnings carry one entry per skipped source or per source with
	// dropped rows, never one per row.
	Warnings []string
}

// AggregateSalesUseCase loads row sources, normalizes and filters the
// rows, and computes the aggregation view. Re-running with the same
// sources and filters yields identical results.
type AggregateSalesUseCase struct{}

// NewAggregateSalesUseCase creates a new AggregateSalesUseCase instance.
func NewAggregateSalesUseCase() *AggregateSalesUseCase {
	return &AggregateSalesUseCase{}
}

// Execute aggregates the supplied sources under the given filters.
func (uc *AggregateSalesUseCase) Execute(ctx context.Context, input AggregateSalesInput) (*AggregateSalesOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	grouping := input.Grouping
	if grouping == "" {
		grouping = entity.GroupingDay
	}

	working, warnings, err := uc.loadSources(ctx, input.Sources)
	if err != nil {
		return nil, err
	}

	working = sales.Clean(working)
	availableCategories := sales.CategoryNames(working)

	category := sales.NormalizeCategory(input.Category)
	if category == sales.All {
		category = ""
	}

	// The product candidate list derives from the category-filtered set.
	categoryFiltered := sales.Apply(working, sales.Filter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  category,
	})
	availableProducts := sales.Products(categoryFiltered)

	filtered := sales.Apply(categoryFiltered, sales.Filter{Product: input.Product})

	view := &entity.AggregationView{
		Rows:     filtered,
		Summary:  sales.Summarize(filtered),
		Grouping: grouping,
		Series:   sales.GroupTotals(filtered, grouping),

		CategorySales:      sales.ByCategory(filtered),
		ProductSales:       sales.ByProduct(filtered),
		ProductMetrics:     sales.ProductMetrics(filtered),
		ProductsByCategory: sales.ProductsByCategory(filtered),
		TopCustomers:       sales.TopCustomersBySales(filtered, topCustomerLimit),
		FrequentCustomers:  sales.TopCustomersByFrequency(filtered, topCustomerLimit),
	}

	if focus := uc.focusProduct(input); focus != "" {
		view.FocusProduct = focus
		view.ProductSeries = sales.GroupProduct(filtered, focus, grouping)
	}

	return &AggregateSalesOutput{
		View:                view,
		AvailableCategories: availableCategories,
		AvailableProducts:   availableProducts,
		Warnings:            warnings,
	}, nil
}

// loadSources loads every source, skipping failing ones with a warning.
// Only the failure of all sources is an error.
func (uc *AggregateSalesUseCase) loadSources(
	ctx context.Context,
	sources []adapter.RowSource,
) ([]entity.SalesRow, []string, error) {
	var working []entity.SalesRow
	var warnings []string
	loaded := 0

	for _, source := range sources {
		result, err := source.Load(ctx)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not read %s: %v", source.Name(), err))
			continue
		}
		loaded++
		if result.SkippedRows > 0 {
			warnings = append(warnings, fmt.Sprintf("%s: skipped %d unparseable rows", source.Name(), result.SkippedRows))
		}
		working = append(working, result.Rows...)
	}

	if loaded == 0 {
		return nil, nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAllSourcesFailed,
			"no row source could be loaded",
			domainerror.ErrAllSourcesFailed,
		)
	}

	return working, warnings, nil
}

func (uc *AggregateSalesUseCase) focusProduct(input AggregateSalesInput) string {
	if input.FocusProduct != "" {
		return input.FocusProduct
	}
	if input.Product != "" && input.Product != sales.All {
		return input.Product
	}
	return ""
}

// validateInput validates the input parameters.
func (uc *AggregateSalesUseCase) validateInput(input AggregateSalesInput) error {
	if len(input.Sources) == 0 {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeNoRowSources,
			"no row sources supplied",
			domainerror.ErrNoRowSources,
		)
	}

	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	if input.Grouping != "" && !input.Grouping.Valid() {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidGrouping,
			"grouping must be: day, week, or month",
			domainerror.ErrInvalidGrouping,
		)
	}

	return nil
}

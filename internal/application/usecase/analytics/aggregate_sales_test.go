package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

// stubSource is an in-memory adapter.RowSource for tests.
type stubSource struct {
	name    string
	rows    []entity.SalesRow
	skipped int
	err     error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Load(_ context.Context) (*adapter.RowSetResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &adapter.RowSetResult{Rows: s.rows, SkippedRows: s.skipped}, nil
}

func testRow(date string, bill, customer, category, product string, qty int, total int64) entity.SalesRow {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.SalesRow{
		Date:         d,
		BillNumber:   bill,
		CustomerName: customer,
		Category:     category,
		Product:      product,
		Quantity:     qty,
		LineTotal:    decimal.NewFromInt(total),
	}
}

func testSources() []adapter.RowSource {
	return []adapter.RowSource{
		&stubSource{name: "BILL10000.xlsx", rows: []entity.SalesRow{
			testRow("2025-01-01", "BILL10000", "Asha", "Groceries", "Rice", 2, 100),
			testRow("2025-01-01", "BILL10000", "Asha", "Drinks", "Monster", 1, 110),
		}},
		&stubSource{name: "BILL20000.xlsx", rows: []entity.SalesRow{
			testRow("2025-01-02", "BILL20000", "Ravi", "drinks", "Monster", 2, 220),
			testRow("2025-01-02", "BILL20000", "Ravi", "TOTAL", "", 0, 320),
		}},
	}
}

func TestAggregateSalesUseCase_Execute(t *testing.T) {
	useCase := NewAggregateSalesUseCase()

	t.Run("merges sources and excludes marker rows", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), AggregateSalesInput{Sources: testSources()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		view := output.View
		if len(view.Rows) != 3 {
			t.Fatalf("expected 3 rows after cleaning, got %d", len(view.Rows))
		}
		if !view.Summary.TotalSales.Equal(decimal.NewFromInt(430)) {
			t.Errorf("expected total 430, got %s", view.Summary.TotalSales)
		}
		if view.Summary.TransactionCount != 2 {
			t.Errorf("expected 2 transactions, got %d", view.Summary.TransactionCount)
		}
	})

	t.Run("normalizes category spellings into one bucket", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), AggregateSalesInput{Sources: testSources()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.AvailableCategories) != 2 {
			t.Errorf("expected [Drinks Groceries], got %v", output.AvailableCategories)
		}
		drinks := output.View.CategorySales[0]
		if drinks.Category != "Drinks" || !drinks.Total.Equal(decimal.NewFromInt(330)) {
			t.Errorf("expected merged Drinks total 330, got %+v", drinks)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := useCase.Execute(context.Background(), AggregateSalesInput{Sources: testSources()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := useCase.Execute(context.Background(), AggregateSalesInput{Sources: testSources()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !first.View.Summary.TotalSales.Equal(second.View.Summary.TotalSales) {
			t.Error("expected identical summaries")
		}
		if len(first.View.Series) != len(second.View.Series) {
			t.Fatal("expected identical series length")
		}
		for i := range first.View.Series {
			if first.View.Series[i].Period != second.View.Series[i].Period ||
				!first.View.Series[i].Total.Equal(second.View.Series[i].Total) {
				t.Errorf("series point %d differs", i)
			}
		}
	})

	t.Run("category filter narrows available products", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), AggregateSalesInput{
			Sources:  testSources(),
			Category: "Drinks",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.AvailableProducts) != 1 || output.AvailableProducts[0] != "Monster" {
			t.Errorf("expected [Monster], got %v", output.AvailableProducts)
		}
		if len(output.AvailableCategories) != 2 {
			t.Errorf("expected categories over the whole set, got %v", output.AvailableCategories)
		}
		if len(output.View.Rows) != 2 {
			t.Errorf("expected 2 drink rows, got %d", len(output.View.Rows))
		}
	})

	t.Run("All category matches everything", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), AggregateSalesInput{
			Sources:  testSources(),
			Category: "All",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.View.Rows) != 3 {
			t.Errorf("expected 3 rows, got %d", len(output.View.Rows))
		}
	})

	t.Run("product filter sets the focus series", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), AggregateSalesInput{
			Sources: testSources(),
			Product: "Monster",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.View.FocusProduct != "Monster" {
			t.Errorf("expected focus product Monster, got %q", output.View.FocusProduct)
		}
		if len(output.View.ProductSeries) != 2 {
			t.Fatalf("expected 2 focus points, got %d", len(output.View.ProductSeries))
		}
		if output.View.ProductSeries[0].Quantity != 1 || output.View.ProductSeries[1].Quantity != 2 {
			t.Errorf("unexpected focus series %+v", output.View.ProductSeries)
		}
	})

	t.Run("empty result after filtering is valid", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), AggregateSalesInput{
			Sources:  testSources(),
			Category: "Cosmetics",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.View.Empty() {
			t.Error("expected an empty view")
		}
		if !output.View.Summary.TotalSales.IsZero() {
			t.Errorf("expected zero total, got %s", output.View.Summary.TotalSales)
		}
	})

	t.Run("failing source is skipped with a warning", func(t *testing.T) {
		sources := append(testSources(), &stubSource{name: "BILL30000.xlsx", err: errors.New("corrupt")})

		output, err := useCase.Execute(context.Background(), AggregateSalesInput{Sources: sources})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.View.Rows) != 3 {
			t.Errorf("expected the readable rows, got %d", len(output.View.Rows))
		}
		if len(output.Warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", output.Warnings)
		}
	})

	t.Run("skipped rows produce one warning per source", func(t *testing.T) {
		sources := []adapter.RowSource{
			&stubSource{name: "BILL10000.xlsx", rows: testSources()[0].(*stubSource).rows, skipped: 3},
		}

		output, err := useCase.Execute(context.Background(), AggregateSalesInput{Sources: sources})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", output.Warnings)
		}
	})

	t.Run("all sources failing is an error", func(t *testing.T) {
		sources := []adapter.RowSource{
			&stubSource{name: "a.xlsx", err: errors.New("corrupt")},
			&stubSource{name: "b.xlsx", err: errors.New("corrupt")},
		}

		_, err := useCase.Execute(context.Background(), AggregateSalesInput{Sources: sources})

		var analyticsErr *domainerror.AnalyticsError
		if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeAllSourcesFailed {
			t.Errorf("expected all-sources-failed error, got %v", err)
		}
	})

	t.Run("no sources is an error", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), AggregateSalesInput{})

		var analyticsErr *domainerror.AnalyticsError
		if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeNoRowSources {
			t.Errorf("expected no-row-sources error, got %v", err)
		}
	})

	t.Run("inverted date range is an error", func(t *testing.T) {
		start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		_, err := useCase.Execute(context.Background(), AggregateSalesInput{
			Sources:   testSources(),
			StartDate: &start,
			EndDate:   &end,
		})

		var analyticsErr *domainerror.AnalyticsError
		if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeInvalidDateRange {
			t.Errorf("expected invalid-date-range error, got %v", err)
		}
	})

	t.Run("invalid grouping is an error", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), AggregateSalesInput{
			Sources:  testSources(),
			Grouping: "hourly",
		})

		var analyticsErr *domainerror.AnalyticsError
		if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeInvalidGrouping {
			t.Errorf("expected invalid-grouping error, got %v", err)
		}
	})
}

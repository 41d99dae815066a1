package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/grocery-pos/backend/internal/domain/entity"
	"github.com/grocery-pos/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&model.SalesRowModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func masterRows() []entity.SalesRow {
	return []entity.SalesRow{
		{
			Date:         time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
			BillNumber:   "BILL20000",
			CustomerName: "Ravi",
			Phone:        "111",
			Category:     "Drinks",
			Product:      "Monster",
			Quantity:     1,
			UnitPrice:    decimal.NewFromInt(110),
			LineTotal:    decimal.NewFromInt(110),
		},
		{
			Date:         time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			BillNumber:   "BILL10000",
			CustomerName: "Asha",
			Phone:        "222",
			Category:     "Groceries",
			Product:      "Rice",
			Quantity:     2,
			UnitPrice:    decimal.NewFromInt(50),
			LineTotal:    decimal.NewFromInt(100),
		},
	}
}

func TestSalesRowRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("append and load round-trip", func(t *testing.T) {
		repo := NewSalesRowRepository(newTestDB(t))

		if err := repo.AppendRows(ctx, masterRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}

		// Oldest first.
		if rows[0].BillNumber != "BILL10000" {
			t.Errorf("expected BILL10000 first, got %q", rows[0].BillNumber)
		}
		if rows[0].Product != "Rice" || rows[0].Quantity != 2 {
			t.Errorf("unexpected row %+v", rows[0])
		}
		if !rows[0].LineTotal.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected line total 100, got %s", rows[0].LineTotal)
		}
	})

	t.Run("appends accumulate", func(t *testing.T) {
		repo := NewSalesRowRepository(newTestDB(t))

		if err := repo.AppendRows(ctx, masterRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.AppendRows(ctx, masterRows()[:1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Errorf("expected 3 rows, got %d", len(rows))
		}
	})

	t.Run("empty append is a no-op", func(t *testing.T) {
		repo := NewSalesRowRepository(newTestDB(t))

		if err := repo.AppendRows(ctx, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rows, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}

func TestMasterRowSource(t *testing.T) {
	ctx := context.Background()
	repo := NewSalesRowRepository(newTestDB(t))

	if err := repo.AppendRows(ctx, masterRows()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source := NewMasterRowSource(repo)
	if source.Name() != "master store" {
		t.Errorf("unexpected source name %q", source.Name())
	}

	result, err := source.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(result.Rows))
	}
	if result.SkippedRows != 0 {
		t.Errorf("expected no skipped rows, got %d", result.SkippedRows)
	}
}

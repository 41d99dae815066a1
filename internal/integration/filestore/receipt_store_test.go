package filestore

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

func TestReceiptStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load round-trip", func(t *testing.T) {
		store, err := NewReceiptStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		location, err := store.SaveText(ctx, "BILL10000", "receipt body")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if location == "" {
			t.Error("expected a location")
		}

		text, err := store.LoadText(ctx, "BILL10000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "receipt body" {
			t.Errorf("unexpected text %q", text)
		}
	})

	t.Run("re-save overwrites", func(t *testing.T) {
		store, err := NewReceiptStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		if _, err := store.SaveText(ctx, "BILL10000", "first"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := store.SaveText(ctx, "BILL10000", "second"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text, err := store.LoadText(ctx, "BILL10000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "second" {
			t.Errorf("expected last write to win, got %q", text)
		}

		numbers, err := store.ListNumbers(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers) != 1 {
			t.Errorf("expected one unit, got %v", numbers)
		}
	})

	t.Run("missing receipt is not found", func(t *testing.T) {
		store, err := NewReceiptStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		_, err = store.LoadText(ctx, "BILL99999")

		var storeErr *domainerror.StoreError
		if !errors.As(err, &storeErr) || storeErr.Code != domainerror.ErrCodeReceiptNotFound {
			t.Errorf("expected receipt-not-found error, got %v", err)
		}
		if !errors.Is(err, domainerror.ErrReceiptNotFound) {
			t.Error("expected the error to unwrap to ErrReceiptNotFound")
		}
	})

	t.Run("list ignores non-receipt files", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewReceiptStore(dir)
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		if _, err := store.SaveText(ctx, "BILL10000", "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rowSets, err := NewRowSetStore(dir)
		if err != nil {
			t.Fatalf("failed to create row-set store: %v", err)
		}
		if _, err := rowSets.SaveRowSet(ctx, "BILL10000", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		numbers, err := store.ListNumbers(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(numbers) != 1 || numbers[0] != "BILL10000" {
			t.Errorf("expected only the receipt unit, got %v", numbers)
		}
	})

	t.Run("exists", func(t *testing.T) {
		store, err := NewReceiptStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		if _, err := store.SaveText(ctx, "BILL10000", "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		taken, err := store.Exists(ctx, "BILL10000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !taken {
			t.Error("expected BILL10000 to exist")
		}

		free, err := store.Exists(ctx, "BILL99999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if free {
			t.Error("did not expect BILL99999 to exist")
		}
	})
}

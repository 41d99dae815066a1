package billsearch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

// memoryReceiptStore is an in-memory adapter.ReceiptStore for tests.
type memoryReceiptStore struct {
	texts    map[string]string
	broken   map[string]bool
	listErr  error
	loadErrs int
}

func newMemoryReceiptStore() *memoryReceiptStore {
	return &memoryReceiptStore{
		texts:  make(map[string]string),
		broken: make(map[string]bool),
	}
}

func (s *memoryReceiptStore) SaveText(_ context.Context, billNumber, text string) (string, error) {
	s.texts[billNumber] = text
	return billNumber + ".txt", nil
}

func (s *memoryReceiptStore) LoadText(_ context.Context, billNumber string) (string, error) {
	if s.broken[billNumber] {
		s.loadErrs++
		return "", domainerror.NewStoreError(
			domainerror.ErrCodeReceiptUnreadable,
			fmt.Sprintf("failed to read receipt %s", billNumber),
			domainerror.ErrReceiptUnreadable,
		)
	}
	text, ok := s.texts[billNumber]
	if !ok {
		return "", domainerror.NewStoreError(
			domainerror.ErrCodeReceiptNotFound,
			fmt.Sprintf("no receipt for bill %s", billNumber),
			domainerror.ErrReceiptNotFound,
		)
	}
	return text, nil
}

func (s *memoryReceiptStore) ListNumbers(_ context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	numbers := make([]string, 0, len(s.texts))
	for number := range s.texts {
		numbers = append(numbers, number)
	}
	for number := range s.broken {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers, nil
}

func (s *memoryReceiptStore) Exists(_ context.Context, billNumber string) (bool, error) {
	_, ok := s.texts[billNumber]
	return ok, nil
}

func receiptText(customer, date string) string {
	return fmt.Sprintf("header\nBill Number: BILLX\nCustomer Name: %s\nPhone Number: 123\nDate: %s\nbody\n", customer, date)
}

func TestListBillsUseCase_Execute(t *testing.T) {
	t.Run("returns sorted numbers", func(t *testing.T) {
		store := newMemoryReceiptStore()
		store.texts["BILL20000"] = "b"
		store.texts["BILL10000"] = "a"
		useCase := NewListBillsUseCase(store)

		output, err := useCase.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.BillNumbers) != 2 || output.BillNumbers[0] != "BILL10000" {
			t.Errorf("expected sorted numbers, got %v", output.BillNumbers)
		}
	})

	t.Run("empty store yields empty list", func(t *testing.T) {
		useCase := NewListBillsUseCase(newMemoryReceiptStore())

		output, err := useCase.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.BillNumbers) != 0 {
			t.Errorf("expected no numbers, got %v", output.BillNumbers)
		}
	})
}

func TestLoadBillUseCase_Execute(t *testing.T) {
	store := newMemoryReceiptStore()
	store.texts["BILL10000"] = "receipt body"
	useCase := NewLoadBillUseCase(store)

	t.Run("loads stored receipt", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), "BILL10000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ReceiptText != "receipt body" {
			t.Errorf("unexpected text %q", output.ReceiptText)
		}
	})

	t.Run("missing receipt fails", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), "BILL99999")

		var storeErr *domainerror.StoreError
		if !errors.As(err, &storeErr) || storeErr.Code != domainerror.ErrCodeReceiptNotFound {
			t.Errorf("expected receipt-not-found error, got %v", err)
		}
	})
}

func TestFindByCustomerUseCase_Execute(t *testing.T) {
	store := newMemoryReceiptStore()
	store.texts["BILL10000"] = receiptText("Asha", "14-03-2025 15:04:05")
	store.texts["BILL20000"] = receiptText("Ravi", "15-03-2025 09:30:00")
	store.texts["BILL30000"] = receiptText("Asha", "16-03-2025 11:00:00")
	useCase := NewFindByCustomerUseCase(store)

	t.Run("exact name matches", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), "Asha")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"BILL10000", "BILL30000"}
		if len(output.BillNumbers) != 2 || output.BillNumbers[0] != want[0] || output.BillNumbers[1] != want[1] {
			t.Errorf("expected %v, got %v", want, output.BillNumbers)
		}
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), "Nobody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.BillNumbers) != 0 {
			t.Errorf("expected no matches, got %v", output.BillNumbers)
		}
	})

	t.Run("unreadable unit is skipped with a warning", func(t *testing.T) {
		store.broken["BILL40000"] = true
		defer delete(store.broken, "BILL40000")

		output, err := useCase.Execute(context.Background(), "Asha")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.BillNumbers) != 2 {
			t.Errorf("expected the readable matches, got %v", output.BillNumbers)
		}
		if len(output.Warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", output.Warnings)
		}
	})
}

func TestFindByDateUseCase_Execute(t *testing.T) {
	store := newMemoryReceiptStore()
	store.texts["BILL10000"] = receiptText("Asha", "14-03-2025 15:04:05")
	store.texts["BILL20000"] = receiptText("Ravi", "14-03-2025 09:30:00")
	store.texts["BILL30000"] = receiptText("Asha", "2025-03-16 11:00:00")
	useCase := NewFindByDateUseCase(store)

	t.Run("matches by calendar date regardless of time", func(t *testing.T) {
		date := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)

		output, err := useCase.Execute(context.Background(), date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.BillNumbers) != 2 {
			t.Errorf("expected 2 matches, got %v", output.BillNumbers)
		}
	})

	t.Run("accepts the fallback date layout", func(t *testing.T) {
		date := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

		output, err := useCase.Execute(context.Background(), date)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.BillNumbers) != 1 || output.BillNumbers[0] != "BILL30000" {
			t.Errorf("expected BILL30000, got %v", output.BillNumbers)
		}
	})
}

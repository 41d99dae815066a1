package billing

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

// memoryReceiptStore is an in-memory adapter.ReceiptStore for tests.
type memoryReceiptStore struct {
	texts    map[string]string
	saveErr  error
	loadErr  error
	existErr error
}

func newMemoryReceiptStore() *memoryReceiptStore {
	return &memoryReceiptStore{texts: make(map[string]string)}
}

func (s *memoryReceiptStore) SaveText(_ context.Context, billNumber, text string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.texts[billNumber] = text
	return billNumber + ".txt", nil
}

func (s *memoryReceiptStore) LoadText(_ context.Context, billNumber string) (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
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
	numbers := make([]string, 0, len(s.texts))
	for number := range s.texts {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers, nil
}

func (s *memoryReceiptStore) Exists(_ context.Context, billNumber string) (bool, error) {
	if s.existErr != nil {
		return false, s.existErr
	}
	_, ok := s.texts[billNumber]
	return ok, nil
}

// memoryRowSetStore is an in-memory adapter.RowSetStore for tests.
type memoryRowSetStore struct {
	rowSets map[string][]entity.SalesRow
	saveErr error
}

func newMemoryRowSetStore() *memoryRowSetStore {
	return &memoryRowSetStore{rowSets: make(map[string][]entity.SalesRow)}
}

func (s *memoryRowSetStore) SaveRowSet(_ context.Context, billNumber string, rows []entity.SalesRow) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.rowSets[billNumber] = rows
	return billNumber + ".xlsx", nil
}

// memoryMasterStore is an in-memory adapter.SalesRowRepository for tests.
type memoryMasterStore struct {
	rows      []entity.SalesRow
	appendErr error
}

func (s *memoryMasterStore) AppendRows(_ context.Context, rows []entity.SalesRow) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.rows = append(s.rows, rows...)
	return nil
}

func (s *memoryMasterStore) LoadAll(_ context.Context) ([]entity.SalesRow, error) {
	return s.rows, nil
}

// stubPrinter is an adapter.Printer for tests.
type stubPrinter struct {
	available bool
	status    string
	err       error
	printed   []string
}

func (p *stubPrinter) Available() bool {
	return p.available
}

func (p *stubPrinter) Print(_ context.Context, text string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.printed = append(p.printed, text)
	return p.status, nil
}

var errStoreDown = errors.New("store down")

// Ensure mocks satisfy interfaces.
var (
	_ adapter.ReceiptStore       = (*memoryReceiptStore)(nil)
	_ adapter.RowSetStore        = (*memoryRowSetStore)(nil)
	_ adapter.SalesRowRepository = (*memoryMasterStore)(nil)
	_ adapter.Printer            = (*stubPrinter)(nil)
)

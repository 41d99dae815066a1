// Package filestore persists bills under the bills root directory:
// receipt text as <bill_number>.txt and row-sets as <bill_number>.xlsx.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grocery-pos/backend/internal/application/adapter"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
)

const receiptExtension = ".txt"

// ReceiptStore stores receipt text files under a root directory. Writes
// go through a temp file and rename, so a re-save of the same bill
// number replaces the unit atomically (last write wins) and no partial
// receipt is ever visible.
type ReceiptStore struct {
	root string
}

// NewReceiptStore creates a receipt store rooted at dir, creating the
// directory if needed.
func NewReceiptStore(dir string) (*ReceiptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bills directory: %w", err)
	}
	return &ReceiptStore{root: dir}, nil
}

// SaveText persists receipt text and returns the file path.
func (s *ReceiptStore) SaveText(_ context.Context, billNumber, text string) (string, error) {
	path := s.path(billNumber)

	tmp, err := os.CreateTemp(s.root, billNumber+".*.tmp")
	if err != nil {
		return "", domainerror.NewStoreError(
			domainerror.ErrCodeReceiptWriteFailed,
			fmt.Sprintf("failed to write receipt %s", billNumber),
			err,
		)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", domainerror.NewStoreError(
			domainerror.ErrCodeReceiptWriteFailed,
			fmt.Sprintf("failed to write receipt %s", billNumber),
			err,
		)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", domainerror.NewStoreError(
			domainerror.ErrCodeReceiptWriteFailed,
			fmt.Sprintf("failed to write receipt %s", billNumber),
			err,
		)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", domainerror.NewStoreError(
			domainerror.ErrCodeReceiptWriteFailed,
			fmt.Sprintf("failed to write receipt %s", billNumber),
			err,
		)
	}

	return path, nil
}

// LoadText returns the receipt text for a bill number.
func (s *ReceiptStore) LoadText(_ context.Context, billNumber string) (string, error) {
	data, err := os.ReadFile(s.path(billNumber))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domainerror.NewStoreError(
				domainerror.ErrCodeReceiptNotFound,
				fmt.Sprintf("no receipt for bill %s", billNumber),
				domainerror.ErrReceiptNotFound,
			)
		}
		return "", domainerror.NewStoreError(
			domainerror.ErrCodeReceiptUnreadable,
			fmt.Sprintf("failed to read receipt %s", billNumber),
			err,
		)
	}
	return string(data), nil
}

// ListNumbers returns all persisted bill numbers.
func (s *ReceiptStore) ListNumbers(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read bills directory: %w", err)
	}

	var numbers []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), receiptExtension) {
			continue
		}
		numbers = append(numbers, strings.TrimSuffix(entry.Name(), receiptExtension))
	}
	return numbers, nil
}

// Exists reports whether a receipt is stored for the number.
func (s *ReceiptStore) Exists(_ context.Context, billNumber string) (bool, error) {
	_, err := os.Stat(s.path(billNumber))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat receipt %s: %w", billNumber, err)
}

func (s *ReceiptStore) path(billNumber string) string {
	return filepath.Join(s.root, billNumber+receiptExtension)
}

// Ensure implementations satisfy interfaces.
var _ adapter.ReceiptStore = (*ReceiptStore)(nil)

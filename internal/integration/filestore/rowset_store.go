package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/domain/receipt"
)

const rowSetExtension = ".xlsx"

// rowSetHeader is the fixed column set of a persisted row-set.
var rowSetHeader = []string{
	"Date", "Bill Number", "Customer Name", "Phone",
	"Category", "Product", "Quantity", "Price", "Total",
}

// rowSetDateLayout is how row-set dates are written. Reading accepts
// this layout plus the receipt layouts.
const rowSetDateLayout = "2006-01-02 15:04:05"

// RowSetStore writes one xlsx row-set per bill under a root directory.
type RowSetStore struct {
	root string
}

// NewRowSetStore creates a row-set store rooted at dir, creating the
// directory if needed.
func NewRowSetStore(dir string) (*RowSetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bills directory: %w", err)
	}
	return &RowSetStore{root: dir}, nil
}

// SaveRowSet writes one row per line item and returns the file path.
func (s *RowSetStore) SaveRowSet(_ context.Context, billNumber string, rows []entity.SalesRow) (string, error) {
	path := filepath.Join(s.root, billNumber+rowSetExtension)

	file := excelize.NewFile()
	defer file.Close()
	sheet := file.GetSheetName(0)

	for col, title := range rowSetHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", s.writeError(billNumber, err)
		}
		if err := file.SetCellValue(sheet, cell, title); err != nil {
			return "", s.writeError(billNumber, err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.Date.Format(rowSetDateLayout),
			row.BillNumber,
			row.CustomerName,
			row.Phone,
			row.Category,
			row.Product,
			row.Quantity,
			row.UnitPrice.InexactFloat64(),
			row.LineTotal.InexactFloat64(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", s.writeError(billNumber, err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return "", s.writeError(billNumber, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return "", s.writeError(billNumber, err)
	}
	return path, nil
}

func (s *RowSetStore) writeError(billNumber string, err error) error {
	return domainerror.NewStoreError(
		domainerror.ErrCodeRowSetWriteFailed,
		fmt.Sprintf("failed to write row-set %s", billNumber),
		err,
	)
}

// RowSetFile reads one persisted xlsx row-set as an aggregation source.
// Rows with unparseable dates are dropped and counted; missing required
// columns fail the whole source.
type RowSetFile struct {
	path string
}

// NewRowSetFile creates a source for one row-set file.
func NewRowSetFile(path string) *RowSetFile {
	return &RowSetFile{path: path}
}

// Name identifies the source in warnings.
func (f *RowSetFile) Name() string {
	return filepath.Base(f.path)
}

// Load reads the file's rows.
func (f *RowSetFile) Load(_ context.Context) (*adapter.RowSetResult, error) {
	file, err := excelize.OpenFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open row-set: %w", err)
	}
	defer file.Close()

	raw, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read row-set: %w", err)
	}
	if len(raw) == 0 {
		return &adapter.RowSetResult{}, nil
	}

	columns := make(map[string]int, len(raw[0]))
	for i, title := range raw[0] {
		columns[strings.TrimSpace(title)] = i
	}
	for _, required := range []string{"Date", "Category"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("row-set is missing required column %q", required)
		}
	}

	result := &adapter.RowSetResult{}
	for _, cells := range raw[1:] {
		row, ok := parseRow(cells, columns)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func parseRow(cells []string, columns map[string]int) (entity.SalesRow, bool) {
	get := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	date, ok := parseRowDate(get("Date"))
	if !ok {
		return entity.SalesRow{}, false
	}

	quantity, err := strconv.Atoi(get("Quantity"))
	if err != nil {
		quantity = 0
	}

	return entity.SalesRow{
		Date:         date,
		BillNumber:   get("Bill Number"),
		CustomerName: get("Customer Name"),
		Phone:        get("Phone"),
		Category:     get("Category"),
		Product:      get("Product"),
		Quantity:     quantity,
		UnitPrice:    parseDecimal(get("Price")),
		LineTotal:    parseDecimal(get("Total")),
	}, true
}

func parseRowDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{rowSetDateLayout, receipt.TimeLayout, receipt.DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ListRowSetSources returns one source per xlsx row-set under dir,
// sorted by file name. A missing directory yields no sources.
func ListRowSetSources(dir string) []adapter.RowSource {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var sources []adapter.RowSource
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), rowSetExtension) {
			continue
		}
		sources = append(sources, NewRowSetFile(filepath.Join(dir, entry.Name())))
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Name() < sources[j].Name() })
	return sources
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.RowSetStore = (*RowSetStore)(nil)
	_ adapter.RowSource   = (*RowSetFile)(nil)
)

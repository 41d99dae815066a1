// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/integration/persistence/model"
)

// salesRowRepository implements the adapter.SalesRowRepository interface.
type salesRowRepository struct {
	db *gorm.DB
}

// NewSalesRowRepository creates a new sales row repository instance.
func NewSalesRowRepository(db *gorm.DB) adapter.SalesRowRepository {
	return &salesRowRepository{
		db: db,
	}
}

// AppendRows appends the rows of one bill to the master store.
func (r *salesRowRepository) AppendRows(ctx context.Context, rows []entity.SalesRow) error {
	if len(rows) == 0 {
		return nil
	}

	models := make([]*model.SalesRowModel, len(rows))
	for i, row := range rows {
		models[i] = model.SalesRowFromEntity(row)
	}

	result := r.db.WithContext(ctx).Create(models)
	if result.Error != nil {
		return domainerror.NewStoreError(
			domainerror.ErrCodeMasterAppendFailed,
			"failed to append rows to master store",
			result.Error,
		)
	}
	return nil
}

// LoadAll returns every accumulated row, oldest first.
func (r *salesRowRepository) LoadAll(ctx context.Context) ([]entity.SalesRow, error) {
	var models []model.SalesRowModel
	result := r.db.WithContext(ctx).
		Order("date ASC, bill_number ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	rows := make([]entity.SalesRow, len(models))
	for i, m := range models {
		rows[i] = m.ToEntity()
	}
	return rows, nil
}

// MasterRowSource exposes the master repository as an aggregation
// source alongside the per-bill row-set files.
type MasterRowSource struct {
	repository adapter.SalesRowRepository
}

// NewMasterRowSource creates a source backed by the master repository.
func NewMasterRowSource(repository adapter.SalesRowRepository) *MasterRowSource {
	return &MasterRowSource{repository: repository}
}

// Name identifies the source in warnings.
func (s *MasterRowSource) Name() string {
	return "master store"
}

// Load reads every accumulated row.
func (s *MasterRowSource) Load(ctx context.Context) (*adapter.RowSetResult, error) {
	rows, err := s.repository.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return &adapter.RowSetResult{Rows: rows}, nil
}

// Ensure implementations satisfy interfaces.
var _ adapter.RowSource = (*MasterRowSource)(nil)

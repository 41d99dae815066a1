// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grocery-pos/backend/internal/domain/entity"
)

// SalesRowModel represents the sales_rows table: the master accumulation
// of one row per line item across all saved bills.
type SalesRowModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date         time.Time       `gorm:"not null;index"`
	BillNumber   string          `gorm:"type:varchar(20);not null;index"`
	CustomerName string          `gorm:"type:varchar(255);not null"`
	Phone        string          `gorm:"type:varchar(20);not null"`
	Category     string          `gorm:"type:varchar(50);not null;index"`
	Product      string          `gorm:"type:varchar(100);not null;index"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LineTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SalesRowModel.
func (SalesRowModel) TableName() string {
	return "sales_rows"
}

// ToEntity converts a SalesRowModel to a domain SalesRow entity.
func (m *SalesRowModel) ToEntity() entity.SalesRow {
	return entity.SalesRow{
		Date:         m.Date,
		BillNumber:   m.BillNumber,
		CustomerName: m.CustomerName,
		Phone:        m.Phone,
		Category:     m.Category,
		Product:      m.Product,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		LineTotal:    m.LineTotal,
	}
}

// SalesRowFromEntity creates a SalesRowModel from a domain SalesRow entity.
func SalesRowFromEntity(row entity.SalesRow) *SalesRowModel {
	return &SalesRowModel{
		ID:           uuid.New(),
		Date:         row.Date,
		BillNumber:   row.BillNumber,
		CustomerName: row.CustomerName,
		Phone:        row.Phone,
		Category:     row.Category,
		Product:      row.Product,
		Quantity:     row.Quantity,
		UnitPrice:    row.UnitPrice,
		LineTotal:    row.LineTotal,
	}
}

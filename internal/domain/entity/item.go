package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario con su stock corriente.
// Stock solo cambia por el libro de movimientos (Transaction) o por edición administrativa directa.
type Item struct {
	ID            int64
	Code          string // único
	Name          string
	CategoryID    *int64
	Stock         int64
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	SupplierID    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Resueltos en listados (solo lectura); "-" cuando no hay referencia.
	CategoryName string
	SupplierName string
}

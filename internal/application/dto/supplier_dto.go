package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// SupplierRequest entrada para crear o editar un proveedor.
type SupplierRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=255"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, Address: s.Address, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

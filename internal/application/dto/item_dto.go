package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ItemRequest entrada para crear o editar un artículo (el formulario envía todos los campos).
type ItemRequest struct {
	Code          string          `json:"code" validate:"required,max=50"`
	Name          string          `json:"name" validate:"required,max=100"`
	CategoryID    *int64          `json:"category_id" validate:"omitempty,gt=0"`
	Stock         int64           `json:"stock" validate:"gte=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	SupplierID    *int64          `json:"supplier_id" validate:"omitempty,gt=0"`
}

// ItemResponse salida de un artículo con nombres de categoría y proveedor resueltos.
type ItemResponse struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	CategoryID    *int64          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	Stock         int64           `json:"stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	SupplierID    *int64          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewItemResponse mapea la entidad a su salida.
func NewItemResponse(it *entity.Item) ItemResponse {
	return ItemResponse{
		ID:            it.ID,
		Code:          it.Code,
		Name:          it.Name,
		CategoryID:    it.CategoryID,
		CategoryName:  it.CategoryName,
		Stock:         it.Stock,
		PurchasePrice: it.PurchasePrice,
		SellingPrice:  it.SellingPrice,
		SupplierID:    it.SupplierID,
		SupplierName:  it.SupplierName,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

// NewItemResponses mapea una lista de artículos.
func NewItemResponses(list []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, NewItemResponse(it))
	}
	return out
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	// Delete elimina el proveedor; los artículos que lo referencian quedan sin proveedor.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, keyword string) ([]*entity.Supplier, error)
	Count(ctx context.Context) (int64, error)
}

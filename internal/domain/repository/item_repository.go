package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia del catálogo de artículos (DIP).
// Las dos últimas operaciones las usa el libro de movimientos dentro de una transacción.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) error
	// List filtra por código, nombre o categoría (sin distinguir mayúsculas), ordenado por nombre.
	List(ctx context.Context, keyword string) ([]*entity.Item, error)
	Count(ctx context.Context) (int64, error)
	// StockSummary devuelve la cantidad de artículos y la suma de su stock.
	StockSummary(ctx context.Context) (totalItems, totalStock int64, err error)
	// LowestStock devuelve los limit artículos con menor stock (ascendente).
	LowestStock(ctx context.Context, limit int) ([]*entity.Item, error)

	// GetStockForUpdate lee el stock y bloquea el artículo hasta el fin de la transacción.
	// Devuelve domain.ErrNotFound si el artículo no existe.
	GetStockForUpdate(ctx context.Context, itemID int64) (int64, error)
	// ApplyStockDelta suma delta (con signo) al stock del artículo.
	ApplyStockDelta(ctx context.Context, itemID, delta int64) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemSelect = `
	SELECT i.id, i.code, i.name, i.category_id, i.stock, i.purchase_price, i.selling_price, i.supplier_id,
	       i.created_at, i.updated_at, COALESCE(c.name, '-'), COALESCE(s.name, '-')
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id
	LEFT JOIN suppliers s ON s.id = i.supplier_id`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Code, &it.Name, &it.CategoryID, &it.Stock, &it.PurchasePrice, &it.SellingPrice,
		&it.SupplierID, &it.CreatedAt, &it.UpdatedAt, &it.CategoryName, &it.SupplierName)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func collectItems(rows pgx.Rows) ([]*entity.Item, error) {
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Create persiste un nuevo artículo y asigna su ID.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (code, name, category_id, stock, purchase_price, selling_price, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.Code, item.Name, nullableID(item.CategoryID), item.Stock, item.PurchasePrice, item.SellingPrice,
		nullableID(item.SupplierID), item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return mapWriteErr("insert item", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, itemSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// GetByCode obtiene un artículo por código. (nil, nil) si no existe.
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, itemSelect+` WHERE i.code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by code: %w", err)
	}
	return it, nil
}

// Update reemplaza los datos editables del artículo, incluido el stock (edición administrativa directa).
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items SET code = $2, name = $3, category_id = $4, stock = $5, purchase_price = $6,
		       selling_price = $7, supplier_id = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.Code, item.Name, nullableID(item.CategoryID), item.Stock, item.PurchasePrice,
		item.SellingPrice, nullableID(item.SupplierID), item.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr("update item", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el artículo; sus transacciones se borran por ON DELETE CASCADE.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por código, nombre o categoría (ILIKE) y ordena por nombre.
func (r *ItemRepo) List(ctx context.Context, keyword string) ([]*entity.Item, error) {
	query := itemSelect + `
		WHERE $1 = '' OR i.code ILIKE '%' || $1 || '%' OR i.name ILIKE '%' || $1 || '%' OR c.name ILIKE '%' || $1 || '%'
		ORDER BY i.name, i.id`
	rows, err := r.q.Query(ctx, query, keyword)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return collectItems(rows)
}

func (r *ItemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (r *ItemRepo) StockSummary(ctx context.Context) (totalItems, totalStock int64, err error) {
	err = r.q.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(stock), 0)::BIGINT FROM items`).Scan(&totalItems, &totalStock)
	if err != nil {
		return 0, 0, fmt.Errorf("stock summary: %w", err)
	}
	return totalItems, totalStock, nil
}

func (r *ItemRepo) LowestStock(ctx context.Context, limit int) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, itemSelect+` ORDER BY i.stock ASC, i.id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("lowest stock: %w", err)
	}
	return collectItems(rows)
}

// GetStockForUpdate lee el stock con SELECT ... FOR UPDATE; la fila queda bloqueada hasta Commit o Rollback.
func (r *ItemRepo) GetStockForUpdate(ctx context.Context, itemID int64) (int64, error) {
	var stock int64
	err := r.q.QueryRow(ctx, `SELECT stock FROM items WHERE id = $1 FOR UPDATE`, itemID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get stock for update: %w", err)
	}
	return stock, nil
}

// ApplyStockDelta suma delta al stock. El CHECK (stock >= 0) de la tabla rechaza cualquier negativo.
func (r *ItemRepo) ApplyStockDelta(ctx context.Context, itemID, delta int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE items SET stock = stock + $2, updated_at = now() WHERE id = $1`, itemID, delta)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update stock: el artículo %d quedaría negativo: %w", itemID, err)
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

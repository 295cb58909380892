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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO suppliers (name, address, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		s.Name, s.Address, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return mapWriteErr("insert supplier", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx,
		`SELECT id, name, address, created_at, updated_at FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE suppliers SET name = $2, address = $3, updated_at = $4 WHERE id = $1`,
		s.ID, s.Name, s.Address, s.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr("update supplier", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el proveedor; items.supplier_id pasa a NULL por ON DELETE SET NULL.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) List(ctx context.Context, keyword string) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, address, created_at, updated_at FROM suppliers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR address ILIKE '%' || $1 || '%'
		ORDER BY name, id`, keyword)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}

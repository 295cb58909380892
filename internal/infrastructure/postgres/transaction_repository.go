package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo libro de movimientos sobre PostgreSQL. Solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Append inserta la transacción y asigna su ID.
func (r *TransactionRepo) Append(ctx context.Context, trx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_date, item_id, quantity, transaction_type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		trx.Date, trx.ItemID, trx.Quantity, trx.Type, trx.Note, trx.CreatedAt,
	).Scan(&trx.ID)
	if err != nil {
		return mapWriteErr("insert transaction", err)
	}
	return nil
}

// List arma el WHERE según los filtros presentes. Orden: fecha DESC, id DESC.
func (r *TransactionRepo) List(ctx context.Context, f entity.TransactionFilter) ([]*entity.Transaction, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.ItemID != 0 {
		add("t.item_id = $%d", f.ItemID)
	}
	if f.Type != "" {
		add("t.transaction_type = $%d", f.Type)
	}
	if f.From != nil {
		add("t.transaction_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("t.transaction_date <= $%d", *f.To)
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT t.id, t.transaction_date, t.item_id, t.quantity, t.transaction_type, t.notes, t.created_at, i.name
		FROM transactions t
		JOIN items i ON i.id = t.item_id`)
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY t.transaction_date DESC, t.id DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.ItemID, &t.Quantity, &t.Type, &t.Note, &t.CreatedAt, &t.ItemName); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TransactionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

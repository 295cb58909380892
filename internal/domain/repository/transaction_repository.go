package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// TransactionRepository define el puerto del libro de movimientos (solo anexar y consultar).
type TransactionRepository interface {
	// Append persiste la transacción y asigna su ID.
	Append(ctx context.Context, trx *entity.Transaction) error
	// List devuelve el historial ordenado por fecha DESC, id DESC, con ItemName resuelto.
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)
	Count(ctx context.Context) (int64, error)
}

package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando repositorios atados a esa tx.
// Si fn devuelve error nada queda confirmado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		txs repository.TransactionRepository,
	) error) error
}

// ItemLocker serializa los registros sobre un mismo artículo entre procesos o instancias.
// Lock devuelve la función que libera el candado.
type ItemLocker interface {
	Lock(ctx context.Context, itemID int64) (unlock func(), err error)
}

package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo libro de movimientos en memoria (solo anexar).
type TransactionRepo struct {
	scope
}

func (r *TransactionRepo) Append(ctx context.Context, trx *entity.Transaction) error {
	return r.write(ctx, func(st *state) error {
		if _, ok := st.items[trx.ItemID]; !ok {
			return fmt.Errorf("%w: artículo %d inexistente", domain.ErrInvalidInput, trx.ItemID)
		}
		if trx.Quantity <= 0 {
			return fmt.Errorf("insert transaction: cantidad %d no positiva", trx.Quantity)
		}
		if trx.Type != entity.TransactionTypeIN && trx.Type != entity.TransactionTypeOUT {
			return fmt.Errorf("insert transaction: tipo %q", trx.Type)
		}
		st.txSeq++
		trx.ID = st.txSeq
		cp := *trx
		cp.ItemName = ""
		st.txs = append(st.txs, &cp)
		return nil
	})
}

func (r *TransactionRepo) List(ctx context.Context, f entity.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.read(ctx, func(st *state) error {
		for _, t := range st.txs {
			if !matches(t, f) {
				continue
			}
			cp := *t
			if it, ok := st.items[t.ItemID]; ok {
				cp.ItemName = it.Name
			}
			out = append(out, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *TransactionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.read(ctx, func(st *state) error {
		n = int64(len(st.txs))
		return nil
	})
	return n, err
}

func matches(t *entity.Transaction, f entity.TransactionFilter) bool {
	if f.ItemID != 0 && t.ItemID != f.ItemID {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.From != nil && t.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Date.After(*f.To) {
		return false
	}
	return true
}

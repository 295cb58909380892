package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// DefaultRecentLimit cantidad de transacciones que devuelve Recent si no se indica otra.
const DefaultRecentLimit = 10

// HistoryFilter filtros del historial tal como llegan del cliente (fechas en texto).
type HistoryFilter struct {
	ItemID int64
	Type   string
	From   string
	To     string
	Limit  int
	Offset int
}

// HistoryUseCase consultas de solo lectura sobre el libro de movimientos.
type HistoryUseCase struct {
	repo repository.TransactionRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.TransactionRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// Recent devuelve las últimas limit transacciones (fecha DESC, id DESC).
func (uc *HistoryUseCase) Recent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	list, err := uc.repo.List(ctx, entity.TransactionFilter{Limit: limit})
	if err != nil {
		return nil, domain.WrapStore("recent transactions", err)
	}
	return list, nil
}

// List aplica el filtro. Fechas en YYYY-MM-DD (inclusive); tipo IN u OUT.
func (uc *HistoryUseCase) List(ctx context.Context, in HistoryFilter) ([]*entity.Transaction, error) {
	f := entity.TransactionFilter{ItemID: in.ItemID, Type: in.Type, Limit: in.Limit, Offset: in.Offset}

	var invalid []string
	if in.ItemID < 0 {
		invalid = append(invalid, "item_id")
	}
	if in.Type != "" && in.Type != entity.TransactionTypeIN && in.Type != entity.TransactionTypeOUT {
		invalid = append(invalid, "type")
	}
	if in.From != "" {
		t, err := ParseDate(in.From)
		if err != nil {
			invalid = append(invalid, "from")
		}
		f.From = &t
	}
	if in.To != "" {
		t, err := ParseDate(in.To)
		if err != nil {
			invalid = append(invalid, "to")
		}
		f.To = &t
	}
	if in.Limit < 0 {
		invalid = append(invalid, "limit")
	}
	if in.Offset < 0 {
		invalid = append(invalid, "offset")
	}
	if len(invalid) == 0 && f.From != nil && f.To != nil && f.To.Before(*f.From) {
		invalid = append(invalid, "to")
	}
	if len(invalid) > 0 {
		return nil, domain.NewInvalidFields(invalid...)
	}

	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, domain.WrapStore("list transactions", err)
	}
	return list, nil
}

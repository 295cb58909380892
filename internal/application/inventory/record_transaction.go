package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/validation"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// RecordTransactionInput entrada para registrar un movimiento de stock.
// Date acepta YYYY-MM-DD o RFC 3339.
type RecordTransactionInput struct {
	Date     string `json:"transaction_date" validate:"required"`
	ItemID   int64  `json:"item_id" validate:"required,gt=0"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	Type     string `json:"transaction_type" validate:"required,oneof=IN OUT"`
	Note     string `json:"notes" validate:"omitempty,max=500"`
}

// RecordTransactionUseCase aplica la regla del libro: una salida no puede dejar stock negativo;
// si se acepta, el registro y el ajuste de stock se confirman juntos o no se confirma nada.
type RecordTransactionUseCase struct {
	txRunner TxRunner
	locker   ItemLocker
	log      *logger.Logger
	now      func() time.Time
}

// NewRecordTransactionUseCase construye el caso de uso. locker puede ser nil.
func NewRecordTransactionUseCase(txRunner TxRunner, locker ItemLocker, log *logger.Logger) *RecordTransactionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RecordTransactionUseCase{
		txRunner: txRunner,
		locker:   locker,
		log:      log.Named("ledger"),
		now:      time.Now,
	}
}

// RecordTransaction valida la entrada, bloquea la fila del artículo (SELECT ... FOR UPDATE o equivalente),
// comprueba el stock para OUT, anexa la transacción y ajusta el stock en una sola unidad atómica.
//
// Errores: *domain.ValidationError, domain.ErrInsufficientStock o *domain.PersistenceError.
func (uc *RecordTransactionUseCase) RecordTransaction(ctx context.Context, in RecordTransactionInput) (*entity.Transaction, error) {
	in.Date = strings.TrimSpace(in.Date)
	in.Type = strings.TrimSpace(in.Type)
	in.Note = strings.TrimSpace(in.Note)

	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, domain.NewInvalidFields("transaction_date")
	}

	if uc.locker != nil {
		unlock, err := uc.locker.Lock(ctx, in.ItemID)
		if err != nil {
			uc.log.Error().Err(err).Int64("item_id", in.ItemID).Msg("no se pudo bloquear el artículo")
			return nil, domain.NewPersistenceError("lock item", err)
		}
		defer unlock()
	}

	trx := &entity.Transaction{
		Date:      date,
		ItemID:    in.ItemID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		Note:      in.Note,
		CreatedAt: uc.now().UTC(),
	}

	err = uc.txRunner.Run(ctx, func(items repository.ItemRepository, txs repository.TransactionRepository) error {
		stock, err := items.GetStockForUpdate(ctx, in.ItemID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidFields("item_id")
			}
			return domain.NewPersistenceError("lock stock", err)
		}
		if in.Type == entity.TransactionTypeOUT && stock < in.Quantity {
			return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, stock, in.Quantity)
		}
		if err := txs.Append(ctx, trx); err != nil {
			return domain.WrapStore("append transaction", err)
		}
		if err := items.ApplyStockDelta(ctx, in.ItemID, trx.SignedQuantity()); err != nil {
			return domain.NewPersistenceError("update stock", err)
		}
		return nil
	})
	if err != nil {
		err = domain.WrapStore("record transaction", err)
		ev := uc.log.Warn()
		if errors.Is(err, domain.ErrPersistence) {
			ev = uc.log.Error()
		}
		ev.Err(err).Int64("item_id", in.ItemID).Str("type", in.Type).Int64("quantity", in.Quantity).
			Msg("transacción rechazada")
		return nil, err
	}

	uc.log.Info().Int64("transaction_id", trx.ID).Int64("item_id", trx.ItemID).
		Str("type", trx.Type).Int64("quantity", trx.Quantity).Msg("transacción registrada")
	return trx, nil
}

// ParseDate interpreta YYYY-MM-DD o RFC 3339 y lo reduce a la fecha de calendario (UTC, 00:00).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(entity.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

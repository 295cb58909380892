package dto

import (
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// TransactionResponse salida de una transacción del libro. La fecha va como YYYY-MM-DD.
type TransactionResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"transaction_date"`
	ItemID    int64     `json:"item_id"`
	ItemName  string    `json:"item_name,omitempty"`
	Quantity  int64     `json:"quantity"`
	Type      string    `json:"transaction_type"`
	Note      string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Date:      t.Date.Format(entity.DateLayout),
		ItemID:    t.ItemID,
		ItemName:  t.ItemName,
		Quantity:  t.Quantity,
		Type:      t.Type,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}

func NewTransactionResponses(list []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}

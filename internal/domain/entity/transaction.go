package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIN  = "IN"  // entrada, suma stock
	TransactionTypeOUT = "OUT" // salida, resta stock
)

// DateLayout formato canónico de la fecha de una transacción.
const DateLayout = "2006-01-02"

// Transaction es un registro inmutable del libro de movimientos.
type Transaction struct {
	ID        int64
	Date      time.Time // fecha de calendario (sin hora)
	ItemID    int64
	Quantity  int64 // siempre > 0; el signo lo da Type
	Type      string
	Note      string
	CreatedAt time.Time

	ItemName string // resuelto en listados
}

// SignedQuantity devuelve +Quantity para IN y -Quantity para OUT.
func (t *Transaction) SignedQuantity() int64 {
	if t.Type == TransactionTypeOUT {
		return -t.Quantity
	}
	return t.Quantity
}

// TransactionFilter criterios de consulta del historial. Valores cero = sin filtro.
// Limit 0 devuelve todo el historial.
type TransactionFilter struct {
	ItemID int64
	Type   string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

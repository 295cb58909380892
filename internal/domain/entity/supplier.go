package entity

import "time"

// Supplier representa un proveedor.
type Supplier struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

// Category agrupa artículos (lista sembrada, nombre único).
type Category struct {
	ID   int64
	Name string
}

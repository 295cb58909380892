package dto

// ErrorResponse cuerpo de error HTTP. Fields solo se llena en errores de validación.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// ListResponse envoltura de listados con el total devuelto.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse garantiza "items": [] en lugar de null cuando la lista está vacía.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrPersistence       = errors.New("fallo de persistencia")
)

// ValidationError indica campos obligatorios ausentes o con formato inválido.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Missing []string
	Invalid []string
}

// NewMissingFields construye un ValidationError con los campos faltantes indicados.
func NewMissingFields(fields ...string) *ValidationError {
	return &ValidationError{Missing: fields}
}

// NewInvalidFields construye un ValidationError con los campos inválidos indicados.
func NewInvalidFields(fields ...string) *ValidationError {
	return &ValidationError{Invalid: fields}
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "campos obligatorios: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "campos inválidos: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return ErrInvalidInput.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Fields devuelve todos los campos señalados (faltantes primero).
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Missing)+len(e.Invalid))
	out = append(out, e.Missing...)
	return append(out, e.Invalid...)
}

// PersistenceError envuelve un fallo de infraestructura al leer o escribir en el almacén.
// Nada quedó confirmado, así que el llamador puede reintentar la operación completa.
type PersistenceError struct {
	Op  string
	Err error
}

// NewPersistenceError envuelve err como fallo de persistencia de la operación op.
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return "persistencia: " + e.Op
	}
	return "persistencia: " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}

// WrapStore deja pasar los errores de dominio y envuelve cualquier otro fallo del almacén
// como PersistenceError de la operación op.
func WrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		ErrInvalidInput, ErrInsufficientStock, ErrPersistence, ErrNotFound,
		ErrUserNotFound, ErrDuplicate, ErrUnauthorized, ErrForbidden,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return NewPersistenceError(op, err)
}

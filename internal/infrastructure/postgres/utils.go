package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/stock-ledger/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

func isForeignKeyViolation(err error) bool { return pgCode(err) == codeForeignKeyViolation }

func isCheckViolation(err error) bool { return pgCode(err) == codeCheckViolation }

// mapWriteErr traduce las violaciones de constraints a errores de dominio; el resto se envuelve con op.
func mapWriteErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		return fmt.Errorf("%w: referencia inexistente (%s)", domain.ErrInvalidInput, pgErr.ConstraintName)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// nullableID convierte un *int64 en argumento SQL (NULL si es nil).
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

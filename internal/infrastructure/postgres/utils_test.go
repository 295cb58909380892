package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-ledger/internal/domain"
)

func TestMapWriteErr(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "items_code_key"}
	assert.ErrorIs(t, mapWriteErr("insert item", unique), domain.ErrDuplicate)

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "items_category_id_fkey"}
	err := mapWriteErr("insert item", fk)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "items_category_id_fkey")

	check := &pgconn.PgError{Code: "23514"}
	assert.True(t, isCheckViolation(check))
	err = mapWriteErr("update stock", check)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
	assert.ErrorIs(t, err, check)
}

func TestNullableID(t *testing.T) {
	assert.Nil(t, nullableID(nil))
	v := int64(4)
	assert.Equal(t, int64(4), nullableID(&v))
}

func TestFirstIPv4(t *testing.T) {
	assert.Equal(t, "10.0.0.5", firstIPv4(context.Background(), "10.0.0.5"))
	assert.Equal(t, "", firstIPv4(context.Background(), "::1"))
}

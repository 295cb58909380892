package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-ledger/internal/domain"
)

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := error(domain.NewMissingFields("item_id", "quantity"))

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, errors.Is(err, domain.ErrPersistence))
	assert.Equal(t, "campos obligatorios: item_id, quantity", err.Error())
}

func TestValidationError_FieldsYMensajeCombinado(t *testing.T) {
	ve := &domain.ValidationError{Missing: []string{"transaction_date"}, Invalid: []string{"transaction_type"}}

	assert.Equal(t, []string{"transaction_date", "transaction_type"}, ve.Fields())
	assert.Contains(t, ve.Error(), "campos obligatorios: transaction_date")
	assert.Contains(t, ve.Error(), "campos inválidos: transaction_type")
}

func TestPersistenceError_UnwrapsBoth(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("registrar: %w", domain.NewPersistenceError("commit", cause))

	assert.True(t, errors.Is(err, domain.ErrPersistence))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))

	var pe *domain.PersistenceError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "commit", pe.Op)
}

func TestWrapStore(t *testing.T) {
	assert.Nil(t, domain.WrapStore("list items", nil))

	dup := fmt.Errorf("insert item: %w", domain.ErrDuplicate)
	assert.Same(t, dup, domain.WrapStore("create item", dup))

	raw := errors.New("dial tcp: refused")
	wrapped := domain.WrapStore("list items", raw)
	assert.True(t, errors.Is(wrapped, domain.ErrPersistence))
	assert.True(t, errors.Is(wrapped, raw))
}

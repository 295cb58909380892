package validation

import (
	"errors"
	"testing"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Code  string `json:"code" validate:"required"`
	Qty   int64  `json:"quantity" validate:"required,gt=0"`
	Type  string `json:"transaction_type" validate:"required,oneof=IN OUT"`
	Notes string `json:"notes" validate:"omitempty,max=5"`
}

func TestStruct_OK(t *testing.T) {
	assert.NoError(t, Struct(sample{Code: "BRG-001", Qty: 1, Type: "IN"}))
}

func TestStruct_MissingAndInvalid(t *testing.T) {
	err := Struct(sample{Qty: -2, Type: "ADJ", Notes: "demasiado larga"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"code"}, ve.Missing)
	assert.ElementsMatch(t, []string{"quantity", "transaction_type", "notes"}, ve.Invalid)
}

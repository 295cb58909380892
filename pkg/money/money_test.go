package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 500,00", FormatRupiah(decimal.NewFromInt(500)))
	assert.Contains(t, FormatRupiah(decimal.NewFromInt(65000)), "Rp ")
}

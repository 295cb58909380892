package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := Generate("s3cret", 7, "admin", "admin", "stock-ledger", 5)
	require.NoError(t, err)

	id, username, role, err := Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "admin", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("s3cret", 1, "staf", "standard", "stock-ledger", 5)
	require.NoError(t, err)

	_, _, _, err = Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("s3cret", 1, "staf", "standard", "stock-ledger", -1)
	require.NoError(t, err)

	_, _, _, err = Parse("s3cret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", 1, "x", "admin", "i", 5)
	assert.Error(t, err)
}

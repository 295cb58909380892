package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Embebidas(t *testing.T) {
	names, err := migrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "migrations/001_init.sql", names[0])

	body, err := migrationsFS.ReadFile(names[0])
	require.NoError(t, err)
	sql := string(body)
	assert.Contains(t, sql, "CHECK (stock >= 0)")
	assert.Contains(t, sql, "CHECK (quantity > 0)")
	assert.Contains(t, sql, "ON DELETE CASCADE")
	assert.Contains(t, sql, "(transaction_date DESC, id DESC)")
}

func TestMigrationNames(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_init", names[0])
}

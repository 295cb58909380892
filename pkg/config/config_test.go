package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, LedgerLockLocal, cfg.Ledger.Lock)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.Storage.Seed)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_LOCK", "none")
	t.Setenv("REPORTS_SCHEDULE", "0 18 * * *")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, LedgerLockNone, cfg.Ledger.Lock)
	assert.Equal(t, "0 18 * * *", cfg.Reports.Schedule)
}

func TestLoad_RedisLockSinAddr(t *testing.T) {
	t.Setenv("LEDGER_LOCK", "redis")
	t.Setenv("REDIS_ADDR", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "inv", Password: "p@ss:w/rd", DBName: "inventori", SSLMode: "disable"}

	assert.Equal(t, "postgres://inv:p%40ss%3Aw%2Frd@db:5432/inventori?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

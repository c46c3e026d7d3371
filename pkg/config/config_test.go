package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-earnings-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.Earnings.DefaultCommission)
	assert.Equal(t, 20, cfg.Earnings.PDFRowsPerPage)
	assert.Equal(t, config.SourcePostgres, cfg.Backend.Source)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Empty(t, cfg.Redis.Addr, "sin REDIS_ADDR no hay caché")
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("DEFAULT_COMMISSION_PERCENT", "12.5")
	t.Setenv("PDF_ROWS_PER_PAGE", "30")
	t.Setenv("ORDERS_SOURCE", "API")
	t.Setenv("VENDOR_API_BASE_URL", "https://backend.example.com/")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 12.5, cfg.Earnings.DefaultCommission)
	assert.Equal(t, 30, cfg.Earnings.PDFRowsPerPage)
	assert.Equal(t, config.SourceAPI, cfg.Backend.Source)
	assert.Equal(t, "https://backend.example.com", cfg.Backend.BaseURL, "se recorta la barra final")
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_APISinBaseURL_Error(t *testing.T) {
	t.Setenv("ORDERS_SOURCE", "api")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ComisionFueraDeRango_Error(t *testing.T) {
	t.Setenv("DEFAULT_COMMISSION_PERCENT", "150")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestEarningsConfig_LocationInvalidaCaeAUTC(t *testing.T) {
	c := config.EarningsConfig{Timezone: "Marte/Olympus"}
	assert.Equal(t, time.UTC, c.Location())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "earn", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/earn?sslmode=disable", c.ConnectionString())
}

func TestLoad_PoolDB(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "8")
	t.Setenv("DB_MIN_CONNS", "20")
	t.Setenv("DB_SLOW_QUERY_MS", "250")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.DB.MaxConns)
	assert.Equal(t, 0, cfg.DB.MinConns, "mínimo mayor que el máximo se descarta")
	assert.Equal(t, 5*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.DB.SlowQuery)
}

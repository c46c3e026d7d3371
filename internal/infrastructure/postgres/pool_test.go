package postgres

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-earnings-api/pkg/config"
	"github.com/jhoicas/vendor-earnings-api/pkg/logger"
)

func TestPoolConfig_TomaLosValoresDeDBConfig(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: 5432, User: "app", Password: "secret", DBName: "earn", SSLMode: "disable",
		MaxConns: 10, MinConns: 3, ConnectTimeout: 4 * time.Second, SlowQuery: 200 * time.Millisecond,
	}

	pc, err := poolConfig(cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, int32(10), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, 4*time.Second, pc.ConnConfig.ConnectTimeout)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, "earn", pc.ConnConfig.Database)
	assert.NotNil(t, pc.AfterConnect, "registra el codec decimal")
	assert.IsType(t, &slowQueryTracer{}, pc.ConnConfig.Tracer)
}

func TestPoolConfig_DatabaseURLTienePrioridad(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://u:p@remote.example.com:6543/prod?sslmode=disable", Host: "db", MaxConns: 5}

	pc, err := poolConfig(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "remote.example.com", pc.ConnConfig.Host, "el host no se reescribe")
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Nil(t, pc.ConnConfig.Tracer, "sin logger no hay tracer")
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://%zz", MaxConns: 1}, nil)
	assert.Error(t, err)
}

func TestSlowQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	tr := &slowQueryTracer{log: log, threshold: 100 * time.Millisecond, now: func() time.Time { return now }}

	run := func(elapsed time.Duration, err error) {
		ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT *\n\t FROM orders\n WHERE vendor_id = $1"})
		now = now.Add(elapsed)
		tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: err})
	}

	run(10*time.Millisecond, nil)
	assert.Empty(t, buf.String(), "consulta rápida no se registra")

	run(150*time.Millisecond, nil)
	assert.Contains(t, buf.String(), "consulta lenta")
	assert.Contains(t, buf.String(), "SELECT * FROM orders WHERE vendor_id = $1")

	buf.Reset()
	run(time.Millisecond, errors.New("relation does not exist"))
	assert.Contains(t, buf.String(), "consulta fallida")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestCompactSQL_Recorta(t *testing.T) {
	out := compactSQL(strings.Repeat("x ", 300))
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.Len(t, out, 203)
}

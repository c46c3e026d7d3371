package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vendor-earnings-api/pkg/config"
	"github.com/jhoicas/vendor-earnings-api/pkg/logger"
)

// NewPool abre el pool de PostgreSQL y verifica la conexión con un ping acotado por
// DB_CONNECT_TIMEOUT_SECONDS.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg, log)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// poolConfig traduce DBConfig a la configuración de pgxpool.
func poolConfig(cfg config.DBConfig, log *logger.Logger) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	// NUMERIC de menú y comisiones -> shopspring/decimal. Los montos de órdenes se leen
	// como float64 para conservar NaN y que el normalizador los rechace.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	if log != nil && cfg.SlowQuery > 0 {
		poolCfg.ConnConfig.Tracer = &slowQueryTracer{log: log, threshold: cfg.SlowQuery}
	}
	return poolCfg, nil
}

type traceStartKey struct{}

type traceStart struct {
	sql   string
	start time.Time
}

// slowQueryTracer registra en warn las consultas que superan el umbral y en error las fallidas.
type slowQueryTracer struct {
	log       *logger.Logger
	threshold time.Duration
	now       func() time.Time
}

func (t *slowQueryTracer) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceStartKey{}, traceStart{sql: data.SQL, start: t.clock()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceStartKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := t.clock().Sub(st.start)
	switch {
	case data.Err != nil:
		t.log.Error().Err(data.Err).Dur("elapsed", elapsed).Str("sql", compactSQL(st.sql)).Msg("postgres: consulta fallida")
	case elapsed >= t.threshold:
		t.log.Warn().Dur("elapsed", elapsed).Str("sql", compactSQL(st.sql)).Msg("postgres: consulta lenta")
	}
}

// compactSQL colapsa espacios y recorta la sentencia para el log.
func compactSQL(sql string) string {
	out := strings.Join(strings.Fields(sql), " ")
	if len(out) > 200 {
		return out[:200] + "..."
	}
	return out
}

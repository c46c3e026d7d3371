package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-earnings-api/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.WithVendor("v-1").Info().Str("order_id", "o-9").Msg("comisión por defecto")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "v-1", entry["vendor_id"])
	assert.Equal(t, "o-9", entry["order_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "error", Output: &buf})

	log.Warn().Msg("no debe salir")
	assert.Zero(t, buf.Len())
}

package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/produtora-site/internal/logger"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "debug", "json")

	log.Debug().Str("lead_id", "abc").Msg("lead criado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "abc", line["lead_id"])
	assert.Equal(t, "lead criado", line["message"])
}

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "barulhento", "json")

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	log.Debug().Msg("ignorado")
	assert.Zero(t, buf.Len())
}

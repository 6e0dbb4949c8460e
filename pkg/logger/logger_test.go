package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNivel(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verboso", zerolog.InfoLevel},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, nivel(c.entrada), "nivel(%q)", c.entrada)
	}
}

func TestNewRespetaNivel(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

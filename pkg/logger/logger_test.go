package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/CajaMenor-api/pkg/logger"
)

// El nivel configurado gobierna el logger resultante.
func TestNew_NivelDesdeConfig(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

// Un nivel no reconocido (o vacío) cae a info en lugar de fallar.
func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	for _, level := range []string{"ruido", ""} {
		l := logger.New(logger.Config{Env: "production", Level: level})
		assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel %q", level)
	}
}

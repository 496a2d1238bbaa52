// Package logger centraliza el logging estructurado de la API de caja menor.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config nivel y formato del logger. El nivel llega de la configuración de la
// aplicación (LOG_LEVEL); un valor no reconocido cae a info.
type Config struct {
	Env   string // development imprime consola legible, el resto JSON
	Level string // trace, debug, info, warn, error
}

// Logger envoltorio inyectable sobre zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según Config y redirige también el logger global de
// zerolog, de modo que los logs emitidos vía rs/zerolog/log (los handlers HTTP
// lo usan para errores internos) salgan con el mismo nivel y formato.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger interno para dependencias que piden zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

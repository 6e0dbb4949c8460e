// Package logger envuelve zerolog con la configuración de la app: salida
// legible en desarrollo, JSON en el resto de entornos.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config opciones del logger.
type Config struct {
	Env   string // development activa la salida de consola
	Level string // trace, debug, info, warn, error; otro valor cae en info
}

// Logger logger estructurado de la aplicación. Se inyecta por constructor
// en los componentes que registran algo (refresco de alertas, main).
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno y el nivel configurados.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	zl := zerolog.New(w).Level(nivel(cfg.Level)).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

func nivel(s string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// Eventos por severidad, delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un contexto para derivar un logger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger subyacente para integraciones que lo pidan.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

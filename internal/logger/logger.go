// Package logger configures zerolog and exposes per-component loggers.
package logger

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel keeps fetch output free of log noise.
const DefaultLevel = zerolog.WarnLevel

var (
	Main  zerolog.Logger
	Probe zerolog.Logger
	HTTP  zerolog.Logger
)

func init() {
	Main = component("main")
	Probe = component("probe")
	HTTP = component("http")
}

// Init configures the global logger writing to stderr. An empty or unknown
// level falls back to DefaultLevel.
func Init(level string, pretty bool) {
	InitWriter(os.Stderr, level, pretty)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return file + ":" + strconv.Itoa(line)
	}
	zerolog.SetGlobalLevel(ParseLevel(level))

	if pretty {
		writer := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
		}
		writer.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(i.(string))
		}
		log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	}

	Main = component("main")
	Probe = component("probe")
	HTTP = component("http")
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return DefaultLevel
	}
}

func component(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}

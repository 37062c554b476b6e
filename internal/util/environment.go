package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type environment struct {
	APIServerURL string
	NatsURL      string
	WebsocketURL string
	PrintGameMsg string
	LogLevel     string
}

// Env is a helper object for accessing environment variables. The config
// file takes precedence; these are fallbacks for container deployments.
var Env = &environment{
	APIServerURL: "API_SERVER_URL",
	NatsURL:      "NATS_URL",
	WebsocketURL: "WS_URL",
	PrintGameMsg: "PRINT_GAME_MSG",
	LogLevel:     "LOG_LEVEL",
}

func (e *environment) GetAPIServerURL() string {
	return os.Getenv(e.APIServerURL)
}

func (e *environment) GetNatsURL() string {
	v := os.Getenv(e.NatsURL)
	if v == "" {
		return "nats://localhost:4222"
	}
	return v
}

func (e *environment) GetWebsocketURL() string {
	return os.Getenv(e.WebsocketURL)
}

func (e *environment) GetPrintGameMsg() string {
	v := os.Getenv(e.PrintGameMsg)
	if v == "" {
		return "false"
	}
	return v
}

func (e *environment) ShouldPrintGameMsg() bool {
	return e.GetPrintGameMsg() == "1" || strings.ToLower(e.GetPrintGameMsg()) == "true"
}

func (e *environment) GetLogLevel() string {
	v := os.Getenv(e.LogLevel)
	if v == "" {
		return "info"
	}
	return v
}

func (e *environment) GetZeroLogLogLevel() zerolog.Level {
	l := e.GetLogLevel()
	switch strings.ToLower(l) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		fallthrough
	case "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		environmentLogger.Warn().Msgf("Unsupported %s: %s. Using info", e.LogLevel, l)
		return zerolog.InfoLevel
	}
}

func (e *environment) String() string {
	return fmt.Sprintf("api=%s nats=%s ws=%s", e.GetAPIServerURL(), e.GetNatsURL(), e.GetWebsocketURL())
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const LogLevelEnv = "AOC_LOG_LEVEL"
const LogFormatEnv = "AOC_LOG_FORMAT"

// ConfigureLogger sets the logrus level and formatter from the environment.
// An explicit level overrides AOC_LOG_LEVEL.
func ConfigureLogger(levelMaybe ...string) {
	time.Local = time.FixedZone("UTC", 0)

	level := os.Getenv(LogLevelEnv)
	if len(levelMaybe) > 0 && levelMaybe[0] != "" {
		level = levelMaybe[0]
	}
	logrus.SetLevel(ParseLevel(level))

	format := os.Getenv(LogFormatEnv)
	if format == "" {
		format = "color-text"
	}
	switch strings.ToLower(format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
		})
	case "color-text":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: false,
			ForceColors:   true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format":  format,
			"options": []string{"json", "text", "color-text"},
		}).Warn("unknown format")
	}
}

// ParseLevel maps a level name to logrus, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	}
	return logrus.InfoLevel
}

// VerbosityLevel maps a -v count to a level name: none is warn, then info,
// debug and trace.
func VerbosityLevel(count int) string {
	switch {
	case count <= 0:
		return "warn"
	case count == 1:
		return "info"
	case count == 2:
		return "debug"
	}
	return "trace"
}

package core

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// init initializes the logging configuration for the application based on the UMAP_DEBUG environment variable.
// This is the only init in the package that logs.
func init() {
	cfg, err := LoadConfig()
	if err != nil {
		// Fall back to the raw variable; a bad UMAP_WORKERS must not hide the log level.
		cfg.Debug = os.Getenv(envPrefix + "_DEBUG")
	}
	configureLogging(cfg.Debug)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read UMAP configuration from environment")
	}
}

// configureLogging applies the level for debugMode and then emits the startup report.
func configureLogging(debugMode string) {
	zerolog.SetGlobalLevel(logLevel(debugMode))
	reportAcceleration()
}

// logLevel maps a UMAP_DEBUG value to a zerolog level.
func logLevel(debugMode string) zerolog.Level {
	switch strings.TrimSpace(strings.ToLower(debugMode)) {
	case "off", "0":
		return zerolog.Disabled
	case "full":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

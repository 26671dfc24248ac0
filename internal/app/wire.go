package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"watchlist/internal/config"
	"watchlist/internal/domain"
	watchlistsvc "watchlist/internal/services/watchlist"
	"watchlist/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Store *store.FileStore
	Lists domain.WatchListService
	Log   logrus.FieldLogger
}

// NewWire constructs the dependency graph from cfg and loads the registry.
func NewWire(cfg config.Config, log logrus.FieldLogger) (*Wire, error) {
	fileStore := store.NewFileStore(cfg.FilePath,
		store.WithPassphrase(cfg.Passphrase),
		store.WithLogger(log),
	)

	reg, err := fileStore.Load()
	if err != nil {
		return nil, err
	}

	return &Wire{
		Store: fileStore,
		Lists: watchlistsvc.New(fileStore, reg, watchlistsvc.WithLogger(log)),
		Log:   log,
	}, nil
}

// NewLogger returns a stderr-style logger at the configured level. Verbose
// forces debug; an unknown level falls back to warn.
func NewLogger(cfg config.Config, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("invalid log level %s, defaulting to warn", cfg.LogLevel)
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

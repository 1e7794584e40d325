package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"devsync/internal/compose"
	"devsync/internal/config"
	"devsync/internal/fixtures"
	"devsync/internal/logging"
	"devsync/internal/model"
	"devsync/internal/store"
)

// env is what every command needs after flags are parsed.
type env struct {
	cfg      *config.Config
	log      zerolog.Logger
	composer *compose.Composer
	closers  []io.Closer
}

// loadEnv reads configuration, applies flag overrides and starts logging to
// logOut. A nil logOut writes logs to cfg.Logging.File, or discards them
// when that is empty.
func loadEnv(opts *rootOptions, logOut io.Writer) (*env, error) {
	loader := config.NewLoader()
	if opts.configFile != "" {
		loader.SetConfigFile(opts.configFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.Database.Path = opts.dbPath
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.fixturesOnly {
		cfg.Catalog.Source = config.SourceFixtures
	}

	e := &env{cfg: cfg}
	if logOut == nil {
		logOut = io.Discard
		if cfg.Logging.File != "" {
			f, err := openLogFile(cfg.Logging.File)
			if err != nil {
				return nil, err
			}
			logOut = f
			e.closers = append(e.closers, f)
		}
	}
	logCfg := logging.DefaultConfig()
	logCfg.Output = logOut
	if cfg.Logging.Level != "" {
		logCfg.Level = cfg.Logging.Level
	}
	if cfg.Logging.Format != "" {
		logCfg.Format = cfg.Logging.Format
	}
	logger := logging.Init(logCfg)
	e.log = logger.With().Str("component", "cli").Logger()
	if used := loader.ConfigFileUsed(); used != "" {
		e.log.Debug().Str("file", used).Msg("config loaded")
	}

	e.composer, err = compose.NewComposer(cfg.Compose.MemoSize, logging.Component("compose"))
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("create composer: %w", err)
	}
	return e, nil
}

func (e *env) Close() {
	for _, c := range e.closers {
		c.Close()
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// catalogs returns one catalog per known screen in display order, seeded
// according to catalog.source.
func (e *env) catalogs(ctx context.Context) ([]*model.Catalog, error) {
	demo, err := fixtures.Load()
	if err != nil {
		return nil, err
	}

	switch e.cfg.Catalog.Source {
	case config.SourceFixtures:
		e.log.Debug().Msg("catalogs from built-in fixtures")
		return ordered(demo), nil

	case config.SourceStore:
		db, err := store.NewSQLiteStore(e.cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		var out []*model.Catalog
		for _, screen := range model.Screens {
			c, err := db.LoadCatalog(ctx, screen)
			if err != nil {
				return nil, fmt.Errorf("load %s from %s: %w", screen, e.cfg.Database.Path, err)
			}
			out = append(out, c)
		}
		return out, nil

	default:
		if _, err := os.Stat(e.cfg.Database.Path); err != nil {
			e.log.Debug().Str("db", e.cfg.Database.Path).Msg("no database, using built-in fixtures")
			return ordered(demo), nil
		}
		db, err := store.NewSQLiteStore(e.cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		out := ordered(demo)
		for i, c := range out {
			stored, err := db.LoadCatalog(ctx, c.Screen)
			if errors.Is(err, store.ErrScreenNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			e.log.Debug().Str("screen", c.Screen).Int("items", stored.Len()).Msg("catalog from database")
			out[i] = stored
		}
		return out, nil
	}
}

// ordered returns the known screens from cats in display order. Missing
// screens get an empty catalog.
func ordered(cats []*model.Catalog) []*model.Catalog {
	out := make([]*model.Catalog, 0, len(model.Screens))
	for _, screen := range model.Screens {
		c := fixtures.Find(cats, screen)
		if c == nil {
			c = model.MustCatalog(screen)
		}
		out = append(out, c)
	}
	return out
}

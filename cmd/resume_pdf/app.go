package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-pdf/internal/config"
	"github.com/jonathan/resume-pdf/internal/db"
	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/logging"
	"github.com/jonathan/resume-pdf/internal/pipeline"
	"github.com/jonathan/resume-pdf/internal/sink"
	"github.com/jonathan/resume-pdf/internal/templates"
)

var (
	configPath string
	verbose    bool

	appConfig *config.Config
	logger    = zap.NewNop()
)

// loadApp reads the configuration and builds the logger before any command runs
func loadApp(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	appConfig = cfg

	l, err := logging.NewVerbose(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// backends holds the opened template store and its cleanup
type backends struct {
	store    templates.Store
	database *db.DB
	closers  []func()
}

func (b *backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// openBackends connects the configured template store. A PostgreSQL
// connection is also opened when a database URL is set, for resume lookups.
func openBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	b := &backends{}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		b.database = database
		b.closers = append(b.closers, database.Close)
	}

	switch cfg.Store {
	case config.StoreRedis:
		store, err := templates.NewRedisStore(ctx, cfg.RedisStoreConfig())
		if err != nil {
			b.Close()
			return nil, err
		}
		b.store = store
		b.closers = append(b.closers, func() { _ = store.Close() })
	case config.StorePostgres:
		if b.database == nil {
			return nil, fmt.Errorf("the postgres store requires database_url")
		}
		if err := b.database.EnsureSchema(ctx); err != nil {
			b.Close()
			return nil, err
		}
		b.store = b.database
	default:
		b.store = templates.NewMemoryStore()
	}

	logger.Debug("Template store ready", zap.String("store", storeName(cfg.Store)))
	return b, nil
}

func storeName(s string) string {
	if s == "" {
		return config.StoreMemory
	}
	return s
}

// openSink returns the configured document sink
func openSink(ctx context.Context, cfg *config.Config, outDir string) (sink.Sink, error) {
	if cfg.Sink == config.SinkS3 {
		return sink.NewS3Sink(ctx, cfg.S3SinkConfig(), sink.WithS3Logger(logger))
	}
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	return sink.NewFileSink(outDir, sink.WithFileLogger(logger)), nil
}

// pipelineLayout converts the document settings of cfg
func pipelineLayout(cfg *config.Config) (pipeline.Layout, error) {
	size, err := layout.ParsePageSize(cfg.PageSize)
	if err != nil {
		return pipeline.Layout{}, err
	}
	return pipeline.Layout{
		PageSize:  size,
		Margins:   layout.UniformMargins(cfg.Margin),
		Columns:   cfg.Columns,
		ColumnGap: cfg.ColumnGap,
	}, nil
}

package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"

	"ArticleMetadata/internal/config"
	"ArticleMetadata/internal/domain"
	"ArticleMetadata/internal/infrastructure/fetcher"
	"ArticleMetadata/internal/infrastructure/microdata"
	"ArticleMetadata/internal/infrastructure/storage"
	"ArticleMetadata/internal/logging"
	"ArticleMetadata/internal/ports"
	"ArticleMetadata/internal/usecase"
	"ArticleMetadata/internal/vocabulary"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg        config.Config
	logger     *slog.Logger
	db         *sql.DB
	repository *storage.PostgresRepository
	resolver   *usecase.Resolver
}

// New builds a runnable application instance. The database is opened lazily
// by sql.Open, so New only fails on an invalid driver configuration.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format, nil)
	}

	registry := vocabulary.NewRegistry()
	registry.Register(microdata.NewVocabulary(baseLogger.With("component", "vocabulary.schemaorg")))

	app := &Application{cfg: cfg, logger: baseLogger}

	var repository ports.MetadataRepository
	if cfg.Database.DSN != "" {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		app.db = db
		app.repository = storage.NewPostgresRepository(db, cfg.Database.Table)
		repository = app.repository
	}

	app.resolver = usecase.NewResolver(usecase.ResolverDeps{
		Fetcher:      fetcher.NewHTTPFetcher(&http.Client{Timeout: cfg.Fetch.Timeout}, cfg.Fetch.UserAgent),
		Repository:   repository,
		Registry:     registry,
		Vocabularies: cfg.Vocabularies,
		Logger:       baseLogger.With("component", "resolver"),
	})

	return app, nil
}

// Run resolves the configured documents followed by extra URLs.
func (a *Application) Run(ctx context.Context, extra []string) ([]domain.Metadata, error) {
	urls := append(append([]string{}, a.cfg.Documents...), extra...)
	if len(urls) == 0 {
		a.logger.Info("no documents to resolve")
		return []domain.Metadata{}, nil
	}

	if a.repository != nil {
		if err := a.repository.EnsureSchema(ctx); err != nil {
			return nil, err
		}
	}

	a.logger.Info("resolving documents", "count", len(urls), "vocabularies", a.cfg.Vocabularies)
	return a.resolver.Resolve(ctx, urls)
}

// Close releases the database handle, if any.
func (a *Application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

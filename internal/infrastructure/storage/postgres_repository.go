package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"ArticleMetadata/internal/domain"
	"ArticleMetadata/internal/ports"
)

// DefaultTable stores one row per (document_url, vocabulary).
const DefaultTable = "article_metadata"

// PostgresRepository persists resolved metadata snapshots into Postgres.
type PostgresRepository struct {
	db    *sql.DB
	table string
	psql  sq.StatementBuilderType
}

var _ ports.MetadataRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation; an empty table means DefaultTable.
func NewPostgresRepository(db *sql.DB, table string) *PostgresRepository {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresRepository{
		db:    db,
		table: table,
		psql:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// EnsureSchema creates the metadata table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return nil
	}

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    document_url TEXT NOT NULL,
    vocabulary   TEXT NOT NULL,
    title        TEXT NOT NULL DEFAULT '',
    type         TEXT NOT NULL DEFAULT '',
    url          TEXT NOT NULL DEFAULT '',
    description  TEXT NOT NULL DEFAULT '',
    publisher    TEXT NOT NULL DEFAULT '',
    copyright    TEXT NOT NULL DEFAULT '',
    author       TEXT NOT NULL DEFAULT '',
    image_urls   TEXT[] NOT NULL DEFAULT '{}',
    article      JSONB,
    opt_out      BOOLEAN NOT NULL DEFAULT FALSE,
    resolved_at  TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (document_url, vocabulary)
)`, pq.QuoteIdentifier(r.table))

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", r.table, err)
	}
	return nil
}

// Save upserts the snapshot for its document and vocabulary.
func (r *PostgresRepository) Save(ctx context.Context, m domain.Metadata) error {
	if r.db == nil {
		return nil
	}

	var article any
	if m.Article != nil {
		raw, err := json.Marshal(m.Article)
		if err != nil {
			return fmt.Errorf("encode article: %w", err)
		}
		article = raw
	}

	query, args, err := r.psql.
		Insert(pq.QuoteIdentifier(r.table)).
		Columns(
			"document_url", "vocabulary", "title", "type", "url", "description",
			"publisher", "copyright", "author", "image_urls", "article", "opt_out", "resolved_at",
		).
		Values(
			m.DocumentURL, m.Vocabulary, m.Title, m.Type, m.URL, m.Description,
			m.Publisher, m.Copyright, m.Author, pq.StringArray(m.ImageURLs()), article, m.OptOut, m.ResolvedAt,
		).
		Suffix(`ON CONFLICT (document_url, vocabulary) DO UPDATE
              SET title = EXCLUDED.title,
                  type = EXCLUDED.type,
                  url = EXCLUDED.url,
                  description = EXCLUDED.description,
                  publisher = EXCLUDED.publisher,
                  copyright = EXCLUDED.copyright,
                  author = EXCLUDED.author,
                  image_urls = EXCLUDED.image_urls,
                  article = EXCLUDED.article,
                  opt_out = EXCLUDED.opt_out,
                  resolved_at = EXCLUDED.resolved_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert metadata: %w", err)
	}

	return nil
}

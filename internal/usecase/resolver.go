package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ArticleMetadata/internal/domain"
	"ArticleMetadata/internal/ports"
	"ArticleMetadata/internal/vocabulary"
)

// ResolverDeps wires all driven adapters into the resolver.
type ResolverDeps struct {
	Fetcher      ports.DocumentFetcher
	Repository   ports.MetadataRepository
	Registry     *vocabulary.Registry
	Vocabularies []string
	Logger       *slog.Logger
	Now          func() time.Time
}

// Resolver fetches documents and snapshots the metadata each vocabulary declares.
type Resolver struct {
	fetcher      ports.DocumentFetcher
	repository   ports.MetadataRepository
	registry     *vocabulary.Registry
	vocabularies []string
	logger       *slog.Logger
	now          func() time.Time
}

// NewResolver constructs the use case.
func NewResolver(deps ResolverDeps) *Resolver {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		fetcher:      deps.Fetcher,
		repository:   deps.Repository,
		registry:     deps.Registry,
		vocabularies: deps.Vocabularies,
		logger:       deps.Logger,
		now:          now,
	}
}

// Resolve processes every URL. A failing document does not stop the others;
// all failures are joined into the returned error.
func (r *Resolver) Resolve(ctx context.Context, urls []string) ([]domain.Metadata, error) {
	if r.fetcher == nil || r.registry == nil {
		return nil, fmt.Errorf("resolver is not configured")
	}

	vocabularies := make([]vocabulary.Vocabulary, 0, len(r.vocabularies))
	for _, name := range r.vocabularies {
		v, err := r.registry.Resolve(name)
		if err != nil {
			return nil, err
		}
		vocabularies = append(vocabularies, v)
	}

	var (
		results []domain.Metadata
		errs    []error
	)
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		snapshots, err := r.resolveDocument(ctx, url, vocabularies)
		if err != nil {
			r.warn("document failed", "url", url, "error", err)
			errs = append(errs, fmt.Errorf("document %s: %w", url, err))
		}
		results = append(results, snapshots...)
	}

	r.debug("resolve done", "documents", len(urls), "snapshots", len(results))
	return results, errors.Join(errs...)
}

func (r *Resolver) resolveDocument(ctx context.Context, url string, vocabularies []vocabulary.Vocabulary) ([]domain.Metadata, error) {
	doc, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	snapshots := make([]domain.Metadata, 0, len(vocabularies))
	for _, v := range vocabularies {
		m := Snapshot(v.Accessor(doc))
		m.DocumentURL = url
		m.Vocabulary = v.Name()
		m.ResolvedAt = r.now().UTC()

		if r.repository != nil {
			if err := r.repository.Save(ctx, m); err != nil {
				return snapshots, fmt.Errorf("save %s metadata: %w", v.Name(), err)
			}
		}

		r.debug("metadata resolved",
			"url", url,
			"vocabulary", v.Name(),
			"title", m.Title,
			"images", len(m.Images),
		)
		snapshots = append(snapshots, m)
	}

	return snapshots, nil
}

// Snapshot reads every field of the accessor once.
func Snapshot(a ports.MetadataAccessor) domain.Metadata {
	return domain.Metadata{
		Title:       a.Title(),
		Type:        a.Type(),
		URL:         a.URL(),
		Description: a.Description(),
		Publisher:   a.Publisher(),
		Copyright:   a.Copyright(),
		Author:      a.Author(),
		Images:      a.Images(),
		Article:     a.Article(),
		OptOut:      a.OptOut(),
	}
}

func (r *Resolver) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

func (r *Resolver) warn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

package ports

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"ArticleMetadata/internal/domain"
)

// MetadataAccessor exposes the article metadata one markup vocabulary declares.
// Implementations never fail: missing data yields empty values.
type MetadataAccessor interface {
	Title() string
	Type() string
	URL() string
	Images() []domain.Image
	Description() string
	Publisher() string
	Copyright() string
	Author() string
	// Article returns nil when the document declares no article.
	Article() *domain.Article
	OptOut() bool
}

// DocumentFetcher loads and parses remote HTML documents.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// MetadataRepository persists resolved metadata snapshots.
type MetadataRepository interface {
	Save(ctx context.Context, metadata domain.Metadata) error
}

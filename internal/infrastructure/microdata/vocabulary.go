package microdata

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"ArticleMetadata/internal/ports"
	"ArticleMetadata/internal/schemaorg"
	"ArticleMetadata/internal/vocabulary"
)

// VocabularyName identifies the schema.org microdata vocabulary inside the registry.
const VocabularyName = "schemaorg"

// Vocabulary resolves metadata from schema.org microdata.
type Vocabulary struct {
	logger *slog.Logger
}

var _ vocabulary.Vocabulary = (*Vocabulary)(nil)

// NewVocabulary accepts a nil logger.
func NewVocabulary(logger *slog.Logger) *Vocabulary {
	return &Vocabulary{logger: logger}
}

func (v *Vocabulary) Name() string {
	return VocabularyName
}

// Accessor parses the document and returns a selector over its items.
func (v *Vocabulary) Accessor(doc *goquery.Document) ports.MetadataAccessor {
	store := Parse(doc)
	if v.logger != nil {
		v.logger.Debug("microdata parsed",
			"items", store.ItemCount(),
			"articles", len(store.ArticleItems()),
			"images", len(store.ImageItems()),
		)
	}
	return schemaorg.New(store)
}

package schemaorg

import "ArticleMetadata/internal/domain"

// Property names read from schema.org items.
const (
	HeadlineProp        = "headline"
	NameProp            = "name"
	URLProp             = "url"
	DescriptionProp     = "description"
	AuthorProp          = "author"
	CreatorProp         = "creator"
	PublisherProp       = "publisher"
	CopyrightHolderProp = "copyrightHolder"
)

// ItemID identifies a parsed item. Two items are the same item only if their IDs match.
type ItemID uint64

// ArticleItem is an item that describes an article.
type ArticleItem interface {
	StringProperty(name string) string
	// PersonOrOrganizationName returns "" when the property is absent.
	PersonOrOrganizationName(name string) string
	Copyright() string
	RepresentativeImage() (ImageItem, bool)
	Image() (domain.Image, bool)
	Article() domain.Article
}

// ImageItem is an item that describes an image.
type ImageItem interface {
	ID() ItemID
	RepresentativeOfPage() bool
	Image() domain.Image
}

// ItemStore holds the items found in one document, in discovery order.
type ItemStore interface {
	ArticleItems() []ArticleItem
	ImageItems() []ImageItem
	// AuthorFromRel resolves an author from rel="author" links of the document.
	AuthorFromRel() string
}

package microdata

import (
	"strconv"
	"strings"

	"ArticleMetadata/internal/domain"
	"ArticleMetadata/internal/schemaorg"
)

const (
	imageProp                = "image"
	associatedMediaProp      = "associatedMedia"
	encodingProp             = "encoding"
	contentURLProp           = "contentUrl"
	encodingFormatProp       = "encodingFormat"
	captionProp              = "caption"
	widthProp                = "width"
	heightProp               = "height"
	representativeOfPageProp = "representativeOfPage"
	givenNameProp            = "givenName"
	familyNameProp           = "familyName"
	copyrightYearProp        = "copyrightYear"
	datePublishedProp        = "datePublished"
	dateModifiedProp         = "dateModified"
	expiresProp              = "expires"
	articleSectionProp       = "articleSection"
)

type kind int

const (
	kindUnsupported kind = iota
	kindArticle
	kindImage
	kindPerson
	kindOrganization
)

var schemaTypes = map[string]kind{
	"Article":            kindArticle,
	"BlogPosting":        kindArticle,
	"Blog":               kindArticle,
	"NewsArticle":        kindArticle,
	"ScholarlyArticle":   kindArticle,
	"TechArticle":        kindArticle,
	"Report":             kindArticle,
	"SocialMediaPosting": kindArticle,
	"ImageObject":        kindImage,
	"Person":             kindPerson,
	"Organization":       kindOrganization,
}

var schemaPrefixes = []string{"http://schema.org/", "https://schema.org/"}

// kindOf maps an itemtype attribute to the kind of item it declares.
func kindOf(itemType string) kind {
	fields := strings.Fields(itemType)
	if len(fields) == 0 {
		return kindUnsupported
	}
	t := fields[0]
	for _, prefix := range schemaPrefixes {
		if len(t) > len(prefix) && strings.EqualFold(t[:len(prefix)], prefix) {
			return schemaTypes[strings.TrimSuffix(t[len(prefix):], "/")]
		}
	}
	return kindUnsupported
}

// item is one itemscope of the document. The first value of each property wins.
type item struct {
	id      schemaorg.ItemID
	kind    kind
	strings map[string]string
	items   map[string]*item
}

func newItem(id schemaorg.ItemID, k kind) *item {
	return &item{
		id:      id,
		kind:    k,
		strings: map[string]string{},
		items:   map[string]*item{},
	}
}

func (it *item) addString(name, value string) {
	if _, ok := it.strings[name]; ok {
		return
	}
	it.strings[name] = value
}

func (it *item) addItem(name string, nested *item) {
	if _, ok := it.items[name]; ok {
		return
	}
	it.items[name] = nested
}

func (it *item) StringProperty(name string) string {
	return it.strings[name]
}

func (it *item) PersonOrOrganizationName(name string) string {
	if nested, ok := it.items[name]; ok && (nested.kind == kindPerson || nested.kind == kindOrganization) {
		return nested.personName()
	}
	return it.strings[name]
}

func (it *item) personName() string {
	if name := it.strings[schemaorg.NameProp]; name != "" {
		return name
	}
	return joinNonEmpty(it.strings[givenNameProp], it.strings[familyNameProp])
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

type articleItem struct {
	*item
}

var _ schemaorg.ArticleItem = articleItem{}

func (a articleItem) Copyright() string {
	copyright := joinNonEmpty(
		a.strings[copyrightYearProp],
		a.PersonOrOrganizationName(schemaorg.CopyrightHolderProp),
	)
	if copyright == "" {
		return ""
	}
	return "Copyright " + copyright
}

func (a articleItem) RepresentativeImage() (schemaorg.ImageItem, bool) {
	for _, prop := range []string{associatedMediaProp, encodingProp} {
		if nested, ok := a.items[prop]; ok && nested.kind == kindImage {
			return imageItem{nested}, true
		}
	}
	return nil, false
}

func (a articleItem) Image() (domain.Image, bool) {
	url := a.strings[imageProp]
	if url == "" {
		return domain.Image{}, false
	}
	return domain.Image{URL: url}, true
}

func (a articleItem) Article() domain.Article {
	article := domain.Article{
		PublishedTime:  a.strings[datePublishedProp],
		ModifiedTime:   a.strings[dateModifiedProp],
		ExpirationTime: a.strings[expiresProp],
		Section:        a.strings[articleSectionProp],
	}
	author := a.PersonOrOrganizationName(schemaorg.AuthorProp)
	if author == "" {
		author = a.PersonOrOrganizationName(schemaorg.CreatorProp)
	}
	if author != "" {
		article.Authors = []string{author}
	}
	return article
}

type imageItem struct {
	*item
}

var _ schemaorg.ImageItem = imageItem{}

func (i imageItem) ID() schemaorg.ItemID {
	return i.id
}

func (i imageItem) RepresentativeOfPage() bool {
	return strings.EqualFold(strings.TrimSpace(i.strings[representativeOfPageProp]), "true")
}

func (i imageItem) Image() domain.Image {
	url := i.strings[contentURLProp]
	if url == "" {
		url = i.strings[schemaorg.URLProp]
	}
	return domain.Image{
		URL:     url,
		Type:    i.strings[encodingFormatProp],
		Caption: i.strings[captionProp],
		Width:   atoi(i.strings[widthProp]),
		Height:  atoi(i.strings[heightProp]),
	}
}

// atoi reads leading digits, so "640px" yields 640.
func atoi(value string) int {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}
	return n
}

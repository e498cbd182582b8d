package microdata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ArticleMetadata/internal/schemaorg"
)

// Store holds the schema.org items found in a document.
type Store struct {
	articles  []schemaorg.ArticleItem
	images    []schemaorg.ImageItem
	relAuthor string
	items     int
}

var _ schemaorg.ItemStore = (*Store)(nil)

// Parse walks the document once and collects its microdata items in document order.
func Parse(doc *goquery.Document) *Store {
	store := &Store{}
	if doc == nil {
		return store
	}

	p := &parser{store: store}
	p.walk(doc.Selection, nil)
	store.relAuthor = authorFromRel(doc)
	return store
}

// ArticleItems returns article items in document order.
func (s *Store) ArticleItems() []schemaorg.ArticleItem {
	return s.articles
}

// ImageItems returns ImageObject items in document order.
func (s *Store) ImageItems() []schemaorg.ImageItem {
	return s.images
}

// AuthorFromRel returns the text of the first non-empty rel="author" link.
func (s *Store) AuthorFromRel() string {
	return s.relAuthor
}

// ItemCount reports how many itemscopes were found, supported or not.
func (s *Store) ItemCount() int {
	return s.items
}

type parser struct {
	store  *Store
	nextID schemaorg.ItemID
}

func (p *parser) newItem(sel *goquery.Selection) *item {
	p.nextID++
	p.store.items++

	itemType, _ := sel.Attr("itemtype")
	it := newItem(p.nextID, kindOf(itemType))
	switch it.kind {
	case kindArticle:
		p.store.articles = append(p.store.articles, articleItem{it})
	case kindImage:
		p.store.images = append(p.store.images, imageItem{it})
	}
	return it
}

func (p *parser) walk(sel *goquery.Selection, current *item) {
	sel.Children().Each(func(_ int, child *goquery.Selection) {
		props := strings.Fields(child.AttrOr("itemprop", ""))

		if _, scoped := child.Attr("itemscope"); scoped {
			nested := p.newItem(child)
			if current != nil {
				for _, prop := range props {
					current.addItem(prop, nested)
				}
			}
			p.walk(child, nested)
			return
		}

		if current != nil && len(props) > 0 {
			value := propertyValue(child)
			for _, prop := range props {
				current.addString(prop, value)
			}
		}
		p.walk(child, current)
	})
}

// propertyValue reads the value of an itemprop element as defined by HTML microdata.
func propertyValue(sel *goquery.Selection) string {
	var attr string
	switch goquery.NodeName(sel) {
	case "meta":
		attr = "content"
	case "audio", "embed", "iframe", "img", "source", "track", "video":
		attr = "src"
	case "a", "area", "link":
		attr = "href"
	case "object":
		attr = "data"
	case "data", "meter":
		attr = "value"
	case "time":
		if v, ok := sel.Attr("datetime"); ok {
			return strings.TrimSpace(v)
		}
	}
	if attr != "" {
		return strings.TrimSpace(sel.AttrOr(attr, ""))
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}

func authorFromRel(doc *goquery.Document) string {
	var author string
	doc.Find(`a[rel~="author"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		author = strings.Join(strings.Fields(link.Text()), " ")
		return author == ""
	})
	return author
}

package microdata

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ArticleMetadata/internal/domain"
	"ArticleMetadata/internal/schemaorg"
)

func newDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const articlePage = `
<html><body>
  <div itemscope itemtype="http://schema.org/NewsArticle">
    <h1 itemprop="headline">  Rivers   rising </h1>
    <meta itemprop="description" content="Flood warnings issued.">
    <link itemprop="url" href="https://news.example.org/rivers">
    <time itemprop="datePublished" datetime="2024-03-01T10:00:00Z">March 1</time>
    <meta itemprop="dateModified" content="2024-03-02">
    <span itemprop="articleSection">Weather</span>
    <div itemprop="author" itemscope itemtype="http://schema.org/Person">
      <span itemprop="givenName">Ada</span> <span itemprop="familyName">Lovelace</span>
    </div>
    <div itemprop="publisher copyrightHolder" itemscope itemtype="https://schema.org/Organization">
      <span itemprop="name">Example News</span>
    </div>
    <meta itemprop="copyrightYear" content="2024">
    <div itemprop="associatedMedia" itemscope itemtype="http://schema.org/ImageObject">
      <meta itemprop="contentUrl" content="https://img.example.org/lead.jpg">
      <meta itemprop="encodingFormat" content="image/jpeg">
      <span itemprop="caption">The river</span>
      <meta itemprop="width" content="640px">
      <meta itemprop="height" content="480">
    </div>
  </div>
  <a rel="author" href="/people/ada">  </a>
  <a rel="nofollow author" href="/people/grace">Grace Hopper</a>
</body></html>`

func TestParseArticle(t *testing.T) {
	t.Parallel()

	store := Parse(newDocument(t, articlePage))

	require.Len(t, store.ArticleItems(), 1)
	require.Len(t, store.ImageItems(), 1)
	assert.Equal(t, 4, store.ItemCount())
	assert.Equal(t, "Grace Hopper", store.AuthorFromRel())

	article := store.ArticleItems()[0]
	assert.Equal(t, "Rivers rising", article.StringProperty(schemaorg.HeadlineProp))
	assert.Equal(t, "Flood warnings issued.", article.StringProperty(schemaorg.DescriptionProp))
	assert.Equal(t, "https://news.example.org/rivers", article.StringProperty(schemaorg.URLProp))
	assert.Equal(t, "Ada Lovelace", article.PersonOrOrganizationName(schemaorg.AuthorProp))
	assert.Equal(t, "Example News", article.PersonOrOrganizationName(schemaorg.PublisherProp))
	assert.Equal(t, "Copyright 2024 Example News", article.Copyright())

	assert.Equal(t, domain.Article{
		PublishedTime: "2024-03-01T10:00:00Z",
		ModifiedTime:  "2024-03-02",
		Section:       "Weather",
		Authors:       []string{"Ada Lovelace"},
	}, article.Article())

	rep, ok := article.RepresentativeImage()
	require.True(t, ok)
	assert.Equal(t, store.ImageItems()[0].ID(), rep.ID())
	assert.Equal(t, domain.Image{
		URL:     "https://img.example.org/lead.jpg",
		Type:    "image/jpeg",
		Caption: "The river",
		Width:   640,
		Height:  480,
	}, rep.Image())

	_, hasOwn := article.Image()
	assert.False(t, hasOwn)
}

func TestParseThroughAccessor(t *testing.T) {
	t.Parallel()

	a := NewVocabulary(nil).Accessor(newDocument(t, articlePage))

	assert.Equal(t, "Rivers rising", a.Title())
	assert.Equal(t, domain.ArticleType, a.Type())
	assert.Equal(t, "Ada Lovelace", a.Author())
	assert.Equal(t, "Example News", a.Publisher())
	require.Len(t, a.Images(), 1)
	assert.Equal(t, "https://img.example.org/lead.jpg", a.Images()[0].URL)
	assert.False(t, a.OptOut())
}

func TestParseImagePriority(t *testing.T) {
	t.Parallel()

	html := `
	<body>
	  <article itemscope itemtype="http://schema.org/Article">
	    <div itemprop="encoding" itemscope itemtype="http://schema.org/ImageObject">
	      <link itemprop="url" href="rep.jpg">
	    </div>
	  </article>
	  <article itemscope itemtype="http://schema.org/BlogPosting">
	    <img itemprop="image" src="i2.jpg">
	  </article>
	  <div itemscope itemtype="http://schema.org/ImageObject">
	    <link itemprop="url" href="i3.jpg">
	    <meta itemprop="representativeOfPage" content="TRUE">
	  </div>
	  <div itemscope itemtype="http://schema.org/ImageObject">
	    <link itemprop="url" href="i4.jpg">
	  </div>
	</body>`

	a := NewVocabulary(nil).Accessor(newDocument(t, html))

	assert.Equal(t, []string{"rep.jpg", "i2.jpg", "i3.jpg", "i4.jpg"}, urls(a.Images()))
}

func TestParseImagesOnly(t *testing.T) {
	t.Parallel()

	html := `
	<body>
	  <div itemscope itemtype="http://schema.org/ImageObject">
	    <meta itemprop="contentUrl" content="i1.jpg">
	    <meta itemprop="representativeOfPage" content="false">
	  </div>
	  <div itemscope itemtype="http://schema.org/ImageObject">
	    <meta itemprop="contentUrl" content="i2.jpg">
	    <meta itemprop="representativeOfPage" content="true">
	  </div>
	</body>`

	a := NewVocabulary(nil).Accessor(newDocument(t, html))

	assert.Equal(t, []string{"i2.jpg", "i1.jpg"}, urls(a.Images()))
	assert.Equal(t, "", a.Type())
	assert.Nil(t, a.Article())
}

func TestParseStringNamesAndUnknownTypes(t *testing.T) {
	t.Parallel()

	html := `
	<body>
	  <div itemscope itemtype="http://example.org/Article">
	    <span itemprop="headline">Not schema.org</span>
	  </div>
	  <div itemscope itemtype="http://schema.org/Article">
	    <span itemprop="name">First</span>
	    <span itemprop="name">Second</span>
	    <span itemprop="creator">Plain Creator</span>
	    <div itemprop="author" itemscope itemtype="http://schema.org/Place">
	      <span itemprop="name">Somewhere</span>
	    </div>
	  </div>
	</body>`

	store := Parse(newDocument(t, html))
	require.Len(t, store.ArticleItems(), 1)

	a := schemaorg.New(store)
	assert.Equal(t, "First", a.Title())
	assert.Equal(t, "Plain Creator", a.Author())
	assert.Equal(t, "", a.Copyright())
}

func TestParseNilDocument(t *testing.T) {
	t.Parallel()

	store := Parse(nil)
	assert.Empty(t, store.ArticleItems())
	assert.Empty(t, store.ImageItems())
	assert.Equal(t, "", store.AuthorFromRel())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kindArticle, kindOf("https://schema.org/TechArticle"))
	assert.Equal(t, kindArticle, kindOf("HTTP://SCHEMA.ORG/Article/ http://schema.org/Thing"))
	assert.Equal(t, kindImage, kindOf("http://schema.org/ImageObject"))
	assert.Equal(t, kindUnsupported, kindOf("http://schema.org/"))
	assert.Equal(t, kindUnsupported, kindOf(""))
}

func urls(images []domain.Image) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		out = append(out, img.URL)
	}
	return out
}

package schemaorg

import (
	"ArticleMetadata/internal/domain"
	"ArticleMetadata/internal/ports"
)

// Accessor selects canonical article metadata from schema.org items.
type Accessor struct {
	store ItemStore
}

var _ ports.MetadataAccessor = (*Accessor)(nil)

// New builds an accessor over an already populated store.
func New(store ItemStore) *Accessor {
	return &Accessor{store: store}
}

func (a *Accessor) articles() []ArticleItem {
	if a.store == nil {
		return nil
	}
	return a.store.ArticleItems()
}

func (a *Accessor) firstArticle() (ArticleItem, bool) {
	articles := a.articles()
	if len(articles) == 0 {
		return nil, false
	}
	return articles[0], true
}

// Title returns the first non-empty headline, falling back to the first non-empty name.
func (a *Accessor) Title() string {
	articles := a.articles()
	for _, prop := range []string{HeadlineProp, NameProp} {
		for _, article := range articles {
			if title := article.StringProperty(prop); title != "" {
				return title
			}
		}
	}
	return ""
}

// Type returns domain.ArticleType when the document declares an article.
func (a *Accessor) Type() string {
	if len(a.articles()) == 0 {
		return ""
	}
	return domain.ArticleType
}

// URL returns the url of the first article.
func (a *Accessor) URL() string {
	return a.firstProperty(URLProp)
}

// Description returns the description of the first article.
func (a *Accessor) Description() string {
	return a.firstProperty(DescriptionProp)
}

func (a *Accessor) firstProperty(name string) string {
	article, ok := a.firstArticle()
	if !ok {
		return ""
	}
	return article.StringProperty(name)
}

// Publisher returns the publisher of the first article, or its copyright holder.
func (a *Accessor) Publisher() string {
	article, ok := a.firstArticle()
	if !ok {
		return ""
	}
	if publisher := article.PersonOrOrganizationName(PublisherProp); publisher != "" {
		return publisher
	}
	return article.PersonOrOrganizationName(CopyrightHolderProp)
}

// Copyright returns the copyright notice of the first article.
func (a *Accessor) Copyright() string {
	article, ok := a.firstArticle()
	if !ok {
		return ""
	}
	return article.Copyright()
}

// Author returns the author or creator of the first article, then the rel="author" link.
func (a *Accessor) Author() string {
	if article, ok := a.firstArticle(); ok {
		if author := article.PersonOrOrganizationName(AuthorProp); author != "" {
			return author
		}
		if creator := article.PersonOrOrganizationName(CreatorProp); creator != "" {
			return creator
		}
	}
	if a.store == nil {
		return ""
	}
	return a.store.AuthorFromRel()
}

// Article returns nil when no article is declared.
func (a *Accessor) Article() *domain.Article {
	article, ok := a.firstArticle()
	if !ok {
		return nil
	}
	result := article.Article()
	return &result
}

// OptOut is always false: schema.org markup has no opt-out signal.
func (a *Accessor) OptOut() bool {
	return false
}

// Images orders image candidates as follows:
//  1. the representative image of the first article that declares one,
//     or else the first image flagged as representative of the page;
//  2. the own images of the remaining articles;
//  3. the remaining image items.
func (a *Accessor) Images() []domain.Image {
	images := make([]domain.Image, 0)

	var associated ImageItem
	for _, article := range a.articles() {
		// The first representative image is placed once its item is met below.
		if associated == nil {
			if rep, ok := article.RepresentativeImage(); ok && rep != nil {
				associated = rep
				continue
			}
		}
		if img, ok := article.Image(); ok {
			images = append(images, img)
		}
	}

	if a.store == nil {
		return images
	}

	inserted := false
	for _, item := range a.store.ImageItems() {
		img := item.Image()
		if (associated != nil && item.ID() == associated.ID()) ||
			(!inserted && item.RepresentativeOfPage()) {
			inserted = true
			images = append([]domain.Image{img}, images...)
			continue
		}
		images = append(images, img)
	}

	return images
}

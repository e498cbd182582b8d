package domain

import "time"

// Image describes a picture that represents a document.
type Image struct {
	URL       string `json:"url"`
	SecureURL string `json:"secureUrl,omitempty"`
	Type      string `json:"type,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// Article is the aggregate article description declared by page markup.
type Article struct {
	PublishedTime  string   `json:"publishedTime,omitempty"`
	ModifiedTime   string   `json:"modifiedTime,omitempty"`
	ExpirationTime string   `json:"expirationTime,omitempty"`
	Section        string   `json:"section,omitempty"`
	Authors        []string `json:"authors,omitempty"`
}

// ArticleType marks documents that declare at least one article.
const ArticleType = "Article"

// Metadata is a snapshot of every field a markup vocabulary resolved for one document.
type Metadata struct {
	DocumentURL string    `json:"documentUrl"`
	Vocabulary  string    `json:"vocabulary"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Publisher   string    `json:"publisher"`
	Copyright   string    `json:"copyright"`
	Author      string    `json:"author"`
	Images      []Image   `json:"images"`
	Article     *Article  `json:"article,omitempty"`
	OptOut      bool      `json:"optOut"`
	ResolvedAt  time.Time `json:"resolvedAt"`
}

// ImageURLs lists the image URLs in priority order.
func (m Metadata) ImageURLs() []string {
	urls := make([]string, 0, len(m.Images))
	for _, img := range m.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

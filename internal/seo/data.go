// Package seo derives normalized data, an SEO score, and an issue count from
// the loosely-structured scan payloads captured by the browser extension.
//
// Payloads are produced by an external, uncontrolled extension and may match
// any of several historical shapes (keywords as a comma-separated string or an
// array; links as counts or arrays of link records; the real payload sometimes
// wrapped one level deeper under a "data" key). Normalization is a single
// tolerant pass with explicit per-field fallback rules; every downstream
// consumer works from the one canonical Data shape produced here.
package seo

// Data is the canonical normalized form of a scan payload. Every field is
// optional in the raw payload; absence normalizes to the zero value, so
// consumers treat "absent" and "empty but present" identically.
type Data struct {
	Meta     Meta      `json:"meta"`
	Content  Content   `json:"content"`
	Basic    Basic     `json:"basic"`
	Images   []Image   `json:"images,omitempty"`
	Links    Links     `json:"links"`
	Headings []Heading `json:"headings,omitempty"`
	Emails   []string  `json:"emails,omitempty"`
}

// Meta holds the page's meta tag signals.
type Meta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	// Keywords is never nil: absent or unparseable raw values normalize to an
	// empty slice so length checks are uniform across all read paths.
	Keywords    []string          `json:"keywords"`
	OGTags      map[string]string `json:"ogTags,omitempty"`
	TwitterTags map[string]string `json:"twitterTags,omitempty"`
}

// Content holds extracted page content signals.
type Content struct {
	Paragraphs []string       `json:"paragraphs,omitempty"`
	Keywords   []KeywordCount `json:"keywords,omitempty"`
	Emphasized []string       `json:"emphasized,omitempty"`
	Strong     []string       `json:"strong,omitempty"`
}

// KeywordCount is one extracted keyword with its occurrence count.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Basic holds document-level attributes.
type Basic struct {
	Charset  string `json:"charset,omitempty"`
	Language string `json:"language,omitempty"`
}

// Image is one image found on the page. An empty Alt means the image has no
// alt text.
type Image struct {
	Src    string `json:"src"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Links holds link counts. Internal and External stay 0 when the raw payload
// carried only an explicit total.
type Links struct {
	Total    int `json:"total"`
	Internal int `json:"internal"`
	External int `json:"external"`
}

// Heading is one heading element with its level.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

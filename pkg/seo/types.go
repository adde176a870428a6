// Package seo defines the configuration data model consumed by MetaNext.
//
// A Config describes site-level SEO metadata. Page fragments use the same
// type: every field is optional and only the fields that are set override
// the site. Presence follows Go zero values for strings, while booleans and
// numbers are pointers so that an explicit false or 0 is kept apart from a
// field that was never written.
package seo

// Config represents a site or page SEO configuration.
type Config struct {
	Name            string           `yaml:"name,omitempty" json:"name,omitempty"`
	URL             string           `yaml:"url,omitempty" json:"url,omitempty"`
	Title           *Title           `yaml:"title,omitempty" json:"title,omitempty"`
	Description     string           `yaml:"description,omitempty" json:"description,omitempty"`
	Keywords        []string         `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Creator         string           `yaml:"creator,omitempty" json:"creator,omitempty"`
	Publisher       string           `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	Authors         []Author         `yaml:"authors,omitempty" json:"authors,omitempty"`
	Manifest        string           `yaml:"manifest,omitempty" json:"manifest,omitempty"`
	Icons           *Icons           `yaml:"icons,omitempty" json:"icons,omitempty"`
	FormatDetection *FormatDetection `yaml:"formatDetection,omitempty" json:"formatDetection,omitempty"`
	OpenGraph       *OpenGraph       `yaml:"openGraph,omitempty" json:"openGraph,omitempty"`
	Twitter         *Twitter         `yaml:"twitter,omitempty" json:"twitter,omitempty"`
	Robots          *Robots          `yaml:"robots,omitempty" json:"robots,omitempty"`
	JSONLD          []JSONLD         `yaml:"jsonld,omitempty" json:"jsonld,omitempty"`
	Locale          string           `yaml:"locale,omitempty" json:"locale,omitempty"`
}

// Author identifies a content author.
type Author struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Icon is a single icon reference.
type Icon struct {
	URL   string `yaml:"url" json:"url"`
	Sizes string `yaml:"sizes,omitempty" json:"sizes,omitempty"`
}

// Icons groups the icon variants a page can declare.
type Icons struct {
	Icon     []Icon `yaml:"icon,omitempty" json:"icon,omitempty"`
	Apple    []Icon `yaml:"apple,omitempty" json:"apple,omitempty"`
	Shortcut []Icon `yaml:"shortcut,omitempty" json:"shortcut,omitempty"`
}

// FormatDetection controls automatic format detection on mobile browsers.
type FormatDetection struct {
	Email     *bool `yaml:"email,omitempty" json:"email,omitempty"`
	Address   *bool `yaml:"address,omitempty" json:"address,omitempty"`
	Telephone *bool `yaml:"telephone,omitempty" json:"telephone,omitempty"`
}

// Image is an Open Graph image.
type Image struct {
	URL    string `yaml:"url" json:"url"`
	Width  *int   `yaml:"width,omitempty" json:"width,omitempty"`
	Height *int   `yaml:"height,omitempty" json:"height,omitempty"`
	Alt    string `yaml:"alt,omitempty" json:"alt,omitempty"`
}

// OpenGraph holds Open Graph protocol fields.
type OpenGraph struct {
	Type        string  `yaml:"type,omitempty" json:"type,omitempty"`
	Locale      string  `yaml:"locale,omitempty" json:"locale,omitempty"`
	URL         string  `yaml:"url,omitempty" json:"url,omitempty"`
	Title       string  `yaml:"title,omitempty" json:"title,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	SiteName    string  `yaml:"siteName,omitempty" json:"siteName,omitempty"`
	Images      []Image `yaml:"images,omitempty" json:"images,omitempty"`
}

// TwitterCard is the Twitter Card variant.
type TwitterCard string

const (
	CardSummary           TwitterCard = "summary"
	CardSummaryLargeImage TwitterCard = "summary_large_image"
	CardApp               TwitterCard = "app"
	CardPlayer            TwitterCard = "player"
)

// Valid reports whether c is one of the known card variants.
func (c TwitterCard) Valid() bool {
	switch c {
	case CardSummary, CardSummaryLargeImage, CardApp, CardPlayer:
		return true
	}
	return false
}

// Twitter holds Twitter Card fields.
type Twitter struct {
	Card        TwitterCard `yaml:"card,omitempty" json:"card,omitempty"`
	Title       string      `yaml:"title,omitempty" json:"title,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Images      []string    `yaml:"images,omitempty" json:"images,omitempty"`
	Creator     string      `yaml:"creator,omitempty" json:"creator,omitempty"`
}

// ImagePreview is the googleBot max-image-preview setting.
type ImagePreview string

const (
	ImagePreviewNone     ImagePreview = "none"
	ImagePreviewStandard ImagePreview = "standard"
	ImagePreviewLarge    ImagePreview = "large"
)

// Valid reports whether p is a known preview size.
func (p ImagePreview) Valid() bool {
	switch p {
	case ImagePreviewNone, ImagePreviewStandard, ImagePreviewLarge:
		return true
	}
	return false
}

// Robots holds crawler directives.
type Robots struct {
	Index     *bool      `yaml:"index,omitempty" json:"index,omitempty"`
	Follow    *bool      `yaml:"follow,omitempty" json:"follow,omitempty"`
	GoogleBot *GoogleBot `yaml:"googleBot,omitempty" json:"googleBot,omitempty"`
}

// GoogleBot holds Googlebot-specific directives and crawl-preview limits.
type GoogleBot struct {
	Index           *bool        `yaml:"index,omitempty" json:"index,omitempty"`
	Follow          *bool        `yaml:"follow,omitempty" json:"follow,omitempty"`
	MaxVideoPreview *int         `yaml:"max-video-preview,omitempty" json:"max-video-preview,omitempty"`
	MaxImagePreview ImagePreview `yaml:"max-image-preview,omitempty" json:"max-image-preview,omitempty"`
	MaxSnippet      *int         `yaml:"max-snippet,omitempty" json:"max-snippet,omitempty"`
}

// JSONLD is a structured-data record. It carries at least "@context" and "@type".
type JSONLD map[string]any

// Context returns the "@context" value when it is a string.
func (j JSONLD) Context() string {
	s, _ := j["@context"].(string)
	return s
}

// Type returns the "@type" value when it is a string.
func (j JSONLD) Type() string {
	s, _ := j["@type"].(string)
	return s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Neysixx/metanext/pkg/seo"
)

// ValidationError represents a structural problem in a project.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Messages(), "\n  - "))
}

// Messages returns the error messages in the order they were found.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Message)
	}
	return msgs
}

// Validator handles project validation. Every rule runs; nothing short-circuits.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

// Validate checks the structure of a project. It returns ValidationErrors
// when anything is wrong and nil otherwise.
func (v *Validator) Validate(project *seo.Project) error {
	v.errors = make(ValidationErrors, 0)

	if project == nil || project.Site == nil {
		v.addError("site", `Property "site" missing`)
	} else {
		v.validateSite(project.Site)
	}

	if project != nil {
		for _, page := range project.Pages {
			if page.Config != nil {
				v.validateConfig("pages."+page.Name, page.Config)
			}
		}
	}

	if len(v.errors) > 0 {
		return v.errors
	}
	return nil
}

// ValidateProject returns the validation messages for project. An empty
// list means the project is valid.
func ValidateProject(project *seo.Project) []string {
	if errs, ok := NewValidator().Validate(project).(ValidationErrors); ok {
		return errs.Messages()
	}
	return []string{}
}

// validateSite validates the site section.
func (v *Validator) validateSite(site *seo.Site) {
	if site.Name == "" {
		v.addError("site.name", "site.name is required")
	}

	siteURL, key := site.ResolveURL()
	field := "site." + key
	switch {
	case siteURL == "":
		v.addError("site.baseUrl", "site.baseUrl is required")
	case strings.HasSuffix(siteURL, "/"):
		v.addError(field, field+` must not end with "/"`)
	case !isAbsoluteURL(siteURL):
		v.addError(field, field+" must be an absolute URL (e.g. https://example.com)")
	}

	v.validateConfig("site", &site.Config)
}

// validateConfig checks fields that are present but malformed. Absent fields
// are never reported here.
func (v *Validator) validateConfig(prefix string, cfg *seo.Config) {
	if cfg.OpenGraph != nil && cfg.OpenGraph.URL != "" && !isAbsoluteURL(cfg.OpenGraph.URL) {
		v.addError(prefix+".openGraph.url", prefix+".openGraph.url must be an absolute URL")
	}

	if cfg.Twitter != nil && cfg.Twitter.Card != "" && !cfg.Twitter.Card.Valid() {
		v.addError(prefix+".twitter.card", fmt.Sprintf("%s.twitter.card must be one of %s, %s, %s, %s (got %q)",
			prefix, seo.CardSummary, seo.CardSummaryLargeImage, seo.CardApp, seo.CardPlayer, cfg.Twitter.Card))
	}

	if cfg.Robots != nil && cfg.Robots.GoogleBot != nil {
		v.validateGoogleBot(prefix+".robots.googleBot", cfg.Robots.GoogleBot)
	}

	for i, doc := range cfg.JSONLD {
		field := fmt.Sprintf("%s.jsonld[%d]", prefix, i)
		if _, ok := doc["@context"]; !ok {
			v.addError(field, field+` is missing "@context"`)
		}
		if _, ok := doc["@type"]; !ok {
			v.addError(field, field+` is missing "@type"`)
		}
	}
}

// validateGoogleBot validates googleBot directives. -1 means no limit.
func (v *Validator) validateGoogleBot(prefix string, bot *seo.GoogleBot) {
	if bot.MaxImagePreview != "" && !bot.MaxImagePreview.Valid() {
		v.addError(prefix+".max-image-preview", fmt.Sprintf("%s.max-image-preview must be one of %s, %s, %s (got %q)",
			prefix, seo.ImagePreviewNone, seo.ImagePreviewStandard, seo.ImagePreviewLarge, bot.MaxImagePreview))
	}
	if bot.MaxSnippet != nil && *bot.MaxSnippet < -1 {
		v.addError(prefix+".max-snippet", prefix+".max-snippet must be -1 or greater")
	}
	if bot.MaxVideoPreview != nil && *bot.MaxVideoPreview < -1 {
		v.addError(prefix+".max-video-preview", prefix+".max-video-preview must be -1 or greater")
	}
}

// addError adds a validation error.
func (v *Validator) addError(field, message string) {
	v.errors = append(v.errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// isAbsoluteURL checks for a scheme and a host.
func isAbsoluteURL(urlStr string) bool {
	u, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

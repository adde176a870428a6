package metadata

import (
	"errors"
	"fmt"

	"github.com/Neysixx/metanext/pkg/seo"
)

// ErrPageNotFound is returned when a page name has no entry in the project.
var ErrPageNotFound = errors.New("page not found")

// Map merges override onto base and resolves the result into a Record.
//
// Top-level fields are taken from override when it sets them and from base
// otherwise. Nested records (icons, formatDetection, openGraph, twitter,
// robots and robots.googleBot) are merged key by key. Neither input is
// modified and the Record shares no memory with them. A nil override means
// no override.
func Map(base, override *seo.Config) *Record {
	if base == nil {
		base = &seo.Config{}
	}
	if override == nil {
		override = &seo.Config{}
	}

	merged := shallowMerge(base, override)

	return &Record{
		Title:           resolveTitle(merged.Title, merged.Name),
		Description:     merged.Description,
		Keywords:        nonEmptyStrings(merged.Keywords),
		Creator:         merged.Creator,
		Publisher:       merged.Publisher,
		Authors:         remapAuthors(merged.Authors),
		Manifest:        merged.Manifest,
		Icons:           mergeIcons(base.Icons, override.Icons),
		FormatDetection: mergeFormatDetection(base.FormatDetection, override.FormatDetection),
		OpenGraph:       mergeOpenGraph(base, override),
		Twitter:         mergeTwitter(base.Twitter, override.Twitter),
		Robots:          mergeRobots(base.Robots, override.Robots),
	}
}

// ForPage maps the project's site configuration with the named page as the
// override.
func ForPage(project *seo.Project, name string) (*Record, error) {
	if project == nil {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	page, ok := project.Pages.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	return Map(project.SiteConfig(), page), nil
}

// ForPages maps every page of the project, in document order.
func ForPages(project *seo.Project) PageRecords {
	if project == nil {
		return nil
	}
	site := project.SiteConfig()

	records := make(PageRecords, 0, len(project.Pages))
	for _, page := range project.Pages {
		records = append(records, PageRecord{
			Name:     page.Name,
			Metadata: Map(site, page.Config),
		})
	}
	return records
}

// resolveTitle turns the merged title into its output form. A non-empty
// string is kept, a template record with a pattern is kept whole, a record
// with only a default collapses to that string and anything else falls back
// to the site name.
func resolveTitle(title *seo.Title, name string) *seo.Title {
	switch {
	case title != nil && !title.IsTemplate && title.Text != "":
		return seo.PlainTitle(title.Text)
	case title != nil && title.Template != "":
		return seo.TemplateTitle(title.Default, title.Template)
	case title != nil && title.Default != "":
		return seo.PlainTitle(title.Default)
	case name != "":
		return seo.PlainTitle(name)
	default:
		return nil
	}
}

// remapAuthors keeps only name and url. An empty list is absent.
func remapAuthors(authors []seo.Author) []seo.Author {
	if len(authors) == 0 {
		return nil
	}
	out := make([]seo.Author, len(authors))
	for i, a := range authors {
		out[i] = seo.Author{Name: a.Name, URL: a.URL}
	}
	return out
}

func nonEmptyStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}

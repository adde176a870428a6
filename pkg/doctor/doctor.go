// Package doctor runs SEO quality checks over every page of a project.
//
// Findings never block anything by themselves: the caller decides what to do
// with a Report that has errors.
package doctor

import (
	"fmt"
	"html"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/Neysixx/metanext/pkg/seo"
)

// Length limits above which a warning is reported, in code points.
const (
	MaxTitleLength       = 60
	MaxDescriptionLength = 160
)

// check inspects one page and returns its findings.
type check func(name string, cfg *seo.Config) *Report

// checks run in this order for every page.
var checks = []check{
	checkTitle,
	checkDescription,
	checkJSONLD,
	checkDescriptionMarkup,
}

var strictPolicy = bluemonday.StrictPolicy()

// Run checks every page of project, in document order. The site section is
// not checked. A page without configuration is checked as an empty one.
func Run(project *seo.Project) *Report {
	report := NewReport()
	if project == nil {
		return report
	}

	for _, page := range project.Pages {
		cfg := page.Config
		if cfg == nil {
			cfg = &seo.Config{}
		}
		for _, c := range checks {
			report = report.Merge(c(page.Name, cfg))
		}
	}
	return report
}

func checkTitle(name string, cfg *seo.Config) *Report {
	r := NewReport()
	title := cfg.Title.String()
	switch n := utf8.RuneCountInString(title); {
	case title == "":
		r.AddError(fmt.Sprintf(`Page "%s": title missing`, name))
	case n > MaxTitleLength:
		r.AddWarning(fmt.Sprintf(`Page "%s": title too long (%d > %d)`, name, n, MaxTitleLength))
	}
	return r
}

func checkDescription(name string, cfg *seo.Config) *Report {
	r := NewReport()
	switch n := utf8.RuneCountInString(cfg.Description); {
	case cfg.Description == "":
		r.AddError(fmt.Sprintf(`Page "%s": description missing`, name))
	case n > MaxDescriptionLength:
		r.AddWarning(fmt.Sprintf(`Page "%s": description too long (%d > %d)`, name, n, MaxDescriptionLength))
	}
	return r
}

func checkJSONLD(name string, cfg *seo.Config) *Report {
	r := NewReport()
	if len(cfg.JSONLD) == 0 {
		r.AddSuggestion(fmt.Sprintf(`Page "%s": add JSON-LD to improve indexing`, name))
	}
	return r
}

// checkDescriptionMarkup warns when the description would lose content once
// every tag is stripped. Both sides are compared as decoded text so character
// references such as &amp; are not mistaken for markup.
func checkDescriptionMarkup(name string, cfg *seo.Config) *Report {
	r := NewReport()
	if cfg.Description == "" {
		return r
	}
	text := html.UnescapeString(cfg.Description)
	if html.UnescapeString(strictPolicy.Sanitize(cfg.Description)) != text {
		r.AddWarning(fmt.Sprintf(`Page "%s": description contains HTML markup`, name))
	}
	return r
}

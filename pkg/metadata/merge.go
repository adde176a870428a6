package metadata

import "github.com/Neysixx/metanext/pkg/seo"

// shallowMerge applies override's top-level fields onto a copy of base.
// Nested records are resolved separately, key by key.
func shallowMerge(base, override *seo.Config) *seo.Config {
	merged := base.Clone()

	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.URL != "" {
		merged.URL = override.URL
	}
	if !override.Title.IsZero() {
		merged.Title = override.Title.Clone()
	}
	if override.Description != "" {
		merged.Description = override.Description
	}
	if len(override.Keywords) > 0 {
		merged.Keywords = override.Keywords
	}
	if override.Creator != "" {
		merged.Creator = override.Creator
	}
	if override.Publisher != "" {
		merged.Publisher = override.Publisher
	}
	if len(override.Authors) > 0 {
		merged.Authors = override.Authors
	}
	if override.Manifest != "" {
		merged.Manifest = override.Manifest
	}
	if len(override.JSONLD) > 0 {
		merged.JSONLD = override.JSONLD
	}
	if override.Locale != "" {
		merged.Locale = override.Locale
	}

	return merged
}

// mergeIcons merges icon groups; a non-empty override group replaces the
// base group.
func mergeIcons(base, override *seo.Icons) *seo.Icons {
	if base == nil && override == nil {
		return nil
	}

	dst := base.Clone()
	if dst == nil {
		dst = &seo.Icons{}
	}
	if override == nil {
		return dst
	}

	if len(override.Icon) > 0 {
		dst.Icon = seo.CloneIcons(override.Icon)
	}
	if len(override.Apple) > 0 {
		dst.Apple = seo.CloneIcons(override.Apple)
	}
	if len(override.Shortcut) > 0 {
		dst.Shortcut = seo.CloneIcons(override.Shortcut)
	}

	return dst
}

// mergeFormatDetection merges the three detection flags. An explicit false
// in the override wins over the base.
func mergeFormatDetection(base, override *seo.FormatDetection) *seo.FormatDetection {
	if base == nil && override == nil {
		return nil
	}

	dst := base.Clone()
	if dst == nil {
		dst = &seo.FormatDetection{}
	}
	if override == nil {
		return dst
	}

	if override.Email != nil {
		dst.Email = seo.Bool(*override.Email)
	}
	if override.Address != nil {
		dst.Address = seo.Bool(*override.Address)
	}
	if override.Telephone != nil {
		dst.Telephone = seo.Bool(*override.Telephone)
	}

	return dst
}

// mergeOpenGraph merges the Open Graph records of both configurations and
// resolves url and siteName. url falls back to the base site URL and
// siteName to the base site name.
func mergeOpenGraph(base, override *seo.Config) *seo.OpenGraph {
	if base.OpenGraph == nil && override.OpenGraph == nil {
		return nil
	}

	dst := base.OpenGraph.Clone()
	if dst == nil {
		dst = &seo.OpenGraph{}
	}

	og := override.OpenGraph
	if og == nil {
		og = &seo.OpenGraph{}
	}

	if og.Type != "" {
		dst.Type = og.Type
	}
	if og.Locale != "" {
		dst.Locale = og.Locale
	}
	if og.Title != "" {
		dst.Title = og.Title
	}
	if og.Description != "" {
		dst.Description = og.Description
	}
	if len(og.Images) > 0 {
		dst.Images = seo.CloneImages(og.Images)
	}

	var baseURL, baseSiteName string
	if base.OpenGraph != nil {
		baseURL = base.OpenGraph.URL
		baseSiteName = base.OpenGraph.SiteName
	}
	dst.URL = firstNonEmpty(og.URL, baseURL, base.URL)
	dst.SiteName = firstNonEmpty(og.SiteName, baseSiteName, base.Name)

	return dst
}

// mergeTwitter merges Twitter Card fields.
func mergeTwitter(base, override *seo.Twitter) *seo.Twitter {
	if base == nil && override == nil {
		return nil
	}

	dst := base.Clone()
	if dst == nil {
		dst = &seo.Twitter{}
	}
	if override == nil {
		return dst
	}

	if override.Card != "" {
		dst.Card = override.Card
	}
	if override.Title != "" {
		dst.Title = override.Title
	}
	if override.Description != "" {
		dst.Description = override.Description
	}
	if len(override.Images) > 0 {
		dst.Images = append([]string(nil), override.Images...)
	}
	if override.Creator != "" {
		dst.Creator = override.Creator
	}

	return dst
}

// mergeRobots merges robots directives. googleBot is only present when one
// of the inputs declares it.
func mergeRobots(base, override *seo.Robots) *seo.Robots {
	if base == nil && override == nil {
		return nil
	}

	dst := &seo.Robots{}
	var baseBot, overrideBot *seo.GoogleBot

	if base != nil {
		dst.Index = cloneBool(base.Index)
		dst.Follow = cloneBool(base.Follow)
		baseBot = base.GoogleBot
	}
	if override != nil {
		if override.Index != nil {
			dst.Index = cloneBool(override.Index)
		}
		if override.Follow != nil {
			dst.Follow = cloneBool(override.Follow)
		}
		overrideBot = override.GoogleBot
	}

	dst.GoogleBot = mergeGoogleBot(baseBot, overrideBot)
	return dst
}

// mergeGoogleBot merges googleBot directives one level below robots.
func mergeGoogleBot(base, override *seo.GoogleBot) *seo.GoogleBot {
	if base == nil && override == nil {
		return nil
	}

	dst := base.Clone()
	if dst == nil {
		dst = &seo.GoogleBot{}
	}
	if override == nil {
		return dst
	}

	if override.Index != nil {
		dst.Index = cloneBool(override.Index)
	}
	if override.Follow != nil {
		dst.Follow = cloneBool(override.Follow)
	}
	if override.MaxVideoPreview != nil {
		dst.MaxVideoPreview = seo.Int(*override.MaxVideoPreview)
	}
	if override.MaxImagePreview != "" {
		dst.MaxImagePreview = override.MaxImagePreview
	}
	if override.MaxSnippet != nil {
		dst.MaxSnippet = seo.Int(*override.MaxSnippet)
	}

	return dst
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	return seo.Bool(*b)
}

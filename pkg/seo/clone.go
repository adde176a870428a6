package seo

// Clone returns a deep copy of c. Pointer fields, slices and JSON-LD
// records are copied so the result shares no mutable state with c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	dst := *c
	dst.Title = c.Title.Clone()
	dst.Keywords = cloneStrings(c.Keywords)
	dst.Authors = cloneAuthors(c.Authors)
	dst.Icons = c.Icons.Clone()
	dst.FormatDetection = c.FormatDetection.Clone()
	dst.OpenGraph = c.OpenGraph.Clone()
	dst.Twitter = c.Twitter.Clone()
	dst.Robots = c.Robots.Clone()

	if c.JSONLD != nil {
		dst.JSONLD = make([]JSONLD, len(c.JSONLD))
		for i, doc := range c.JSONLD {
			dst.JSONLD[i] = doc.Clone()
		}
	}

	return &dst
}

// Clone returns a copy of t.
func (t *Title) Clone() *Title {
	if t == nil {
		return nil
	}
	title := *t
	return &title
}

// Clone returns a deep copy of i.
func (i *Icons) Clone() *Icons {
	if i == nil {
		return nil
	}
	return &Icons{
		Icon:     CloneIcons(i.Icon),
		Apple:    CloneIcons(i.Apple),
		Shortcut: CloneIcons(i.Shortcut),
	}
}

// Clone returns a deep copy of f.
func (f *FormatDetection) Clone() *FormatDetection {
	if f == nil {
		return nil
	}
	return &FormatDetection{
		Email:     cloneBool(f.Email),
		Address:   cloneBool(f.Address),
		Telephone: cloneBool(f.Telephone),
	}
}

// Clone returns a deep copy of o.
func (o *OpenGraph) Clone() *OpenGraph {
	if o == nil {
		return nil
	}
	og := *o
	og.Images = CloneImages(o.Images)
	return &og
}

// Clone returns a deep copy of t.
func (t *Twitter) Clone() *Twitter {
	if t == nil {
		return nil
	}
	tw := *t
	tw.Images = cloneStrings(t.Images)
	return &tw
}

// Clone returns a deep copy of r.
func (r *Robots) Clone() *Robots {
	if r == nil {
		return nil
	}
	return &Robots{
		Index:     cloneBool(r.Index),
		Follow:    cloneBool(r.Follow),
		GoogleBot: r.GoogleBot.Clone(),
	}
}

// Clone returns a deep copy of g.
func (g *GoogleBot) Clone() *GoogleBot {
	if g == nil {
		return nil
	}
	return &GoogleBot{
		Index:           cloneBool(g.Index),
		Follow:          cloneBool(g.Follow),
		MaxVideoPreview: cloneInt(g.MaxVideoPreview),
		MaxImagePreview: g.MaxImagePreview,
		MaxSnippet:      cloneInt(g.MaxSnippet),
	}
}

// Clone returns a deep copy of j. Nested maps and slices are copied too.
func (j JSONLD) Clone() JSONLD {
	if j == nil {
		return nil
	}
	return cloneValue(map[string]any(j)).(map[string]any)
}

// CloneIcons returns a copy of icons, or nil when it is empty.
func CloneIcons(icons []Icon) []Icon {
	if len(icons) == 0 {
		return nil
	}
	return append([]Icon(nil), icons...)
}

// CloneImages returns a deep copy of images, or nil when it is empty.
func CloneImages(images []Image) []Image {
	if len(images) == 0 {
		return nil
	}
	out := make([]Image, len(images))
	for i, img := range images {
		img.Width = cloneInt(img.Width)
		img.Height = cloneInt(img.Height)
		out[i] = img
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case JSONLD:
		return JSONLD(cloneValue(map[string]any(val)).(map[string]any))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneAuthors(a []Author) []Author {
	if a == nil {
		return nil
	}
	return append([]Author(nil), a...)
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

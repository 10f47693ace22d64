package site

// MetaTag is a single <meta> element. Exactly one of Name or Property is set.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// Page is what a handler knows about the page it renders.
type Page struct {
	Title       string
	Description string
	Path        string
	Extra       []MetaTag
}

// Head is the template data for the document head.
type Head struct {
	Lang  string
	Title string
	Meta  []MetaTag
}

// Title applies the site's navigation prefix to a page title.
func Title(md Metadata, page Page) string {
	return md.NavigationString + page.Title
}

// Meta builds the description, Open Graph and Twitter tags for a page.
func Meta(md Metadata, page Page) []MetaTag {
	description := page.Description
	if description == "" {
		description = md.Description
	}
	siteURL := md.SiteURL
	if siteURL == "" {
		siteURL = "https://harshcode.dev"
	}

	tags := []MetaTag{
		{Name: "description", Content: description},

		{Property: "og:title", Content: page.Title},
		{Property: "og:description", Content: description},
		{Property: "og:type", Content: "website"},
		{Property: "og:url", Content: siteURL},
		{Property: "og:image", Content: md.CoverImage},

		{Name: "twitter:card", Content: "summary_large_image"},
		{Name: "twitter:creator", Content: md.Author},
		{Name: "twitter:title", Content: page.Title},
		{Name: "twitter:description", Content: description},
		{Name: "twitter:image", Content: md.CoverImage},
	}
	return append(tags, page.Extra...)
}

// NewHead assembles everything the layout needs for <head>.
func NewHead(md Metadata, page Page) Head {
	lang := md.Lang
	if lang == "" {
		lang = "en"
	}
	return Head{
		Lang:  lang,
		Title: Title(md, page),
		Meta:  Meta(md, page),
	}
}

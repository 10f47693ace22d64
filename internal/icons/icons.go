// Package icons maps language labels to the icons shown on project cards.
package icons

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Family is the icon set a glyph belongs to.
type Family string

const (
	FontAwesome Family = "fa"
	SimpleIcons Family = "si"
)

// Icon identifies a glyph within its family.
type Icon struct {
	Family Family
	Glyph  string
}

// Class is the CSS class list for Font Awesome glyphs.
func (i Icon) Class() string {
	style := "fa-brands"
	if i.Glyph == "code" {
		style = "fa-solid"
	}
	return style + " fa-" + i.Glyph
}

// Src is the image URL for Simple Icons glyphs.
func (i Icon) Src() string {
	return "https://cdn.simpleicons.org/" + i.Glyph
}

// IsImage reports whether the icon renders as an <img> rather than a font glyph.
func (i Icon) IsImage() bool {
	return i.Family == SimpleIcons
}

var table = map[string]Icon{
	"C":             {FontAwesome, "code"},
	"Cpp":           {SimpleIcons, "cplusplus"},
	"Dev":           {FontAwesome, "dev"},
	"Facebook":      {FontAwesome, "facebook"},
	"Flutter":       {SimpleIcons, "flutter"},
	"Github":        {FontAwesome, "github"},
	"Javascript":    {FontAwesome, "square-js"},
	"Jupyter":       {SimpleIcons, "jupyter"},
	"Linkedin":      {FontAwesome, "linkedin"},
	"Python":        {FontAwesome, "python"},
	"Stackoverflow": {FontAwesome, "stack-overflow"},
	"Twitter":       {FontAwesome, "twitter"},
	"Typescript":    {SimpleIcons, "typescript"},
	"Rust":          {FontAwesome, "rust"},
	"Go":            {SimpleIcons, "go"},
	"Mdx":           {SimpleIcons, "mdx"},
	"Java":          {FontAwesome, "java"},
}

// Normalize turns a language label into a lookup key: "+" becomes "p" and
// every word is title-cased, so "C++" becomes "Cpp".
func Normalize(label string) string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.Und).String(strings.ReplaceAll(label, "+", "p"))
}

// Lookup finds the icon for a language label. Unknown and empty labels have none.
func Lookup(label string) (Icon, bool) {
	if label == "" {
		return Icon{}, false
	}
	icon, ok := table[Normalize(label)]
	return icon, ok
}

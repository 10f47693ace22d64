// Package site holds the portfolio's metadata and builds the per-page head tags.
package site

// SocialLink is an external profile shown in the footer.
type SocialLink struct {
	Name string `mapstructure:"name" json:"name"`
	URL  string `mapstructure:"url" json:"url"`
}

// Metadata describes the site as a whole.
type Metadata struct {
	Title            string       `mapstructure:"title"`
	Description      string       `mapstructure:"description"`
	NavigationString string       `mapstructure:"navigation_string"`
	Author           string       `mapstructure:"author"`
	SiteURL          string       `mapstructure:"site_url"`
	CoverImage       string       `mapstructure:"cover_image"`
	Lang             string       `mapstructure:"lang"`
	Social           []SocialLink `mapstructure:"social"`
}

// NavLink is an entry in the header navigation.
type NavLink struct {
	Label string
	Path  string
}

// Navigation is the fixed header menu.
var Navigation = []NavLink{
	{Label: "About", Path: "/timeline"},
	{Label: "Projects", Path: "/work"},
	{Label: "Uses", Path: "/uses"},
}

// Default returns the metadata used when no configuration overrides it.
func Default() Metadata {
	return Metadata{
		Title: "Harsh Dubey",
		Description: "AI/ML student focused on building practical, data-driven systems. " +
			"Exploring NLP, machine learning, and real-world problem solving through hands-on projects.",
		NavigationString: "Harsh Dubey | ",
		Author:           "@iamharshdubey",
		SiteURL:          "https://harshcode.dev",
		CoverImage:       "https://harshcode.dev/square.png",
		Lang:             "en",
		Social: []SocialLink{
			{Name: "X", URL: "https://x.com/chessinorbit"},
			{Name: "GitHub", URL: "https://github.com/harshlostagainn"},
			{Name: "LinkedIn", URL: "https://linkedin.com/in/iamharshdubey"},
		},
	}
}

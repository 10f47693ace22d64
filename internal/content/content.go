// Package content holds the hand-written page content: the commit-log
// timeline and the uses page.
package content

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

type Commit struct {
	Hash    string   `yaml:"hash"`
	Type    string   `yaml:"type"`
	Scope   string   `yaml:"scope"`
	Message string   `yaml:"message"`
	Details []string `yaml:"details"`
	Date    string   `yaml:"date"`
}

// Tone is the color token for the commit's type.
func (c Commit) Tone() string {
	switch c.Type {
	case "feat":
		return "green"
	case "ship":
		return "yellow"
	case "chore":
		return "orange"
	case "fix", "learn", "explore":
		return "blue"
	case "init":
		return "purple"
	default:
		return "zinc"
	}
}

// DetailTone colors diff-style detail lines.
func DetailTone(line string) string {
	switch {
	case strings.HasPrefix(line, "+"):
		return "green"
	case strings.HasPrefix(line, "-"):
		return "red"
	default:
		return ""
	}
}

type Section struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

type Item struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Link        string `yaml:"link,omitempty"`
	Ref         *Ref   `yaml:"ref,omitempty"`
}

// Ref is an inline link appended to an item's description.
type Ref struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

// Commits returns the timeline, newest first.
func Commits() ([]Commit, error) {
	var out []Commit
	if err := load("data/timeline.yaml", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sections returns the uses page sections in display order.
func Sections() ([]Section, error) {
	var out []Section
	if err := load("data/uses.yaml", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func load(name string, v any) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

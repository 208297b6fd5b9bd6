// Package content provides the static review-text library: templates keyed by
// sentiment and theme, dish vocabularies keyed by category, and the author
// name pool. The tables are embedded at build time and never mutated.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pickd/reviewsynth/internal/catalog"
)

//go:embed library.yaml
var libraryYAML []byte

// Library holds the immutable template and vocabulary tables.
type Library struct {
	Positive map[catalog.Issue][]string `yaml:"positive"`
	Negative map[catalog.Issue][]string `yaml:"negative"`
	Neutral  []string                   `yaml:"neutral"`
	Dishes   map[string][]string        `yaml:"dishes"`
	Names    []string                   `yaml:"names"`
}

var defaultLibrary Library

func init() {
	if err := yaml.Unmarshal(libraryYAML, &defaultLibrary); err != nil {
		panic(fmt.Sprintf("content: decode embedded library: %v", err))
	}
}

// Default returns the process-wide library loaded from the embedded tables.
func Default() *Library {
	return &defaultLibrary
}

// DishesFor returns the dish vocabulary for a restaurant category, falling
// back to a generic entry for unknown categories.
func (l *Library) DishesFor(category string) []string {
	if dishes, ok := l.Dishes[category]; ok && len(dishes) > 0 {
		return dishes
	}
	return []string{"signature dish"}
}

// NegativeFor returns the complaint templates for a theme. Themes without
// their own table borrow the service complaints.
func (l *Library) NegativeFor(theme catalog.Issue) []string {
	if templates, ok := l.Negative[theme]; ok && len(templates) > 0 {
		return templates
	}
	return l.Negative[catalog.IssueService]
}

// Render substitutes the {dish} placeholder in a template. Templates carry at
// most this one placeholder, so plain replacement beats a templating engine.
func Render(template, dish string) string {
	return strings.ReplaceAll(template, "{dish}", dish)
}

// Package lookup builds links to an external dictionary for a headword.
package lookup

import (
	"fmt"
	"net/url"
	"strings"
)

// Placeholder marks where the headword goes in a URL template.
const Placeholder = "{word}"

// DefaultTemplate points at the Cambridge English dictionary.
const DefaultTemplate = "https://dictionary.cambridge.org/dictionary/english/" + Placeholder

// Builder interpolates headwords into a dictionary URL template.
type Builder struct {
	template string
}

// NewBuilder validates template and returns a Builder for it.
func NewBuilder(template string) (*Builder, error) {
	if template == "" {
		template = DefaultTemplate
	}
	if !strings.Contains(template, Placeholder) {
		return nil, fmt.Errorf("dictionary url template %q has no %s placeholder", template, Placeholder)
	}

	probe := strings.ReplaceAll(template, Placeholder, "x")
	u, err := url.Parse(probe)
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary url template: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("dictionary url template must be http or https, got %q", u.Scheme)
	}

	return &Builder{template: template}, nil
}

// URL returns the lookup URL for word with the word percent-encoded as a
// single path segment. An empty word yields an empty string.
func (b *Builder) URL(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return strings.ReplaceAll(b.template, Placeholder, url.PathEscape(word))
}

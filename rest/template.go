package rest

import (
	"net/url"
	"regexp"
	"strings"
)

// Template is a URL path pattern with zero or more {name} placeholders,
// e.g. "/comments/{commentID}". Placeholder values are substituted
// positionally at call time.
type Template string

var placeholderPattern = regexp.MustCompile(`\{[^/{}]+\}`)

// Placeholders returns the placeholder names in order of appearance.
func (t Template) Placeholders() []string {
	matches := placeholderPattern.FindAllString(string(t), -1)
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.Trim(m, "{}")
	}
	return names
}

// Expand substitutes the given values for the template's placeholders in
// order. The value count must match the placeholder count exactly; a mismatch
// returns a *PathError before any request is sent. Values are path-escaped.
func (t Template) Expand(values ...string) (string, error) {
	placeholders := placeholderPattern.FindAllStringIndex(string(t), -1)
	if len(placeholders) != len(values) {
		return "", &PathError{
			Template: t,
			Want:     len(placeholders),
			Got:      len(values),
		}
	}
	if len(values) == 0 {
		return string(t), nil
	}

	var b strings.Builder
	last := 0
	for i, loc := range placeholders {
		b.WriteString(string(t)[last:loc[0]])
		b.WriteString(url.PathEscape(values[i]))
		last = loc[1]
	}
	b.WriteString(string(t)[last:])
	return b.String(), nil
}

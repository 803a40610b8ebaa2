// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// TypeAll is the listing filter value that matches every type.
const TypeAll = "all"

// CatalogEntry is one listing row. The JSON shape is what gets cached.
type CatalogEntry struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	URL   string   `json:"url"`
	Types []string `json:"types"`
}

// HasType reports whether the entry carries the given type tag.
func (e CatalogEntry) HasType(tag string) bool {
	for _, t := range e.Types {
		if t == tag {
			return true
		}
	}
	return false
}

// Resource is a named upstream reference.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FormatNumber renders an identifier the way the catalog shows it (#025).
func FormatNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// DisplayName capitalizes the first letter of an upstream name.
func DisplayName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Package filetype maps file names to highlighting rule sets.
//
// Detection is purely extension based and case-insensitive: go-enry supplies
// the candidate languages for an extension and the first one registered here
// wins. Anything else maps to the "No filetype" default, which highlights
// nothing.
package filetype

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/iw2rmb/quill/syntax"
)

// DefaultName is the label of the file type used when nothing matches.
const DefaultName = "No filetype"

// FileType is a named rule set.
type FileType struct {
	Name  string
	Rules syntax.Rules
}

// Default returns the file type that highlights nothing.
func Default() FileType {
	return FileType{Name: DefaultName}
}

// Detect returns the file type for name, or Default.
func Detect(name string) FileType {
	if name == "" {
		return Default()
	}
	base := strings.ToLower(filepath.Base(name))
	for _, lang := range enry.GetLanguagesByExtension(base, nil, nil) {
		if ft, ok := Lookup(lang); ok {
			return ft
		}
	}
	return Default()
}

// Lookup returns the registered file type for a language name as reported
// by go-enry (for example "Rust" or "Go").
func Lookup(lang string) (FileType, bool) {
	newRules, ok := registry[lang]
	if !ok {
		return FileType{}, false
	}
	return FileType{Name: lang, Rules: newRules()}, true
}

// Languages returns the registered language names in sorted order.
func Languages() []string {
	return slices.Sorted(maps.Keys(registry))
}

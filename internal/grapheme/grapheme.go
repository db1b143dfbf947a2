// Package grapheme holds the grapheme-cluster primitives every editing index
// in quill is expressed in.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	for text != "" {
		var c string
		c, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, c)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters into a single string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the number of terminal cells cluster occupies when painted.
// A tab is painted as a single blank.
func Width(cluster string) int {
	if cluster == "\t" {
		return 1
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// IsAlnum reports whether cluster starts with a letter or a digit.
func IsAlnum(cluster string) bool {
	if cluster == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsDigit reports whether cluster is a single ASCII digit.
func IsDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}

// MatchAt reports how many clusters of s match clusters starting at at.
// It returns 0 when s is empty or does not match completely.
func MatchAt(clusters []string, at int, s string) int {
	if s == "" || at < 0 {
		return 0
	}
	n := 0
	state := -1
	for s != "" {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if at+n >= len(clusters) || clusters[at+n] != c {
			return 0
		}
		n++
	}
	return n
}

// Index returns the cluster index of the first occurrence of query in
// clusters at or after from, or -1.
func Index(clusters []string, query string, from int) int {
	if query == "" {
		return -1
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < len(clusters); i++ {
		if MatchAt(clusters, i, query) > 0 {
			return i
		}
	}
	return -1
}

// LastIndex returns the cluster index of the rightmost occurrence of query
// lying entirely inside clusters[:end], or -1.
func LastIndex(clusters []string, query string, end int) int {
	if query == "" {
		return -1
	}
	if end > len(clusters) {
		end = len(clusters)
	}
	n := Count(query)
	for i := end - n; i >= 0; i-- {
		if MatchAt(clusters[:end], i, query) > 0 {
			return i
		}
	}
	return -1
}

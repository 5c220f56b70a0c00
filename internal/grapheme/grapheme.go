// Package grapheme wraps uniseg and go-runewidth for cluster segmentation and
// terminal cell widths.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
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

// FirstRune returns the leading rune of cluster, or 0 for an empty cluster.
func FirstRune(cluster string) rune {
	for _, r := range cluster {
		return r
	}
	return 0
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Width returns the terminal cell width of a single cluster.
//
// Tabs count as tabWidth cells. Clusters that runewidth reports as zero wide
// fall back to uniseg, which knows about emoji presentation sequences.
func Width(cluster string, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			return 1
		}
		return tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

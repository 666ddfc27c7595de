package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
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

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster.
//
// Zero-width results from go-runewidth fall back to uniseg, which knows about
// emoji sequences that runewidth reports as 0.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w == 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// WidthOf returns the summed cell width of clusters.
func WidthOf(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += Width(c)
	}
	return n
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

// IsPrintable reports whether cluster can be typed into a single-line field:
// non-empty and free of control runes.
func IsPrintable(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// ABOUTME: Display-width measurement for region rows with grapheme segmentation
// ABOUTME: ANSI escape sequences contribute zero width; East Asian cells count double

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the number of terminal columns s occupies. ANSI escape
// sequences are skipped; grapheme clusters are measured as cells, so East
// Asian characters and emoji count as two.
func Visible(s string) int {
	if s == "" {
		return 0
	}
	// Fast path: printable ASCII without escapes is one cell per byte.
	if isPlainASCII(s) {
		return len(s)
	}

	w := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipANSISequence(s, i)
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w += graphemeWidth(cluster)
		i += len(s[i:]) - len(rest)
	}
	return w
}

// isPlainASCII reports whether s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the cell width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// skipANSISequence advances past the ANSI escape sequence starting at s[i]
// and returns the index of the first byte after it. Handles CSI, OSC, and
// two-byte ESC sequences.
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: ESC [ ... <final byte 0x40-0x7E>
		i++
		for i < len(s) {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC: ESC ] ... (BEL or ST)
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		return i + 1
	}
}

// containsESC is a fast check for the presence of ESC (0x1B).
func containsESC(s string) bool {
	return strings.ContainsRune(s, '\x1b')
}

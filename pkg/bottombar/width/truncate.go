// ABOUTME: Column-bounded truncation that cuts on grapheme boundaries
// ABOUTME: ANSI escape sequences pass through so styling stays balanced

package width

import "github.com/rivo/uniseg"

// Truncate returns s cut to at most max terminal columns. The cut falls on
// a grapheme boundary, so a double-width character that would straddle the
// limit is dropped entirely. ANSI escape sequences are preserved even past
// the cut point, keeping any trailing SGR reset intact.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if !containsESC(s) && isPlainASCII(s) {
		if len(s) <= max {
			return s
		}
		return s[:max]
	}
	if Visible(s) <= max {
		return s
	}

	var out []byte
	col := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			out = append(out, s[i:end]...)
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		if col+w <= max {
			out = append(out, cluster...)
			col += w
		}
		i += len(s[i:]) - len(rest)
	}
	return string(out)
}

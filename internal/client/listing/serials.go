package listing

import "strings"

// NormalizeSerials trims every line, drops blanks and keeps the first
// occurrence of each exact value, preserving order.
func NormalizeSerials(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		s := strings.TrimSpace(l)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// SplitSerials splits pasted or scanned input into lines. Only line breaks
// separate serials; any other character, commas included, is part of one.
func SplitSerials(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
}

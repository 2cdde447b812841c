package tsfile

import "strings"

// identifiers returns the set of identifiers referenced by TypeScript source,
// ignoring comments and string literal contents. Dotted access contributes
// each segment, so "EntryFields.Symbol" yields both names.
func identifiers(src string) map[string]struct{} {
	out := make(map[string]struct{})

	var current strings.Builder
	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := current.String()
		current.Reset()
		if !isDigit(word[0]) {
			out[word] = struct{}{}
		}
	}

	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case ch == '/' && i+1 < len(src) && src[i+1] == '*':
			flush()
			end := strings.Index(src[i+2:], "*/")
			if end == -1 {
				return out
			}
			i += end + 3
		case ch == '/' && i+1 < len(src) && src[i+1] == '/':
			flush()
			end := strings.IndexByte(src[i:], '\n')
			if end == -1 {
				return out
			}
			i += end
		case ch == '\'' || ch == '"' || ch == '`':
			flush()
			i = skipString(src, i)
		case isIdentByte(ch):
			current.WriteByte(ch)
		default:
			flush()
		}
	}
	flush()
	return out
}

// skipString returns the index of the closing quote of the string starting at
// start, or the last index when the literal is unterminated.
func skipString(src string, start int) int {
	quote := src[start]
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return len(src) - 1
}

func isIdentByte(ch byte) bool {
	return ch == '_' || ch == '$' || isDigit(ch) || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

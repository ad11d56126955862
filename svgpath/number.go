package svgpath

import "strconv"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

func startsNumber(c byte) bool { return isDigit(c) || c == '+' || c == '-' || c == '.' }

func skipSpaces(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

// ParseNumber reads the number literal starting at s[pos:], after optional
// whitespace. A literal is an optional sign, digits with at most one
// decimal point, and an optional exponent ('e' or 'E', optional sign, digits).
// A dangling exponent marker is accepted and ignored: "1e" reads as 1.
//
// On success, `next` is past the literal and any following run of
// whitespace and commas. On failure, `next` is the position of the first
// non whitespace byte, and `ok` is false.
func ParseNumber(s string, pos int) (value float32, next int, ok bool) {
	start := skipSpaces(s, pos)
	i := start
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits, hasDecimal := 0, false
	for i < len(s) {
		if isDigit(s[i]) {
			digits++
		} else if s[i] == '.' && !hasDecimal {
			hasDecimal = true
		} else {
			break
		}
		i++
	}
	if digits == 0 {
		return 0, start, false
	}

	valueEnd := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i > expStart {
			valueEnd = i
		}
	}

	// the literal is well formed: the only possible error is an out of
	// range value, for which ParseFloat returns the signed infinity
	f, _ := strconv.ParseFloat(s[start:valueEnd], 32)

	for i < len(s) && (isSpace(s[i]) || s[i] == ',') {
		i++
	}
	return float32(f), i, true
}

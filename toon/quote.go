package toon

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	numericRegex = regexp.MustCompile(`^-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?$`)
	headerRegex  = regexp.MustCompile(`^\[#?\d+`)
	braceRegex   = regexp.MustCompile(`^\{.+\}`)
)

// needsQuotingKey reports whether an object key must be quoted.
func needsQuotingKey(key string) bool {
	if key == "" {
		return true
	}
	if isDigits(key) || key[0] == '-' {
		return true
	}

	for _, c := range key {
		switch c {
		case ' ', ',', ':', '"', '{', '}', '[', ']':
			return true
		}
		if c < 0x20 {
			return true
		}
	}
	return false
}

// needsQuotingValue reports whether a string scalar must be quoted so that a
// reader cannot mistake it for a literal, a number or a structural token when
// delimiter is the active delimiter.
func needsQuotingValue(s, delimiter string) bool {
	if s == "" {
		return true
	}

	// Fast path for common cases
	switch s {
	case "true", "false", "null":
		return true
	}

	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return true
	}
	if strings.HasPrefix(s, "- ") {
		return true
	}
	if delimiter != "" && strings.Contains(s, delimiter) {
		return true
	}

	for _, c := range s {
		switch c {
		case ':', '"', '\\':
			return true
		}
		if c < 0x20 {
			return true
		}
	}

	// Numerals, including ones a reader would take for octal-style leading zeros
	if len(s) > 1 && s[0] == '0' && isDigit(s[1]) {
		return true
	}
	if numericRegex.MatchString(s) {
		return true
	}

	return headerRegex.MatchString(s) || braceRegex.MatchString(s)
}

// escapeString escapes quotes, backslashes and control characters. Everything
// else, including non-ASCII text, is copied through.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	for _, c := range s {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteRune(c)
			}
		}
	}
	return b.String()
}

func quoteString(s string) string {
	return `"` + escapeString(s) + `"`
}

// quoteKey returns key, quoted and escaped if it needs quoting.
func quoteKey(key string) string {
	if needsQuotingKey(key) {
		return quoteString(key)
	}
	return key
}

// quoteField quotes a tabular column name. On top of the key rules a column
// name holding the active delimiter is quoted, since the header row is split
// on it.
func quoteField(key, delimiter string) string {
	if needsQuotingKey(key) || strings.Contains(key, delimiter) {
		return quoteString(key)
	}
	return key
}

// quoteValue returns s, quoted and escaped if it needs quoting.
func quoteValue(s, delimiter string) string {
	if needsQuotingValue(s, delimiter) {
		return quoteString(s)
	}
	return s
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

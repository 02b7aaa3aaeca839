package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Split tokenizes a command line following cmd.exe conventions: double
// quotes group words, ^ escapes the next character outside quotes, and
// backslashes are literal unless they precede a double quote, in which case
// each pair yields one backslash and an odd trailing backslash escapes the
// quote.
func Split(s string) ([]string, error) {
	var tokens []string
	var arg strings.Builder
	inQuotes := false
	escaped := false

	flush := func() {
		if arg.Len() > 0 {
			tokens = append(tokens, arg.String())
			arg.Reset()
		}
	}

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}

		if escaped {
			arg.WriteRune(r)
			escaped = false
			i += size
			continue
		}

		switch {
		case r == '^' && !inQuotes:
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == '\\':
			backslashes := 0
			for i < len(s) && s[i] == '\\' {
				backslashes++
				i++
			}
			if i < len(s) && s[i] == '"' {
				arg.WriteString(strings.Repeat(`\`, backslashes/2))
				if backslashes%2 == 0 {
					inQuotes = !inQuotes
				} else {
					arg.WriteByte('"')
				}
				i++
			} else {
				arg.WriteString(strings.Repeat(`\`, backslashes))
			}
			continue
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			arg.WriteRune(r)
		}
		i += size
	}

	flush()

	return tokens, nil
}

package layout

import "strings"

// textFromContent collects the string operands of every text-show operation
// (Tj, TJ, ' and ") in a decoded content stream. Strings on the same line
// are joined with spaces; each content line contributes one output line.
func textFromContent(content string) string {
	var lines []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !isTextShowLine(line) {
			continue
		}
		parts := literalStrings(line)
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, " "))
		}
	}

	return strings.Join(lines, "\n")
}

// isTextShowLine reports whether a content stream line contains a text-show
// operator.
func isTextShowLine(line string) bool {
	return strings.Contains(line, " Tj") || strings.Contains(line, " TJ") ||
		strings.HasSuffix(line, "'") || strings.HasSuffix(line, "\"")
}

// literalStrings extracts every parenthesized literal string from a content
// stream line, decoding the escape sequences defined for PDF literal
// strings. Whitespace-only strings (kerning artifacts) are dropped.
func literalStrings(line string) []string {
	var texts []string
	var buf strings.Builder
	depth := 0
	escaped := false

	for i := 0; i < len(line); i++ {
		c := line[i]

		if depth == 0 {
			if c == '(' {
				depth = 1
				buf.Reset()
			}
			continue
		}

		if escaped {
			switch c {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case 'b':
				buf.WriteByte('\b')
			case 'f':
				buf.WriteByte('\f')
			case '(', ')', '\\':
				buf.WriteByte(c)
			case '0', '1', '2', '3', '4', '5', '6', '7':
				// Octal escape: up to three digits.
				v := int(c - '0')
				for n := 0; n < 2 && i+1 < len(line); n++ {
					next := line[i+1]
					if next < '0' || next > '7' {
						break
					}
					v = v*8 + int(next-'0')
					i++
				}
				buf.WriteByte(byte(v))
			default:
				buf.WriteByte(c)
			}
			escaped = false
			continue
		}

		switch c {
		case '\\':
			escaped = true
		case '(':
			// Balanced parentheses are legal inside literal strings.
			depth++
			buf.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				if s := buf.String(); strings.TrimSpace(s) != "" {
					texts = append(texts, s)
				}
			} else {
				buf.WriteByte(c)
			}
		default:
			buf.WriteByte(c)
		}
	}

	return texts
}

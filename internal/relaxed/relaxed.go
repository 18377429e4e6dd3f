// Package relaxed strips the non-standard sugar some hand-maintained rule
// files carry: // line comments, /* block */ comments, and trailing commas
// before a closing bracket. The scanner is string-literal aware, so comment
// markers and commas inside JSON strings survive untouched.
package relaxed

// Strip returns b with comments and trailing commas removed. Positions of
// surviving bytes shift, so it is meant for lenient loading, not for
// offset-accurate diagnostics.
func Strip(b []byte) []byte {
	out := make([]byte, 0, len(b))
	// Index into out of the last pending comma, or -1. A pending comma is
	// dropped when the next significant byte closes a container.
	pendingComma := -1

	for i := 0; i < len(b); i++ {
		c := b[i]
		switch c {
		case '"':
			pendingComma = -1
			out = append(out, c)
			for i++; i < len(b); i++ {
				out = append(out, b[i])
				if b[i] == '\\' && i+1 < len(b) {
					i++
					out = append(out, b[i])
					continue
				}
				if b[i] == '"' {
					break
				}
			}
		case '/':
			if i+1 < len(b) && b[i+1] == '/' {
				for i < len(b) && b[i] != '\n' {
					i++
				}
				if i < len(b) {
					out = append(out, '\n')
				}
				continue
			}
			if i+1 < len(b) && b[i+1] == '*' {
				i += 2
				for i+1 < len(b) && !(b[i] == '*' && b[i+1] == '/') {
					i++
				}
				i++ // skip the closing '/'
				continue
			}
			pendingComma = -1
			out = append(out, c)
		case ',':
			pendingComma = len(out)
			out = append(out, c)
		case '}', ']':
			if pendingComma >= 0 {
				out = append(out[:pendingComma], out[pendingComma+1:]...)
			}
			pendingComma = -1
			out = append(out, c)
		case ' ', '\t', '\r', '\n':
			out = append(out, c)
		default:
			pendingComma = -1
			out = append(out, c)
		}
	}
	return out
}

package third

// MaxTokens bounds the number of tokens a single Tokenize call will
// produce. This mirrors the reference implementation's MAX_TOKENS bound
// (see original_source/src/forth.h), but unlike the original -- which
// silently drops everything past the limit -- Tokenize reports the true
// token count it found via the second return value, so a caller can detect
// truncation instead of silently losing program text.
const MaxTokens = 8192

// Tokenize strips comments from src and splits what remains into
// whitespace-delimited tokens, capped at MaxTokens. The second return value
// is the number of tokens that would have been produced with no cap,
// letting a caller notice truncation (len(tokens) < total).
func Tokenize(src string) (tokens []string, total int) {
	cleaned := stripComments(src)
	fields := splitFields(cleaned)
	total = len(fields)
	if total > MaxTokens {
		fields = fields[:MaxTokens]
	}
	return fields, total
}

// stripComments removes `\`-to-end-of-line comments, nestable `(...)`
// comments, and unconditionally drops `#` and carriage return bytes, per
// SPEC_FULL.md §4.1 (grounded on original_source/src/forth.c's
// remove_comments).
func stripComments(src string) string {
	out := make([]byte, 0, len(src))
	depth := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\\' {
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		}
		if c == '(' {
			depth++
			continue
		}
		if c == ')' && depth > 0 {
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		if c == '#' || c == '\r' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// splitFields splits s on runs of space, tab, or newline, dropping empty
// tokens.
func splitFields(s string) []string {
	var toks []string
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n':
			if start >= 0 {
				toks = append(toks, s[start:i])
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		toks = append(toks, s[start:])
	}
	return toks
}

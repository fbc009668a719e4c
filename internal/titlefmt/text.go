package titlefmt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// spaceClass lists the whitespace and line terminator characters titles are
// split and trimmed on, for use inside a bracket expression. RE2's \s only
// covers ASCII.
const spaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

const (
	space    = `[` + spaceClass + `]`
	nonSpace = `[^` + spaceClass + `]`
)

var reSpaceRun = regexp.MustCompile(space + `+`)

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// collapseSpace turns every whitespace run into a single space. Leading and
// trailing runs are collapsed too, not removed.
func collapseSpace(s string) string {
	return reSpaceRun.ReplaceAllString(s, " ")
}

func splitSpace(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}

// Casers are stateful, so each call builds its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// splitFirst returns the first rune of s as a string and the remainder.
func splitFirst(s string) (first, rest string) {
	_, n := utf8.DecodeRuneInString(s)
	return s[:n], s[n:]
}

// capitalize upper-cases the first character and lower-cases the rest.
func capitalize(word string) string {
	first, rest := splitFirst(word)
	return upper(first) + lower(rest)
}

func lowerFirst(word string) string {
	first, rest := splitFirst(word)
	return lower(first) + rest
}

// foldLiteral quotes s for RE2 so it matches case-insensitively without the
// (?i) flag, whose Unicode folding pairs "s" with "ſ" and "k" with the Kelvin
// sign. Two letters are interchangeable only when they share an upper-case
// form, and a non-ASCII letter never stands in for an ASCII one.
func foldLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		variants := []rune{r}
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if canonicalCase(f) == canonicalCase(r) {
				variants = append(variants, f)
			}
		}
		if len(variants) == 1 {
			b.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		b.WriteByte('[')
		for _, v := range variants {
			b.WriteString(regexp.QuoteMeta(string(v)))
		}
		b.WriteByte(']')
	}
	return b.String()
}

func canonicalCase(r rune) rune {
	u := unicode.ToUpper(r)
	if r >= utf8.RuneSelf && u < utf8.RuneSelf {
		return r
	}
	return u
}

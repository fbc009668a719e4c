package titlefmt

import (
	"regexp"
	"strings"

	"github.com/llehouerou/titleformat/internal/pattern"
)

// CasingMode selects the final case conversion.
type CasingMode string

const (
	TitleCase    CasingMode = "TITLECASE"
	SentenceCase CasingMode = "SENTENCECASE"
	UpperCase    CasingMode = "UPPERCASE"
	LowerCase    CasingMode = "LOWERCASE"
	CamelCase    CasingMode = "CAMELCASE"
	KebabCase    CasingMode = "KEBABCASE"
)

// ParseCasingMode matches name case-insensitively against the known modes.
func ParseCasingMode(name string) (CasingMode, bool) {
	switch mode := CasingMode(strings.ToUpper(trimSpace(name))); mode {
	case TitleCase, SentenceCase, UpperCase, LowerCase, CamelCase, KebabCase:
		return mode, true
	}
	return "", false
}

var (
	reTitleWord     = regexp.MustCompile(`\w` + nonSpace + `*`)
	reWord          = regexp.MustCompile(`\w+`)
	reFirstNonSpace = regexp.MustCompile(`^` + space + `*` + nonSpace)
)

// preserveMatcher exempts matching tokens from a casing rule. spelling is
// set when the source was plain text without pattern syntax; kebab case
// rewrites matches in that spelling.
type preserveMatcher struct {
	p        *pattern.Pattern
	spelling string
}

// compilePreserve builds the preserve-case matcher. Plain text is compiled
// as a pattern with "gi"; a delimited pattern without flags also gets "gi".
func compilePreserve(raw string) (*preserveMatcher, error) {
	raw = trimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if body, flags, ok := pattern.Delimited(raw); ok {
		if flags == "" {
			flags = "gi"
		}
		p, err := pattern.Compile(body, flags)
		if err != nil {
			return nil, err
		}
		return &preserveMatcher{p: p}, nil
	}

	p, err := pattern.Compile(raw, "gi")
	if err != nil {
		return nil, err
	}
	m := &preserveMatcher{p: p}
	if pattern.Escape(raw) == raw {
		m.spelling = raw
	}
	return m, nil
}

func (m *preserveMatcher) matches(word string) bool {
	if m == nil {
		return false
	}
	ok, err := m.p.MatchString(word)
	return err == nil && ok
}

// respell writes every match inside word in the configured spelling.
func (m *preserveMatcher) respell(word string) string {
	if m.spelling == "" {
		return word
	}
	out, err := m.p.Replace(word, m.spelling)
	if err != nil {
		return word
	}
	return out
}

// applyCasing converts v according to s.CasingMode. An empty mode is a no-op;
// an unknown one is a no-op with a warning.
func (f *Formatter) applyCasing(v string, s Settings) string {
	name := trimSpace(s.CasingMode)
	if name == "" {
		return v
	}

	preserve, err := compilePreserve(s.PreserveCasePattern)
	if err != nil {
		f.log.Warn("ignoring preserve case pattern", "stage", StageCasing, "pattern", s.PreserveCasePattern, "error", err)
		preserve = nil
	}

	mode, ok := ParseCasingMode(name)
	if !ok {
		f.log.Warn("unknown casing mode", "stage", StageCasing, "mode", s.CasingMode)
		return v
	}

	switch mode {
	case TitleCase:
		return applyTitleCase(v, preserve)
	case SentenceCase:
		return applySentenceCase(v, preserve)
	case UpperCase:
		return upper(v)
	case LowerCase:
		return lower(v)
	case CamelCase:
		return applyCamelCase(v, preserve)
	case KebabCase:
		return applyKebabCase(v, preserve)
	}
	return v
}

// applyTitleCase capitalizes each word; preserved words are left as they are.
func applyTitleCase(v string, preserve *preserveMatcher) string {
	return reTitleWord.ReplaceAllStringFunc(v, func(word string) string {
		if preserve.matches(word) {
			return word
		}
		return capitalize(word)
	})
}

// applySentenceCase lower-cases everything, capitalizes the first visible
// character and upper-cases every preserved word.
func applySentenceCase(v string, preserve *preserveMatcher) string {
	v = lower(v)
	v = reFirstNonSpace.ReplaceAllStringFunc(v, upper)
	if preserve == nil {
		return v
	}
	return reWord.ReplaceAllStringFunc(v, func(word string) string {
		if preserve.matches(word) {
			return upper(word)
		}
		return word
	})
}

// applyCamelCase joins capitalized words. The first word always starts in
// lower case, even when preserved.
func applyCamelCase(v string, preserve *preserveMatcher) string {
	words := splitSpace(v)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for i, word := range words {
		switch {
		case preserve.matches(word):
			if i == 0 {
				word = lowerFirst(word)
			}
		case i == 0:
			word = lowerFirst(capitalize(word))
		default:
			word = capitalize(word)
		}
		b.WriteString(word)
	}
	return b.String()
}

// applyKebabCase joins lower-cased words with hyphens. Preserved words keep
// their case, or take the preserve spelling when it is plain text.
func applyKebabCase(v string, preserve *preserveMatcher) string {
	words := splitSpace(v)
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		if preserve.matches(word) {
			words[i] = preserve.respell(word)
			continue
		}
		words[i] = lower(word)
	}
	return strings.Join(words, "-")
}

package titlefmt

import (
	"strings"

	"github.com/llehouerou/titleformat/internal/pattern"
)

// wordBoundary is an ASCII-only \b. regexp2 treats every Unicode letter as
// a word character, so "É" would otherwise open a word.
const wordBoundary = `(?:(?<=[A-Za-z0-9_])(?![A-Za-z0-9_])|(?<![A-Za-z0-9_])(?=[A-Za-z0-9_]))`

// notPossessive rejects a match already followed by an apostrophe.
const notPossessive = `s` + wordBoundary + `(?!['’])`

// possessivePatterns compiles one matcher per comma-separated term. Literal
// terms match "<term>s" on word boundaries, case-insensitively. Delimited
// terms wrap the user's pattern as "(<pattern>)s" and default to "gi".
// Terms that fail to compile are skipped.
func (f *Formatter) possessivePatterns(raw string) []*pattern.Pattern {
	var patterns []*pattern.Pattern
	for _, term := range strings.Split(raw, ",") {
		term = trimSpace(term)
		if term == "" {
			continue
		}

		var (
			p   *pattern.Pattern
			err error
		)
		if body, flags, ok := pattern.Delimited(term); ok {
			if flags == "" {
				flags = "gi"
			}
			p, err = pattern.Compile("("+body+")"+notPossessive, pattern.WithGlobal(flags))
		} else {
			p, err = pattern.Compile(wordBoundary+`(`+pattern.Escape(term)+`)`+notPossessive, "gi")
		}
		if err != nil {
			f.log.Warn("skipping possessive term", "stage", StagePossessive, "pattern", term, "error", err)
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns
}

// restorePossessives rewrites "<term>s" as "<term>'s". With smartPossessive
// set and more than one performer it does nothing, since the owner is
// ambiguous.
func (f *Formatter) restorePossessives(v string, s Settings, performerCount int) string {
	patterns := f.possessivePatterns(s.PossessiveBaseTerms)
	if len(patterns) == 0 {
		return v
	}
	if s.SmartPossessive && performerCount > 1 {
		return v
	}

	for _, p := range patterns {
		out, err := p.ReplaceFunc(v, func(m pattern.Match) string {
			return m.Group(1) + "'s"
		})
		if err != nil {
			f.log.Warn("possessive term failed", "stage", StagePossessive, "pattern", p.String(), "error", err)
			continue
		}
		v = out
	}
	return v
}

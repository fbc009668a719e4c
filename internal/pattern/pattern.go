// Package pattern compiles user-supplied patterns from settings text.
//
// Settings fields accept either plain text or the delimited form
// /pattern/flags. Delimited patterns follow ECMAScript regular expression
// syntax (lookahead, backreferences, named groups), which the standard
// library's RE2 engine does not support, so compilation goes through
// regexp2 in ECMAScript mode. Every compilation is fallible: callers are
// expected to skip a pattern that fails and carry on with the rest.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// ErrInvalidFlags reports an unknown or repeated flag letter.
	ErrInvalidFlags = errors.New("invalid flags")
	// ErrUnsupportedFlag reports a valid ECMAScript flag this package does not implement.
	ErrUnsupportedFlag = errors.New("unsupported flag")
)

// CompileError is returned by Compile when a pattern cannot be used.
type CompileError struct {
	Source string
	Flags  string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile /%s/%s: %v", e.Source, e.Flags, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// reDelimited matches /body/flags. The body is greedy so the last slash
// followed only by letters closes it, and it never spans a line break.
var reDelimited = regexp.MustCompile(`^/([^\n\r\x{2028}\x{2029}]+)/([a-zA-Z]*)$`)

// Delimited splits s into body and flags when it is written as /body/flags.
func Delimited(s string) (body, flags string, ok bool) {
	m := reDelimited.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// WithGlobal returns flags with "g" appended when it is missing.
func WithGlobal(flags string) string {
	if strings.Contains(flags, "g") {
		return flags
	}
	return flags + "g"
}

var metaReplacer = strings.NewReplacer(
	`\`, `\\`, `.`, `\.`, `*`, `\*`, `+`, `\+`, `?`, `\?`, `^`, `\^`,
	`$`, `\$`, `{`, `\{`, `}`, `\}`, `(`, `\(`, `)`, `\)`, `|`, `\|`,
	`[`, `\[`, `]`, `\]`,
)

// Escape quotes every pattern metacharacter in s.
func Escape(s string) string {
	return metaReplacer.Replace(s)
}

// Pattern is a compiled pattern plus its global flag. A non-global pattern
// replaces only its first match.
type Pattern struct {
	re     *regexp2.Regexp
	source string
	flags  string
	global bool
	ncap   int
	named  bool
}

// Compile compiles body with ECMAScript flags (d, g, i, m, s, u, v).
func Compile(body, flags string) (*Pattern, error) {
	opts, global, err := parseFlags(flags)
	if err != nil {
		return nil, &CompileError{Source: body, Flags: flags, Err: err}
	}
	re, err := regexp2.Compile(body, opts)
	if err != nil {
		return nil, &CompileError{Source: body, Flags: flags, Err: err}
	}

	p := &Pattern{
		re:     re,
		source: body,
		flags:  flags,
		global: global,
		ncap:   len(re.GetGroupNumbers()) - 1,
	}
	for _, name := range re.GetGroupNames() {
		if _, err := strconv.Atoi(name); err != nil {
			p.named = true
			break
		}
	}
	return p, nil
}

// Literal compiles text as an exact, escaped match.
func Literal(text, flags string) (*Pattern, error) {
	return Compile(Escape(text), flags)
}

func parseFlags(flags string) (regexp2.RegexOptions, bool, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	global := false
	seen := make(map[rune]bool, len(flags))
	for _, f := range flags {
		if seen[f] {
			return 0, false, fmt.Errorf("%w: duplicate %q", ErrInvalidFlags, f)
		}
		seen[f] = true
		switch f {
		case 'g':
			global = true
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u', 'v':
			opts |= regexp2.Unicode
		case 'd':
			// match indices only change exec() results
		case 'y':
			return 0, false, fmt.Errorf("%w: %q", ErrUnsupportedFlag, f)
		default:
			return 0, false, fmt.Errorf("%w: %q", ErrInvalidFlags, f)
		}
	}
	if seen['u'] && seen['v'] {
		return 0, false, fmt.Errorf("%w: u and v are exclusive", ErrInvalidFlags)
	}
	return opts, global, nil
}

func (p *Pattern) String() string { return "/" + p.source + "/" + p.flags }

// Global reports whether the pattern replaces every match.
func (p *Pattern) Global() bool { return p.global }

// MatchString reports whether s contains a match. Matching always starts at
// the beginning of s, whatever the global flag.
func (p *Pattern) MatchString(s string) (bool, error) {
	return p.re.MatchString(s)
}

func (p *Pattern) count() int {
	if p.global {
		return -1
	}
	return 1
}

// Replace substitutes matches in s with template, expanding $$, $&, $`, $',
// $n, $nn and $<name> the way String.prototype.replace does.
func (p *Pattern) Replace(s, template string) (string, error) {
	if !strings.Contains(template, "$") {
		return p.re.Replace(s, template, -1, p.count())
	}
	input := []rune(s)
	return p.re.ReplaceFunc(s, func(m regexp2.Match) string {
		return p.expand(template, &m, input)
	}, -1, p.count())
}

// Match is one match handed to a ReplaceFunc callback.
type Match struct {
	// Text is the whole match.
	Text   string
	groups []string
}

// Group returns capture n, or "" when it did not participate.
func (m Match) Group(n int) string {
	if n == 0 {
		return m.Text
	}
	if n < 0 || n > len(m.groups) {
		return ""
	}
	return m.groups[n-1]
}

// ReplaceFunc substitutes matches in s with the result of fn.
func (p *Pattern) ReplaceFunc(s string, fn func(Match) string) (string, error) {
	return p.re.ReplaceFunc(s, func(m regexp2.Match) string {
		groups := make([]string, p.ncap)
		for i := range groups {
			groups[i] = groupText(m.GroupByNumber(i + 1))
		}
		return fn(Match{Text: m.String(), groups: groups})
	}, -1, p.count())
}

func groupText(g *regexp2.Group) string {
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

func (p *Pattern) expand(template string, m *regexp2.Match, input []rune) string {
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}
		next := template[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i++
		case next == '&':
			b.WriteString(m.String())
			i++
		case next == '`':
			b.WriteString(string(input[:m.Index]))
			i++
		case next == '\'':
			b.WriteString(string(input[m.Index+m.Length:]))
			i++
		case next >= '0' && next <= '9':
			n, width := p.groupRef(template[i+1:])
			if width == 0 {
				b.WriteByte(c)
				continue
			}
			b.WriteString(groupText(m.GroupByNumber(n)))
			i += width
		case next == '<' && p.named:
			end := strings.IndexByte(template[i+2:], '>')
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			b.WriteString(groupText(m.GroupByName(template[i+2 : i+2+end])))
			i += end + 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// groupRef resolves the digits after a '$'. Two digits win when they name
// an existing capture, otherwise one digit is tried. width is 0 when the
// reference is kept literally.
func (p *Pattern) groupRef(s string) (n, width int) {
	d1 := int(s[0] - '0')
	if len(s) > 1 && s[1] >= '0' && s[1] <= '9' {
		if nn := d1*10 + int(s[1]-'0'); nn >= 1 && nn <= p.ncap {
			return nn, 2
		}
	}
	if d1 >= 1 && d1 <= p.ncap {
		return d1, 1
	}
	return 0, 0
}

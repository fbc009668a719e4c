package titlefmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/llehouerou/titleformat/internal/pattern"
)

// ErrRulesNotArray is returned when the custom rule list is valid JSON but
// not an array.
var ErrRulesNotArray = errors.New("custom replace pairs must be a JSON array")

// ReplacePair is one custom substitution. From is literal text or a
// /pattern/flags expression.
type ReplacePair struct {
	From string
	To   string
}

// ParseReplacePairs decodes a JSON array of [from, to] arrays. Elements that
// are not arrays of at least two items are dropped. Any decoding failure
// yields no pairs and an error describing it.
func ParseReplacePairs(raw string) ([]ReplacePair, error) {
	if trimSpace(raw) == "" {
		return nil, nil
	}

	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("decode custom replace pairs: %w", err)
	}
	items, ok := data.([]any)
	if !ok {
		return nil, ErrRulesNotArray
	}

	var pairs []ReplacePair
	for _, item := range items {
		arr, ok := item.([]any)
		if !ok || len(arr) < 2 {
			continue
		}
		pairs = append(pairs, ReplacePair{From: jsString(arr[0]), To: jsString(arr[1])})
	}
	return pairs, nil
}

// jsString renders a decoded JSON value the way String() does in a browser:
// null is "null", arrays are comma joined, objects are "[object Object]".
func jsString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return jsNumber(v)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			if e != nil {
				parts[i] = jsString(e)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

func jsNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.Abs(f) >= 1e21 || math.Abs(f) < 1e-6:
		s := strconv.FormatFloat(f, 'e', -1, 64)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// compileRule builds the matcher for one pair. Delimited patterns always
// replace globally; literal text is escaped and matched case-sensitively.
func compileRule(from string) (*pattern.Pattern, error) {
	if body, flags, ok := pattern.Delimited(from); ok {
		return pattern.Compile(body, pattern.WithGlobal(flags))
	}
	return pattern.Literal(from, "g")
}

// applyReplacePairs runs every pair in order on the running value. A pair
// whose pattern does not compile is skipped.
func (f *Formatter) applyReplacePairs(v string, pairs []ReplacePair) string {
	for _, pair := range pairs {
		if pair.From == "" {
			continue
		}
		p, err := compileRule(pair.From)
		if err != nil {
			f.log.Warn("skipping custom replace pair", "stage", StageCustomRules, "pattern", pair.From, "error", err)
			continue
		}
		out, err := p.Replace(v, pair.To)
		if err != nil {
			f.log.Warn("custom replace pair failed", "stage", StageCustomRules, "pattern", pair.From, "error", err)
			continue
		}
		v = out
	}
	return v
}

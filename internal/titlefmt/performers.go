package titlefmt

import "regexp"

// bindingWords join a performer name to the text around it. Each is tried
// on both sides of the full name, in this order.
var bindingWords = []string{
	"&",
	"and",
	"as",
	"by",
	"feat",
	"feat.",
	"featuring",
	"from",
	"ft",
	"ft.",
	"in",
	"is",
	"like",
	"on",
	"or",
	"original",
	"performed by",
	"presented by",
	"presents",
	"produced by",
	"remixed by",
	"starring",
	"version",
	"versus",
	"vocal",
	"vs",
	"vs.",
	"w/",
	"with",
	"written by",
}

// PerformerNames trims raw names, drops empty ones and removes duplicates,
// keeping the first occurrence of each.
func PerformerNames(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		name = trimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// blank replaces every match of expr with a single space so the words on
// either side never fuse. Callers build expr from foldLiteral pieces.
func blank(v, expr string) string {
	re, err := regexp.Compile(expr)
	if err != nil {
		return v
	}
	return re.ReplaceAllLiteralString(v, " ")
}

const possessiveSuffix = space + `*['’][sS]\b`

// redactPerformers removes each performer's name from v: possessive full
// name, full name next to a binding word, bare full name, then each name
// part with and without a possessive suffix. It reports whether v changed.
func redactPerformers(v string, names []string) (string, bool) {
	result := v
	for _, name := range names {
		name = trimSpace(name)
		if name == "" {
			continue
		}
		full := foldLiteral(name)

		result = blank(result, `\b`+full+possessiveSuffix)

		for _, word := range bindingWords {
			w := foldLiteral(word)
			result = blank(result, `\b`+w+space+`+`+full+`\b`)
			result = blank(result, `\b`+full+space+`+`+w+`\b`)
		}

		result = blank(result, `\b`+full+`\b`)

		for _, part := range splitSpace(name) {
			p := foldLiteral(part)
			result = blank(result, `\b`+p+possessiveSuffix)
			result = blank(result, `\b`+p+`\b`)
		}
	}
	return result, result != v
}

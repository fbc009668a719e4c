package titlefmt

import "strings"

// Typographic quote variants. The canonical ASCII characters are not part
// of either set.
const (
	doubleQuoteChars = "“”„‟〝〞〟⹂⹃⹄"
	singleQuoteChars = "’‘‚‛`´′ˈʻʼʽʾʿˊˋ＇"
)

var (
	doubleQuoteNormalizer = newQuoteReplacer(doubleQuoteChars, `"`)
	singleQuoteNormalizer = newQuoteReplacer(singleQuoteChars, "'")
	doubleQuoteRemover    = newQuoteReplacer(doubleQuoteChars, "")
)

func newQuoteReplacer(chars, with string) *strings.Replacer {
	var oldnew []string
	for _, r := range chars {
		oldnew = append(oldnew, string(r), with)
	}
	return strings.NewReplacer(oldnew...)
}

// normalizeQuotes maps typographic quotes to their ASCII form and/or drops
// typographic double quotes. Removal runs after normalization, so quotes
// already normalized to ASCII survive it.
func normalizeQuotes(v string, s Settings) string {
	if s.NormalizeAllQuotes {
		v = doubleQuoteNormalizer.Replace(v)
		v = singleQuoteNormalizer.Replace(v)
	}
	if s.RemoveAllDoubleQuotes {
		v = doubleQuoteRemover.Replace(v)
	}
	return v
}

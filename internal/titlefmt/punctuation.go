package titlefmt

import "regexp"

// edgeClass is the whitespace, dash, separator and quote set trimmed from
// title edges and ignored when judging whether a title has content.
const edgeClass = `[` + spaceClass + `\-\x{2013}\x{2014}:;,.!?'"\x{2026}]`

var (
	// reSeasonEpisode matches S01E02-style tags and the separator before them.
	reSeasonEpisode = regexp.MustCompile(`[` + spaceClass + `\-\x{2013}]*[Ss]\d{1,3}:?[Ee]\d{1,3}`)

	reLeadingPunct  = regexp.MustCompile(`^` + edgeClass + `+`)
	reTrailingPunct = regexp.MustCompile(edgeClass + `+$`)
	reEdgeRun       = regexp.MustCompile(edgeClass + `+`)
)

func removeSeasonEpisode(v string) string {
	return reSeasonEpisode.ReplaceAllString(v, "")
}

func trimEdgePunctuation(v string) string {
	v = reLeadingPunct.ReplaceAllString(v, "")
	return reTrailingPunct.ReplaceAllString(v, "")
}

// hasMeaningfulContent reports whether anything is left once whitespace and
// separators are stripped.
func hasMeaningfulContent(v string) bool {
	v = trimSpace(v)
	if v == "" {
		return false
	}
	return reEdgeRun.ReplaceAllString(v, "") != ""
}

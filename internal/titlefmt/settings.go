package titlefmt

// Settings holds every pipeline toggle. All fields are optional; the zero
// value disables every stage. Keys follow the host's settings record.
type Settings struct {
	RunAlways bool `koanf:"runAlways"` // format even when the item is finalized

	NormalizeAllQuotes    bool `koanf:"normalizeAllQuotes"`
	RemoveAllDoubleQuotes bool `koanf:"removeAllDoubleQuotes"`
	TrimWhitespace        bool `koanf:"trimWhitespace"`
	CollapseWhitespace    bool `koanf:"collapseWhitespace"`
	RemoveEdgePunctuation bool `koanf:"removeEdgePunctuation"`
	RemoveSeasonEpisode   bool `koanf:"removeSeasonEpisode"`
	RemovePerformerNames  bool `koanf:"removePerformerNames"`

	PreserveCasePattern string `koanf:"preserveCasePattern"` // literal or /pattern/flags
	CasingMode          string `koanf:"casingMode"`          // e.g. "TITLECASE"
	PossessiveBaseTerms string `koanf:"possessiveBaseTerms"` // comma separated
	SmartPossessive     bool   `koanf:"smartPossessive"`     // skip possessives with several performers
	CustomReplacePairs  string `koanf:"customReplacePairs"`  // JSON [[from, to], ...]
}

// DefaultSettings returns the all-disabled settings used when no record is
// available.
func DefaultSettings() Settings {
	return Settings{}
}

// Normalize returns a copy with surrounding whitespace removed from every
// text field.
func (s Settings) Normalize() Settings {
	s.PreserveCasePattern = trimSpace(s.PreserveCasePattern)
	s.CasingMode = trimSpace(s.CasingMode)
	s.PossessiveBaseTerms = trimSpace(s.PossessiveBaseTerms)
	s.CustomReplacePairs = trimSpace(s.CustomReplacePairs)
	return s
}

// cleanWhitespace applies the enabled whitespace toggles: trim first, then
// collapse.
func (s Settings) cleanWhitespace(v string) string {
	if s.TrimWhitespace {
		v = trimSpace(v)
	}
	if s.CollapseWhitespace {
		v = collapseSpace(v)
	}
	return v
}

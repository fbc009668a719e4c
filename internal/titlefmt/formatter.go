// Package titlefmt normalizes free-text titles through a fixed sequence of
// independently toggled stages: quote normalization, season/episode tag
// stripping, performer name redaction, whitespace cleanup, custom
// substitutions, edge punctuation trimming, possessive repair and case
// conversion.
//
// The pipeline is stateless. Settings and performer names are passed on
// every call and user patterns are compiled per call; a pattern that fails
// to compile is logged and skipped, and no stage ever returns an error.
package titlefmt

import "log/slog"

// Stage names one step of the pipeline.
type Stage string

const (
	StageQuotes          Stage = "quotes"
	StageSeasonEpisode   Stage = "season-episode"
	StagePerformers      Stage = "performers"
	StageWhitespace      Stage = "whitespace"
	StageCustomRules     Stage = "custom-rules"
	StageEdgePunctuation Stage = "edge-punctuation"
	StagePossessive      Stage = "possessive"
	StageCasing          Stage = "casing"
)

// Step records the value produced by one stage.
type Step struct {
	Stage Stage
	Value string
}

// Formatter runs the pipeline. The zero value is not usable; call New.
// A Formatter holds no per-call state and is safe for concurrent use.
type Formatter struct {
	log *slog.Logger
}

// New returns a Formatter that reports skipped patterns and reverted
// redactions to log. A nil log discards them.
func New(log *slog.Logger) *Formatter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Formatter{log: log}
}

// Format returns title after every enabled stage has run.
func (f *Formatter) Format(title string, s Settings, performers []string) string {
	steps := f.Trace(title, s, performers)
	return steps[len(steps)-1].Value
}

// Trace runs the pipeline and returns the value after each stage, in order.
func (f *Formatter) Trace(title string, s Settings, performers []string) []Step {
	names := PerformerNames(performers)
	steps := make([]Step, 0, 10)
	v := title
	record := func(stage Stage) {
		steps = append(steps, Step{Stage: stage, Value: v})
	}

	v = normalizeQuotes(v, s)
	record(StageQuotes)

	if s.RemoveSeasonEpisode {
		v = removeSeasonEpisode(v)
	}
	record(StageSeasonEpisode)

	if s.RemovePerformerNames && len(names) > 0 {
		v = f.redact(v, s, names)
	}
	record(StagePerformers)

	v = s.cleanWhitespace(v)
	record(StageWhitespace)

	pairs, err := ParseReplacePairs(s.CustomReplacePairs)
	if err != nil {
		f.log.Warn("ignoring custom replace pairs", "stage", StageCustomRules, "error", err)
	}
	if len(pairs) > 0 {
		v = f.applyReplacePairs(v, pairs)
	}
	record(StageCustomRules)

	v = s.cleanWhitespace(v)
	record(StageWhitespace)

	if s.RemoveEdgePunctuation {
		v = trimEdgePunctuation(v)
	}
	record(StageEdgePunctuation)

	v = f.restorePossessives(v, s, len(names))
	record(StagePossessive)

	v = s.cleanWhitespace(v)
	record(StageWhitespace)

	v = f.applyCasing(v, s)
	record(StageCasing)

	return steps
}

// redact removes performer names from v, or returns v untouched when the
// cleaned-up result would carry no meaningful content.
func (f *Formatter) redact(v string, s Settings, names []string) string {
	redacted, changed := redactPerformers(v, names)
	if !changed {
		return v
	}

	candidate := s.cleanWhitespace(redacted)
	candidate = trimEdgePunctuation(candidate)
	candidate = s.cleanWhitespace(candidate)
	if !hasMeaningfulContent(candidate) {
		f.log.Warn("performer redaction left no content, reverting", "stage", StagePerformers, "title", v)
		return v
	}
	return redacted
}

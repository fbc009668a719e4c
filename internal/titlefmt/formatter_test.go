package titlefmt

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupSettings() Settings {
	return Settings{
		TrimWhitespace:        true,
		CollapseWhitespace:    true,
		RemoveEdgePunctuation: true,
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		settings   func() Settings
		performers []string
		expected   string
	}{
		{
			name:  "quotes, tag and trailing punctuation",
			input: `Sarah's “Big” S01E02 Adventure!!`,
			settings: func() Settings {
				s := cleanupSettings()
				s.NormalizeAllQuotes = true
				s.RemoveSeasonEpisode = true
				return s
			},
			expected: `Sarah's "Big" Adventure`,
		},
		{
			name:     "custom replacement",
			input:    "foo foo",
			settings: func() Settings { return Settings{CustomReplacePairs: `[["foo","bar"]]`} },
			expected: "bar bar",
		},
		{
			name:     "possessive",
			input:    "Directors Cut",
			settings: func() Settings { return Settings{PossessiveBaseTerms: "Director"} },
			expected: "Director's Cut",
		},
		{
			name:  "performer redaction",
			input: "Jane Doe vs John Smith - The Finale",
			settings: func() Settings {
				s := cleanupSettings()
				s.RemovePerformerNames = true
				return s
			},
			performers: []string{"Jane Doe"},
			expected:   "John Smith - The Finale",
		},
		{
			name:  "kebab with preserved token",
			input: "nasa mission control",
			settings: func() Settings {
				return Settings{CasingMode: "KEBABCASE", PreserveCasePattern: "NASA"}
			},
			expected: "NASA-mission-control",
		},
		{
			name:  "redaction of the whole title reverts",
			input: "Jane Doe",
			settings: func() Settings {
				s := cleanupSettings()
				s.RemovePerformerNames = true
				return s
			},
			performers: []string{"Jane Doe"},
			expected:   "Jane Doe",
		},
		{
			name:  "performer names ignored when disabled",
			input: "Jane Doe vs John Smith",
			settings: func() Settings {
				return cleanupSettings()
			},
			performers: []string{"Jane Doe"},
			expected:   "Jane Doe vs John Smith",
		},
		{
			name:     "default settings are identity",
			input:    "  “Raw”  Title S01E01!! ",
			settings: DefaultSettings,
			expected: "  “Raw”  Title S01E01!! ",
		},
		{
			name:  "everything together",
			input: "  jane doe presents: the directors   cut S02E10 ...",
			settings: func() Settings {
				s := cleanupSettings()
				s.RemoveSeasonEpisode = true
				s.RemovePerformerNames = true
				s.PossessiveBaseTerms = "director"
				s.CasingMode = "TITLECASE"
				return s
			},
			performers: []string{"Jane Doe"},
			expected:   "The Director's Cut",
		},
	}

	f := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format(tt.input, tt.settings(), tt.performers)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTrace(t *testing.T) {
	f := New(nil)
	s := cleanupSettings()
	s.RemoveSeasonEpisode = true

	steps := f.Trace(" Show S01E02 !", s, nil)
	require.Len(t, steps, 10)

	stages := make([]Stage, len(steps))
	for i, step := range steps {
		stages[i] = step.Stage
	}
	assert.Equal(t, []Stage{
		StageQuotes,
		StageSeasonEpisode,
		StagePerformers,
		StageWhitespace,
		StageCustomRules,
		StageWhitespace,
		StageEdgePunctuation,
		StagePossessive,
		StageWhitespace,
		StageCasing,
	}, stages)

	assert.Equal(t, " Show S01E02 !", steps[0].Value)
	assert.Equal(t, " Show !", steps[1].Value)
	assert.Equal(t, "Show !", steps[3].Value)
	assert.Equal(t, "Show", steps[6].Value)
	assert.Equal(t, "Show", f.Format(" Show S01E02 !", s, nil))
}

func TestFormat_LogsSkippedPatterns(t *testing.T) {
	var buf bytes.Buffer
	f := New(slog.New(slog.NewTextHandler(&buf, nil)))

	s := Settings{
		CustomReplacePairs:  `[["/(/","x"],["a","b"]]`,
		PossessiveBaseTerms: "/)/",
		CasingMode:          "SHOUTING",
	}
	assert.Equal(t, "b", f.Format("a", s, nil))

	out := buf.String()
	assert.Contains(t, out, "stage=custom-rules")
	assert.Contains(t, out, "stage=possessive")
	assert.Contains(t, out, "unknown casing mode")
}

func TestFormat_MalformedRulesLogged(t *testing.T) {
	var buf bytes.Buffer
	f := New(slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Equal(t, "foo", f.Format("foo", Settings{CustomReplacePairs: "not json"}, nil))
	assert.Contains(t, buf.String(), "ignoring custom replace pairs")
}

func TestFormat_ConcurrentUse(t *testing.T) {
	f := New(nil)
	s := Settings{CasingMode: "KEBABCASE", PreserveCasePattern: "NASA", CustomReplacePairs: `[["/o/","0"]]`}

	done := make(chan string, 8)
	for range 8 {
		go func() {
			done <- f.Format("nasa moon", s, nil)
		}()
	}
	for range 8 {
		assert.Equal(t, "NASA-m00n", <-done)
	}
}

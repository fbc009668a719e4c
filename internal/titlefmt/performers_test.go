package titlefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformerNames(t *testing.T) {
	got := PerformerNames([]string{" Jane Doe ", "", "John", "Jane Doe", "  ", "john"})
	assert.Equal(t, []string{"Jane Doe", "John", "john"}, got)
	assert.Empty(t, PerformerNames(nil))
}

func TestRedactPerformers(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		performers  []string
		expected    string
		wantChanged bool
	}{
		{
			name:        "binding word after name",
			input:       "Jane Doe vs John Smith - The Finale",
			performers:  []string{"Jane Doe"},
			expected:    "  John Smith - The Finale",
			wantChanged: true,
		},
		{
			name:        "binding word before name",
			input:       "Night Out featuring Jane Doe",
			performers:  []string{"Jane Doe"},
			expected:    "Night Out  ",
			wantChanged: true,
		},
		{
			name:        "earlier binding word wins",
			input:       "Song performed by Jane Doe",
			performers:  []string{"Jane Doe"},
			expected:    "Song performed  ",
			wantChanged: true,
		},
		{
			name:        "possessive full name",
			input:       "Jane Doe's Big Day",
			performers:  []string{"Jane Doe"},
			expected:    "  Big Day",
			wantChanged: true,
		},
		{
			name:        "typographic possessive",
			input:       "Jane Doe’s Big Day",
			performers:  []string{"Jane Doe"},
			expected:    "  Big Day",
			wantChanged: true,
		},
		{
			name:        "first name possessive",
			input:       "Jane's Big Day",
			performers:  []string{"Jane Doe"},
			expected:    "  Big Day",
			wantChanged: true,
		},
		{
			name:        "bare last name",
			input:       "Meet Doe Today",
			performers:  []string{"Jane Doe"},
			expected:    "Meet   Today",
			wantChanged: true,
		},
		{
			name:        "case insensitive",
			input:       "JANE DOE live",
			performers:  []string{"jane doe"},
			expected:    "  live",
			wantChanged: true,
		},
		{
			name:        "several performers",
			input:       "Jane Doe and John Smith at home",
			performers:  []string{"Jane Doe", "John Smith"},
			expected:    "    at home",
			wantChanged: true,
		},
		{
			name:        "name absent",
			input:       "Nothing here",
			performers:  []string{"Jane Doe"},
			expected:    "Nothing here",
			wantChanged: false,
		},
		{
			name:        "word boundary respected",
			input:       "Janet Doey",
			performers:  []string{"Jane Doe"},
			expected:    "Janet Doey",
			wantChanged: false,
		},
		{
			name:        "name ending in punctuation has no trailing boundary",
			input:       "Mr. (Big) returns",
			performers:  []string{"Mr. (Big)"},
			expected:    "Mr. (Big) returns",
			wantChanged: false,
		},
		{
			name:        "kelvin sign is not a k",
			input:       "Meet Mi\u212Ae today",
			performers:  []string{"Mike"},
			expected:    "Meet Mi\u212Ae today",
			wantChanged: false,
		},
		{
			name:        "accented name case insensitive",
			input:       "Live with ZOË BELL",
			performers:  []string{"Zoë Bell"},
			expected:    "Live  ",
			wantChanged: true,
		},
		{
			name:        "blank names ignored",
			input:       "Jane Doe",
			performers:  []string{"", "   "},
			expected:    "Jane Doe",
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := redactPerformers(tt.input, tt.performers)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestFoldLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ab", "[aA][bB]"},
		{"K", "[Kk]"},
		{"s", "[sS]"},
		{"\u017f", "\u017f"},
		{"é", "[éÉ]"},
		{"ft.", "[fF][tT]\\."},
		{"w/", "[wW]/"},
		{"1&", "1&"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, foldLiteral(tt.input))
		})
	}
}

func TestRedactPerformers_AbsentNameIsIdentity(t *testing.T) {
	titles := []string{
		"A Quiet Evening",
		"Janeway's Log",
		"Does It Matter",
		"",
	}
	for _, title := range titles {
		got, changed := redactPerformers(title, []string{"Jane Doe"})
		assert.False(t, changed, title)
		assert.Equal(t, title, got)
	}
}

func TestFormat_RedactionRevertsWhenEmpty(t *testing.T) {
	f := New(nil)
	s := Settings{
		RemovePerformerNames:  true,
		TrimWhitespace:        true,
		CollapseWhitespace:    true,
		RemoveEdgePunctuation: true,
	}

	tests := []struct {
		name       string
		input      string
		performers []string
		expected   string
	}{
		{"exact name", "Jane Doe", []string{"Jane Doe"}, "Jane Doe"},
		{"name and punctuation", "Jane Doe - !!", []string{"Jane Doe"}, "Jane Doe"},
		{"two performers only", "Jane Doe, John Smith", []string{"Jane Doe", "John Smith"}, "Jane Doe, John Smith"},
		{"ampersand counts as content", "Jane Doe & John Smith", []string{"Jane Doe", "John Smith"}, "&"},
		{"content remains", "Jane Doe - Beach Day", []string{"Jane Doe"}, "Beach Day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Format(tt.input, s, tt.performers))
		})
	}
}

func TestFormat_RedactionInvariant(t *testing.T) {
	f := New(nil)
	s := Settings{RemovePerformerNames: true}
	inputs := []string{
		"Jane Doe",
		"Jane Doe vs John Smith",
		"Jane's",
		"...Jane Doe...",
		"Jane Doe in Paris",
	}

	for _, in := range inputs {
		steps := f.Trace(in, s, []string{"Jane Doe", "John Smith"})
		after := steps[2]
		assert.Equal(t, StagePerformers, after.Stage)
		assert.True(t, after.Value == in || hasMeaningfulContent(after.Value),
			"redaction of %q produced %q", in, after.Value)
	}
}

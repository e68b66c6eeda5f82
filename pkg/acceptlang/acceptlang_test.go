package acceptlang_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/polyglot/pkg/acceptlang"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		expected []string
	}{
		{
			name:     "single tag",
			header:   "en",
			expected: []string{"en"},
		},
		{
			name:     "ordered by quality",
			header:   "pl;q=0.8,en-US,en;q=0.9",
			expected: []string{"en-US", "en", "pl"},
		},
		{
			name:     "equal quality keeps header order",
			header:   "fr;q=0.5,de;q=0.5",
			expected: []string{"fr", "de"},
		},
		{
			name:     "wildcard skipped",
			header:   "*,en;q=0.5",
			expected: []string{"en"},
		},
		{
			name:     "zero quality skipped",
			header:   "de;q=0,en",
			expected: []string{"en"},
		},
		{
			name:     "malformed quality means full quality",
			header:   "de;q=banana,en;q=0.9",
			expected: []string{"de", "en"},
		},
		{
			name:     "whitespace tolerated",
			header:   " en-US , en ;q=0.9 ",
			expected: []string{"en-US", "en"},
		},
		{
			name:     "empty header",
			header:   "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, acceptlang.Parse(tt.header))
		})
	}
}

func TestParseOversizedHeader(t *testing.T) {
	t.Parallel()

	header := strings.Repeat("en,", 4096)
	tags := acceptlang.Parse(header)
	assert.NotEmpty(t, tags)
	assert.LessOrEqual(t, len(tags), 4096/3+1)
}

func TestPreferred(t *testing.T) {
	t.Parallel()

	available := []string{"en", "de", "fr"}

	t.Run("exact match", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "de", acceptlang.Preferred("de,en;q=0.5", available))
	})

	t.Run("regional preference matches base language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "de", acceptlang.Preferred("de-CH", available))
	})

	t.Run("quality order decides", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fr", acceptlang.Preferred("fr;q=0.9,en;q=0.8", available))
	})

	t.Run("lower-quality match still beats no match", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fr", acceptlang.Preferred("it,fr;q=0.3", available))
	})

	t.Run("regional available served for base preference", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en-GB", acceptlang.Preferred("en", []string{"pl", "en-GB"}))
	})

	t.Run("no match falls back to first available", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en", acceptlang.Preferred("ja,ko", available))
	})

	t.Run("empty header falls back to first available", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en", acceptlang.Preferred("", available))
	})

	t.Run("empty available falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, acceptlang.DefaultLanguage, acceptlang.Preferred("de", nil))
	})

	t.Run("malformed available entries skipped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "de", acceptlang.Preferred("de", []string{"!!", "de"}))
	})
}

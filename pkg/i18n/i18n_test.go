package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both dictionaries must define exactly the closed key set, and every
// entry must be non-empty.
func TestDictionaryCompleteness(t *testing.T) {
	keys := Keys()
	for _, lang := range Languages() {
		dict, ok := labels[lang]
		require.True(t, ok, "missing dictionary for %q", lang)
		require.Len(t, dict, len(keys), "dictionary size mismatch for %q", lang)
		for _, key := range keys {
			assert.NotEmpty(t, Label(key, lang), "missing %q label for %q", key, lang)
		}
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in   string
		want Selection
	}{
		{"ar", Single{Lang: Arabic}},
		{"en", Single{Lang: English}},
		{"", Single{Lang: English}},
		{"both", Bilingual{}},
	}
	for _, tt := range tests {
		t.Run("value "+tt.in, func(t *testing.T) {
			got, err := ParseSelection(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSelection("fr")
	assert.ErrorIs(t, err, ErrUnknownSelection)
}

func TestRTL(t *testing.T) {
	assert.True(t, Arabic.RTL())
	assert.False(t, English.RTL())
}

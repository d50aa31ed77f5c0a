package extracturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmartingr/extract-url/finder"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		expected  *Options
		expectErr bool
	}{
		{
			name: "all fields",
			data: `{"getLongestUrl": true, "tryFixProtocol": true, "fallbackProtocol": "https", "includeParentheses": true, "finder": "relaxed"}`,
			expected: &Options{
				GetLongestURL:      true,
				TryFixProtocol:     true,
				FallbackProtocol:   "https",
				IncludeParentheses: true,
				Finder:             finder.RelaxedFinderName,
			},
		},
		{
			name:     "empty object",
			data:     `{}`,
			expected: &Options{},
		},
		{
			name:      "invalid json",
			data:      `{"getLongestUrl": "yes"`,
			expectErr: true,
		},
		{
			name:      "fallback protocol with separator",
			data:      `{"fallbackProtocol": "https://"}`,
			expectErr: true,
		},
		{
			name:      "fallback protocol starting with a digit",
			data:      `{"fallbackProtocol": "1http"}`,
			expectErr: true,
		},
		{
			name:      "unknown finder",
			data:      `{"finder": "regex-safe"}`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions([]byte(tt.data))
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, opts)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, (&Options{}).Validate())
	assert.NoError(t, (&Options{FallbackProtocol: "git+ssh"}).Validate())
	assert.NoError(t, (&Options{Finder: finder.PatternFinderName}).Validate())
	assert.Error(t, (&Options{FallbackProtocol: "ht tp"}).Validate())
}

func TestOptionsClone(t *testing.T) {
	original := &Options{GetLongestURL: true, FallbackProtocol: "https"}
	clone := original.Clone()
	clone.FallbackProtocol = "http"
	clone.GetLongestURL = false

	assert.Equal(t, "https", original.FallbackProtocol)
	assert.True(t, original.GetLongestURL)
}

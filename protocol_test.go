package extracturl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixProtocol(t *testing.T) {
	tests := []struct {
		name            string
		uri             string
		protocols       []string
		expected        string
		expectedTouched bool
	}{
		{
			name:            "glued prefix before https",
			uri:             "Visithttps://test.com",
			expected:        "https://test.com",
			expectedTouched: true,
		},
		{
			name:            "glued prefix before http",
			uri:             "websitehttp://test.com/path",
			expected:        "http://test.com/path",
			expectedTouched: true,
		},
		{
			name:            "https is not shortened to http",
			uri:             "xhttpsx://test.com",
			expected:        "https://test.com",
			expectedTouched: true,
		},
		{
			name:            "https wins regardless of list order",
			uri:             "https://test.com",
			protocols:       []string{"http", "https", "http"},
			expected:        "https://test.com",
			expectedTouched: true,
		},
		{
			name:            "clean url is touched but unchanged",
			uri:             "http://test.com",
			expected:        "http://test.com",
			expectedTouched: true,
		},
		{
			name:            "no separator",
			uri:             "www.test.com",
			expected:        "www.test.com",
			expectedTouched: false,
		},
		{
			name:            "unsupported protocol",
			uri:             "ftp://test.com",
			expected:        "ftp://test.com",
			expectedTouched: false,
		},
		{
			name:            "only the first separator counts",
			uri:             "ttp://what.com/?next=https://other.com",
			expected:        "ttp://what.com/?next=https://other.com",
			expectedTouched: false,
		},
		{
			name:            "later separators are kept",
			uri:             "xhttp://a.com/?next=https://b.com",
			expected:        "http://a.com/?next=https://b.com",
			expectedTouched: true,
		},
		{
			name:            "custom protocols",
			uri:             "myftp://files.test.com",
			protocols:       []string{"ftp"},
			expected:        "ftp://files.test.com",
			expectedTouched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, touched := fixProtocol(tt.uri, tt.protocols...)
			assert.Equal(t, tt.expected, result, "fixProtocol(%q)", tt.uri)
			assert.Equal(t, tt.expectedTouched, touched)
		})
	}
}

func TestByLengthDesc(t *testing.T) {
	assert.Equal(t, []string{"https", "http"}, byLengthDesc([]string{"http", "https", "http"}))
	assert.Equal(t, []string{"wss", "ftp", "ws"}, byLengthDesc([]string{"ws", "wss", "ftp"}))
}

func TestHasSupportedProtocol(t *testing.T) {
	assert.True(t, hasSupportedProtocol("https://test.com"))
	assert.True(t, hasSupportedProtocol("http://test.com"))
	assert.False(t, hasSupportedProtocol("ftp://test.com"))
	assert.False(t, hasSupportedProtocol("test.com"))
	// containment, not prefix
	assert.True(t, hasSupportedProtocol("xhttp://evil.com"))
}

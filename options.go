package extracturl

import (
	"encoding/json"
	"regexp"

	"github.com/pkg/errors"

	"github.com/fmartingr/extract-url/finder"
)

var protocolNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*$`)

// Options configures a single Extract call. The zero value returns the first candidate as found,
// without protocol repair or fallback.
type Options struct {
	// GetLongestURL selects the longest surviving candidate instead of the first one.
	GetLongestURL bool `json:"getLongestUrl"`
	// TryFixProtocol strips text glued in front of a supported protocol, "Visithttps://" -> "https://".
	TryFixProtocol bool `json:"tryFixProtocol"`
	// FallbackProtocol is prepended as "<protocol>://" to candidates without a protocol. Empty disables it.
	FallbackProtocol string `json:"fallbackProtocol"`
	// IncludeParentheses lets the finder keep closing parentheses inside URL paths.
	IncludeParentheses bool `json:"includeParentheses"`
	// Finder is the registered finder name, see finder.Names. Empty selects the default.
	Finder string `json:"finder"`

	Logger Logger `json:"-"`
}

// ParseOptions decodes and validates options from JSON
func ParseOptions(data []byte) (*Options, error) {
	opts := &Options{}
	if err := json.Unmarshal(data, opts); err != nil {
		return nil, errors.Wrap(err, "failed to parse extraction options")
	}

	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid extraction options")
	}

	return opts, nil
}

// Validate checks that the fallback protocol is a bare scheme name and the finder is registered.
func (o *Options) Validate() error {
	if o.FallbackProtocol != "" && !protocolNamePattern.MatchString(o.FallbackProtocol) {
		return errors.Errorf("fallback protocol '%s' must be a scheme name without '%s'", o.FallbackProtocol, protocolSeparator)
	}
	if o.Finder != "" && !finder.Exists(o.Finder) {
		return errors.Errorf("unknown finder '%s'. Must be one of %v", o.Finder, finder.Names())
	}
	return nil
}

// Clone returns a copy of the options. The logger is shared.
func (o *Options) Clone() *Options {
	var clone = *o
	return &clone
}

func (o *Options) finderConfig() finder.Config {
	return finder.Config{
		IncludeParentheses: o.IncludeParentheses,
	}
}

func (o *Options) logger() Logger {
	if o.Logger == nil {
		return nopLogger{}
	}
	return o.Logger
}

package finder

import (
	"sort"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mocks/mock_finder.go -package=mocks github.com/fmartingr/extract-url/finder Finder

const (
	// PatternFinderName is the name of the host-qualified pattern finder
	PatternFinderName = "pattern"
	// RelaxedFinderName is the name of the xurls based finder
	RelaxedFinderName = "relaxed"
	// DefaultFinderName is used when no finder name is configured
	DefaultFinderName = PatternFinderName
)

// Finder proposes the substrings of a text that look like URLs, in the order they appear.
type Finder interface {
	Find(text string) ([]string, error)
	Name() string
}

// Config holds the matcher settings shared by all finders.
type Config struct {
	// IncludeParentheses allows closing parentheses inside URL paths.
	IncludeParentheses bool `json:"includeParentheses"`
}

var finders = map[string]func(cfg Config) Finder{
	PatternFinderName: func(cfg Config) Finder { return NewPattern(cfg) },
	RelaxedFinderName: func(cfg Config) Finder { return NewRelaxed(cfg) },
}

// New returns the finder registered under name. An empty name selects the default finder.
func New(name string, cfg Config) (Finder, error) {
	if name == "" {
		name = DefaultFinderName
	}

	newFinder, ok := finders[name]
	if !ok {
		return nil, errors.Errorf("unknown finder '%s'", name)
	}

	return newFinder(cfg), nil
}

// Exists reports whether a finder is registered under name.
func Exists(name string) bool {
	_, ok := finders[name]
	return ok
}

// Names returns the registered finder names
func Names() []string {
	names := make([]string, 0, len(finders))
	for name := range finders {
		names = append(names, name)
	}
	// Sort names for consistent ordering
	sort.Strings(names)
	return names
}

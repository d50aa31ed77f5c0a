package finder

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"mvdan.cc/xurls/v2"
)

const (
	protocolExp = `(?:(?:[a-z]+:)?//)?`
	octetExp    = `(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)`
	ipv4Exp     = octetExp + `(?:\.` + octetExp + `){3}`
	ipv6Exp     = `\[[0-9a-f:.]+\]`
	labelExp    = `[\p{L}\p{N}](?:[\p{L}\p{N}_-]*[\p{L}\p{N}])?`
	userinfoExp = `(?:[^\s:@'"/]+(?::[^\s@'"/]*)?@)?`
	portExp     = `(?::\d{2,5})?`
)

// lazyPattern compiles a pattern on first use and keeps it for the process lifetime.
type lazyPattern struct {
	once sync.Once
	re   *regexp.Regexp
	err  error
}

func (l *lazyPattern) get(includeParentheses bool) (*regexp.Regexp, error) {
	l.once.Do(func() {
		l.re, l.err = compilePattern(includeParentheses)
	})
	return l.re, l.err
}

var (
	closedPathPattern lazyPattern
	parenPathPattern  lazyPattern
)

// Pattern finds URLs whose host is localhost, an IPv4 address, a bracketed IPv6 address, or a domain
// ending in a known TLD. Credentials ("user:pass@") before the host are kept.
// The protocol is optional, so "www.example.com/path" is a candidate as well as "https://example.com".
type Pattern struct {
	includeParentheses bool
}

// NewPattern creates a new pattern finder
func NewPattern(cfg Config) *Pattern {
	return &Pattern{
		includeParentheses: cfg.IncludeParentheses,
	}
}

// Name returns the name of this finder
func (p *Pattern) Name() string {
	return PatternFinderName
}

// Find returns every non-overlapping match in text, leftmost first.
func (p *Pattern) Find(text string) ([]string, error) {
	re, err := p.pattern()
	if err != nil {
		return nil, err
	}

	return re.FindAllString(text, -1), nil
}

func (p *Pattern) pattern() (*regexp.Regexp, error) {
	if p.includeParentheses {
		return parenPathPattern.get(true)
	}
	return closedPathPattern.get(false)
}

// compilePattern builds the URL expression. TLDs are alternated longest first, since Go
// alternation prefers the earliest branch and "co" would otherwise cut "com" short.
func compilePattern(includeParentheses bool) (*regexp.Regexp, error) {
	tlds := make([]string, len(xurls.TLDs))
	for i, tld := range xurls.TLDs {
		tlds[i] = regexp.QuoteMeta(tld)
	}
	sort.SliceStable(tlds, func(i, j int) bool {
		return len(tlds[i]) > len(tlds[j])
	})

	excluded := `\s"'`
	if !includeParentheses {
		excluded += `)`
	}
	pathExp := `(?:[/?#](?:[^` + excluded + `]*[^` + excluded + `.,!?;:])?)?`
	hostExp := `(?:` + ipv4Exp + `|` + ipv6Exp + `|(?:` + labelExp + `\.)+(?:` + strings.Join(tlds, "|") + `)|localhost)`

	re, err := regexp.Compile(`(?i)` + protocolExp + userinfoExp + hostExp + portExp + pathExp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile URL pattern")
	}

	return re, nil
}

package finder

import (
	"net"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/net/publicsuffix"
	"mvdan.cc/xurls/v2"
)

var (
	relaxedOnce    sync.Once
	relaxedPattern *regexp.Regexp
)

// Relaxed finds URLs with the xurls relaxed matcher. xurls accepts any host after an explicit
// scheme, so matches are kept only when the host is an IP or ends in an ICANN public suffix.
// Parentheses are balanced by xurls itself, so Config.IncludeParentheses has no effect.
type Relaxed struct{}

// NewRelaxed creates a new relaxed finder
func NewRelaxed(_ Config) *Relaxed {
	return &Relaxed{}
}

// Name returns the name of this finder
func (r *Relaxed) Name() string {
	return RelaxedFinderName
}

// Find returns the host-qualified xurls matches in text
func (r *Relaxed) Find(text string) ([]string, error) {
	relaxedOnce.Do(func() {
		relaxedPattern = xurls.Relaxed()
	})

	var urls []string
	for _, match := range relaxedPattern.FindAllString(text, -1) {
		if hostQualified(match) {
			urls = append(urls, match)
		}
	}

	return urls, nil
}

// hostQualified reports whether the candidate's host is an IP or a dotted name under an ICANN suffix
func hostQualified(candidate string) bool {
	raw := candidate
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	if !strings.Contains(host, ".") {
		return false
	}

	_, icann := publicsuffix.PublicSuffix(host)
	return icann
}

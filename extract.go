// Package extracturl finds the first, or the longest, URL in free-form text.
//
// Candidates come from a finder (see the finder package). Each one is trimmed, filtered, optionally
// repaired and given a fallback protocol before one is selected. Extraction never fails: every
// problem, including a panicking finder, results in no match.
package extracturl

import (
	"strings"
	"unicode/utf8"

	"github.com/fmartingr/extract-url/finder"
)

// minURLLength is the longest candidate, in characters, that is still dropped.
const minURLLength = 3

// Extract returns a URL found in input and true, or "" and false when input is not a string or
// holds no acceptable URL. A nil opts behaves like the zero Options.
func Extract(input interface{}, opts *Options) (result string, found bool) {
	text, ok := input.(string)
	if !ok {
		return "", false
	}

	if opts == nil {
		opts = &Options{}
	}

	log := opts.logger()
	defer recoverExtraction(log, &result, &found)

	f, err := finder.New(opts.Finder, opts.finderConfig())
	if err != nil {
		log.LogDebug("Failed to create URL finder", "finder", opts.Finder, "error", err.Error())
		return "", false
	}

	return extract(text, opts, f)
}

func extract(text string, opts *Options, f finder.Finder) (result string, found bool) {
	log := opts.logger()

	defer recoverExtraction(log, &result, &found)

	candidates, err := f.Find(text)
	if err != nil {
		log.LogDebug("Failed to find URL candidates", "error", err.Error())
		return "", false
	}

	survivors := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if url, ok := normalize(candidate, opts, log); ok {
			survivors = append(survivors, url)
		}
	}

	if len(survivors) == 0 {
		return "", false
	}

	// By default the first match wins, the longest one when requested
	if opts.GetLongestURL {
		return longest(survivors), true
	}
	return survivors[0], true
}

// recoverExtraction turns a panic into no match. It must be deferred directly. A logger that
// panics while reporting is ignored.
func recoverExtraction(log Logger, result *string, found *bool) {
	r := recover()
	if r == nil {
		return
	}
	*result, *found = "", false

	defer func() {
		_ = recover()
	}()
	log.LogDebug("Failed to extract URL", "panic", r)
}

// normalize applies trimming, the length filter, protocol repair, the protocol allow-list and the
// fallback protocol to a single candidate.
func normalize(candidate string, opts *Options, log Logger) (string, bool) {
	url := strings.TrimSpace(candidate)

	if utf8.RuneCountInString(url) <= minURLLength {
		log.LogDebug("Dropping URL candidate, too short", "candidate", url)
		return "", false
	}

	if opts.TryFixProtocol {
		fixed, touched := fixProtocol(url)
		if touched && fixed != url {
			log.LogDebug("Repaired URL candidate protocol", "candidate", url, "repaired", fixed)
		}
		url = fixed
	}

	if strings.Contains(url, protocolSeparator) && !hasSupportedProtocol(url) {
		log.LogDebug("Dropping URL candidate, unsupported protocol", "candidate", url)
		return "", false
	}

	if opts.FallbackProtocol != "" && !strings.Contains(url, protocolSeparator) {
		url = opts.FallbackProtocol + protocolSeparator + url
	}

	return url, true
}

// longest returns the longest url by character count. Ties keep the earliest one.
func longest(urls []string) string {
	best := urls[0]
	bestLength := utf8.RuneCountInString(best)
	for _, url := range urls[1:] {
		if length := utf8.RuneCountInString(url); length > bestLength {
			best, bestLength = url, length
		}
	}
	return best
}

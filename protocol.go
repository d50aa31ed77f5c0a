package extracturl

import (
	"sort"
	"strings"
)

const protocolSeparator = "://"

// supportedProtocols are the only protocols a result may carry.
var supportedProtocols = []string{"https", "http"}

// fixProtocol replaces whatever precedes the first "://" with the supported protocol it contains,
// so "Visithttps://test.com" becomes "https://test.com". touched reports whether a protocol was found.
func fixProtocol(uri string, protocols ...string) (fixed string, touched bool) {
	if len(protocols) == 0 {
		protocols = supportedProtocols
	}

	parts := strings.SplitN(uri, protocolSeparator, 2)
	if len(parts) < 2 {
		return uri, false
	}
	prefix := parts[0]

	// Longest first: "https://" must not be rewritten to "http://".
	for _, protocol := range byLengthDesc(protocols) {
		if strings.Contains(prefix, protocol) {
			return protocol + uri[len(prefix):], true
		}
	}

	return uri, false
}

// byLengthDesc returns the unique protocols ordered from longest to shortest, keeping the given
// order between equal lengths.
func byLengthDesc(protocols []string) []string {
	seen := make(map[string]bool, len(protocols))
	unique := make([]string, 0, len(protocols))
	for _, protocol := range protocols {
		if !seen[protocol] {
			unique = append(unique, protocol)
			seen[protocol] = true
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return len(unique[i]) > len(unique[j])
	})
	return unique
}

// hasSupportedProtocol reports whether "<protocol>://" appears anywhere in candidate. The check is
// containment, not a prefix match.
func hasSupportedProtocol(candidate string) bool {
	for _, protocol := range supportedProtocols {
		if strings.Contains(candidate, protocol+protocolSeparator) {
			return true
		}
	}
	return false
}

package extracturl

// Logger receives debug traces from Extract. The signature matches the Mattermost plugin API,
// so a plugin can pass p.API directly.
type Logger interface {
	LogDebug(msg string, keyValuePairs ...interface{})
}

type nopLogger struct{}

func (nopLogger) LogDebug(string, ...interface{}) {}

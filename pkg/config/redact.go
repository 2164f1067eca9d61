package config

const redacted = "[REDACTED]"

// DefaultSensitive lists the fields whose values are never logged.
var DefaultSensitive = []string{FieldPassword}

func (r *Resolver) display(name, value string) string {
	if r.IsSensitive(name) {
		return redacted
	}
	return value
}

// IsSensitive reports whether name is logged as [REDACTED].
func (r *Resolver) IsSensitive(name string) bool {
	return r.sensitive[name]
}

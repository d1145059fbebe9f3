package errors

import (
	"regexp"
)

// returned in privileged mode when a raw error exposes internal structure
const MsgInternalDatabase = "A database error occurred. Please contact support if this persists."

// structural leak detectors, evaluated in order
var defaultSensitivePatterns = []SensitivePattern{
	{Name: "column", Re: regexp.MustCompile(`(?i)column .+ does not exist`)},
	{Name: "relation", Re: regexp.MustCompile(`(?i)relation .+ does not exist`)},
	{Name: "permission_subject", Re: regexp.MustCompile(`(?i)permission denied for`)},
	{Name: "syntax", Re: regexp.MustCompile(`(?i)syntax error at`)},
}

// returns a copy of the built-in sensitive pattern set
func DefaultSensitivePatterns() []SensitivePattern {
	out := make([]SensitivePattern, len(defaultSensitivePatterns))
	copy(out, defaultSensitivePatterns)
	return out
}

func matchSensitive(patterns []SensitivePattern, msg string) (SensitivePattern, bool) {
	for _, p := range patterns {
		if p.Re.MatchString(msg) {
			return p, true
		}
	}

	return SensitivePattern{}, false
}

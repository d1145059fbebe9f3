package errors

import (
	"regexp"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "unauthorized", "not_found")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// selects how much of a raw error a caller is allowed to see
type TrustLevel int

const (
	// end-user facing context, maximal redaction
	Public TrustLevel = iota

	// operator/administrator facing context
	Privileged
)

func (l TrustLevel) String() string {
	switch l {
	case Public:
		return "public"
	case Privileged:
		return "privileged"
	default:
		return "unknown"
	}
}

// groups the rules of a mapping table and labels classification results
type Category string

const (
	CategoryAuth          Category = "auth"
	CategoryAuthorization Category = "authorization"
	CategoryValidation    Category = "validation"
	CategoryConstraint    Category = "constraint"
	CategoryConnectivity  Category = "connectivity"

	// a sensitive pattern matched in privileged mode
	CategoryInternal Category = "internal"

	// nothing matched, fallback or truncated raw text was returned
	CategoryUnclassified Category = "unclassified"

	// no error or an empty message, fallback was returned
	CategoryEmpty Category = "empty"
)

// RawError is the message (and optional SQLSTATE-style code) extracted from
// whatever failure value a caller hands to the classifier.
type RawError struct {
	Message string
	Code    string
}

// Rule maps a pattern to a safe replacement message.
type Rule struct {
	Pattern  string   `yaml:"pattern"`
	Message  string   `yaml:"message"`
	Category Category `yaml:"category"`
}

// SensitivePattern detects raw errors that reveal internal structure.
type SensitivePattern struct {
	Name string
	Re   *regexp.Regexp
}

// Result is a classified error.
type Result struct {
	Message  string
	Category Category
}

type messager interface {
	Message() string
}

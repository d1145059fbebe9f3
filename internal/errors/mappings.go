package errors

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	msgInvalidCredentials = "Invalid email or password. Please try again."
	msgNoPermission       = "You don't have permission to perform this action."
	msgAlreadyExists      = "This item already exists. Please use a different value."
	msgLinkedData         = "This item is linked to other data and cannot be modified."
	msgInvalidValue       = "The provided value is not valid."
	msgConnectivity       = "Unable to connect. Please check your internet connection."
)

// returns the built-in rules in priority order. more specific patterns must
// come before more general ones, the substring pass stops at the first hit.
func DefaultRules() []Rule {
	return []Rule{
		// auth
		{"Invalid login credentials", msgInvalidCredentials, CategoryAuth},
		{"Email not confirmed", "Please verify your email address before signing in.", CategoryAuth},
		{"User already registered", "This email is already registered. Please sign in instead.", CategoryAuth},
		{"Password should be at least 6 characters", "Password must be at least 6 characters long.", CategoryAuth},
		{"Email rate limit exceeded", "Too many attempts. Please wait a few minutes before trying again.", CategoryAuth},
		{"Signup is disabled", "Account registration is currently disabled.", CategoryAuth},

		// row-level security
		{"new row violates row-level security policy", msgNoPermission, CategoryAuthorization},
		{"row-level security policy", msgNoPermission, CategoryAuthorization},

		// validation raised by comment checks and database triggers
		{"Author name must be 100 characters or less", "Author name must be 100 characters or less.", CategoryValidation},
		{"Comment must be 5000 characters or less", "Comment must be 5000 characters or less.", CategoryValidation},
		{"Email must be 255 characters or less", "Email must be 255 characters or less.", CategoryValidation},
		{"Please enter a valid email address", "Please enter a valid email address.", CategoryValidation},

		// constraints
		{"duplicate key value violates unique constraint", msgAlreadyExists, CategoryConstraint},
		{"violates foreign key constraint", msgLinkedData, CategoryConstraint},
		{"violates check constraint", msgInvalidValue, CategoryConstraint},

		// connectivity
		{"TypeError: Failed to fetch", msgConnectivity, CategoryConnectivity},
		{"Failed to fetch", msgConnectivity, CategoryConnectivity},
		{"NetworkError", msgConnectivity, CategoryConnectivity},
	}
}

// MappingTable is an immutable, ordered rule set. Rule order is priority.
type MappingTable struct {
	rules   []Rule
	lowered []string

	// exact keys: every pattern, plus every safe message mapped to itself so
	// that classifying an already safe message leaves it unchanged
	exact map[string]int
}

// categories a rule may carry; internal and empty are reserved for the
// classifier's own results
var ruleCategories = map[Category]bool{
	CategoryAuth:          true,
	CategoryAuthorization: true,
	CategoryValidation:    true,
	CategoryConstraint:    true,
	CategoryConnectivity:  true,
	CategoryUnclassified:  true,
}

// builds a table from rules, rejecting empty or oversized entries, unknown
// categories and substring shadowing
func NewMappingTable(rules []Rule) (*MappingTable, error) {
	t := &MappingTable{
		rules:   make([]Rule, len(rules)),
		lowered: make([]string, len(rules)),
		exact:   make(map[string]int, len(rules)*2),
	}

	copy(t.rules, rules)

	for i, r := range t.rules {
		if strings.TrimSpace(r.Pattern) == "" {
			return nil, fmt.Errorf("rule %d: empty pattern", i)
		}

		if strings.TrimSpace(r.Message) == "" {
			return nil, fmt.Errorf("rule %d (%q): empty message", i, r.Pattern)
		}

		// mapped messages reach privileged callers as is
		if n := utf8.RuneCountInString(r.Message); n > MaxPrivilegedLength {
			return nil, fmt.Errorf("rule %d (%q): message is %d characters, limit is %d",
				i, r.Pattern, n, MaxPrivilegedLength)
		}

		if !ruleCategories[r.Category] {
			return nil, fmt.Errorf("rule %d (%q): unknown category %q", i, r.Pattern, r.Category)
		}

		t.lowered[i] = strings.ToLower(r.Pattern)

		if _, ok := t.exact[r.Pattern]; !ok {
			t.exact[r.Pattern] = i
		}
	}

	// an earlier pattern contained in a later one means the later rule can
	// never win the substring pass; only tolerated when both agree
	for i := range t.rules {
		for j := i + 1; j < len(t.rules); j++ {
			if t.rules[i].Message == t.rules[j].Message {
				continue
			}

			if strings.Contains(t.lowered[j], t.lowered[i]) {
				return nil, fmt.Errorf("rule %d (%q) shadows rule %d (%q)",
					i, t.rules[i].Pattern, j, t.rules[j].Pattern)
			}
		}
	}

	for i, r := range t.rules {
		if _, ok := t.exact[r.Message]; !ok {
			t.exact[r.Message] = i
		}
	}

	return t, nil
}

// like NewMappingTable but panics, for tables known at compile time
func MustMappingTable(rules []Rule) *MappingTable {
	t, err := NewMappingTable(rules)
	if err != nil {
		panic(err)
	}

	return t
}

// returns the table size
func (t *MappingTable) Len() int {
	return len(t.rules)
}

// returns a copy of the rules in priority order
func (t *MappingTable) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// exact, case-sensitive lookup
func (t *MappingTable) lookupExact(msg string) (Result, bool) {
	i, ok := t.exact[msg]
	if !ok {
		return Result{}, false
	}

	r := t.rules[i]
	if r.Pattern != msg {
		// msg is already the safe value
		return Result{Message: msg, Category: r.Category}, true
	}

	return Result{Message: r.Message, Category: r.Category}, true
}

// case-insensitive substring lookup, first match in table order wins
func (t *MappingTable) lookupSubstring(msg string) (Result, bool) {
	lower := strings.ToLower(msg)

	for i, key := range t.lowered {
		if strings.Contains(lower, key) {
			return Result{Message: t.rules[i].Message, Category: t.rules[i].Category}, true
		}
	}

	return Result{}, false
}

type mappingFile struct {
	Rules []Rule `yaml:"rules"`
}

// reads extra rules from a YAML file of the form
//
//	rules:
//	  - pattern: "value too long for type"
//	    message: "One of the values is too long."
//	    category: validation
func LoadRulesFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read error mappings: %w", err)
	}

	var f mappingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse error mappings: %w", err)
	}

	for i := range f.Rules {
		if f.Rules[i].Category == "" {
			f.Rules[i].Category = CategoryUnclassified
		}
	}

	return f.Rules, nil
}

// builds the process table: extra rules first, then the defaults
func BuildMappingTable(extra []Rule) (*MappingTable, error) {
	rules := make([]Rule, 0, len(extra)+len(DefaultRules()))
	rules = append(rules, extra...)
	rules = append(rules, DefaultRules()...)

	return NewMappingTable(rules)
}

package memorandum

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RuleSet names a collection of validation rules selected by operation
type RuleSet string

const (
	RuleSetDefault RuleSet = "default" // Rules applied when a memorandum is created
	RuleSetUpdate  RuleSet = "update"  // Rules applied when a memorandum is changed
)

// Validation messages
const (
	MessageRequesterRequired = "O nome do requerente é obrigatório."
	MessageRequesterLength   = "O nome do requerente deve conter entre 5 e 50 caracteres."
	MessageRequesterPattern  = "Insira somente letras."
	MessageObservationEmpty  = "A observaçao é obrigatório."
	MessageDestinyEmpty      = "O destino é obrigatório."
)

const (
	requesterMinLength = 5
	requesterMaxLength = 50
)

// A single trailing newline is accepted before the end of input
var requesterPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*\.?[A-Za-z0-9_]*\n?\z`)

// ValidationFailure ties a failed rule to the field it checked
type ValidationFailure struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// ValidationErrors is the ordered list of failures from one validation run
type ValidationErrors []ValidationFailure

// Error implements the error interface
func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of the failing fields, without duplicates, in order
func (v ValidationErrors) Fields() []string {
	seen := make(map[string]bool)
	fields := []string{}
	for _, f := range v {
		if !seen[f.Field] {
			seen[f.Field] = true
			fields = append(fields, f.Field)
		}
	}
	return fields
}

// ByField groups the failure messages by field
func (v ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string)
	for _, f := range v {
		out[f.Field] = append(out[f.Field], f.Message)
	}
	return out
}

// rule is a single check against one field of a memorandum
type rule struct {
	field   string
	valid   func(m *Memorandum) bool
	message string
}

var ruleSets = map[RuleSet][]rule{
	RuleSetDefault: defaultRules(),
	RuleSetUpdate:  updateRules(),
}

// defaultRules are evaluated before a memorandum is created
func defaultRules() []rule {
	return []rule{
		{"RequesterName", func(m *Memorandum) bool { return notEmpty(m.RequesterName) }, MessageRequesterRequired},
		{"RequesterName", func(m *Memorandum) bool { return lengthBetween(m.RequesterName, requesterMinLength, requesterMaxLength) }, MessageRequesterLength},
		{"RequesterName", func(m *Memorandum) bool { return requesterPattern.MatchString(m.RequesterName) }, MessageRequesterPattern},
		{"Observation", func(m *Memorandum) bool { return notEmpty(m.Observation) }, MessageObservationEmpty},
		{"Destiny", func(m *Memorandum) bool { return notEmpty(m.Destiny) }, MessageDestinyEmpty},
	}
}

// updateRules are evaluated before a memorandum is changed. They currently
// match defaultRules but are kept apart so either can change on its own.
func updateRules() []rule {
	return []rule{
		{"RequesterName", func(m *Memorandum) bool { return notEmpty(m.RequesterName) }, MessageRequesterRequired},
		{"RequesterName", func(m *Memorandum) bool { return lengthBetween(m.RequesterName, requesterMinLength, requesterMaxLength) }, MessageRequesterLength},
		{"RequesterName", func(m *Memorandum) bool { return requesterPattern.MatchString(m.RequesterName) }, MessageRequesterPattern},
		{"Observation", func(m *Memorandum) bool { return notEmpty(m.Observation) }, MessageObservationEmpty},
		{"Destiny", func(m *Memorandum) bool { return notEmpty(m.Destiny) }, MessageDestinyEmpty},
	}
}

// RuleSets returns the names of every rule set
func RuleSets() []RuleSet {
	return []RuleSet{RuleSetDefault, RuleSetUpdate}
}

// IsValid reports whether r names a known rule set
func (r RuleSet) IsValid() bool {
	_, ok := ruleSets[r]
	return ok
}

// ParseRuleSet parses a rule set name, treating an empty name as the default set
func ParseRuleSet(s string) (RuleSet, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RuleSetDefault, nil
	}
	r := RuleSet(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown rule set '%s'", s)
	}
	return r, nil
}

// Validate runs every rule of the given set against m and collects the
// failures. Each rule runs independently of the others. An unknown rule set
// evaluates no rules. A nil memorandum is checked as an empty one.
func Validate(m *Memorandum, set RuleSet) ValidationErrors {
	failures := ValidationErrors{}
	if m == nil {
		m = &Memorandum{}
	}

	for _, r := range ruleSets[set] {
		if !r.valid(m) {
			failures = append(failures, ValidationFailure{Field: r.field, Message: r.message})
		}
	}

	return failures
}

// notEmpty treats whitespace-only values as empty
func notEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// lengthBetween checks the character count of s against an inclusive range
func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

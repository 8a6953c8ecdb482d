package schema

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
)

// Kind is the closed set of canonical value shapes a field rule can declare.
type Kind string

const (
	KindString      Kind = "string"
	KindStringArray Kind = "string-array"
	KindObject      Kind = "object"
)

// FieldRule declares the canonical shape of one field. Rules are evaluated
// in declaration order, which fixes the ordering of reported issues.
type FieldRule struct {
	Key      string
	Kind     Kind
	Required bool
	// Enum restricts scalar values (or each element of an array field) to a
	// fixed set. Empty optional values bypass the check.
	Enum []string
	// Email enables a structural email-format check.
	Email bool
	// MaxLen bounds the trimmed length of scalar values. Zero means no bound.
	MaxLen int
	// Nested validates object fields; issue paths are dotted (parent.child).
	Nested *Schema
}

// Issue is one validation failure, addressed by field path.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Schema is the declarative validator for one form's canonical payload.
type Schema struct {
	Fields []FieldRule
}

// Keys returns every declared field key in declaration order.
func (s *Schema) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, f.Key)
	}
	return out
}

// RequiredKeys returns the declared required keys, sorted. The diagnostic
// tooling prints these, so the order must be stable across runs.
func (s *Schema) RequiredKeys() []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Key)
		}
	}
	sort.Strings(out)
	return out
}

// Validate checks payload against the schema and returns the typed canonical
// payload plus every issue found. It never stops at the first error.
//
// Policy:
//   - unknown payload keys are tolerated and copied through, so the UI can
//     ship fields ahead of schema updates;
//   - optional absent fields default to "" (scalar) or an empty array, which
//     keeps the canonical payload schema-shape-stable;
//   - strings are trimmed;
//   - a payload that validates cleanly revalidates cleanly after a JSON
//     round trip.
func (s *Schema) Validate(payload map[string]any) (map[string]any, []Issue) {
	canonical := make(map[string]any, len(payload))
	declared := make(map[string]struct{}, len(s.Fields))
	var issues []Issue

	for _, rule := range s.Fields {
		declared[rule.Key] = struct{}{}
		value, present := payload[rule.Key]
		canonical[rule.Key] = rule.apply(rule.Key, value, present, &issues)
	}

	for key, value := range payload {
		if _, ok := declared[key]; !ok {
			canonical[key] = value
		}
	}
	return canonical, issues
}

func (r FieldRule) apply(path string, value any, present bool, issues *[]Issue) any {
	switch r.Kind {
	case KindStringArray:
		return r.applyArray(path, value, present, issues)
	case KindObject:
		return r.applyObject(path, value, present, issues)
	default:
		return r.applyString(path, value, present, issues)
	}
}

func (r FieldRule) applyString(path string, value any, present bool, issues *[]Issue) any {
	if !present || value == nil {
		if r.Required {
			addIssue(issues, path, "required")
		}
		return ""
	}
	s, ok := value.(string)
	if !ok {
		addIssue(issues, path, "expected a string")
		return value
	}
	s = strings.TrimSpace(s)
	if s == "" {
		if r.Required {
			addIssue(issues, path, "required")
		}
		return s
	}
	if r.MaxLen > 0 && len(s) > r.MaxLen {
		addIssue(issues, path, fmt.Sprintf("must be at most %d characters", r.MaxLen))
	}
	if r.Email && !validEmail(s) {
		addIssue(issues, path, "invalid email address")
	}
	if len(r.Enum) > 0 && !contains(r.Enum, s) {
		addIssue(issues, path, fmt.Sprintf("invalid value %q (expected one of %s)", s, strings.Join(r.Enum, ", ")))
	}
	return s
}

func (r FieldRule) applyArray(path string, value any, present bool, issues *[]Issue) any {
	if !present || value == nil {
		if r.Required {
			addIssue(issues, path, "required")
		}
		return []string{}
	}

	var elems []string
	switch v := value.(type) {
	case []string:
		elems = append(elems, v...)
	case []any:
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				addIssue(issues, fmt.Sprintf("%s.%d", path, i), "expected a string")
				continue
			}
			elems = append(elems, s)
		}
	case string:
		// Legacy UI variants post multi-selects as one scalar string.
		if strings.TrimSpace(v) != "" {
			elems = append(elems, v)
		}
	default:
		addIssue(issues, path, "expected an array of strings")
		return []string{}
	}

	out := make([]string, 0, len(elems))
	for _, e := range elems {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if len(r.Enum) > 0 && !contains(r.Enum, e) {
			addIssue(issues, path, fmt.Sprintf("invalid value %q (expected one of %s)", e, strings.Join(r.Enum, ", ")))
			continue
		}
		out = append(out, e)
	}
	if r.Required && len(out) == 0 {
		addIssue(issues, path, "required")
	}
	return out
}

func (r FieldRule) applyObject(path string, value any, present bool, issues *[]Issue) any {
	nested := r.Nested
	if nested == nil {
		nested = &Schema{}
	}
	if !present || value == nil {
		if r.Required {
			addIssue(issues, path, "required")
		}
		sub, _ := nested.Validate(map[string]any{})
		return sub
	}
	m, ok := value.(map[string]any)
	if !ok {
		addIssue(issues, path, "expected an object")
		return value
	}
	sub, subIssues := nested.Validate(m)
	for _, issue := range subIssues {
		addIssue(issues, path+"."+issue.Path, issue.Message)
	}
	return sub
}

func addIssue(issues *[]Issue, path, message string) {
	*issues = append(*issues, Issue{Path: path, Message: message})
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// validEmail applies a structural check: a single addr-spec with no display
// name. mail.ParseAddress alone would accept "Name <a@b>" forms.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s, "@")
}

// String returns a required trimmed-string rule.
func String(key string) FieldRule {
	return FieldRule{Key: key, Kind: KindString, Required: true}
}

// OptString returns an optional trimmed-string rule defaulting to "".
func OptString(key string) FieldRule {
	return FieldRule{Key: key, Kind: KindString}
}

// Email returns a required email-format rule.
func Email(key string) FieldRule {
	return FieldRule{Key: key, Kind: KindString, Required: true, Email: true}
}

// OptEmail returns an optional rule that must parse as an email when set.
func OptEmail(key string) FieldRule {
	return FieldRule{Key: key, Kind: KindString, Email: true}
}

// Enum returns a required rule restricted to the given values.
func Enum(key string, values ...string) FieldRule {
	return FieldRule{Key: key, Kind: KindString, Required: true, Enum: values}
}

// OptEnum returns an optional rule restricted to the given values.
func OptEnum(key string, values ...string) FieldRule {
	return FieldRule{Key: key, Kind: KindString, Enum: values}
}

// StringArray returns an optional array-of-strings rule defaulting to empty.
func StringArray(key string) FieldRule {
	return FieldRule{Key: key, Kind: KindStringArray}
}

// Object returns a rule validating a nested sub-object.
func Object(key string, nested *Schema, required bool) FieldRule {
	return FieldRule{Key: key, Kind: KindObject, Required: required, Nested: nested}
}

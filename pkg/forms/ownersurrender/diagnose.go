package ownersurrender

import (
	"sort"
	"strings"

	"github.com/rmgdri/go-intake/pkg/catalog"
	"github.com/rmgdri/go-intake/pkg/schema"
)

// Diagnosis reports how far a raw-required-only payload gets through
// normalize→validate. It exists to answer the recurring migration question:
// which canonical-required keys does the current UI not collect yet?
type Diagnosis struct {
	RawRequired       []string
	CanonicalRequired []string
	Warnings          []string
	Issues            []schema.Issue
	MissingCanonical  []string
	Pass              bool
}

// Diagnose builds a minimal raw payload satisfying every catalog-required
// key ("x" everywhere, a well-formed address for email fields), runs it
// through the normalizer and validator, and summarises the gap. The result
// is deterministic: the same catalog and schema always produce the same
// sorted key lists.
func Diagnose() Diagnosis {
	raw := make(map[string]any)
	var rawRequired []string
	for _, f := range FieldMap.Required() {
		rawRequired = append(rawRequired, f.Key)
		if f.Type == catalog.FieldTypeEmail {
			raw[f.Key] = "test@example.com"
		} else {
			raw[f.Key] = "x"
		}
	}
	sort.Strings(rawRequired)

	canonical, warnings := Normalize(raw)
	_, issues := Schema.Validate(canonical)

	missingSet := make(map[string]struct{})
	for _, issue := range issues {
		if issue.Message == "required" {
			missingSet[issue.Path] = struct{}{}
		}
	}
	missing := make([]string, 0, len(missingSet))
	for k := range missingSet {
		missing = append(missing, k)
	}
	sort.Strings(missing)

	return Diagnosis{
		RawRequired:       rawRequired,
		CanonicalRequired: Schema.RequiredKeys(),
		Warnings:          warnings,
		Issues:            issues,
		MissingCanonical:  missing,
		Pass:              len(issues) == 0,
	}
}

// Summary renders the diagnosis as a human-readable report.
func (d Diagnosis) Summary() string {
	var b strings.Builder
	b.WriteString("=== OWNER SURRENDER DIAG ===\n\n")
	writeKeyList(&b, "Raw required keys (field map)", d.RawRequired)
	writeKeyList(&b, "Canonical required keys (schema)", d.CanonicalRequired)
	writeKeyList(&b, "Normalization warnings", d.Warnings)
	if d.Pass {
		b.WriteString("\ncanonical strict schema: PASS (with raw-required-only payload)\n")
		return b.String()
	}
	b.WriteString("\ncanonical strict schema: FAIL\n")
	writeKeyList(&b, "Missing canonical keys after normalize(raw-required-only)", d.MissingCanonical)
	return b.String()
}

func writeKeyList(b *strings.Builder, title string, items []string) {
	b.WriteString(title)
	b.WriteString(": ")
	b.WriteString(strings.Join(items, ", "))
	b.WriteString("\n")
}

package ownersurrender

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rmgdri/go-intake/pkg/schema"
)

// NormalizationVersion tags the rename/coerce revision recorded with each
// submission, so stored payloads can be reinterpreted if the mapping changes.
const NormalizationVersion = 1

// splitOwnerName marks the one composite raw field that fans out into two
// canonical keys.
const splitOwnerName = "__SPLIT_OWNER_NAME__"

// hyphenToCanonical maps the UI's legacy hyphenated keys onto canonical
// schema keys. The table is explicit on purpose: deterministic and
// auditable, with any gap surfacing as a normalization warning rather than
// silent data loss.
var hyphenToCanonical = map[string]string{
	// Owner
	"owner-name":            splitOwnerName,
	"owner-email":           "owner_email",
	"owner-phone-primary":   "owner_contact_phone_primary",
	"owner-phone-secondary": "owner_contact_phone_secondary",
	"owner-address":         "owner_address_line1",
	"owner-address-2":       "owner_address_line2",
	"owner-city":            "owner_city",
	"owner-state":           "owner_state",
	"owner-zip":             "owner_postal_code",

	// Dog
	"dog-name":         "dog_name",
	"dog-age":          "dog_dob_or_age",
	"dog-weight":       "dog_weight",
	"dog-sex":          "dog_gender",
	"dog-altered":      "dog_spayed_neutered",
	"dog-gastropexied": "dog_gastropexy_tacked",
	"dog-breed-type":   "dog_is_great_dane_or_mix",
	"dog-mix-details":  "dog_mix_breed_details",
	"dog-color":        "dog_color",
	"dog-markings":     "dog_markings",
	"dog-microchipped": "dog_microchipped",

	// Surrender details
	"surrender-reason":        "surrender_reason",
	"keep-resources-interest": "interested_in_resources_to_keep",
	"surrender-deadline":      "surrender_deadline",
	"urgency-notes":           "urgency_notes",

	// Ownership history
	"ownership-duration": "owned_how_long",
	"prior-history":      "history_prior_to_owner",
	"other-states":       "lived_outside_state",
	"other-states-where": "lived_outside_state_where",
	"acquisition-source": "acquired_from",
	"breeder-name":       "breeder_name",
	"breeder-contact":    "breeder_contact",

	// Vet + misc
	"vet-name":             "vet_name",
	"vet-address":          "vet_office_address",
	"vet-phone":            "vet_office_phone",
	"vet-yearly":           "seen_vet_annually",
	"vaccinations-current": "current_vaccinations",
	"heartworm-prevention": "on_heartworm_prevention",
	"referral-source":      "heard_about_rmgdri",

	// Health & behavior
	"medical-conditions": "diagnosed_or_treated_conditions",
	"personality-traits": "personality_traits",
	"feeding-schedule":   "feeding_schedule_amount",
	"leash-behavior":     "leash_behavior",
}

// Normalize maps a raw owner-surrender payload onto canonical schema keys.
// It never rejects: unmapped keys carry through as-is and produce warnings,
// and validation afterwards is the sole pass/fail authority. The output is
// schema-shape-stable: every canonical key is present, with ""/empty-array
// defaults for anything the raw payload did not supply.
//
// Already-canonical input passes through unchanged (modulo unmapped-key
// handling), so normalization is idempotent.
func Normalize(raw map[string]any) (map[string]any, []string) {
	out := make(map[string]any, len(Schema.Fields))
	var warnings []string

	kinds := fieldKinds()

	// Sorted key order keeps the warning list deterministic.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := raw[k]

		mapped, isLegacy := hyphenToCanonical[k]
		if isLegacy {
			if mapped == splitOwnerName {
				first, last := splitName(stringValue(v))
				if _, exists := out["owner_first_name"]; !exists {
					out["owner_first_name"] = first
				}
				if _, exists := out["owner_last_name"]; !exists {
					out["owner_last_name"] = last
				}
				continue
			}
			out[mapped] = coerce(mapped, k, v, kinds, &warnings)
			continue
		}

		if _, isCanonical := kinds[k]; isCanonical {
			// Canonical key posted directly; copy verbatim so normalization
			// stays a no-op on canonical input.
			if _, exists := out[k]; !exists {
				out[k] = v
			}
			continue
		}

		out[k] = v
		warnings = append(warnings, fmt.Sprintf("unmapped raw key %q carried through unchanged", k))
	}

	// Shape-stable defaults: diagnostics diff the canonical key set, so
	// absent optional fields become empty values rather than missing keys.
	for _, f := range Schema.Fields {
		if _, exists := out[f.Key]; exists {
			continue
		}
		if f.Kind == schema.KindStringArray {
			out[f.Key] = []string{}
		} else {
			out[f.Key] = ""
		}
	}
	return out, warnings
}

// coerce adapts a legacy raw value to the canonical field's kind. Scalar
// strings posted against multi-select fields are split on commas; a scalar
// with no delimiter is kept as a single selection and noted as a warning.
func coerce(canonicalKey, rawKey string, v any, kinds map[string]schema.Kind, warnings *[]string) any {
	if kinds[canonicalKey] != schema.KindStringArray {
		return v
	}
	switch val := v.(type) {
	case []any, []string:
		return val
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return []string{}
		}
		if !strings.Contains(trimmed, ",") {
			*warnings = append(*warnings, fmt.Sprintf("multi-select field %q received a scalar value without a delimiter", rawKey))
			return []string{trimmed}
		}
		parts := strings.Split(trimmed, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return v
	}
}

// splitName divides a free-form full name: the last whitespace-separated
// token becomes the last name, everything before it the first name.
func splitName(full string) (first, last string) {
	t := strings.TrimSpace(full)
	if t == "" {
		return "", ""
	}
	parts := strings.Fields(t)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func fieldKinds() map[string]schema.Kind {
	kinds := make(map[string]schema.Kind, len(Schema.Fields))
	for _, f := range Schema.Fields {
		kinds[f.Key] = f.Kind
	}
	return kinds
}

package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mahi-cyberaware/vehicleinfo/internal/model"
)

var rule = strings.Repeat("═", 56)

// Provider bookkeeping keys, never shown.
var hiddenKeys = map[string]struct{}{
	"id":        {},
	"createdAt": {},
	"updatedAt": {},
	"vehicleId": {},
	"source":    {},
	"latest_by": {},
}

// Values the provider sends when it has no data for a field.
var absentValues = map[string]struct{}{
	"":              {},
	"null":          {},
	"NA":            {},
	"Not Available": {},
}

// fieldLabels maps provider field keys to display labels. Keys without an
// entry fall back to title-casing in label.
var fieldLabels = map[string]string{
	"license_plate":          "Registration No",
	"owner_name":             "Owner Name",
	"father_name":            "Father's Name",
	"registration_date":      "Registration Date",
	"class":                  "Vehicle Class",
	"fuel_type":              "Fuel Type",
	"engine_number":          "Engine No",
	"chassis_number":         "Chassis No",
	"brand_name":             "Make",
	"brand_model":            "Model",
	"maker_model":            "Model",
	"insurance_expiry":       "Insurance Upto",
	"insurance_company":      "Insurance Co",
	"insurance_policy":       "Policy No",
	"fit_up_to":              "Fitness Upto",
	"tax_upto":               "Tax Upto",
	"rc_status":              "RC Status",
	"color":                  "Colour",
	"norms":                  "Emission Norms",
	"seating_capacity":       "Seating",
	"cubic_capacity":         "Engine CC",
	"cylinders":              "Cylinders",
	"vehicle_age":            "Vehicle Age",
	"pucc_upto":              "PUCC Upto",
	"pucc_number":            "PUCC No",
	"noc_details":            "NOC Details",
	"present_address":        "Present Address",
	"permanent_address":      "Permanent Address",
	"financer":               "Financer",
	"is_financed":            "Financed",
	"owner_count":            "Owner Count",
	"blacklist_status":       "Blacklist Status",
	"national_permit_number": "National Permit No",
	"national_permit_upto":   "National Permit Upto",
	"permit_number":          "Permit No",
	"permit_issue_date":      "Permit Issue Date",
	"permit_valid_upto":      "Permit Valid Upto",
	"permit_type":            "Permit Type",
	"sleeper_capacity":       "Sleeper Capacity",
	"standing_capacity":      "Standing Capacity",
	"gross_weight":           "Gross Weight",
	"unladen_weight":         "Unladen Weight",
	"wheelbase":              "Wheelbase",
	"body_type":              "Body Type",
	"note":                   "Note",
	"_note":                  "Note",
}

// Render produces the labeled text block for one record: a decorated header
// naming the provenance, then one line per field in record order. Bookkeeping
// keys and absent values are suppressed.
func Render(rec *model.Record, source string) string {
	lines := []string{
		rule,
		fmt.Sprintf("🔍 VEHICLE DETAILS [Source: %s]", source),
		rule,
	}
	for _, f := range rec.Fields() {
		if _, hidden := hiddenKeys[f.Key]; hidden {
			continue
		}
		if absent(f.Value) {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-25s: %v", label(f.Key), f.Value))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

func absent(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, isAbsent := absentValues[s]
	return isAbsent
}

func label(key string) string {
	if l, ok := fieldLabels[key]; ok {
		return l
	}
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

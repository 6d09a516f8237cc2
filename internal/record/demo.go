package record

import (
	"strings"

	"github.com/mahi-cyberaware/vehicleinfo/internal/model"
)

// Demo returns the placeholder record shown when the live lookup fails.
// Everything is constant apart from the plate, which is uppercased; the
// _note field marks the record as not coming from a live source.
func Demo(plateNo string) *model.Record {
	rec := model.NewRecord()
	rec.Set("license_plate", strings.ToUpper(plateNo))
	rec.Set("owner_name", "DEMO OWNER")
	rec.Set("registration_date", "01-01-2020")
	rec.Set("class", "Motor Car")
	rec.Set("fuel_type", "Petrol")
	rec.Set("engine_number", "DEMO12345")
	rec.Set("chassis_number", "DEMO67890")
	rec.Set("maker_model", "Maruti Suzuki Swift")
	rec.Set("insurance_expiry", "31-12-2024")
	rec.Set("fit_up_to", "31-12-2025")
	rec.Set("rc_status", "Active")
	rec.Set("_note", "This is demo data – API not used.")
	return rec
}

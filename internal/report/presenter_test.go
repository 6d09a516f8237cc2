package report

import (
	"strings"
	"testing"

	"github.com/mahi-cyberaware/vehicleinfo/internal/model"
)

func TestRenderLabeledLines(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("owner_name", "JOHN DOE")
	rec.Set("license_plate", "PB65AM0008")

	out := Render(rec, model.SourceLive)

	if !strings.Contains(out, "🔍 VEHICLE DETAILS [Source: Live API]") {
		t.Errorf("missing provenance title:\n%s", out)
	}
	if !strings.Contains(out, "  Owner Name               : JOHN DOE") {
		t.Errorf("missing aligned owner line:\n%s", out)
	}
	if !strings.Contains(out, "  Registration No          : PB65AM0008") {
		t.Errorf("missing aligned plate line:\n%s", out)
	}

	lines := strings.Split(out, "\n")
	ruleLine := strings.Repeat("═", 56)
	if lines[0] != ruleLine || lines[len(lines)-1] != ruleLine {
		t.Error("record must be framed by 56-char rules")
	}
}

func TestRenderFollowsRecordOrder(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("fuel_type", "Petrol")
	rec.Set("owner_name", "JOHN DOE")

	out := Render(rec, model.SourceLive)
	if strings.Index(out, "Fuel Type") > strings.Index(out, "Owner Name") {
		t.Errorf("fields must render in record order:\n%s", out)
	}
}

func TestRenderSkipsAbsentValues(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("owner_name", "JOHN DOE")
	rec.Set("father_name", nil)
	rec.Set("color", "")
	rec.Set("norms", "null")
	rec.Set("financer", "NA")
	rec.Set("insurance_company", "Not Available")

	out := Render(rec, model.SourceLive)

	for _, banned := range []string{"Father's Name", "Colour", "Emission Norms", "Financer", "Insurance Co"} {
		if strings.Contains(out, banned) {
			t.Errorf("absent-valued field %q was rendered:\n%s", banned, out)
		}
	}
	if !strings.Contains(out, "JOHN DOE") {
		t.Error("present field was dropped")
	}
}

func TestRenderSkipsBookkeepingKeys(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("id", "42")
	rec.Set("createdAt", "2024-01-01")
	rec.Set("updatedAt", "2024-01-02")
	rec.Set("vehicleId", "abc")
	rec.Set("source", "cache")
	rec.Set("latest_by", "cron")
	rec.Set("owner_name", "JOHN DOE")

	out := Render(rec, model.SourceLive)

	for _, banned := range []string{"42", "2024-01-01", "abc", "cache", "cron"} {
		if strings.Contains(out, banned) {
			t.Errorf("bookkeeping value %q was rendered:\n%s", banned, out)
		}
	}
}

func TestRenderLabelFallback(t *testing.T) {
	rec := model.NewRecord()
	rec.Set("some_new_field", "value")

	out := Render(rec, model.SourceDemo)
	if !strings.Contains(out, "Some New Field") {
		t.Errorf("unmapped key must title-case:\n%s", out)
	}
}

func TestRenderNumbersVerbatim(t *testing.T) {
	raw, err := model.DecodeJSON([]byte(`{"owner_name":"X","seating_capacity":5,"cubic_capacity":1197.0}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out := Render(raw.(*model.Record), model.SourceLive)

	if !strings.Contains(out, "Seating                  : 5") {
		t.Errorf("integer must render as written:\n%s", out)
	}
	if !strings.Contains(out, "Engine CC                : 1197.0") {
		t.Errorf("decimal must render as written:\n%s", out)
	}
}

package record

import (
	"encoding/json"
	"fmt"

	"github.com/mahi-cyberaware/vehicleinfo/internal/model"
)

// Failure reasons for payloads that cannot yield a vehicle record.
const (
	ReasonNotDictionary = "Response is not a dictionary"
	ReasonUnknownFormat = "Unknown response format"
)

// Failure describes why a provider payload could not be normalized.
type Failure struct {
	Reason string
	Raw    any
}

// Unrecognized reports whether the payload was a structurally sound object
// that matched no known envelope, in which case Raw is worth showing to the
// user as-is.
func (f *Failure) Unrecognized() bool {
	return f.Reason == ReasonUnknownFormat
}

// Normalize reconciles a decoded provider payload into the canonical vehicle
// record. The provider answers in several envelope shapes, so candidates are
// tried in a fixed priority order:
//
//  1. payloads that are not JSON objects are rejected outright
//  2. an "error" field wins over everything else, its value becoming the reason
//  3. a success envelope unwraps its nested "response" object
//  4. a bare record with recognizable fields passes through unchanged
//
// Anything else is an unknown format. Exactly one of the two results is non-nil.
func Normalize(raw any) (*model.Record, *Failure) {
	rec, ok := raw.(*model.Record)
	if !ok {
		return nil, &Failure{Reason: ReasonNotDictionary, Raw: raw}
	}

	if errValue, ok := rec.Get("error"); ok {
		return nil, &Failure{Reason: reasonString(errValue), Raw: raw}
	}

	if status, _ := rec.Get("status"); status == "success" {
		if response, ok := rec.Get("response"); ok {
			if inner, ok := response.(*model.Record); ok {
				return inner, nil
			}
		}
	}

	if rec.Has("license_plate") || rec.Has("owner_name") {
		return rec, nil
	}

	return nil, &Failure{Reason: ReasonUnknownFormat, Raw: raw}
}

// reasonString renders a provider-reported error value as the failure reason.
// Strings pass through verbatim; structured values render as compact JSON.
func reasonString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(data)
	}
}

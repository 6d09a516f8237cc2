package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mahi-cyberaware/vehicleinfo/internal/client"
	"github.com/mahi-cyberaware/vehicleinfo/internal/model"
	"github.com/mahi-cyberaware/vehicleinfo/internal/plate"
	"github.com/mahi-cyberaware/vehicleinfo/internal/record"
)

var ErrInvalidPlate = errors.New("invalid registration number")

// Result is the outcome of one lookup. There is always a record: either the
// live provider record or the demo fallback.
type Result struct {
	Plate          string
	Record         *model.Record
	Source         string
	FallbackReason string // why the live record was unavailable; empty on success
	RawPayload     any    // the undecipherable payload, set only for unknown formats
}

func (r *Result) Live() bool {
	return r.Source == model.SourceLive
}

type LookupService struct {
	client *client.RCClient
	log    zerolog.Logger
}

func NewLookupService(client *client.RCClient, log zerolog.Logger) *LookupService {
	return &LookupService{
		client: client,
		log:    log,
	}
}

// Lookup fetches the registration record for one plate, degrading to the demo
// record when the provider fails. Only an invalid plate is an error, and it
// short-circuits before any network activity.
func (s *LookupService) Lookup(ctx context.Context, rawPlate string) (*Result, error) {
	plateNo := plate.Normalize(rawPlate)
	if !plate.Valid(plateNo) {
		return nil, ErrInvalidPlate
	}

	raw := s.fetch(ctx, plateNo)

	rec, failure := record.Normalize(raw)
	if failure == nil {
		s.log.Debug().Str("plate", plateNo).Int("fields", rec.Len()).Msg("live lookup succeeded")
		return &Result{Plate: plateNo, Record: rec, Source: model.SourceLive}, nil
	}

	s.log.Warn().Str("plate", plateNo).Str("reason", failure.Reason).Msg("live lookup failed, using demo data")

	result := &Result{
		Plate:          plateNo,
		Record:         record.Demo(plateNo),
		Source:         model.SourceDemo,
		FallbackReason: failure.Reason,
	}
	if failure.Unrecognized() {
		result.RawPayload = failure.Raw
	}
	return result, nil
}

// fetch runs the provider call and folds transport and HTTP failures into the
// error-envelope shape the normalizer already understands, so every outcome
// travels down one channel.
func (s *LookupService) fetch(ctx context.Context, plateNo string) any {
	raw, err := s.client.Lookup(ctx, plateNo)
	if err == nil {
		return raw
	}

	envelope := model.NewRecord()
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		envelope.Set("error", statusErr.Error())
		envelope.Set("details", statusErr.Body)
	} else {
		envelope.Set("error", err.Error())
	}
	return envelope
}

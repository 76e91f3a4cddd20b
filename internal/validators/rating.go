package validators

import (
	"context"

	"github.com/MKhiriev/go-model-vault/models"
)

// Rating bounds accepted for a model score. The same bound is enforced by a
// CHECK constraint at the database, so a value sneaking past this validator
// still cannot be persisted.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// ratingValidator validates rating submissions.
type ratingValidator struct{}

// NewRatingValidator constructs a [Validator] for [models.RateRequest]
// payloads.
func NewRatingValidator() Validator {
	return &ratingValidator{}
}

// Validate rejects any rating value outside [MinRatingValue, MaxRatingValue].
func (v *ratingValidator) Validate(_ context.Context, value any) error {
	payload, ok := value.(models.RateRequest)
	if !ok {
		return ErrUnsupportedType
	}

	if payload.Value < MinRatingValue || payload.Value > MaxRatingValue {
		return newValidationError([]string{MsgRatingOutOfBounds})
	}

	return nil
}

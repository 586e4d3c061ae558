package response

import (
	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// PromoValidationResponse is advisory: ineligibility is a 200 with
// valid=false and a reason, never an error status.
type PromoValidationResponse struct {
	Valid        bool       `json:"valid"`
	PromoID      *uuid.UUID `json:"promo_id,omitempty"`
	FlatOffCents *int64     `json:"flat_off_cents,omitempty"`
	PercentOff   *float64   `json:"percent_off,omitempty"`
	Reason       *string    `json:"reason,omitempty"`
}

func FromPromoValidation(v *queries.PromoValidationView) *PromoValidationResponse {
	return &PromoValidationResponse{
		Valid:        v.Valid,
		PromoID:      v.PromoID,
		FlatOffCents: v.FlatOffCents,
		PercentOff:   v.PercentOff,
		Reason:       v.Reason,
	}
}

package observation

import (
	"fmt"
	"time"
)

// DTO is the wire record for an observation. EncounterID stays a pointer so
// an absent link serializes as null and a null input detaches on update.
type DTO struct {
	PatientID         int64  `json:"patientId" validate:"required"`
	EncounterID       *int64 `json:"encounterId"`
	Code              string `json:"code" validate:"required"`
	Value             string `json:"value" validate:"required"`
	EffectiveDateTime string `json:"effectiveDateTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func ToEntity(d DTO) (*Observation, error) {
	effective, err := time.Parse(time.RFC3339, d.EffectiveDateTime)
	if err != nil {
		return nil, fmt.Errorf("invalid effectiveDateTime %q: %w", d.EffectiveDateTime, err)
	}
	return &Observation{
		PatientID:         d.PatientID,
		EncounterID:       d.EncounterID,
		Code:              d.Code,
		Value:             d.Value,
		EffectiveDateTime: effective,
	}, nil
}

func ToDTO(o *Observation) DTO {
	return DTO{
		PatientID:         o.PatientID,
		EncounterID:       o.EncounterID,
		Code:              o.Code,
		Value:             o.Value,
		EffectiveDateTime: o.EffectiveDateTime.Format(time.RFC3339),
	}
}

func toDTOs(observations []*Observation) []DTO {
	dtos := make([]DTO, 0, len(observations))
	for _, o := range observations {
		dtos = append(dtos, ToDTO(o))
	}
	return dtos
}

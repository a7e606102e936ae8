package encounter

import (
	"fmt"
	"time"

	"github.com/clinrec/clinrec/internal/platform/validation"
)

// DTO is the wire record for an encounter.
type DTO struct {
	PatientID      int64  `json:"patientId" validate:"required"`
	StartDate      string `json:"startDate" validate:"required,todayorfuture"`
	EndDate        string `json:"endDate" validate:"required,todayorfuture"`
	EncounterClass string `json:"encounterClass" validate:"required,oneof=INPATIENT OUTPATIENT EMERGENCY"`
}

func ToEntity(d DTO) (*Encounter, error) {
	class, err := ParseClass(d.EncounterClass)
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(validation.DateLayout, d.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate %q: %w", d.StartDate, err)
	}
	end, err := time.Parse(validation.DateLayout, d.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate %q: %w", d.EndDate, err)
	}
	return &Encounter{
		PatientID: d.PatientID,
		StartDate: start,
		EndDate:   end,
		Class:     class,
	}, nil
}

func ToDTO(e *Encounter) DTO {
	return DTO{
		PatientID:      e.PatientID,
		StartDate:      e.StartDate.Format(validation.DateLayout),
		EndDate:        e.EndDate.Format(validation.DateLayout),
		EncounterClass: string(e.Class),
	}
}

func toDTOs(encounters []*Encounter) []DTO {
	dtos := make([]DTO, 0, len(encounters))
	for _, e := range encounters {
		dtos = append(dtos, ToDTO(e))
	}
	return dtos
}

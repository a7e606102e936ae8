package patient

import (
	"fmt"
	"time"

	"github.com/clinrec/clinrec/internal/platform/validation"
)

// DTO is the wire record for a patient. The same shape is used for input
// bodies and response payloads.
type DTO struct {
	Identifier string `json:"identifier" validate:"required"`
	GivenName  string `json:"givenName" validate:"required"`
	FamilyName string `json:"familyName" validate:"required"`
	BirthDate  string `json:"birthDate" validate:"required,pastdate"`
	Gender     string `json:"gender" validate:"required,oneof=MALE FEMALE"`
}

// ToEntity converts a wire record into an entity. Enum and date parsing fail
// loudly so that an unmapped value can never slip through as a default.
func ToEntity(d DTO) (*Patient, error) {
	gender, err := ParseGender(d.Gender)
	if err != nil {
		return nil, err
	}
	birthDate, err := time.Parse(validation.DateLayout, d.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birthDate %q: %w", d.BirthDate, err)
	}
	return &Patient{
		Identifier: d.Identifier,
		GivenName:  d.GivenName,
		FamilyName: d.FamilyName,
		BirthDate:  birthDate,
		Gender:     gender,
	}, nil
}

func ToDTO(p *Patient) DTO {
	return DTO{
		Identifier: p.Identifier,
		GivenName:  p.GivenName,
		FamilyName: p.FamilyName,
		BirthDate:  p.BirthDate.Format(validation.DateLayout),
		Gender:     string(p.Gender),
	}
}

func toDTOs(patients []*Patient) []DTO {
	dtos := make([]DTO, 0, len(patients))
	for _, p := range patients {
		dtos = append(dtos, ToDTO(p))
	}
	return dtos
}

package patient

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when no patient matches the requested id or
	// identifier.
	ErrNotFound = errors.New("patient not found")
	// ErrDuplicateIdentifier is returned when a create or update collides
	// with the unique business identifier of another patient.
	ErrDuplicateIdentifier = errors.New("patient identifier already exists")
)

// Gender is a closed enum. Values convert from the wire via exact
// case-sensitive match; unmatched strings are rejected, never defaulted.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func ParseGender(s string) (Gender, error) {
	switch s {
	case string(GenderMale):
		return GenderMale, nil
	case string(GenderFemale):
		return GenderFemale, nil
	}
	return "", fmt.Errorf("invalid gender value %q", s)
}

// Patient is the root entity. Encounters and observations reference it by
// foreign key and are removed with it.
type Patient struct {
	ID         int64
	Identifier string
	GivenName  string
	FamilyName string
	BirthDate  time.Time
	Gender     Gender
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

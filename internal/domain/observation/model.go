package observation

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no observation matches the requested id.
	ErrNotFound = errors.New("observation not found")
	// ErrPatientNotFound is returned when the required patient reference
	// cannot be resolved.
	ErrPatientNotFound = errors.New("patient not found")
)

// Observation records a single coded measurement for a patient. The
// encounter link is optional and held as a nullable foreign key.
type Observation struct {
	ID                int64
	PatientID         int64
	EncounterID       *int64
	Code              string
	Value             string
	EffectiveDateTime time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

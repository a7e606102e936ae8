package encounter

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when no encounter matches the requested id.
	ErrNotFound = errors.New("encounter not found")
	// ErrPatientNotFound is returned when the referenced patient does not
	// exist; the create is rejected before any write happens.
	ErrPatientNotFound = errors.New("patient not found")
)

// Class is a closed enum, matched case-sensitively against the wire value.
type Class string

const (
	ClassInpatient  Class = "INPATIENT"
	ClassOutpatient Class = "OUTPATIENT"
	ClassEmergency  Class = "EMERGENCY"
)

func ParseClass(s string) (Class, error) {
	switch s {
	case string(ClassInpatient):
		return ClassInpatient, nil
	case string(ClassOutpatient):
		return ClassOutpatient, nil
	case string(ClassEmergency):
		return ClassEmergency, nil
	}
	return "", fmt.Errorf("invalid encounter class value %q", s)
}

// Encounter holds only the foreign key of its owning patient; the patient is
// looked up explicitly when needed.
type Encounter struct {
	ID        int64
	PatientID int64
	StartDate time.Time
	EndDate   time.Time
	Class     Class
	CreatedAt time.Time
	UpdatedAt time.Time
}

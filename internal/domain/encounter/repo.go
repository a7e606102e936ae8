package encounter

import "context"

type Repository interface {
	Create(ctx context.Context, e *Encounter) error
	GetByID(ctx context.Context, id int64) (*Encounter, error)
	GetAll(ctx context.Context) ([]*Encounter, error)
	GetByPatientID(ctx context.Context, patientID int64) ([]*Encounter, error)
	Update(ctx context.Context, e *Encounter) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// PatientDirectory is the narrow view of patient storage the encounter
// service needs for referential checks.
type PatientDirectory interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

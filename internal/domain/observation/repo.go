package observation

import "context"

type Repository interface {
	Create(ctx context.Context, o *Observation) error
	GetByID(ctx context.Context, id int64) (*Observation, error)
	GetAll(ctx context.Context) ([]*Observation, error)
	GetByPatientID(ctx context.Context, patientID int64) ([]*Observation, error)
	GetByEncounterID(ctx context.Context, encounterID int64) ([]*Observation, error)
	Update(ctx context.Context, o *Observation) error
	Delete(ctx context.Context, id int64) error
}

// PatientDirectory resolves the required patient reference.
type PatientDirectory interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// EncounterDirectory resolves the optional encounter reference.
type EncounterDirectory interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

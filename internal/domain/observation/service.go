package observation

import (
	"context"

	"github.com/clinrec/clinrec/internal/platform/db"
)

type Service struct {
	repo       Repository
	patients   PatientDirectory
	encounters EncounterDirectory
	tx         db.TxRunner
}

func NewService(repo Repository, patients PatientDirectory, encounters EncounterDirectory, tx db.TxRunner) *Service {
	return &Service{repo: repo, patients: patients, encounters: encounters, tx: tx}
}

// CreateObservation stores a new observation. The patient reference is
// required and blocking; the encounter reference is best-effort: an
// unresolvable encounterId is dropped silently and the observation is
// created without the link.
func (s *Service) CreateObservation(ctx context.Context, d DTO) (DTO, error) {
	o, err := ToEntity(d)
	if err != nil {
		return DTO{}, err
	}
	if err := s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.patients.ExistsByID(ctx, o.PatientID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPatientNotFound
		}
		if o.EncounterID != nil {
			found, err := s.encounters.ExistsByID(ctx, *o.EncounterID)
			if err != nil {
				return err
			}
			if !found {
				o.EncounterID = nil
			}
		}
		return s.repo.Create(ctx, o)
	}); err != nil {
		return DTO{}, err
	}
	return ToDTO(o), nil
}

func (s *Service) GetObservation(ctx context.Context, id int64) (DTO, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DTO{}, err
	}
	return ToDTO(o), nil
}

func (s *Service) ListObservations(ctx context.Context) ([]DTO, error) {
	observations, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(observations), nil
}

// ListByPatient lists observations referencing patientID without checking
// that the patient exists.
func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]DTO, error) {
	observations, err := s.repo.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return toDTOs(observations), nil
}

func (s *Service) ListByEncounter(ctx context.Context, encounterID int64) ([]DTO, error) {
	observations, err := s.repo.GetByEncounterID(ctx, encounterID)
	if err != nil {
		return nil, err
	}
	return toDTOs(observations), nil
}

// ListPatientObservations is the patient-rooted listing: the patient must
// exist, otherwise ErrPatientNotFound, and observation storage is not
// touched.
func (s *Service) ListPatientObservations(ctx context.Context, patientID int64) ([]DTO, error) {
	exists, err := s.patients.ExistsByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}
	return s.ListByPatient(ctx, patientID)
}

// UpdateObservation overwrites code, value and effectiveDateTime
// unconditionally. A changed patient reference is re-resolved; failure
// aborts the whole update and is reported as ErrNotFound. The encounter link
// keeps create's best-effort semantics, with one twist: a null encounterId
// detaches, while an unresolvable non-null id leaves the prior link
// unchanged.
func (s *Service) UpdateObservation(ctx context.Context, id int64, d DTO) (DTO, error) {
	incoming, err := ToEntity(d)
	if err != nil {
		return DTO{}, err
	}

	var updated *Observation
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if incoming.PatientID != existing.PatientID {
			exists, err := s.patients.ExistsByID(ctx, incoming.PatientID)
			if err != nil {
				return err
			}
			if !exists {
				return ErrNotFound
			}
			existing.PatientID = incoming.PatientID
		}
		if incoming.EncounterID == nil {
			existing.EncounterID = nil
		} else {
			found, err := s.encounters.ExistsByID(ctx, *incoming.EncounterID)
			if err != nil {
				return err
			}
			if found {
				existing.EncounterID = incoming.EncounterID
			}
		}
		existing.Code = incoming.Code
		existing.Value = incoming.Value
		existing.EffectiveDateTime = incoming.EffectiveDateTime
		if err := s.repo.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return DTO{}, err
	}
	return ToDTO(updated), nil
}

func (s *Service) DeleteObservation(ctx context.Context, id int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

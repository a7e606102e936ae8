package encounter

import (
	"context"

	"github.com/clinrec/clinrec/internal/platform/db"
)

type Service struct {
	repo     Repository
	patients PatientDirectory
	tx       db.TxRunner
}

func NewService(repo Repository, patients PatientDirectory, tx db.TxRunner) *Service {
	return &Service{repo: repo, patients: patients, tx: tx}
}

// CreateEncounter stores a new encounter for an existing patient. When the
// referenced patient is absent the create fails as a whole; no write is
// attempted.
func (s *Service) CreateEncounter(ctx context.Context, d DTO) (DTO, error) {
	e, err := ToEntity(d)
	if err != nil {
		return DTO{}, err
	}
	if err := s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.patients.ExistsByID(ctx, e.PatientID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrPatientNotFound
		}
		return s.repo.Create(ctx, e)
	}); err != nil {
		return DTO{}, err
	}
	return ToDTO(e), nil
}

func (s *Service) GetEncounter(ctx context.Context, id int64) (DTO, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DTO{}, err
	}
	return ToDTO(e), nil
}

func (s *Service) ListEncounters(ctx context.Context) ([]DTO, error) {
	encounters, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(encounters), nil
}

// ListByPatient lists the encounters referencing patientID without checking
// that the patient exists; an unknown patient simply yields an empty list.
func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]DTO, error) {
	encounters, err := s.repo.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return toDTOs(encounters), nil
}

// ListPatientEncounters is the patient-rooted listing: the patient must
// exist, otherwise ErrPatientNotFound, and encounter storage is not touched.
func (s *Service) ListPatientEncounters(ctx context.Context, patientID int64) ([]DTO, error) {
	exists, err := s.patients.ExistsByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}
	return s.ListByPatient(ctx, patientID)
}

// UpdateEncounter replaces all mutable fields. A changed patient reference
// is re-resolved; when the new patient cannot be resolved the whole update
// is abandoned and reported as ErrNotFound.
func (s *Service) UpdateEncounter(ctx context.Context, id int64, d DTO) (DTO, error) {
	incoming, err := ToEntity(d)
	if err != nil {
		return DTO{}, err
	}

	var updated *Encounter
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
		}
		existing.PatientID = incoming.PatientID
		existing.StartDate = incoming.StartDate
		existing.EndDate = incoming.EndDate
		existing.Class = incoming.Class
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

func (s *Service) DeleteEncounter(ctx context.Context, id int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

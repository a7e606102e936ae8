package patient

import (
	"context"
	"time"

	"github.com/clinrec/clinrec/internal/platform/db"
)

type Service struct {
	repo Repository
	tx   db.TxRunner
}

func NewService(repo Repository, tx db.TxRunner) *Service {
	return &Service{repo: repo, tx: tx}
}

// SearchQuery carries the optional filters of the patient search endpoint.
// Filters are mutually exclusive; priority order is identifier, then birth
// date, then family name, then given name, then the unfiltered listing.
type SearchQuery struct {
	Identifier string
	BirthDate  *time.Time
	FamilyName string
	GivenName  string
}

func (s *Service) CreatePatient(ctx context.Context, d DTO) (DTO, error) {
	p, err := ToEntity(d)
	if err != nil {
		return DTO{}, err
	}
	if err := s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, p)
	}); err != nil {
		return DTO{}, err
	}
	return ToDTO(p), nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (DTO, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DTO{}, err
	}
	return ToDTO(p), nil
}

func (s *Service) ListPatients(ctx context.Context) ([]DTO, error) {
	patients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(patients), nil
}

// UpdatePatient replaces every mutable field with the incoming record.
func (s *Service) UpdatePatient(ctx context.Context, id int64, d DTO) (DTO, error) {
	incoming, err := ToEntity(d)
	if err != nil {
		return DTO{}, err
	}

	var updated *Patient
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		existing.Identifier = incoming.Identifier
		existing.GivenName = incoming.GivenName
		existing.FamilyName = incoming.FamilyName
		existing.BirthDate = incoming.BirthDate
		existing.Gender = incoming.Gender
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

// DeletePatient removes the patient; owned encounters and observations go
// with it. A second delete of the same id reports ErrNotFound.
func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

// SearchPatients applies the highest-priority filter present and ignores the
// rest. An identifier match yields a zero-or-one element list. With no
// filters set it falls back to the full listing.
func (s *Service) SearchPatients(ctx context.Context, q SearchQuery) ([]DTO, error) {
	switch {
	case q.Identifier != "":
		p, err := s.repo.GetByIdentifier(ctx, q.Identifier)
		if err == ErrNotFound {
			return []DTO{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []DTO{ToDTO(p)}, nil
	case q.BirthDate != nil:
		patients, err := s.repo.SearchByBirthDate(ctx, *q.BirthDate)
		if err != nil {
			return nil, err
		}
		return toDTOs(patients), nil
	case q.FamilyName != "":
		patients, err := s.repo.SearchByFamilyName(ctx, q.FamilyName)
		if err != nil {
			return nil, err
		}
		return toDTOs(patients), nil
	case q.GivenName != "":
		patients, err := s.repo.SearchByGivenName(ctx, q.GivenName)
		if err != nil {
			return nil, err
		}
		return toDTOs(patients), nil
	}
	return s.ListPatients(ctx)
}

// SearchByBirthDateRange lists patients born between start and end, both
// bounds inclusive.
func (s *Service) SearchByBirthDateRange(ctx context.Context, start, end time.Time) ([]DTO, error) {
	patients, err := s.repo.SearchByBirthDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toDTOs(patients), nil
}

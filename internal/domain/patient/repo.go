package patient

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	GetByIdentifier(ctx context.Context, identifier string) (*Patient, error)
	GetAll(ctx context.Context) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	SearchByFamilyName(ctx context.Context, fragment string) ([]*Patient, error)
	SearchByGivenName(ctx context.Context, fragment string) ([]*Patient, error)
	SearchByBirthDate(ctx context.Context, birthDate time.Time) ([]*Patient, error)
	SearchByBirthDateRange(ctx context.Context, start, end time.Time) ([]*Patient, error)
}

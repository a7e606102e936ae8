package patient

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/clinrec/clinrec/internal/platform/db"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[int64]*Patient
	nextID   int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[int64]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	for _, existing := range m.patients {
		if existing.Identifier == p.Identifier {
			return ErrDuplicateIdentifier
		}
	}
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) GetByIdentifier(_ context.Context, identifier string) (*Patient, error) {
	for _, p := range m.patients {
		if p.Identifier == identifier {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) GetAll(_ context.Context) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return ErrNotFound
	}
	cp := *p
	m.patients[p.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.patients[id]; !ok {
		return ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := m.patients[id]
	return ok, nil
}

func (m *mockRepo) SearchByFamilyName(_ context.Context, fragment string) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		if containsFold(p.FamilyName, fragment) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockRepo) SearchByGivenName(_ context.Context, fragment string) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		if containsFold(p.GivenName, fragment) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockRepo) SearchByBirthDate(_ context.Context, birthDate time.Time) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		if p.BirthDate.Equal(birthDate) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockRepo) SearchByBirthDateRange(_ context.Context, start, end time.Time) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		if !p.BirthDate.Before(start) && !p.BirthDate.After(end) {
			result = append(result, p)
		}
	}
	return result, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func newTestService() *Service {
	return NewService(newMockRepo(), db.NopTx{})
}

func validDTO() DTO {
	return DTO{
		Identifier: "MRN-1",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
		BirthDate:  "1990-01-01",
		Gender:     "FEMALE",
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := validDTO()
	created, err := svc.CreatePatient(ctx, in)
	if err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	if created != in {
		t.Errorf("created patient differs from input: %+v vs %+v", created, in)
	}

	got, err := svc.GetPatient(ctx, 1)
	if err != nil {
		t.Fatalf("GetPatient: %v", err)
	}
	if got != in {
		t.Errorf("fetched patient differs from input: %+v vs %+v", got, in)
	}
}

func TestCreateRejectsDuplicateIdentifier(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreatePatient(ctx, validDTO()); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	_, err := svc.CreatePatient(ctx, validDTO())
	if err != ErrDuplicateIdentifier {
		t.Fatalf("expected ErrDuplicateIdentifier, got %v", err)
	}
}

func TestCreateRejectsInvalidGender(t *testing.T) {
	svc := newTestService()

	in := validDTO()
	in.Gender = "female"
	if _, err := svc.CreatePatient(context.Background(), in); err == nil {
		t.Fatal("expected error for lowercase gender value")
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdatePatient(context.Background(), 42, validDTO())
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreatePatient(ctx, validDTO()); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	in := DTO{
		Identifier: "MRN-2",
		GivenName:  "Grace",
		FamilyName: "Hopper",
		BirthDate:  "1985-12-09",
		Gender:     "FEMALE",
	}
	updated, err := svc.UpdatePatient(ctx, 1, in)
	if err != nil {
		t.Fatalf("UpdatePatient: %v", err)
	}
	if updated != in {
		t.Errorf("expected full replace, got %+v", updated)
	}

	got, _ := svc.GetPatient(ctx, 1)
	if got.Identifier != "MRN-2" || got.FamilyName != "Hopper" {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestDeleteSecondTimeNotFound(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreatePatient(ctx, validDTO()); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	if err := svc.DeletePatient(ctx, 1); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeletePatient(ctx, 1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSearchIdentifierTakesPrecedence(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreatePatient(ctx, validDTO()); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	other := DTO{Identifier: "MRN-2", GivenName: "Grace", FamilyName: "Hopper", BirthDate: "1985-12-09", Gender: "FEMALE"}
	if _, err := svc.CreatePatient(ctx, other); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	// Both identifier and family supplied; only the identifier match returns.
	out, err := svc.SearchPatients(ctx, SearchQuery{Identifier: "MRN-2", FamilyName: "Lovelace"})
	if err != nil {
		t.Fatalf("SearchPatients: %v", err)
	}
	if len(out) != 1 || out[0].Identifier != "MRN-2" {
		t.Errorf("expected single MRN-2 match, got %+v", out)
	}
}

func TestSearchIdentifierMissYieldsEmptyList(t *testing.T) {
	svc := newTestService()

	out, err := svc.SearchPatients(context.Background(), SearchQuery{Identifier: "MRN-404"})
	if err != nil {
		t.Fatalf("SearchPatients: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty list, got %+v", out)
	}
}

func TestSearchFallsBackToListAll(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreatePatient(ctx, validDTO()); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	out, err := svc.SearchPatients(ctx, SearchQuery{})
	if err != nil {
		t.Fatalf("SearchPatients: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("expected 1 patient, got %d", len(out))
	}
}

func TestSearchByBirthDateRangeInclusive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.CreatePatient(ctx, validDTO()); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	start, _ := time.Parse("2006-01-02", "1990-01-01")
	end, _ := time.Parse("2006-01-02", "1990-01-01")
	out, err := svc.SearchByBirthDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("SearchByBirthDateRange: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("expected inclusive bounds to match, got %d results", len(out))
	}
}

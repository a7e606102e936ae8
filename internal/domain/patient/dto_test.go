package patient

import (
	"testing"
	"time"
)

func TestParseGenderExactMatch(t *testing.T) {
	if g, err := ParseGender("MALE"); err != nil || g != GenderMale {
		t.Errorf("expected MALE to parse, got %v %v", g, err)
	}
	if g, err := ParseGender("FEMALE"); err != nil || g != GenderFemale {
		t.Errorf("expected FEMALE to parse, got %v %v", g, err)
	}

	for _, bad := range []string{"male", "Female", "OTHER", ""} {
		if _, err := ParseGender(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestToEntityAndBack(t *testing.T) {
	d := DTO{
		Identifier: "MRN-7",
		GivenName:  "Ada",
		FamilyName: "Lovelace",
		BirthDate:  "1990-05-01",
		Gender:     "FEMALE",
	}

	p, err := ToEntity(d)
	if err != nil {
		t.Fatalf("ToEntity: %v", err)
	}
	if p.Gender != GenderFemale {
		t.Errorf("expected FEMALE, got %s", p.Gender)
	}
	want, _ := time.Parse("2006-01-02", "1990-05-01")
	if !p.BirthDate.Equal(want) {
		t.Errorf("expected birth date %v, got %v", want, p.BirthDate)
	}

	if got := ToDTO(p); got != d {
		t.Errorf("round trip mismatch: %+v vs %+v", got, d)
	}
}

func TestToEntityRejectsBadDate(t *testing.T) {
	d := DTO{Identifier: "X", GivenName: "A", FamilyName: "B", BirthDate: "01/05/1990", Gender: "MALE"}
	if _, err := ToEntity(d); err == nil {
		t.Fatal("expected error for malformed birthDate")
	}
}

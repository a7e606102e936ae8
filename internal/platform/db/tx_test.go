package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTxFromContextEmpty(t *testing.T) {
	if tx := TxFromContext(context.Background()); tx != nil {
		t.Fatalf("expected nil tx on plain context, got %v", tx)
	}
}

func TestNopTxRunsFunc(t *testing.T) {
	called := false
	err := NopTx{}.InTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("InTx: %v", err)
	}
	if !called {
		t.Fatal("expected fn to be called")
	}
}

func TestNopTxPropagatesError(t *testing.T) {
	want := errors.New("boom")
	err := NopTx{}.InTx(context.Background(), func(ctx context.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("expected true for SQLSTATE 23505")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("expected false for foreign key violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("expected false for non-pg error")
	}
	if IsUniqueViolation(nil) {
		t.Error("expected false for nil")
	}
}

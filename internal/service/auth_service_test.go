package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-stock-ledger/internal/model"
	"go-stock-ledger/internal/repository"
)

func TestAuthService_Register_Success(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db), testCost)

	identity, err := svc.Register(ctx, "  alice  ", " secret ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if identity.UserID == 0 || identity.Username != "alice" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	var stored model.User
	if err := db.First(&stored, identity.UserID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.PasswordHash == "" || strings.Contains(stored.PasswordHash, "secret") {
		t.Errorf("password must be stored as a digest, got %q", stored.PasswordHash)
	}
	if !stored.CheckPassword("secret") {
		t.Error("stored digest does not verify the trimmed password")
	}
}

func TestAuthService_Register_SaltsEachDigest(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db), testCost)

	a, err := svc.Register(ctx, "alice", "same-password")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	b, err := svc.Register(ctx, "bob", "same-password")
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}

	var ua, ub model.User
	db.First(&ua, a.UserID)
	db.First(&ub, b.UserID)
	if ua.PasswordHash == ub.PasswordHash {
		t.Error("expected different digests for the same password")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	svc := NewAuthService(users, testCost)

	if _, err := svc.Register(ctx, "alice", "one"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, " alice", "two")
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	n, err := users.Count(ctx)
	if err != nil || n != 1 {
		t.Errorf("expected exactly one user, got %d (%v)", n, err)
	}
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	svc := NewAuthService(users, testCost)

	cases := []struct{ username, password string }{
		{"", "secret"},
		{"   ", "secret"},
		{"alice", ""},
		{"alice", " \t "},
		{"alice", strings.Repeat("x", 73)},
	}
	for _, c := range cases {
		_, err := svc.Register(ctx, c.username, c.password)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Register(%q, %d chars): expected ErrInvalidInput, got %v", c.username, len(c.password), err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Fields) == 0 {
			t.Errorf("expected field details, got %v", err)
		}
	}

	if n, _ := users.Count(ctx); n != 0 {
		t.Errorf("expected no writes, found %d users", n)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(repository.NewUserRepo(newTestDB(t)), testCost)

	registered, err := svc.Register(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	identity, err := svc.Authenticate(ctx, " alice ", "secret")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if *identity != *registered {
		t.Errorf("expected %+v, got %+v", registered, identity)
	}

	_, wrongPassword := svc.Authenticate(ctx, "alice", "nope")
	_, unknownUser := svc.Authenticate(ctx, "mallory", "secret")

	if !errors.Is(wrongPassword, ErrAuthFailure) || !errors.Is(unknownUser, ErrAuthFailure) {
		t.Fatalf("expected ErrAuthFailure for both, got %v and %v", wrongPassword, unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Errorf("failures must be indistinguishable: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestAuthService_Authenticate_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(repository.NewUserRepo(newTestDB(t)), testCost)

	if _, err := svc.Register(ctx, "alice", "secret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "Alice", "secret"); !errors.Is(err, ErrAuthFailure) {
		t.Errorf("expected ErrAuthFailure, got %v", err)
	}
}

func TestAuthService_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db), testCost)
	closeDB(db)

	if _, err := svc.Register(ctx, "alice", "secret"); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("register: expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "alice", "secret"); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("authenticate: expected ErrStoreUnavailable, got %v", err)
	}
}

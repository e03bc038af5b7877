package user

import (
	"strings"
	"testing"
)

func TestRegister_HashesPassword(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo)

	created, err := s.Register(User{Name: "Asha", Email: "asha@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Password == "secret" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(created.Password, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", created.Password)
	}
	if created.Role != RoleUser {
		t.Fatalf("expected default role %q, got %q", RoleUser, created.Role)
	}

	if _, err := s.Authenticate("asha@example.com", "secret"); err != nil {
		t.Fatalf("authenticate after register: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo)

	if _, err := s.Register(User{Name: "Asha", Email: "asha@example.com", Password: "secret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Register(User{Name: "Other", Email: "asha@example.com", Password: "other"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo)

	if _, err := s.Register(User{Name: "Asha", Email: "asha@example.com", Password: "secret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Authenticate("asha@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	if _, err := s.Authenticate("ghost@example.com", "secret"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

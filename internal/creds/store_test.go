package creds

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestStoreRoundTrip(t *testing.T) {
	keyring.MockInit()
	s := NewStore("radioctl-test")

	if err := s.Save("admin", "hunter2"); err != nil {
		t.Fatalf("Save() = %v, want nil", err)
	}

	username, password, err := s.Credentials()
	if err != nil {
		t.Fatalf("Credentials() error = %v", err)
	}
	if username != "admin" || password != "hunter2" {
		t.Errorf("Credentials() = (%q, %q), want (admin, hunter2)", username, password)
	}
}

func TestCredentialsWhenNothingStored(t *testing.T) {
	keyring.MockInit()
	s := NewStore("radioctl-empty")

	_, _, err := s.Credentials()
	if !errors.Is(err, ErrNotStored) {
		t.Errorf("Credentials() error = %v, want ErrNotStored", err)
	}
}

func TestCredentialsWithHalfPair(t *testing.T) {
	keyring.MockInit()
	s := NewStore("radioctl-half")

	// Only a username, e.g. after an interrupted save.
	if err := keyring.Set(s.Service, "username", "admin"); err != nil {
		t.Fatalf("seeding keychain: %v", err)
	}

	_, _, err := s.Credentials()
	if !errors.Is(err, ErrNotStored) {
		t.Errorf("Credentials() error = %v, want ErrNotStored", err)
	}
}

func TestSaveRejectsEmptyHalves(t *testing.T) {
	keyring.MockInit()
	s := NewStore("radioctl-test")

	if err := s.Save("", "pw"); err == nil {
		t.Error("Save(\"\", pw) = nil, want error")
	}
	if err := s.Save("admin", ""); err == nil {
		t.Error("Save(admin, \"\") = nil, want error")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	keyring.MockInit()
	s := NewStore("radioctl-test")

	if err := s.Save("admin", "pw"); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() = %v, want nil", err)
	}
	if _, _, err := s.Credentials(); !errors.Is(err, ErrNotStored) {
		t.Errorf("Credentials() after Clear = %v, want ErrNotStored", err)
	}

	// Clearing an already empty store must not fail.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() = %v, want nil", err)
	}
}

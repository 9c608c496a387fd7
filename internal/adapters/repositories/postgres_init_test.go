package repositories

import (
	"testing"

	"stylecloset-service/internal/auth"
)

func TestNewDemoUser(t *testing.T) {
	user, err := newDemoUser("  Demo@Example.com ", "demo-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected a generated id")
	}
	if user.Email != "demo@example.com" {
		t.Fatalf("email = %q, want normalized demo@example.com", user.Email)
	}
	if user.PasswordHash == "demo-password" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed, got %q", user.PasswordHash)
	}

	if !auth.CheckPassword("demo-password", user.PasswordHash) {
		t.Fatal("stored hash does not verify the original password")
	}
	if auth.CheckPassword("wrong-password", user.PasswordHash) {
		t.Fatal("stored hash verified a wrong password")
	}
}

func TestNewDemoUserValidation(t *testing.T) {
	if _, err := newDemoUser("", "demo-password"); err == nil {
		t.Fatal("expected error for empty email")
	}
	if _, err := newDemoUser("demo@example.com", "short"); err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestSeedDemoUserNilDB(t *testing.T) {
	if err := SeedDemoUser(nil, "demo@example.com", "demo-password"); err == nil {
		t.Fatal("expected error for nil DB")
	}
}

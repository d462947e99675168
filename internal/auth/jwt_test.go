package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	staffID := uuid.New().String()
	email := "manager@example.com"

	token, err := GenerateToken(staffID, email, RoleManager)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	gotID, gotEmail, gotRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if gotID != staffID || gotEmail != email || gotRole != RoleManager {
		t.Fatalf("claims mismatch: %s %s %s", gotID, gotEmail, gotRole)
	}
}

func TestGenerateToken_EmptyStaffID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "x@example.com", RoleServer); err == nil {
		t.Fatal("expected error for empty staff id")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for invalid token")
	}
}

package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", time.Hour)

	tok, err := svc.GenerateToken("user-123", "acct-456")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.AccountID != "acct-456" {
		t.Fatalf("AccountID mismatch: got %q want %q", claims.AccountID, "acct-456")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("secret", -1*time.Second)

	tok, err := svc.GenerateToken("u1", "a1")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err = svc.ValidateToken(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTService("right-secret", time.Hour).GenerateToken("u2", "a2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err = NewJWTService("wrong-secret", time.Hour).ValidateToken(tok); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTService("k", time.Hour).ValidateToken("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

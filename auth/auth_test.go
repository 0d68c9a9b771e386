package auth

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := CreateToken(42)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	userID, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("VerifyToken = %d, want 42", userID)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := CreateToken(42)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	if _, err := VerifyToken(token + "x"); err == nil {
		t.Error("accepted a tampered token")
	}
	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Error("accepted garbage")
	}

	// A token minted under a different secret must not verify.
	t.Setenv("JWT_SECRET_KEY", "other-secret")
	if _, err := VerifyToken(token); err == nil {
		t.Error("accepted a token signed with another secret")
	}
}

func TestMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := CreateToken(1); err == nil || !strings.Contains(err.Error(), "JWT_SECRET_KEY") {
		t.Errorf("CreateToken without secret: %v", err)
	}
	if _, err := VerifyToken("whatever"); err == nil {
		t.Error("VerifyToken without secret succeeded")
	}
}

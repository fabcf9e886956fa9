package jwt

import (
	"testing"
	"time"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, "access", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(testSecret, "access", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id = %d, want 42", claims.UserID)
	}
	if claims.Type != "access" {
		t.Fatalf("type = %s, want access", claims.Type)
	}
}

// access token 不能当 refresh token 用
func TestParseToken_TypeMismatch(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, "access", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(testSecret, "refresh", token); err == nil {
		t.Fatal("expected type mismatch error")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, "access", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken([]byte("other-secret"), "access", token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, 1, "access", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(testSecret, "access", token); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestShouldRotateRefreshToken(t *testing.T) {
	token, _ := GenerateToken(testSecret, 1, "refresh", 10*time.Minute)
	claims, err := ParseToken(testSecret, "refresh", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if ShouldRotateRefreshToken(claims, 5*time.Minute) {
		t.Fatal("fresh token should not rotate")
	}
	if !ShouldRotateRefreshToken(claims, time.Hour) {
		t.Fatal("near-expiry token should rotate")
	}
}

package encrypt

import "testing"

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "" {
		t.Fatal("expected non-empty hash")
	}
	if hashed == "secret123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !VerifyPassword(hashed, "secret123") {
		t.Error("expected verification to pass")
	}
	if VerifyPassword(hashed, "wrong") {
		t.Error("expected verification to fail for wrong password")
	}
}

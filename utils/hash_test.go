package utils

import (
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

// Two hashes of the same password must differ (bcrypt salts per call) while
// both still verifying.
func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("expected distinct salted hashes")
	}
	if !CheckPasswordHash("same", h1) || !CheckPasswordHash("same", h2) {
		t.Error("salted hashes failed verification")
	}
}

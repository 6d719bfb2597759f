package utils

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "admin123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "admin124") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("not-a-bcrypt-hash", "admin123") {
		t.Error("invalid hash accepted")
	}
}

package utils

import (
	"errors"
	"testing"
)

func TestHashPassword_Success(t *testing.T) {
	digest, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == "" {
		t.Fatal("expected non-empty digest")
	}
	if digest == "s3cret-password" {
		t.Fatal("digest must not equal the plaintext")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	if !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got: %v", err)
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected different digests for the same password (random salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		plaintext string
		digest    string
		want      bool
	}{
		{"matching password", "correct-horse", digest, true},
		{"wrong password", "battery-staple", digest, false},
		{"empty plaintext", "", digest, false},
		{"empty digest", "correct-horse", "", false},
		{"corrupt digest", "correct-horse", "not-a-bcrypt-digest", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.plaintext, tt.digest); got != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

package crypto

import (
	"strings"
	"testing"
)

func TestMkSaltFormat(t *testing.T) {
	salt, err := MkSalt(SaltOptions{})
	if err != nil {
		t.Fatalf("mksalt failed: %v", err)
	}

	if !strings.HasPrefix(salt, MagicPrefix) {
		t.Fatalf("expected %s prefix, got %q", MagicPrefix, salt)
	}

	material := strings.TrimPrefix(salt, MagicPrefix)
	if len(material) != SaltLenMax {
		t.Fatalf("expected %d salt characters, got %d in %q", SaltLenMax, len(material), salt)
	}
	for _, c := range material {
		if !strings.ContainsRune(saltAlphabet, c) {
			t.Fatalf("salt character %q outside the crypt alphabet in %q", c, salt)
		}
	}
}

func TestMkSaltRounds(t *testing.T) {
	salt, err := MkSalt(SaltOptions{Rounds: 12000})
	if err != nil {
		t.Fatalf("mksalt failed: %v", err)
	}

	if !strings.HasPrefix(salt, "$6$rounds=12000$") {
		t.Fatalf("expected rounds clause in %q", salt)
	}
	if len(strings.TrimPrefix(salt, "$6$rounds=12000$")) != SaltLenMax {
		t.Fatalf("unexpected salt material length in %q", salt)
	}
}

func TestMkSaltUsableByCrypt(t *testing.T) {
	salt, err := MkSalt(SaltOptions{Rounds: 1000})
	if err != nil {
		t.Fatalf("mksalt failed: %v", err)
	}

	crypter := NewSHA512Crypter()
	hashed, err := crypter.Crypt("secret-pass", salt)
	if err != nil {
		t.Fatalf("crypt with generated salt failed: %v", err)
	}

	ok, err := crypter.Verify("secret-pass", hashed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Fatal("expected generated salt roundtrip to verify")
	}
}

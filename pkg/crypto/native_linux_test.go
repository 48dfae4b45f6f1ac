//go:build cgo && linux

package crypto

import "testing"

// The native and pure Go backends must be interchangeable for valid $6$
// descriptors.
func TestNativeMatchesSHA512Crypt(t *testing.T) {
	native := NewNativeCrypter()
	pure := NewSHA512Crypter()

	for _, salt := range []string{"$6$saltstring", "$6$rounds=1000$abcdefgh"} {
		fromNative, err := native.Crypt("Hello world!", salt)
		if err != nil {
			t.Fatalf("native crypt %q failed: %v", salt, err)
		}

		fromPure, err := pure.Crypt("Hello world!", salt)
		if err != nil {
			t.Fatalf("pure crypt %q failed: %v", salt, err)
		}

		if fromNative != fromPure {
			t.Fatalf("backends disagree for %q: native %q, pure %q", salt, fromNative, fromPure)
		}
	}
}

func TestNativeVerify(t *testing.T) {
	native := NewNativeCrypter()

	hashed, err := native.Crypt("secret-pass", "$6$rounds=1000$abcdefgh")
	if err != nil {
		t.Fatalf("native crypt failed: %v", err)
	}

	ok, err := native.Verify("secret-pass", hashed)
	if err != nil {
		t.Fatalf("native verify failed: %v", err)
	}
	if !ok {
		t.Fatal("expected native verification to succeed")
	}

	ok, err = native.Verify("wrong-pass", hashed)
	if err != nil {
		t.Fatalf("native verify wrong password failed with error: %v", err)
	}
	if ok {
		t.Fatal("expected native verification to fail for wrong password")
	}
}

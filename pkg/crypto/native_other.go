//go:build !(cgo && linux)

package crypto

const PlatformName = "sha512crypt"

// Platform falls back to the pure Go sha512-crypt adapter on hosts without
// a native crypt(3).
func Platform() Crypter {
	return NewSHA512Crypter()
}

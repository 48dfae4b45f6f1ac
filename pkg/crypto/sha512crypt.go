package crypto

import (
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"

	"github.com/GehirnInc/crypt/sha512_crypt"

	cerrors "github.com/porthorian/cryptshim/pkg/errors"
)

const (
	MagicPrefix   = sha512_crypt.MagicPrefix
	SaltLenMax    = sha512_crypt.SaltLenMax
	RoundsMin     = sha512_crypt.RoundsMin
	RoundsMax     = sha512_crypt.RoundsMax
	RoundsDefault = sha512_crypt.RoundsDefault
)

const roundsPrefix = "rounds="

// SHA512Crypter hashes passwords with SHA-512 crypt without relying on a
// platform crypt(3). Salt descriptors use the crypt format
// $6$[rounds=N$]salt; any other scheme identifier is rejected.
type SHA512Crypter struct{}

func NewSHA512Crypter() *SHA512Crypter {
	return &SHA512Crypter{}
}

func (c *SHA512Crypter) Crypt(password string, salt string) (string, error) {
	rounds, saltValue, err := parseSaltDescriptor(salt)
	if err != nil {
		return "", err
	}

	hashed, err := sha512_crypt.New().Generate([]byte(password), []byte(encodeSetting(rounds, saltValue)))
	if err != nil {
		return "", cerrors.Wrap(cerrors.CodeUnknown, "failed to generate sha512-crypt hash", err)
	}

	return hashed, nil
}

// Verify recomputes the hash from the stored setting and compares digests
// in constant time. The underlying library's own verifier is not used: it
// does not stop the salt at the next $ when a rounds clause is present, so
// it mis-parses its own output for salts shorter than SaltLenMax.
func (c *SHA512Crypter) Verify(password string, hashedKey string) (bool, error) {
	if _, _, err := parseSaltDescriptor(hashedKey); err != nil {
		return false, err
	}

	parts := strings.Split(hashedKey, "$")
	digestAt := 3
	if strings.HasPrefix(parts[2], roundsPrefix) {
		digestAt = 4
	}
	if len(parts) <= digestAt || parts[digestAt] == "" {
		return false, cerrors.Wrap(cerrors.CodeMalformedSalt, fmt.Sprintf("stored hash has no digest: %s", hashedKey), nil)
	}

	computed, err := c.Crypt(password, hashedKey)
	if err != nil {
		return false, err
	}
	computedParts := strings.Split(computed, "$")
	computedDigest := computedParts[len(computedParts)-1]

	return subtle.ConstantTimeCompare([]byte(computedDigest), []byte(parts[digestAt])) == 1, nil
}

// parseSaltDescriptor resolves the round count and salt material from a
// $6$[rounds=N$]salt descriptor. An unparseable round count falls back to
// the scheme default instead of failing; salt strings in the wild rely on
// that leniency, so it must not be tightened into an error.
func parseSaltDescriptor(salt string) (int, string, error) {
	parts := strings.Split(salt, "$")
	if len(parts) < 3 {
		return 0, "", cerrors.Wrap(cerrors.CodeMalformedSalt, fmt.Sprintf("invalid salt format: %s", salt), nil)
	}

	if !strings.HasPrefix(salt, MagicPrefix) {
		return 0, "", cerrors.Wrap(cerrors.CodeUnsupportedScheme, fmt.Sprintf("only sha512-crypt (%s) is supported, got: %s", MagicPrefix, descriptorPrefix(salt)), nil)
	}

	rounds := RoundsDefault
	saltValue := parts[2]

	if strings.HasPrefix(parts[2], roundsPrefix) {
		if parsed, err := strconv.Atoi(strings.Split(parts[2], "=")[1]); err == nil {
			rounds = parsed
		}

		saltValue = ""
		if len(parts) > 3 {
			saltValue = parts[3]
		}
	}

	return rounds, saltValue, nil
}

// encodeSetting rebuilds a canonical setting string for the underlying
// sha512-crypt primitive. The rounds clause is omitted at the scheme
// default so outputs stay verifiable against historical crypt strings.
func encodeSetting(rounds int, salt string) string {
	if rounds == RoundsDefault {
		return MagicPrefix + salt
	}
	return MagicPrefix + roundsPrefix + strconv.Itoa(rounds) + "$" + salt
}

func descriptorPrefix(salt string) string {
	if len(salt) > 3 {
		return salt[:3]
	}
	return salt
}

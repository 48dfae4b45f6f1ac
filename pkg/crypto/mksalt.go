package crypto

import (
	"crypto/rand"
	"strconv"

	cerrors "github.com/porthorian/cryptshim/pkg/errors"
)

// saltAlphabet is the crypt(3) salt character set. Its length divides 256,
// so reducing random bytes modulo the alphabet introduces no bias.
const saltAlphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type SaltOptions struct {
	Length int
	Rounds int
}

func DefaultSaltOptions() SaltOptions {
	return SaltOptions{
		Length: SaltLenMax,
	}
}

// MkSalt generates a fresh salt descriptor directly usable as a Crypt salt.
// A Rounds value of zero embeds no rounds clause, leaving the scheme default.
func MkSalt(options SaltOptions) (string, error) {
	defaults := DefaultSaltOptions()

	if options.Length <= 0 {
		options.Length = defaults.Length
	}
	if options.Length > SaltLenMax {
		options.Length = SaltLenMax
	}

	raw := make([]byte, options.Length)
	if _, err := rand.Read(raw); err != nil {
		return "", cerrors.Wrap(cerrors.CodeUnavailable, "failed to read salt randomness", err)
	}
	for i, b := range raw {
		raw[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}

	if options.Rounds > 0 && options.Rounds != RoundsDefault {
		return MagicPrefix + roundsPrefix + strconv.Itoa(options.Rounds) + "$" + string(raw), nil
	}

	return MagicPrefix + string(raw), nil
}

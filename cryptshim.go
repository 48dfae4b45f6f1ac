// Package cryptshim re-exposes the Unix crypt(3) SHA-512 password hash for
// hosts that no longer ship a native crypt primitive. Salt descriptors use
// the historical $6$[rounds=N$]salt format.
package cryptshim

import (
	"unicode/utf8"

	"github.com/go-logr/logr"
	ccrypto "github.com/porthorian/cryptshim/pkg/crypto"
	cerrors "github.com/porthorian/cryptshim/pkg/errors"
)

type Config struct {
	Logger  logr.Logger
	Crypter ccrypto.Crypter
}

type Client struct {
	crypter ccrypto.Crypter
	logger  logr.Logger
}

func New(config Config) *Client {
	logger := resolveLogger(config.Logger)

	crypter := config.Crypter
	if crypter == nil {
		crypter = ccrypto.Platform()
		logger.V(1).Info("selected crypt backend", "backend", ccrypto.PlatformName)
	}

	return &Client{
		crypter: crypter,
		logger:  logger,
	}
}

// Crypt hashes password with the salt descriptor, producing a crypt-format
// string. The result is a pure function of its inputs; randomness, if any,
// belongs to the salt the caller supplies.
func (c *Client) Crypt(password string, salt string) (string, error) {
	if c == nil || c.crypter == nil {
		return "", cerrors.ErrMissingCrypter
	}

	return c.crypter.Crypt(password, salt)
}

// CryptBytes hashes a byte-sequence password. The bytes must form valid
// UTF-8 text and hash identically to the equivalent string password.
func (c *Client) CryptBytes(password []byte, salt string) (string, error) {
	if c == nil || c.crypter == nil {
		return "", cerrors.ErrMissingCrypter
	}

	if !utf8.Valid(password) {
		return "", cerrors.Wrap(cerrors.CodeInvalidEncoding, "password bytes are not valid utf-8", nil)
	}

	return c.crypter.Crypt(string(password), salt)
}

// Verify reports whether password matches a previously produced crypt
// string. A clean mismatch is (false, nil); a structurally invalid hash is
// an error.
func (c *Client) Verify(password string, hashedKey string) (bool, error) {
	if c == nil || c.crypter == nil {
		return false, cerrors.ErrMissingCrypter
	}

	return c.crypter.Verify(password, hashedKey)
}

// MkSalt generates a fresh salt descriptor. A rounds value of zero leaves
// the scheme default.
func (c *Client) MkSalt(rounds int) (string, error) {
	if c == nil {
		return "", cerrors.ErrMissingCrypter
	}

	return ccrypto.MkSalt(ccrypto.SaltOptions{Rounds: rounds})
}

var defaultClient = New(Config{})

func Crypt(password string, salt string) (string, error) {
	return defaultClient.Crypt(password, salt)
}

func CryptBytes(password []byte, salt string) (string, error) {
	return defaultClient.CryptBytes(password, salt)
}

func Verify(password string, hashedKey string) (bool, error) {
	return defaultClient.Verify(password, hashedKey)
}

func MkSalt(rounds int) (string, error) {
	return defaultClient.MkSalt(rounds)
}

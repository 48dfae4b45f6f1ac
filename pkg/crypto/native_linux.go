//go:build cgo && linux

package crypto

/*
#cgo LDFLAGS: -lcrypt
#define _GNU_SOURCE
#include <crypt.h>
#include <stdlib.h>
*/
import "C"

import (
	"crypto/subtle"
	"strings"
	"unsafe"

	cerrors "github.com/porthorian/cryptshim/pkg/errors"
)

const PlatformName = "libcrypt"

// Platform returns the host libcrypt primitive. The salt descriptor is
// handed through untranslated; libcrypt resolves scheme and rounds itself.
func Platform() Crypter {
	return NewNativeCrypter()
}

type NativeCrypter struct{}

func NewNativeCrypter() *NativeCrypter {
	return &NativeCrypter{}
}

func (c *NativeCrypter) Crypt(password string, salt string) (string, error) {
	cKey := C.CString(password)
	defer C.free(unsafe.Pointer(cKey))
	cSetting := C.CString(salt)
	defer C.free(unsafe.Pointer(cSetting))

	// struct crypt_data is too large for the Go stack; crypt_r needs it
	// zeroed on first use.
	data := (*C.struct_crypt_data)(C.calloc(1, C.sizeof_struct_crypt_data))
	if data == nil {
		return "", cerrors.Wrap(cerrors.CodeUnavailable, "failed to allocate crypt_data", nil)
	}
	defer C.free(unsafe.Pointer(data))

	out, err := C.crypt_r(cKey, cSetting, data)
	if out == nil {
		return "", cerrors.Wrap(cerrors.CodeUnavailable, "libcrypt rejected the hash request", err)
	}

	hashed := C.GoString(out)
	// libxcrypt reports failure through a "*" token rather than errno.
	if strings.HasPrefix(hashed, "*") {
		return "", cerrors.Wrap(cerrors.CodeMalformedSalt, "libcrypt rejected salt: "+salt, nil)
	}

	return hashed, nil
}

func (c *NativeCrypter) Verify(password string, hashedKey string) (bool, error) {
	computed, err := c.Crypt(password, hashedKey)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedKey)) == 1, nil
}

package crypto

type Crypter interface {
	Crypt(password string, salt string) (string, error)
	Verify(password string, hashedKey string) (bool, error)
}

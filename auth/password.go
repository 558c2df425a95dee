package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier isolates password hashing from the handlers, so the
// scheme can change without touching login or registration logic.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

type BcryptVerifier struct{}

var _ CredentialVerifier = BcryptVerifier{}

func (BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptVerifier) Verify(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/pbkdf2"

	"github.com/duitku/backend/internal/application/adapter"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

const (
	// pbkdf2Iterations is the iteration count for PIN digests.
	pbkdf2Iterations = 100_000
	// pbkdf2KeyLength is the derived key length in bytes.
	pbkdf2KeyLength = 32

	minPinLength = 4
	maxPinLength = 6
)

// pinService implements the adapter.PinService interface with PBKDF2-SHA256.
// The salt is the account identifier, so digests are deterministic per
// account and verification is recompute-and-compare.
type pinService struct{}

// NewPinService creates a new PIN service instance.
func NewPinService() adapter.PinService {
	return &pinService{}
}

// HashPin derives a hexadecimal digest of the PIN using the salt.
func (s *pinService) HashPin(pin, salt string) (string, error) {
	if pin == "" {
		return "", errors.New("pin must not be empty")
	}
	if salt == "" {
		return "", errors.New("salt must not be empty")
	}
	key := pbkdf2.Key([]byte(pin), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return hex.EncodeToString(key), nil
}

// VerifyPin recomputes the digest for (pin, salt) and compares it to the
// stored digest in constant time.
func (s *pinService) VerifyPin(digest, pin, salt string) error {
	computed, err := s.HashPin(pin, salt)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) != 1 {
		return domainerror.ErrInvalidPin
	}
	return nil
}

// ValidatePinFormat checks the PIN is a 4 to 6 digit numeric code.
func (s *pinService) ValidatePinFormat(pin string) error {
	if len(pin) < minPinLength || len(pin) > maxPinLength {
		return domainerror.ErrInvalidPinFormat
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return domainerror.ErrInvalidPinFormat
		}
	}
	return nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PinService defines the interface for PIN digest operations. Digests are
// deterministic: the same (pin, salt) pair always yields the same digest, so
// verification is recompute-and-compare. The raw PIN is never stored.
type PinService interface {
	// HashPin derives a fixed-length hexadecimal digest of the PIN using the
	// salt (the account identifier). Fails if either input is empty.
	HashPin(pin, salt string) (string, error)

	// VerifyPin recomputes the digest for (pin, salt) and compares it to the
	// stored digest. Returns an error on mismatch.
	VerifyPin(digest, pin, salt string) error

	// ValidatePinFormat checks the PIN is a short numeric code.
	ValidatePinFormat(pin string) error
}

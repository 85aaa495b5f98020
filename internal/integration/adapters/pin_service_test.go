package adapters

import (
	"errors"
	"testing"

	domainerror "github.com/duitku/backend/internal/domain/error"
)

func TestPinServiceHashPin(t *testing.T) {
	service := NewPinService()

	t.Run("same pin and salt produce the same digest", func(t *testing.T) {
		first, err := service.HashPin("123456", "account-a")
		if err != nil {
			t.Fatalf("HashPin failed: %v", err)
		}
		second, err := service.HashPin("123456", "account-a")
		if err != nil {
			t.Fatalf("HashPin failed: %v", err)
		}
		if first != second {
			t.Error("expected deterministic digests for the same inputs")
		}
	})

	t.Run("different salts produce different digests", func(t *testing.T) {
		first, _ := service.HashPin("123456", "account-a")
		second, _ := service.HashPin("123456", "account-b")
		if first == second {
			t.Error("expected different digests for different salts")
		}
	})

	t.Run("empty pin is rejected", func(t *testing.T) {
		if _, err := service.HashPin("", "account-a"); err == nil {
			t.Error("expected an error for an empty pin")
		}
	})

	t.Run("empty salt is rejected", func(t *testing.T) {
		if _, err := service.HashPin("123456", ""); err == nil {
			t.Error("expected an error for an empty salt")
		}
	})
}

func TestPinServiceVerifyPin(t *testing.T) {
	service := NewPinService()
	digest, err := service.HashPin("123456", "account-a")
	if err != nil {
		t.Fatalf("HashPin failed: %v", err)
	}

	t.Run("correct pin verifies", func(t *testing.T) {
		if err := service.VerifyPin(digest, "123456", "account-a"); err != nil {
			t.Errorf("expected verification to pass, got %v", err)
		}
	})

	t.Run("wrong pin fails", func(t *testing.T) {
		err := service.VerifyPin(digest, "654321", "account-a")
		if !errors.Is(err, domainerror.ErrInvalidPin) {
			t.Errorf("expected ErrInvalidPin, got %v", err)
		}
	})

	t.Run("right pin with the wrong salt fails", func(t *testing.T) {
		err := service.VerifyPin(digest, "123456", "account-b")
		if !errors.Is(err, domainerror.ErrInvalidPin) {
			t.Errorf("expected ErrInvalidPin, got %v", err)
		}
	})
}

func TestPinServiceValidatePinFormat(t *testing.T) {
	service := NewPinService()

	valid := []string{"1234", "12345", "123456", "0000"}
	for _, pin := range valid {
		if err := service.ValidatePinFormat(pin); err != nil {
			t.Errorf("expected %q to be a valid pin, got %v", pin, err)
		}
	}

	invalid := []string{"", "123", "1234567", "12a4", "12 34", "??!!"}
	for _, pin := range invalid {
		err := service.ValidatePinFormat(pin)
		if !errors.Is(err, domainerror.ErrInvalidPinFormat) {
			t.Errorf("expected %q to be rejected with ErrInvalidPinFormat, got %v", pin, err)
		}
	}
}

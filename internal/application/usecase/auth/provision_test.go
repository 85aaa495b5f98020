package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

func TestProvisionAccountUseCase(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(accounts ...*entity.Account) (*ProvisionAccountUseCase, *fakeAccountRepo) {
		repo := newFakeAccountRepo(accounts...)
		return NewProvisionAccountUseCase(repo, fakePinService{}, nil), repo
	}

	t.Run("a brand-new email provisions successfully", func(t *testing.T) {
		uc, repo := newUseCase()

		output, err := uc.Execute(ctx, ProvisionAccountInput{
			ActorRole: entity.AccountRoleAdmin,
			Email:     "baru@duitku.id",
			Name:      "Akun Baru",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Account.Role != entity.AccountRoleUser {
			t.Errorf("expected the user role, got %q", output.Account.Role)
		}
		if output.Account.HasPin() {
			t.Error("no PIN should be configured without an initial PIN")
		}
		if _, err := repo.FindByEmail(ctx, "baru@duitku.id"); err != nil {
			t.Fatalf("lookup after provisioning failed: %v", err)
		}
	})

	t.Run("an initial PIN is hashed onto the account", func(t *testing.T) {
		uc, _ := newUseCase()

		output, err := uc.Execute(ctx, ProvisionAccountInput{
			ActorRole:  entity.AccountRoleAdmin,
			Email:      "baru@duitku.id",
			Name:       "Akun Baru",
			InitialPin: "123456",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !output.Account.HasPin() {
			t.Fatal("expected a configured PIN")
		}
		if err := (fakePinService{}).VerifyPin(output.Account.PinDigest, "123456", output.Account.ID.String()); err != nil {
			t.Errorf("stored digest does not verify: %v", err)
		}
	})

	t.Run("a taken email is rejected", func(t *testing.T) {
		uc, _ := newUseCase(testAccount("budi@duitku.id", "123456"))

		_, err := uc.Execute(ctx, ProvisionAccountInput{
			ActorRole: entity.AccountRoleAdmin,
			Email:     "budi@duitku.id",
			Name:      "Budi Kedua",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if !errors.Is(authErr.Err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", authErr.Err)
		}
	})

	t.Run("a backend lookup failure surfaces as a gateway error", func(t *testing.T) {
		uc, repo := newUseCase()
		repo.readErr = errors.New("connection refused")

		_, err := uc.Execute(ctx, ProvisionAccountInput{
			ActorRole: entity.AccountRoleAdmin,
			Email:     "baru@duitku.id",
			Name:      "Akun Baru",
		})
		var gwErr *domainerror.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected a gateway error, got %v", err)
		}
	})

	t.Run("non-admins cannot provision", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, ProvisionAccountInput{
			ActorRole: entity.AccountRoleUser,
			Email:     "baru@duitku.id",
			Name:      "Akun Baru",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if !errors.Is(authErr.Err, domainerror.ErrNotAdmin) {
			t.Errorf("expected ErrNotAdmin, got %v", authErr.Err)
		}
	})
}

func TestDeleteAccountUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("an unknown account id is rejected cleanly", func(t *testing.T) {
		uc := NewDeleteAccountUseCase(newFakeAccountRepo(), newFakeSessionStore(), emptyManager())

		_, err := uc.Execute(ctx, DeleteAccountInput{
			ActorRole: entity.AccountRoleAdmin,
			AccountID: uuid.New(),
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if !errors.Is(authErr.Err, domainerror.ErrUnknownAccount) {
			t.Errorf("expected ErrUnknownAccount, got %v", authErr.Err)
		}
	})

	t.Run("protected accounts survive deletion attempts", func(t *testing.T) {
		account := testAccount("admin@duitku.id", "123456")
		account.Protected = true
		uc := NewDeleteAccountUseCase(newFakeAccountRepo(account), newFakeSessionStore(), emptyManager())

		_, err := uc.Execute(ctx, DeleteAccountInput{
			ActorRole: entity.AccountRoleAdmin,
			AccountID: account.ID,
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if !errors.Is(authErr.Err, domainerror.ErrAccountProtected) {
			t.Errorf("expected ErrAccountProtected, got %v", authErr.Err)
		}
	})

	t.Run("deletion removes the record and the session", func(t *testing.T) {
		account := testAccount("budi@duitku.id", "123456")
		repo := newFakeAccountRepo(account)
		sessions := newFakeSessionStore()
		if err := sessions.Save(ctx, entity.NewSession(account)); err != nil {
			t.Fatal(err)
		}

		uc := NewDeleteAccountUseCase(repo, sessions, emptyManager())
		if _, err := uc.Execute(ctx, DeleteAccountInput{
			ActorRole: entity.AccountRoleAdmin,
			AccountID: account.ID,
		}); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}

		if got, _ := repo.FindByID(ctx, account.ID); got != nil {
			t.Error("expected the account record to be gone")
		}
		if _, ok := sessions.sessions[account.ID]; ok {
			t.Error("expected the session record to be cleared")
		}
	})
}

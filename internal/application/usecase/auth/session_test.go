package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

func TestLogoutUseCase(t *testing.T) {
	ctx := context.Background()
	account := testAccount("budi@duitku.id", "123456")

	sessions := newFakeSessionStore()
	manager := emptyManager()
	login := NewLoginUseCase(newFakeAccountRepo(account), fakePinService{}, fakeTokenService{}, sessions, manager)
	logout := NewLogoutUseCase(sessions, manager)

	if _, err := login.Execute(ctx, LoginInput{Email: "budi@duitku.id", Pin: "123456"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := logout.Execute(ctx, LogoutInput{AccountID: account.ID}); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, ok := manager.Get(account.ID); ok {
		t.Error("expected the workspace to be released")
	}
	if _, ok := sessions.sessions[account.ID]; ok {
		t.Error("expected the session record to be cleared")
	}

	t.Run("logging out twice is harmless", func(t *testing.T) {
		if _, err := logout.Execute(ctx, LogoutInput{AccountID: account.ID}); err != nil {
			t.Errorf("second logout failed: %v", err)
		}
	})
}

func TestResumeSessionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("missing session resumes nothing", func(t *testing.T) {
		sessions := newFakeSessionStore()
		uc := NewResumeSessionUseCase(newFakeAccountRepo(), fakeTokenService{}, sessions, emptyManager())

		output, err := uc.Execute(ctx, ResumeSessionInput{AccountID: uuid.New()})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Resumed {
			t.Error("expected Resumed to be false")
		}
	})

	t.Run("a live session is restored with a fresh token", func(t *testing.T) {
		account := testAccount("budi@duitku.id", "123456")
		sessions := newFakeSessionStore()
		manager := emptyManager()
		repo := newFakeAccountRepo(account)

		if err := sessions.Save(ctx, entity.NewSession(account)); err != nil {
			t.Fatal(err)
		}

		uc := NewResumeSessionUseCase(repo, fakeTokenService{}, sessions, manager)
		output, err := uc.Execute(ctx, ResumeSessionInput{AccountID: account.ID})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !output.Resumed {
			t.Fatal("expected the session to resume")
		}
		if output.AccessToken != "token-budi@duitku.id" {
			t.Errorf("unexpected token %q", output.AccessToken)
		}
		if _, ok := manager.Get(account.ID); !ok {
			t.Error("expected the workspace to be reopened")
		}
	})

	t.Run("the account is re-read so stale profile data never resurrects", func(t *testing.T) {
		account := testAccount("budi@duitku.id", "123456")
		sessions := newFakeSessionStore()
		repo := newFakeAccountRepo(account)

		stale := *account
		stale.Name = "Nama Lama"
		if err := sessions.Save(ctx, entity.NewSession(&stale)); err != nil {
			t.Fatal(err)
		}
		account.Name = "Nama Baru"

		uc := NewResumeSessionUseCase(repo, fakeTokenService{}, sessions, emptyManager())
		output, err := uc.Execute(ctx, ResumeSessionInput{AccountID: account.ID})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Account.Name != "Nama Baru" {
			t.Errorf("expected the fresh account name, got %q", output.Account.Name)
		}
	})

	t.Run("a session for a deleted account is dropped", func(t *testing.T) {
		account := testAccount("hilang@duitku.id", "123456")
		sessions := newFakeSessionStore()

		if err := sessions.Save(ctx, entity.NewSession(account)); err != nil {
			t.Fatal(err)
		}

		uc := NewResumeSessionUseCase(newFakeAccountRepo(), fakeTokenService{}, sessions, emptyManager())
		output, err := uc.Execute(ctx, ResumeSessionInput{AccountID: account.ID})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Resumed {
			t.Error("expected Resumed to be false for a deleted account")
		}
		if _, ok := sessions.sessions[account.ID]; ok {
			t.Error("expected the orphaned session to be dropped")
		}
	})
}

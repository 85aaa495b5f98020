package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

type fakeAccountRepo struct {
	byEmail map[string]*entity.Account
	byID    map[uuid.UUID]*entity.Account

	// readErr simulates a backend failure on every lookup.
	readErr error
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{
		byEmail: make(map[string]*entity.Account),
		byID:    make(map[uuid.UUID]*entity.Account),
	}
	for _, a := range accounts {
		repo.byEmail[a.Email] = a
		repo.byID[a.ID] = a
	}
	return repo
}

func (r *fakeAccountRepo) Create(_ context.Context, a *entity.Account) error {
	if _, exists := r.byEmail[a.Email]; exists {
		return errors.New("duplicate email")
	}
	r.byEmail[a.Email] = a
	r.byID[a.ID] = a
	return nil
}

// FindByID mirrors the gorm repository contract: a missing row is
// (nil, nil), errors are reserved for backend failures.
func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	return r.byID[id], nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if r.readErr != nil {
		return nil, r.readErr
	}
	return r.byEmail[email], nil
}

func (r *fakeAccountRepo) List(_ context.Context, _ adapter.AccountPagination) (*entity.AccountListResult, error) {
	var out []*entity.Account
	for _, a := range r.byEmail {
		out = append(out, a)
	}
	return &entity.AccountListResult{Accounts: out, Total: int64(len(out))}, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *entity.Account) error {
	r.byEmail[a.Email] = a
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAccountRepo) UpdatePinDigest(_ context.Context, id uuid.UUID, digest string) error {
	a, ok := r.byID[id]
	if !ok {
		return domainerror.ErrUnknownAccount
	}
	a.PinDigest = digest
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	a, ok := r.byID[id]
	if !ok {
		return domainerror.ErrUnknownAccount
	}
	delete(r.byID, id)
	delete(r.byEmail, a.Email)
	return nil
}

// fakePinService derives transparent digests so tests can seed accounts
// without running the real key derivation.
type fakePinService struct{}

func (fakePinService) HashPin(pin, salt string) (string, error) {
	if pin == "" || salt == "" {
		return "", errors.New("empty input")
	}
	return pin + "@" + salt, nil
}

func (s fakePinService) VerifyPin(digest, pin, salt string) error {
	computed, err := s.HashPin(pin, salt)
	if err != nil {
		return err
	}
	if computed != digest {
		return domainerror.ErrInvalidPin
	}
	return nil
}

func (fakePinService) ValidatePinFormat(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return domainerror.ErrInvalidPinFormat
	}
	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(_ context.Context, account *entity.Account) (string, error) {
	return "token-" + account.Email, nil
}

func (fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

type fakeSessionStore struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (s *fakeSessionStore) Save(_ context.Context, session *entity.Session) error {
	s.sessions[session.Account.ID] = session
	return nil
}

func (s *fakeSessionStore) Load(_ context.Context, accountID uuid.UUID) (*entity.Session, error) {
	return s.sessions[accountID], nil
}

func (s *fakeSessionStore) Delete(_ context.Context, accountID uuid.UUID) error {
	delete(s.sessions, accountID)
	return nil
}

type emptyTransactionRepo struct{}

func (emptyTransactionRepo) Create(_ context.Context, _ *entity.Transaction) error { return nil }
func (emptyTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}
func (emptyTransactionRepo) FindByFilter(_ context.Context, _ adapter.TransactionFilter, _ adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}
func (emptyTransactionRepo) GetSummary(_ context.Context, _ adapter.TransactionFilter) (*entity.TransactionSummary, error) {
	return &entity.TransactionSummary{}, nil
}
func (emptyTransactionRepo) SumExpensesByCategory(_ context.Context, _ uuid.UUID, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (emptyTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (emptyTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }
func (emptyTransactionRepo) DeleteByAccount(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type emptyBudgetRepo struct{}

func (emptyBudgetRepo) Create(_ context.Context, _ *entity.Budget) error { return nil }
func (emptyBudgetRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}
func (emptyBudgetRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Budget, error) {
	return nil, nil
}
func (emptyBudgetRepo) Update(_ context.Context, _ *entity.Budget) error { return nil }
func (emptyBudgetRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

type emptyGoalRepo struct{}

func (emptyGoalRepo) Create(_ context.Context, _ *entity.Goal) error { return nil }
func (emptyGoalRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Goal, error) {
	return nil, domainerror.ErrGoalNotFound
}
func (emptyGoalRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}
func (emptyGoalRepo) Update(_ context.Context, _ *entity.Goal) error { return nil }
func (emptyGoalRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

type emptyReceivableRepo struct{}

func (emptyReceivableRepo) Create(_ context.Context, _ *entity.Receivable) error { return nil }
func (emptyReceivableRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Receivable, error) {
	return nil, domainerror.ErrReceivableNotFound
}
func (emptyReceivableRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Receivable, error) {
	return nil, nil
}
func (emptyReceivableRepo) Update(_ context.Context, _ *entity.Receivable) error { return nil }
func (emptyReceivableRepo) Delete(_ context.Context, _ uuid.UUID) error          { return nil }

func emptyManager() *appsync.Manager {
	return appsync.NewManager(appsync.Gateways{
		Transactions: emptyTransactionRepo{},
		Budgets:      emptyBudgetRepo{},
		Goals:        emptyGoalRepo{},
		Receivables:  emptyReceivableRepo{},
	}, nil, nil)
}

func testAccount(email, pin string) *entity.Account {
	id := uuid.New()
	account := &entity.Account{
		ID:       id,
		Email:    email,
		Name:     "Akun " + email,
		Role:     entity.AccountRoleUser,
		Currency: "IDR",
	}
	if pin != "" {
		digest, _ := fakePinService{}.HashPin(pin, id.String())
		account.PinDigest = digest
	}
	return account
}

func TestLoginUseCase(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(accounts ...*entity.Account) (*LoginUseCase, *fakeSessionStore, *appsync.Manager) {
		sessions := newFakeSessionStore()
		manager := emptyManager()
		uc := NewLoginUseCase(newFakeAccountRepo(accounts...), fakePinService{}, fakeTokenService{}, sessions, manager)
		return uc, sessions, manager
	}

	t.Run("unknown email fails with UnknownAccount", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(ctx, LoginInput{Email: "tidakada@duitku.id"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if !errors.Is(authErr.Err, domainerror.ErrUnknownAccount) {
			t.Errorf("expected ErrUnknownAccount, got %v", authErr.Err)
		}
	})

	t.Run("backend lookup failure surfaces as a gateway error", func(t *testing.T) {
		sessions := newFakeSessionStore()
		repo := newFakeAccountRepo()
		repo.readErr = errors.New("connection refused")
		uc := NewLoginUseCase(repo, fakePinService{}, fakeTokenService{}, sessions, emptyManager())

		_, err := uc.Execute(ctx, LoginInput{Email: "budi@duitku.id"})
		var gwErr *domainerror.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected a gateway error, got %v", err)
		}
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			t.Error("a backend failure must not be reported as an auth failure")
		}
	})

	t.Run("account without a PIN fails with PinNotConfigured", func(t *testing.T) {
		uc, _, _ := newUseCase(testAccount("budi@duitku.id", ""))

		_, err := uc.Execute(ctx, LoginInput{Email: "budi@duitku.id"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if !errors.Is(authErr.Err, domainerror.ErrPinNotConfigured) {
			t.Errorf("expected ErrPinNotConfigured, got %v", authErr.Err)
		}
	})

	t.Run("missing PIN asks the caller to prompt", func(t *testing.T) {
		uc, sessions, _ := newUseCase(testAccount("budi@duitku.id", "123456"))

		output, err := uc.Execute(ctx, LoginInput{Email: "budi@duitku.id"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !output.PinRequired {
			t.Error("expected PinRequired to be set")
		}
		if output.AccessToken != "" {
			t.Error("no token should be issued while awaiting the PIN")
		}
		if len(sessions.sessions) != 0 {
			t.Error("no session should be persisted while awaiting the PIN")
		}
	})

	t.Run("wrong PIN fails without touching session state", func(t *testing.T) {
		uc, sessions, manager := newUseCase(testAccount("budi@duitku.id", "123456"))

		_, err := uc.Execute(ctx, LoginInput{Email: "budi@duitku.id", Pin: "654321"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("expected an auth error, got %v", err)
		}
		if !errors.Is(authErr.Err, domainerror.ErrInvalidPin) {
			t.Errorf("expected ErrInvalidPin, got %v", authErr.Err)
		}
		if len(sessions.sessions) != 0 {
			t.Error("no session should be persisted after a failed login")
		}
		account := testAccount("x", "")
		if _, ok := manager.Get(account.ID); ok {
			t.Error("no workspace should be open after a failed login")
		}
	})

	t.Run("correct PIN authenticates and opens the workspace", func(t *testing.T) {
		account := testAccount("budi@duitku.id", "123456")
		uc, sessions, manager := newUseCase(account)

		output, err := uc.Execute(ctx, LoginInput{Email: "budi@duitku.id", Pin: "123456"})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.AccessToken != "token-budi@duitku.id" {
			t.Errorf("unexpected token %q", output.AccessToken)
		}
		if output.Account != account {
			t.Error("expected the exact account record from the lookup")
		}
		if _, ok := sessions.sessions[account.ID]; !ok {
			t.Error("expected a persisted session")
		}
		engine, ok := manager.Get(account.ID)
		if !ok {
			t.Fatal("expected an open workspace")
		}
		if engine.Store().Snapshot().Account.Email != account.Email {
			t.Error("workspace holds the wrong account")
		}
	})

	t.Run("admin login routes the workspace to the admin page", func(t *testing.T) {
		account := testAccount("admin@duitku.id", "123456")
		account.Role = entity.AccountRoleAdmin
		uc, _, manager := newUseCase(account)

		if _, err := uc.Execute(ctx, LoginInput{Email: "admin@duitku.id", Pin: "123456"}); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		engine, ok := manager.Get(account.ID)
		if !ok {
			t.Fatal("expected an open workspace")
		}
		if got := engine.Store().Snapshot().CurrentPage; got != "admin" {
			t.Errorf("expected the admin page, got %q", got)
		}
	})
}

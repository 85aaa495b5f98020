// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/duitku/backend/config"
	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/application/usecase/admin"
	"github.com/duitku/backend/internal/application/usecase/auth"
	"github.com/duitku/backend/internal/application/usecase/budget"
	"github.com/duitku/backend/internal/application/usecase/goal"
	"github.com/duitku/backend/internal/application/usecase/portability"
	"github.com/duitku/backend/internal/application/usecase/receivable"
	"github.com/duitku/backend/internal/application/usecase/transaction"
	"github.com/duitku/backend/internal/application/usecase/workspace"
	"github.com/duitku/backend/internal/infra/server/router"
	"github.com/duitku/backend/internal/integration/adapters"
	"github.com/duitku/backend/internal/integration/email"
	"github.com/duitku/backend/internal/integration/entrypoint/controller"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
	"github.com/duitku/backend/internal/integration/persistence"
	"github.com/duitku/backend/internal/integration/realtime"
	"github.com/duitku/backend/internal/integration/render"
	"github.com/duitku/backend/internal/integration/session"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	DB         *gorm.DB
	Redis      *redis.Client
	Workspaces *appsync.Manager
	Router     *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	receivableRepo := persistence.NewReceivableRepository(db)
	statsRepo := persistence.NewStatsRepository(db)

	// Create adapters/services
	pinService := adapters.NewPinService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	sessionStore := session.NewRedisStore(redisClient)
	feed := realtime.NewRedisFeed(redisClient)
	renderer := render.NewSlogRenderer(slog.Default())

	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	var suggester adapter.CategorySuggester
	if cfg.AI.Enabled && cfg.AI.GeminiAPIKey != "" {
		suggester = adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	}

	// One orchestrator per logged-in account, all sharing the same gateways.
	workspaces := appsync.NewManager(appsync.Gateways{
		Transactions: transactionRepo,
		Budgets:      budgetRepo,
		Goals:        goalRepo,
		Receivables:  receivableRepo,
	}, feed, renderer)

	// Create auth use cases
	loginUseCase := auth.NewLoginUseCase(accountRepo, pinService, tokenService, sessionStore, workspaces)
	logoutUseCase := auth.NewLogoutUseCase(sessionStore, workspaces)
	resumeSessionUseCase := auth.NewResumeSessionUseCase(accountRepo, tokenService, sessionStore, workspaces)
	setPinUseCase := auth.NewSetPinUseCase(accountRepo, pinService)
	removePinUseCase := auth.NewRemovePinUseCase(accountRepo)
	provisionAccountUseCase := auth.NewProvisionAccountUseCase(accountRepo, pinService, emailSender)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(accountRepo, sessionStore, workspaces)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, workspaces)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, workspaces)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, workspaces)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	wipeAccountUseCase := transaction.NewWipeAccountUseCase(transactionRepo, workspaces)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, workspaces)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, workspaces)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, workspaces)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)
	recordPaymentUseCase := budget.NewRecordPaymentUseCase(budgetRepo, transactionRepo, workspaces)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, workspaces)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, workspaces)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, workspaces)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	addFundsUseCase := goal.NewAddFundsUseCase(goalRepo, transactionRepo, workspaces)

	// Create receivable use cases
	createReceivableUseCase := receivable.NewCreateReceivableUseCase(receivableRepo, workspaces)
	updateReceivableUseCase := receivable.NewUpdateReceivableUseCase(receivableRepo, workspaces)
	deleteReceivableUseCase := receivable.NewDeleteReceivableUseCase(receivableRepo, workspaces)
	listReceivablesUseCase := receivable.NewListReceivablesUseCase(receivableRepo)
	addInstallmentUseCase := receivable.NewAddInstallmentUseCase(receivableRepo, transactionRepo, workspaces)
	settleReceivableUseCase := receivable.NewSettleReceivableUseCase(receivableRepo, transactionRepo, workspaces)

	// Create workspace use cases
	getWorkspaceUseCase := workspace.NewGetWorkspaceUseCase(workspaces)
	navigateUseCase := workspace.NewNavigateUseCase(workspaces)
	adjustViewUseCase := workspace.NewAdjustViewUseCase(workspaces)

	// Create portability use cases
	exportCSVUseCase := portability.NewExportCSVUseCase(transactionRepo)
	exportSnapshotUseCase := portability.NewExportSnapshotUseCase(transactionRepo, budgetRepo, goalRepo, receivableRepo)
	importCSVUseCase := portability.NewImportCSVUseCase(transactionRepo, suggester, workspaces)

	// Create admin use cases
	systemOverviewUseCase := admin.NewSystemOverviewUseCase(accountRepo, statsRepo)
	listAccountsUseCase := admin.NewListAccountsUseCase(accountRepo)
	accountSummaryUseCase := admin.NewAccountSummaryUseCase(accountRepo, transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		loginUseCase,
		logoutUseCase,
		resumeSessionUseCase,
		setPinUseCase,
		removePinUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
		wipeAccountUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		listBudgetsUseCase,
		recordPaymentUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		listGoalsUseCase,
		addFundsUseCase,
	)

	receivableController := controller.NewReceivableController(
		createReceivableUseCase,
		updateReceivableUseCase,
		deleteReceivableUseCase,
		listReceivablesUseCase,
		addInstallmentUseCase,
		settleReceivableUseCase,
	)

	workspaceController := controller.NewWorkspaceController(
		getWorkspaceUseCase,
		navigateUseCase,
		adjustViewUseCase,
	)

	portabilityController := controller.NewPortabilityController(
		exportCSVUseCase,
		exportSnapshotUseCase,
		importCSVUseCase,
	)

	adminController := controller.NewAdminController(
		systemOverviewUseCase,
		listAccountsUseCase,
		accountSummaryUseCase,
		provisionAccountUseCase,
		deleteAccountUseCase,
	)

	// Create middleware
	loginThrottle := middleware.NewLoginThrottle(5, 1*time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		budgetController,
		goalController,
		receivableController,
		workspaceController,
		portabilityController,
		adminController,
		loginThrottle,
		authMiddleware,
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Redis:      redisClient,
		Workspaces: workspaces,
		Router:     r,
	}
}

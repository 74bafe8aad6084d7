// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/brokerledger/backend/config"
	"github.com/brokerledger/backend/internal/application/usecase/backup"
	"github.com/brokerledger/backend/internal/application/usecase/party"
	"github.com/brokerledger/backend/internal/application/usecase/payment"
	"github.com/brokerledger/backend/internal/application/usecase/transaction"
	"github.com/brokerledger/backend/internal/infra/server/router"
	"github.com/brokerledger/backend/internal/integration/entrypoint/controller"
	"github.com/brokerledger/backend/internal/integration/entrypoint/middleware"
	"github.com/brokerledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	partyRepo := persistence.NewPartyRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	snapshotRepo := persistence.NewSnapshotRepository(db)

	// Create party use cases
	createPartyUseCase := party.NewCreatePartyUseCase(partyRepo)
	listPartiesUseCase := party.NewListPartiesUseCase(partyRepo)
	deletePartyUseCase := party.NewDeletePartyUseCase(partyRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, partyRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, partyRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	setReceivedStatusUseCase := transaction.NewSetReceivedStatusUseCase(transactionRepo)
	getSummaryUseCase := transaction.NewGetSummaryUseCase(transactionRepo)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(transactionRepo)
	previewCalculationUseCase := transaction.NewPreviewCalculationUseCase()

	// Create payment use cases
	recordPaymentUseCase := payment.NewRecordPaymentUseCase(paymentRepo, transactionRepo)
	listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo, transactionRepo)
	reversePaymentUseCase := payment.NewReversePaymentUseCase(paymentRepo, transactionRepo)
	pendingBalanceUseCase := payment.NewPendingBalanceUseCase(transactionRepo, paymentRepo, snapshotRepo)

	// Create backup use cases
	createBackupUseCase := backup.NewCreateBackupUseCase(cfg.Database.Driver, cfg.Database.Path, cfg.Backup.Dir)
	listBackupsUseCase := backup.NewListBackupsUseCase(cfg.Backup.Dir)
	restoreBackupUseCase := backup.NewRestoreBackupUseCase(cfg.Database.Driver, cfg.Database.Path, cfg.Backup.Dir, createBackupUseCase)

	// Create controllers
	healthController := controller.NewHealthController(func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return sqlDB.PingContext(ctx)
	})

	partyController := controller.NewPartyController(
		createPartyUseCase,
		listPartiesUseCase,
		deletePartyUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		setReceivedStatusUseCase,
		getSummaryUseCase,
		exportTransactionsUseCase,
	)

	paymentController := controller.NewPaymentController(
		recordPaymentUseCase,
		listPaymentsUseCase,
		reversePaymentUseCase,
		pendingBalanceUseCase,
	)

	calculationController := controller.NewCalculationController(previewCalculationUseCase)

	backupController := controller.NewBackupController(
		createBackupUseCase,
		listBackupsUseCase,
		restoreBackupUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var backupRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		backupRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		backupRateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowDuration)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		partyController,
		transactionController,
		paymentController,
		calculationController,
		backupController,
		backupRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

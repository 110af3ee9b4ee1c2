// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/application/usecase/report"
	"github.com/finance-ledger/backend/internal/application/usecase/transaction"
	"github.com/finance-ledger/backend/internal/infra/server/router"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/finance-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies. The store handle is passed in
// explicitly; nothing here reaches for process-wide state.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) *Injector {
	// Create repositories
	ledgerRepo := persistence.NewLedgerRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create report use cases
	sumTotalUseCase := report.NewSumTotalUseCase(ledgerRepo)
	sumByCategoryUseCase := report.NewSumByCategoryUseCase(ledgerRepo)
	sumByDateUseCase := report.NewSumByDateUseCase(ledgerRepo)
	distinctCategoriesUseCase := report.NewDistinctCategoriesUseCase(ledgerRepo)
	countTransactionsUseCase := report.NewCountTransactionsUseCase(ledgerRepo)
	latestTransactionUseCase := report.NewLatestTransactionUseCase(ledgerRepo)
	monthlyTotalUseCase := report.NewMonthlyTotalUseCase(ledgerRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	reportController := controller.NewReportController(
		sumTotalUseCase,
		sumByCategoryUseCase,
		sumByDateUseCase,
		distinctCategoriesUseCase,
		countTransactionsUseCase,
		latestTransactionUseCase,
		monthlyTotalUseCase,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: router.NewRouter(healthController, transactionController, reportController),
	}
}

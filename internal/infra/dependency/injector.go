// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/finance-tracker/paycycle/config"
	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/application/usecase/budget"
	"github.com/finance-tracker/paycycle/internal/application/usecase/category"
	"github.com/finance-tracker/paycycle/internal/application/usecase/cycle"
	"github.com/finance-tracker/paycycle/internal/application/usecase/expense"
	"github.com/finance-tracker/paycycle/internal/application/usecase/savings"
	"github.com/finance-tracker/paycycle/internal/infra/server/router"
	"github.com/finance-tracker/paycycle/internal/integration/adapters"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/paycycle/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Storage     *Storage
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil clock uses the system clock in the configured time zone.
func NewInjector(cfg *config.Config, storage *Storage, clock adapter.Clock) (*Injector, error) {
	loc, err := cfg.Budget.Location()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = adapters.NewSystemClock(loc)
	}

	// Create adapters
	registry := adapters.NewDefaultCategoryRegistry()
	if cfg.Budget.CategoryFile != "" {
		registry, err = adapters.NewCategoryRegistry(cfg.Budget.CategoryFile, cfg.Budget.SavingsCategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
	} else if cfg.Budget.SavingsCategoryID != budget.DefaultSettings().SavingsCategoryID {
		return nil, fmt.Errorf("savings category %q needs BUDGET_CATEGORY_FILE", cfg.Budget.SavingsCategoryID)
	}
	exporter := adapters.NewExcelBudgetExporter()

	// Create repositories
	stateRepo := persistence.NewStateRepository(storage.Store)

	settings := budget.Settings{
		Location:          loc,
		SavingsCategoryID: cfg.Budget.SavingsCategoryID,
	}

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(registry, settings.SavingsCategoryID)

	// Create cycle use cases
	reconcileUseCase := cycle.NewReconcileUseCase(stateRepo)
	listCyclesUseCase := cycle.NewListCyclesUseCase(stateRepo)
	createCycleUseCase := cycle.NewCreateCycleUseCase(stateRepo)
	updateCycleUseCase := cycle.NewUpdateCycleUseCase(stateRepo)
	deleteCycleUseCase := cycle.NewDeleteCycleUseCase(stateRepo, reconcileUseCase)
	setActiveCycleUseCase := cycle.NewSetActiveCycleUseCase(stateRepo)
	getCurrentPeriodUseCase := cycle.NewGetCurrentPeriodUseCase(stateRepo, clock, loc)

	// Create expense use cases
	listDailyUseCase := expense.NewListDailyExpensesUseCase(stateRepo)
	addDailyUseCase := expense.NewAddDailyExpenseUseCase(stateRepo)
	deleteDailyUseCase := expense.NewDeleteDailyExpenseUseCase(stateRepo)
	listFutureUseCase := expense.NewListFutureExpensesUseCase(stateRepo)
	addFutureUseCase := expense.NewAddFutureExpenseUseCase(stateRepo)
	deleteFutureUseCase := expense.NewDeleteFutureExpenseUseCase(stateRepo)

	// Create budget use cases
	getLiveBudgetUseCase := budget.NewGetLiveBudgetUseCase(stateRepo, registry, clock, settings)
	getSpendingSummaryUseCase := budget.NewGetSpendingSummaryUseCase(stateRepo, registry, clock, settings)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(stateRepo)
	saveBudgetUseCase := budget.NewSaveBudgetUseCase(stateRepo, registry, clock, settings)
	forceCreateBudgetUseCase := budget.NewForceCreateBudgetUseCase(stateRepo, registry, clock, settings)
	getBudgetUseCase := budget.NewGetBudgetUseCase(stateRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(stateRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(stateRepo)
	exportBudgetUseCase := budget.NewExportBudgetUseCase(stateRepo, exporter, getLiveBudgetUseCase)

	// Create savings use cases
	getSavingsUseCase := savings.NewGetSavingsUseCase(stateRepo)
	updateSavingsUseCase := savings.NewUpdateSavingsUseCase(stateRepo)
	depositUseCase := savings.NewDepositBudgetSavingsUseCase(stateRepo, settings.SavingsCategoryID)

	// Create controllers
	healthController := controller.NewHealthController(storage.Backend, storage.HealthCheck)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	cycleController := controller.NewCycleController(
		listCyclesUseCase,
		createCycleUseCase,
		updateCycleUseCase,
		deleteCycleUseCase,
		setActiveCycleUseCase,
		getCurrentPeriodUseCase,
		reconcileUseCase,
	)
	expenseController := controller.NewExpenseController(
		listDailyUseCase,
		addDailyUseCase,
		deleteDailyUseCase,
		listFutureUseCase,
		addFutureUseCase,
		deleteFutureUseCase,
	)
	budgetController := controller.NewBudgetController(
		getLiveBudgetUseCase,
		getSpendingSummaryUseCase,
		listBudgetsUseCase,
		saveBudgetUseCase,
		forceCreateBudgetUseCase,
		getBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		exportBudgetUseCase,
	)
	savingsController := controller.NewSavingsController(
		getSavingsUseCase,
		updateSavingsUseCase,
		depositUseCase,
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		cycleController,
		expenseController,
		budgetController,
		savingsController,
		rateLimiter,
		storage.Locker,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config:      cfg,
		Storage:     storage,
		RateLimiter: rateLimiter,
		Router:      r,
	}, nil
}

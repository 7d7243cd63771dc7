// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/personal-finance/tracker/config"
	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/usecase/auth"
	"github.com/personal-finance/tracker/internal/application/usecase/budget"
	"github.com/personal-finance/tracker/internal/application/usecase/category"
	"github.com/personal-finance/tracker/internal/application/usecase/dashboard"
	"github.com/personal-finance/tracker/internal/application/usecase/goal"
	"github.com/personal-finance/tracker/internal/application/usecase/transaction"
	"github.com/personal-finance/tracker/internal/application/usecase/user"
	"github.com/personal-finance/tracker/internal/infra/db"
	"github.com/personal-finance/tracker/internal/infra/logger"
	"github.com/personal-finance/tracker/internal/infra/server/router"
	"github.com/personal-finance/tracker/internal/integration/adapters"
	"github.com/personal-finance/tracker/internal/integration/email"
	"github.com/personal-finance/tracker/internal/integration/email/templates"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/controller"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/middleware"
	"github.com/personal-finance/tracker/internal/integration/messaging"
	"github.com/personal-finance/tracker/internal/integration/notification"
	"github.com/personal-finance/tracker/internal/integration/persistence"
	"github.com/personal-finance/tracker/internal/integration/session"
)

// Option customizes the injector, mostly to swap outbound collaborators in tests.
type Option func(*options)

type options struct {
	emailSender     adapter.EmailSender
	passwordService adapter.PasswordService
	clock           func() time.Time
}

// WithEmailSender replaces the Resend client used for budget alerts.
func WithEmailSender(sender adapter.EmailSender) Option {
	return func(o *options) { o.emailSender = sender }
}

// WithPasswordService replaces the bcrypt password service, e.g. with a cheaper cost.
func WithPasswordService(svc adapter.PasswordService) Option {
	return func(o *options) { o.passwordService = svc }
}

// WithClock replaces the wall clock used to anchor dashboard periods.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	publisher *messaging.Publisher
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(
	cfg *config.Config,
	database *db.Database,
	redisClient *redis.Client,
	log *slog.Logger,
	opts ...Option,
) (*Injector, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	gormDB := database.DB()

	// Repositories
	userRepo := persistence.NewUserRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	budgetRepo := persistence.NewBudgetRepository(gormDB)
	goalRepo := persistence.NewGoalRepository(gormDB)
	periodTotals := persistence.NewPeriodTotalsRepository(gormDB)
	unitOfWork := persistence.NewUnitOfWork(gormDB)

	// Adapters
	passwordService := o.passwordService
	if passwordService == nil {
		passwordService = adapters.NewPasswordService()
	}
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.Session.MaxAge)
	sessionStore := session.NewRedisStore(redisClient, cfg.Session.TTL)

	// Budget alerts
	var notifiers []adapter.BudgetAlertNotifier

	sender := o.emailSender
	if sender == nil && cfg.Email.ResendAPIKey != "" {
		client, err := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.ResendBaseURL, cfg.Email.FromName, cfg.Email.FromEmail)
		if err != nil {
			return nil, err
		}
		sender = client
	}
	if sender != nil {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		notifiers = append(notifiers, email.NewBudgetAlertMailer(userRepo, sender, renderer, cfg.Email.AppBaseURL))
	}

	var publisher *messaging.Publisher
	if cfg.AMQP.URL != "" {
		p, err := messaging.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
		if err != nil {
			return nil, fmt.Errorf("failed to connect budget event publisher: %w", err)
		}
		publisher = p
		notifiers = append(notifiers, publisher)
	}

	alertNotifier := notification.NewFanout(notifiers...)
	logger.WithComponent(log, logger.ComponentBudget).Info("Budget alerts configured",
		slog.Bool("email", sender != nil),
		slog.Bool("amqp", publisher != nil),
	)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, unitOfWork, passwordService, sessionStore, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, sessionStore, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(sessionStore)
	resolveSessionUseCase := auth.NewResolveSessionUseCase(userRepo, sessionStore, tokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, sessionStore)

	// User use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo, transactionRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	transactionSummaryUseCase := transaction.NewGetSummaryUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(unitOfWork, alertNotifier)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(unitOfWork, alertNotifier)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(unitOfWork)

	// Budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)
	budgetAnalyticsUseCase := budget.NewGetAnalyticsUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, transactionRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, transactionRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, transactionRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	goalAnalyticsUseCase := goal.NewGetAnalyticsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	updateProgressUseCase := goal.NewUpdateProgressUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	getDashboardUseCase := dashboard.NewGetDashboardUseCase(periodTotals, transactionRepo, budgetRepo, goalRepo)
	if o.clock != nil {
		getDashboardUseCase.SetClock(o.clock)
	}

	// Controllers
	cookie := controller.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}

	controllers := router.Controllers{
		Health: controller.NewHealthController(database.Ping, sessionStore.Ping),
		Auth:   controller.NewAuthController(registerUseCase, loginUseCase, logoutUseCase, cookie),
		User:   controller.NewUserController(getProfileUseCase, updateProfileUseCase, deleteAccountUseCase, cookie),
		Category: controller.NewCategoryController(
			listCategoriesUseCase,
			getCategoryUseCase,
			createCategoryUseCase,
			updateCategoryUseCase,
			deleteCategoryUseCase,
		),
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			transactionSummaryUseCase,
			getTransactionUseCase,
			createTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
		),
		Budget: controller.NewBudgetController(
			listBudgetsUseCase,
			budgetAnalyticsUseCase,
			getBudgetUseCase,
			createBudgetUseCase,
			updateBudgetUseCase,
			deleteBudgetUseCase,
		),
		Goal: controller.NewGoalController(
			listGoalsUseCase,
			goalAnalyticsUseCase,
			getGoalUseCase,
			createGoalUseCase,
			updateGoalUseCase,
			updateProgressUseCase,
			deleteGoalUseCase,
		),
		Dashboard: controller.NewDashboardController(getDashboardUseCase),
	}

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow)
	authMiddleware := middleware.NewAuthMiddleware(resolveSessionUseCase, cfg.Session.CookieName)

	r := router.NewRouter(controllers, loginRateLimiter, authMiddleware, log)

	return &Injector{
		Config:    cfg,
		DB:        gormDB,
		Router:    r,
		publisher: publisher,
	}, nil
}

// Close releases connections held by outbound collaborators.
func (i *Injector) Close() error {
	if i.publisher != nil {
		return i.publisher.Close()
	}
	return nil
}

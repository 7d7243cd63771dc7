// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/personal-finance/tracker/config"
	"github.com/personal-finance/tracker/internal/infra/db"
	"github.com/personal-finance/tracker/internal/infra/dependency"
	"github.com/personal-finance/tracker/internal/infra/logger"
	"github.com/personal-finance/tracker/internal/integration/adapters"
	"github.com/personal-finance/tracker/internal/integration/persistence/model"
	"github.com/personal-finance/tracker/test/integration/mock"
)

// emailAPIKey is what the Resend client sends as its bearer token.
const emailAPIKey = "re_test_key"

// app is shared by every scenario. Scenarios run sequentially and reset its state.
type app struct {
	server   *httptest.Server
	db       *mock.Db
	redis    *mock.Redis
	emailAPI *mock.ApiMock
	clock    *mock.Time
	injector *dependency.Injector
}

var (
	appOnce sync.Once
	shared  *app
	appErr  error
)

func startApp() (*app, error) {
	appOnce.Do(func() {
		_ = os.Setenv("ENV", "test")

		cfg, err := config.Load("")
		if err != nil {
			appErr = err
			return
		}
		cfg.Server.Environment = "test"
		cfg.AMQP.URL = ""

		a := &app{
			db: mock.NewDb(
				mock.Table{Name: "users", Model: &model.UserModel{}},
				mock.Table{Name: "categories", Model: &model.CategoryModel{}},
				mock.Table{Name: "transactions", Model: &model.TransactionModel{}},
				mock.Table{Name: "budgets", Model: &model.BudgetModel{}},
				mock.Table{Name: "goals", Model: &model.GoalModel{}},
			),
			redis:    mock.NewRedis(),
			emailAPI: mock.NewApiServer(),
			clock:    mock.NewTime(),
		}
		a.emailAPI.Start()

		cfg.Email.ResendAPIKey = emailAPIKey
		cfg.Email.ResendBaseURL = a.emailAPI.GetUrl()

		log := logger.New(logger.Config{Level: "error", Output: io.Discard})

		a.injector, appErr = dependency.NewInjector(
			cfg,
			db.NewDatabase(a.db.DbConn),
			a.redis.Client,
			log,
			dependency.WithPasswordService(adapters.NewPasswordServiceWithCost(bcrypt.MinCost)),
			dependency.WithClock(a.clock.Now),
		)
		if appErr != nil {
			return
		}

		a.server = httptest.NewServer(a.injector.Router.Setup(cfg.Server.Environment))
		shared = a
	})
	return shared, appErr
}

func (a *app) reset() error {
	if err := a.db.ClearDB(); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	if err := a.redis.Clear(); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	a.emailAPI.ClearResponses("POST", "/emails")
	a.clock.Reset()
	return nil
}

func (a *app) close() {
	if a == nil {
		return
	}
	if a.server != nil {
		a.server.Close()
	}
	a.emailAPI.Close()
	_ = a.injector.Close()
	a.redis.Close()
}

// testContext holds the state of a single scenario.
type testContext struct {
	app           *app
	client        *http.Client
	headers       map[string]string
	token         string
	response      *response
	vars          map[string]string
	currentUserID uuid.UUID
}

type response struct {
	status int
	header http.Header
	body   any
}

// InitializeTestSuite starts the application before the first scenario and stops it after the last.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		if _, err := startApp(); err != nil {
			panic(fmt.Sprintf("failed to start application: %v", err))
		}
	})

	ctx.AfterSuite(func() {
		shared.close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		a, err := startApp()
		if err != nil {
			return ctx, err
		}
		test.app = a
		test.headers = make(map[string]string)
		test.vars = make(map[string]string)
		test.token = ""
		test.response = nil
		test.currentUserID = uuid.Nil
		return ctx, a.reset()
	})

	registerAPISteps(ctx, test)
	registerResponseSteps(ctx, test)
	registerDBSteps(ctx, test)
	registerEmailSteps(ctx, test)
}

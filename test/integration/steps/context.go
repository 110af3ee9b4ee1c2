// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/infra/dependency"
	"github.com/finance-ledger/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	db           *mock.Db
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		injector := dependency.NewInjector(config.Load(), db.DbConn, func() bool {
			return true
		})

		tc := &TestContext{db: db}
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSeedSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

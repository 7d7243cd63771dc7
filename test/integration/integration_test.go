//go:build integration

// Package integration drives the HTTP API end to end from the Gherkin files in
// features/. Run with: go test -tags integration ./test/integration/...
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/personal-finance/tracker/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	format := "pretty"
	if f := os.Getenv("GODOG_FORMAT"); f != "" {
		format = f
	}

	opts := godog.Options{
		Format:   format,
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Strict:   true,
		TestingT: t,
		// Scenarios share one application, database and session store.
		Concurrency: 1,
		// e.g. GODOG_TAGS=@budgets or GODOG_TAGS="@auth && ~@slow"
		Tags: os.Getenv("GODOG_TAGS"),
	}

	suite := godog.TestSuite{
		Name:                 "personal-finance-tracker-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature run failed with status %d", status)
	}
}

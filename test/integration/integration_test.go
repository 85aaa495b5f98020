//go:build integration

// Package integration runs the BDD feature suite against a real server
// instance backed by in-memory SQLite and miniredis.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/duitku/backend/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "duitku-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              suiteOptions(t),
	}

	if suite.Run() != 0 {
		t.Fatal("feature suite failed")
	}
}

// suiteOptions keeps scenarios sequential and unshuffled. Scenarios share
// one server and one database, so parallelism would race the fixtures.
func suiteOptions(t *testing.T) *godog.Options {
	opts := &godog.Options{
		Format:      "pretty",
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1,
		Randomize:   0,
		Strict:      true,
		TestingT:    t,
	}
	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}
	return opts
}

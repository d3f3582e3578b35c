package main

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type E2EFilmFlowSuite struct {
	suite.Suite
}

func TestIntegrationSuite(t *testing.T) {
	suite.RunSuite(t, new(E2EFilmFlowSuite))
}

func (s *E2EFilmFlowSuite) TestFilmFlow(t provider.T) {
	if os.Getenv("E2E_BASE_URL") == "" && os.Getenv("ENV") != "CI" {
		t.Skip("E2E_BASE_URL is not set")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	if !waitForService(client) {
		t.Fatalf("service %s is not reachable", baseURL())
	}

	t.Assert().NoError(run(client))
}

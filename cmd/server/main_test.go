package main_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/amirasaad/socialmedia/cmd/server/swagger"
	"github.com/amirasaad/socialmedia/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type MainTestSuite struct {
	testutils.E2ETestSuite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestRootRoute() {
	resp := s.Request(fiber.MethodGet, "/", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *MainTestSuite) TestSwaggerDocServed() {
	s.NotEmpty(swagger.SwaggerInfo.ReadDoc())

	resp, err := s.App.Test(httptest.NewRequest(fiber.MethodGet, "/swagger/doc.json", nil), -1)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Contains(string(body), "/accounts/{id}/messages")
}

package account_test

import (
	"testing"

	"github.com/amirasaad/socialmedia/pkg/dto"
	"github.com/amirasaad/socialmedia/webapi/common"
	"github.com/amirasaad/socialmedia/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	testutils.E2ETestSuite
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) countAccounts() int64 {
	var n int64
	s.Require().NoError(s.DB.Table("account").Count(&n).Error)
	return n
}

func (s *AccountTestSuite) TestRegister_Success() {
	resp := s.Request(fiber.MethodPost, "/register", `{"username":"bob","password":"pass1"}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	acc := testutils.DecodeJSON[dto.AccountRead](s.T(), resp)
	s.Positive(acc.ID)
	s.Equal("bob", acc.Username)
	s.Equal("pass1", acc.Password)
	s.EqualValues(1, s.countAccounts())
}

func (s *AccountTestSuite) TestRegister_Rejected() {
	testCases := []struct {
		desc string
		body string
	}{
		{desc: "empty username", body: `{"username":"","password":"pass1"}`},
		{desc: "blank username", body: `{"username":"   ","password":"pass1"}`},
		{desc: "missing username", body: `{"password":"pass1"}`},
		{desc: "empty password", body: `{"username":"bob","password":""}`},
		{desc: "three char password", body: `{"username":"bob","password":"abc"}`},
		{desc: "malformed json", body: `{"username":`},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.Request(fiber.MethodPost, "/register", tc.body)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			s.Equal(common.ProblemJSON, resp.Header.Get(fiber.HeaderContentType))
		})
	}
	s.Zero(s.countAccounts())
}

func (s *AccountTestSuite) TestRegister_Duplicate() {
	first := s.Request(fiber.MethodPost, "/register", `{"username":"bob","password":"pass1"}`)
	s.Require().Equal(fiber.StatusOK, first.StatusCode)

	second := s.Request(fiber.MethodPost, "/register", `{"username":"bob","password":"other"}`)
	s.Equal(fiber.StatusBadRequest, second.StatusCode)
	s.EqualValues(1, s.countAccounts())

	// Usernames are case-sensitive.
	third := s.Request(fiber.MethodPost, "/register", `{"username":"Bob","password":"pass1"}`)
	s.Equal(fiber.StatusOK, third.StatusCode)
	s.EqualValues(2, s.countAccounts())
}

func (s *AccountTestSuite) TestLogin() {
	resp := s.Request(fiber.MethodPost, "/register", `{"username":"bob","password":"pass1"}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	registered := testutils.DecodeJSON[dto.AccountRead](s.T(), resp)

	s.Run("success returns the stored account", func() {
		resp := s.Request(fiber.MethodPost, "/login", `{"username":"bob","password":"pass1"}`)
		s.Require().Equal(fiber.StatusOK, resp.StatusCode)
		s.Equal(registered, testutils.DecodeJSON[dto.AccountRead](s.T(), resp))
	})

	testCases := []struct {
		desc string
		body string
	}{
		{desc: "wrong password", body: `{"username":"bob","password":"wrong"}`},
		{desc: "unknown username", body: `{"username":"alice","password":"pass1"}`},
		{desc: "empty credentials", body: `{}`},
		{desc: "malformed json", body: `not json`},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.Request(fiber.MethodPost, "/login", tc.body)
			s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
			s.Equal(common.ProblemJSON, resp.Header.Get(fiber.HeaderContentType))
		})
	}
}

package message_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/amirasaad/socialmedia/pkg/dto"
	"github.com/amirasaad/socialmedia/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type MessageTestSuite struct {
	testutils.E2ETestSuite
	author dto.AccountRead
}

func TestMessageTestSuite(t *testing.T) {
	suite.Run(t, new(MessageTestSuite))
}

func (s *MessageTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.author = s.register("bob")
}

func (s *MessageTestSuite) register(username string) dto.AccountRead {
	resp := s.Request(fiber.MethodPost, "/register",
		fmt.Sprintf(`{"username":%q,"password":"pass1"}`, username))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	return testutils.DecodeJSON[dto.AccountRead](s.T(), resp)
}

func (s *MessageTestSuite) post(postedBy int, text string, epoch int64) dto.MessageRead {
	resp := s.Request(fiber.MethodPost, "/messages",
		fmt.Sprintf(`{"posted_by":%d,"message_text":%q,"time_posted_epoch":%d}`, postedBy, text, epoch))
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	return testutils.DecodeJSON[dto.MessageRead](s.T(), resp)
}

func (s *MessageTestSuite) TestCreate() {
	msg := s.post(s.author.ID, "hi", 1000)
	s.Positive(msg.ID)
	s.Equal(s.author.ID, msg.PostedBy)
	s.Equal("hi", msg.MessageText)
	s.EqualValues(1000, msg.TimePostedEpoch)
}

func (s *MessageTestSuite) TestCreate_LengthBoundary() {
	s.post(s.author.ID, strings.Repeat("a", 255), 1)
	// 255 characters, 510 bytes.
	s.post(s.author.ID, strings.Repeat("é", 255), 1)

	resp := s.Request(fiber.MethodPost, "/messages",
		fmt.Sprintf(`{"posted_by":%d,"message_text":%q,"time_posted_epoch":1}`, s.author.ID, strings.Repeat("a", 256)))
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *MessageTestSuite) TestCreate_Rejected() {
	testCases := []struct {
		desc string
		body string
	}{
		{desc: "blank text", body: fmt.Sprintf(`{"posted_by":%d,"message_text":"  ","time_posted_epoch":1}`, s.author.ID)},
		{desc: "empty text", body: fmt.Sprintf(`{"posted_by":%d,"message_text":"","time_posted_epoch":1}`, s.author.ID)},
		{desc: "unknown author", body: `{"posted_by":9999,"message_text":"hi","time_posted_epoch":1}`},
		{desc: "malformed json", body: `{"posted_by":"one"}`},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.Request(fiber.MethodPost, "/messages", tc.body)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}

	resp := s.Request(fiber.MethodGet, "/messages", "")
	s.Empty(testutils.DecodeJSON[[]dto.MessageRead](s.T(), resp))
}

func (s *MessageTestSuite) TestList() {
	resp := s.Request(fiber.MethodGet, "/messages", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.JSONEq(`[]`, string(testutils.ReadBody(s.T(), resp)))

	first := s.post(s.author.ID, "one", 1)
	second := s.post(s.author.ID, "two", 2)

	resp = s.Request(fiber.MethodGet, "/messages", "")
	s.Equal([]dto.MessageRead{first, second}, testutils.DecodeJSON[[]dto.MessageRead](s.T(), resp))
}

func (s *MessageTestSuite) TestGet() {
	msg := s.post(s.author.ID, "hello", 5)

	resp := s.Request(fiber.MethodGet, fmt.Sprintf("/messages/%d", msg.ID), "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(msg, testutils.DecodeJSON[dto.MessageRead](s.T(), resp))

	resp = s.Request(fiber.MethodGet, "/messages/9999", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Empty(testutils.ReadBody(s.T(), resp))

	resp = s.Request(fiber.MethodGet, "/messages/abc", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *MessageTestSuite) TestUpdate() {
	msg := s.post(s.author.ID, "before", 42)

	resp := s.Request(fiber.MethodPatch, fmt.Sprintf("/messages/%d", msg.ID), `{"message_text":"after"}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	updated := testutils.DecodeJSON[dto.MessageRead](s.T(), resp)
	s.Equal(dto.MessageRead{
		ID:              msg.ID,
		PostedBy:        msg.PostedBy,
		MessageText:     "after",
		TimePostedEpoch: 42,
	}, updated)

	resp = s.Request(fiber.MethodGet, fmt.Sprintf("/messages/%d", msg.ID), "")
	s.Equal(updated, testutils.DecodeJSON[dto.MessageRead](s.T(), resp))
}

func (s *MessageTestSuite) TestUpdate_Rejected() {
	msg := s.post(s.author.ID, "keep me", 1)
	path := fmt.Sprintf("/messages/%d", msg.ID)

	testCases := []struct {
		desc string
		path string
		body string
	}{
		{desc: "empty text", path: path, body: `{"message_text":""}`},
		{desc: "too long", path: path, body: fmt.Sprintf(`{"message_text":%q}`, strings.Repeat("x", 256))},
		{desc: "unknown id", path: "/messages/9999", body: `{"message_text":"valid"}`},
		{desc: "bad id", path: "/messages/x", body: `{"message_text":"valid"}`},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.Request(fiber.MethodPatch, tc.path, tc.body)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}

	resp := s.Request(fiber.MethodGet, path, "")
	s.Equal(msg, testutils.DecodeJSON[dto.MessageRead](s.T(), resp))
}

func (s *MessageTestSuite) TestDelete() {
	msg := s.post(s.author.ID, "bye", 7)
	path := fmt.Sprintf("/messages/%d", msg.ID)

	resp := s.Request(fiber.MethodDelete, path, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal(msg, testutils.DecodeJSON[dto.MessageRead](s.T(), resp))

	resp = s.Request(fiber.MethodGet, path, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Empty(testutils.ReadBody(s.T(), resp))

	resp = s.Request(fiber.MethodDelete, path, "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Empty(testutils.ReadBody(s.T(), resp))
}

func (s *MessageTestSuite) TestListByAccount() {
	other := s.register("alice")
	mine := s.post(s.author.ID, "mine", 1)
	s.post(other.ID, "theirs", 2)

	resp := s.Request(fiber.MethodGet, fmt.Sprintf("/accounts/%d/messages", s.author.ID), "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal([]dto.MessageRead{mine}, testutils.DecodeJSON[[]dto.MessageRead](s.T(), resp))

	resp = s.Request(fiber.MethodGet, "/accounts/9999/messages", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.JSONEq(`[]`, string(testutils.ReadBody(s.T(), resp)))

	resp = s.Request(fiber.MethodGet, "/accounts/abc/messages", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

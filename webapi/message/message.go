package message

import (
	"github.com/amirasaad/socialmedia/pkg/dto"
	messagesvc "github.com/amirasaad/socialmedia/pkg/service/message"
	"github.com/amirasaad/socialmedia/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the message endpoints.
//
// Routes:
//   - GET    /messages               : List every message.
//   - POST   /messages               : Post a message.
//   - GET    /messages/:id           : Fetch one message.
//   - PATCH  /messages/:id           : Replace the text of a message.
//   - DELETE /messages/:id           : Delete a message.
//   - GET    /accounts/:id/messages  : List the messages posted by an account.
func Routes(app *fiber.App, messageSvc *messagesvc.Service) {
	app.Get("/messages", ListMessages(messageSvc))
	app.Post("/messages", CreateMessage(messageSvc))
	app.Get("/messages/:id", GetMessage(messageSvc))
	app.Patch("/messages/:id", UpdateMessage(messageSvc))
	app.Delete("/messages/:id", DeleteMessage(messageSvc))
	app.Get("/accounts/:id/messages", ListAccountMessages(messageSvc))
}

// CreateMessage returns a Fiber handler that posts a message.
// @Summary Post a message
// @Description Creates a message when the text is non-blank, at most 255 characters, and posted_by is an existing account.
// @Tags messages
// @Accept json
// @Produce json
// @Param request body CreateMessageRequest true "Message to post"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /messages [post]
func CreateMessage(messageSvc *messagesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateMessageRequest](c)
		if input == nil {
			return err // error response already written
		}
		msg, err := messageSvc.Create(c.UserContext(), dto.MessageCreate{
			PostedBy:        input.PostedBy,
			MessageText:     input.MessageText,
			TimePostedEpoch: input.TimePostedEpoch,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create message", err)
		}
		return c.JSON(msg)
	}
}

// ListMessages returns a Fiber handler that lists every message.
// @Summary List messages
// @Tags messages
// @Produce json
// @Success 200 {array} MessageResponse
// @Failure 500 {object} common.ProblemDetails
// @Router /messages [get]
func ListMessages(messageSvc *messagesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := messageSvc.ListAll(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list messages", err)
		}
		return c.JSON(msgs)
	}
}

// GetMessage returns a Fiber handler that fetches one message. An unknown id
// yields 200 with an empty body.
// @Summary Get a message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /messages/{id} [get]
func GetMessage(messageSvc *messagesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.IDParam(c, "id")
		if !ok {
			return err
		}
		msg, err := messageSvc.Get(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch message", err)
		}
		return jsonOrEmpty(c, msg)
	}
}

// UpdateMessage returns a Fiber handler that replaces message_text.
// @Summary Edit a message
// @Description Replaces message_text only. Fails with 400 when the text is invalid or the message does not exist.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param request body UpdateMessageRequest true "New text"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /messages/{id} [patch]
func UpdateMessage(messageSvc *messagesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.IDParam(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateMessageRequest](c)
		if input == nil {
			return err // error response already written
		}
		msg, err := messageSvc.UpdateText(c.UserContext(), id, dto.MessageUpdate{
			MessageText: input.MessageText,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update message", err)
		}
		return c.JSON(msg)
	}
}

// DeleteMessage returns a Fiber handler that deletes a message. Deleting an
// unknown id yields 200 with an empty body.
// @Summary Delete a message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /messages/{id} [delete]
func DeleteMessage(messageSvc *messagesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.IDParam(c, "id")
		if !ok {
			return err
		}
		msg, err := messageSvc.Delete(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete message", err)
		}
		return jsonOrEmpty(c, msg)
	}
}

// ListAccountMessages returns a Fiber handler that lists an account's messages.
// @Summary List messages by account
// @Tags messages
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /accounts/{id}/messages [get]
func ListAccountMessages(messageSvc *messagesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := common.IDParam(c, "id")
		if !ok {
			return err
		}
		msgs, err := messageSvc.ListByAuthor(c.UserContext(), accountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list messages", err)
		}
		return c.JSON(msgs)
	}
}

// jsonOrEmpty writes msg as JSON, or a 200 with no body when msg is nil.
func jsonOrEmpty(c *fiber.Ctx, msg *dto.MessageRead) error {
	if msg == nil {
		c.Status(fiber.StatusOK)
		return nil
	}
	return c.JSON(msg)
}

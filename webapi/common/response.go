// Package common holds the HTTP helpers shared by the route packages:
// problem-details error bodies, status mapping and request binding.
package common

import (
	"errors"

	"github.com/amirasaad/socialmedia/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ProblemJSON is the media type of error bodies.
const ProblemJSON = "application/problem+json"

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
}

// ProblemDetailsJSON writes a problem details body. The status comes from
// ErrorToStatusCode(err) unless an int is passed in args; a string in args
// replaces the detail. Server errors never echo err to the client.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := ErrorToStatusCode(err)
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	explicitDetail := false
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			status = v
		case string:
			detail = v
			explicitDetail = true
		}
	}
	if status >= fiber.StatusInternalServerError && !explicitDetail {
		detail = utils.StatusMessage(status)
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	return c.Status(status).JSON(pd, ProblemJSON)
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Business
// rejections are 400, credential mismatches 401 and anything unrecognised,
// storage failures included, 500.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrNotFound):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate decodes the JSON request body and applies its validate tags.
// On failure it writes a 400 problem response and returns a nil *T along
// with the result of writing; callers return that error as is.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.App().Config().JSONDecoder(c.Body(), &input); err != nil {
		return nil, ProblemDetailsJSON(
			c, "Invalid request body", err, "Body must be a JSON object", fiber.StatusBadRequest,
		)
	}
	if _, err := domain.ValidateStruct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}

// IDParam parses the integer path parameter name, writing a 400 problem
// response when it is not an integer. ok reports whether parsing succeeded.
func IDParam(c *fiber.Ctx, name string) (id int, ok bool, err error) {
	id, perr := c.ParamsInt(name)
	if perr != nil {
		return 0, false, ProblemDetailsJSON(
			c, "Invalid path parameter", perr, name+" must be an integer", fiber.StatusBadRequest,
		)
	}
	return id, true, nil
}

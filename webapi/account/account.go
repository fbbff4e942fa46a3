package account

import (
	"github.com/amirasaad/socialmedia/pkg/dto"
	accountsvc "github.com/amirasaad/socialmedia/pkg/service/account"
	"github.com/amirasaad/socialmedia/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the account endpoints.
//
// Routes:
//   - POST /register : Register a new account.
//   - POST /login    : Verify a username and password.
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	app.Post("/register", Register(accountSvc))
	app.Post("/login", Login(accountSvc))
}

// Register returns a Fiber handler that creates an account.
// @Summary Register an account
// @Description Creates an account when the username is non-blank and unused and the password has at least 4 characters.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account to create"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /register [post]
func Register(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err // error response already written
		}
		acc, err := accountSvc.Register(c.UserContext(), dto.AccountCreate{
			Username: input.Username,
			Password: input.Password,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Registration failed", err)
		}
		return c.JSON(acc)
	}
}

// Login returns a Fiber handler that checks credentials.
// @Summary Log in
// @Description Returns the account when the username exists and the password matches exactly.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AccountResponse
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /login [post]
func Login(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input LoginRequest
		if err := c.App().Config().JSONDecoder(c.Body(), &input); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid credentials", err, "Body must be a JSON object", fiber.StatusUnauthorized)
		}
		acc, err := accountSvc.Login(c.UserContext(), dto.AccountCredentials{
			Username: input.Username,
			Password: input.Password,
		})
		if err != nil {
			if common.ErrorToStatusCode(err) >= fiber.StatusInternalServerError {
				return common.ProblemDetailsJSON(c, "Login failed", err)
			}
			return common.ProblemDetailsJSON(c, "Invalid credentials", nil, "Invalid username or password", fiber.StatusUnauthorized)
		}
		return c.JSON(acc)
	}
}

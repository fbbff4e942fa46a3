// Package webapi provides the HTTP API of the social media backend.
// Routes are organized into sub-packages:
//   - account: registration and login
//   - message: message CRUD and per-account listing
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/socialmedia/pkg/app"
	accountweb "github.com/amirasaad/socialmedia/webapi/account"
	"github.com/amirasaad/socialmedia/webapi/common"
	messageweb "github.com/amirasaad/socialmedia/webapi/message"
	"github.com/amirasaad/socialmedia/webapi/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// SetupApp builds the Fiber application with middleware, operational
// endpoints and the account and message routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "socialmedia",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := common.ErrorToStatusCode(err)
			return common.ProblemDetailsJSON(c, utils.StatusMessage(status), err)
		},
	})

	m := metrics.New()

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
	}))
	fiberApp.Use(m.Middleware())

	// Rate limiting keys on the first X-Forwarded-For address when behind a
	// proxy, then X-Real-IP, then the peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics" || c.Path() == "/healthz"
		},
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))
	fiberApp.Get("/metrics", m.Handler())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Social media API is running! 🚀")
	})

	fiberApp.Get("/healthz", func(c *fiber.Ctx) error {
		if err := a.Healthy(c.UserContext()); err != nil {
			a.Deps.Logger.Error("Health check failed", "error", err)
			return common.ProblemDetailsJSON(
				c, "Service Unavailable", err, "database unreachable", fiber.StatusServiceUnavailable,
			)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
		routeList := make([]fiber.Map, 0)
		for _, route := range fiberApp.GetRoutes(true) {
			if route.Path != "" {
				routeList = append(routeList, fiber.Map{
					"method": route.Method,
					"path":   route.Path,
				})
			}
		}
		return c.JSON(routeList)
	})

	accountweb.Routes(fiberApp, a.AccountService)
	messageweb.Routes(fiberApp, a.MessageService)
	return fiberApp
}

func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get(fiber.HeaderXForwardedFor); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}

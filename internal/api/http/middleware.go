package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ssm-admin/ssm-api/internal/observability"
	apperrors "github.com/ssm-admin/ssm-api/pkg/util"
)

// MiddlewareConfig carries the settings global middlewares need.
type MiddlewareConfig struct {
	Timeout      time.Duration
	AllowOrigins []string
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, cfg MiddlewareConfig) {
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowOrigins, ","),
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete}, ","),
	}))
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(fiberrecover.New(fiberrecover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Error("panic recovered", zap.Any("panic", e), zap.String("path", c.Path()), zap.Stack("stack"))
		},
	}))
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware renders errors as {"message", "code", "details"}.
// Storage causes are logged, never sent.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		domainErr := apperrors.ToDomainError(err)
		metrics.RecordError(c.Path(), c.Method(), domainErr.Code)

		response := fiber.Map{
			"message": domainErr.Message,
			"code":    domainErr.Code,
		}
		if len(domainErr.Details) > 0 {
			response["details"] = domainErr.Details
		}
		if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("code", domainErr.Code),
				zap.Error(domainErr),
			)
		}
		return c.Status(domainErr.HTTPStatus).JSON(response)
	}
}

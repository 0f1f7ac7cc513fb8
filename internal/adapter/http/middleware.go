package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"resume-builder/internal/logger"
)

type AppConfig struct {
	AllowedOrigins string
	// BodyLimit in bytes; fiber's default when zero.
	BodyLimit int
}

// NewApp builds the fiber app with middleware and h's routes.
func NewApp(h *Handler, cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          h.errorHandler,
	})

	origins := cfg.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
	app.Use(requestLogger)

	h.Register(app)

	app.Use(func(c *fiber.Ctx) error {
		return message(c, fiber.StatusNotFound, "Not found")
	})
	return app
}

// errorHandler answers errors raised outside a handler with the same JSON
// body as fail. An oversized body is one: fasthttp rejects it before routing.
func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return h.fail(c, err)
	}
	msg := fe.Message
	if fe.Code == fiber.StatusRequestEntityTooLarge {
		msg = h.tooLarge()
	}
	logger.Ctx(c.UserContext()).Warn().Str("path", c.Path()).Int("status", fe.Code).Msg(fe.Message)
	return message(c, fe.Code, msg)
}

// requestLogger tags each request with an id and logs its outcome.
func requestLogger(c *fiber.Ctx) error {
	id := c.Get("X-Request-Id")
	if id == "" {
		id = uuid.New().String()
	}
	c.Set("X-Request-Id", id)

	l := logger.Logger.With().Str("request_id", id).Logger()
	c.SetUserContext(logger.WithContext(c.UserContext(), l))

	start := time.Now()
	err := c.Next()
	l.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("took", time.Since(start)).
		Msg("request")
	return err
}

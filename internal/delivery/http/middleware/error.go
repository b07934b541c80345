package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"campus-match/internal/pkg/response"
)

// AppError carries an HTTP status alongside the wrapped cause so handlers can
// hand classification to a single middleware.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	log *zap.Logger
}

func NewErrorMiddleware(log *zap.Logger) *ErrorMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &ErrorMiddleware{log: log}
}

// Middleware recovers panics and normalizes every returned error to the
// response envelope. Server-side causes are logged but never leaked.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.log.Error("panic recovered", zap.Any("panic", r))
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := m.normalize(err)
		return response.Error(c, status, msg, nil)
	}
}

func (m *ErrorMiddleware) normalize(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			m.log.Error("request failed", zap.Error(err))
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			m.log.Error("request failed", zap.Error(err))
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg
	}

	m.log.Error("request failed", zap.Error(err))
	return fiber.StatusInternalServerError, response.MessageInternalServerError
}

package http

import (
	"errors"
	"net/http"

	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrTransitionNotAllowed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrRebalanceValidation):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Unexpected errors are logged and their
// text is not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	body := servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	}

	var rerr *errs.RebalanceValidationError
	if errors.As(err, &rerr) {
		violations := rerr.Violations
		body.Violations = &violations
		body.Message = errs.ErrRebalanceValidation.Error()
	} else if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		body.Message = http.StatusText(status)
	}

	return ctx.JSON(status, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// bindBody decodes and validates a JSON request body.
func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(body); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			violations := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				violations = append(violations, fe.Namespace()+" failed on "+fe.Tag())
			}
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:       http.StatusBadRequest,
				Message:    "Invalid request body",
				Violations: &violations,
			})
		}
		return badRequest(ctx, err.Error())
	}
	return nil
}

// errorHandler renders errors returned outside the handlers, e.g. from
// parameter binding or routing, in the Error format.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

package http

import (
	"errors"
	"net/http"

	"groupbuy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusForError maps domain and application errors to HTTP status codes.
// Unrecognized errors are treated as internal failures.
func statusForError(err error) int {
	var notFound *errs.ObjectNotFoundError
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError
	var transition *errs.InvalidStateTransitionError
	var concurrent *errs.ConcurrentModificationError
	var insufficient *errs.InsufficientBalanceError
	var expired *errs.CreditExpiredError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	case errors.As(err, &transition), errors.As(err, &concurrent):
		return http.StatusConflict
	case errors.As(err, &insufficient), errors.As(err, &expired):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

package http

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/errs"
)

// respondError maps application errors onto HTTP status codes. Domain errors
// carry messages that are safe to expose; anything unrecognized is logged and
// reported as an internal error without leaking details.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials), errors.Is(err, auth.ErrTokenInvalid):
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: capitalize(err.Error())})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: capitalize(err.Error())})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: capitalize(err.Error())})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: invalidStateMessage(err)})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: capitalize(err.Error())})
	default:
		log.Error().Err(err).Str("path", ctx.Path()).Msg("request failed")
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

// invalidStateMessage surfaces only the reason, not the wrapping prefix, so
// clients see "Only pending orders can be canceled" rather than the full chain.
func invalidStateMessage(err error) string {
	var stateErr *errs.InvalidStateError
	if errors.As(err, &stateErr) {
		return capitalize(stateErr.Reason)
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

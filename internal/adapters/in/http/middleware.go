package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/metrics"
)

const userIDContextKey = "user_id"

// authMiddleware validates the Bearer token and stores the authenticated
// user ID in the request context for downstream handlers.
func authMiddleware(issuer *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Missing or malformed authorization header"})
			}

			claims, err := issuer.ParseAccessToken(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid or expired token"})
			}

			userID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid or expired token"})
			}

			ctx.Set(userIDContextKey, userID)
			return next(ctx)
		}
	}
}

// userIDFromContext retrieves the user ID placed by authMiddleware.
func userIDFromContext(ctx echo.Context) (kernel.UUID, bool) {
	userID, ok := ctx.Get(userIDContextKey).(kernel.UUID)
	return userID, ok
}

// metricsMiddleware records per-route request counts and latency.
func metricsMiddleware(serverMetrics *metrics.ServerMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			route := ctx.Path()
			if route == "" {
				route = ctx.Request().URL.Path
			}
			status := ctx.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			serverMetrics.Requests.WithLabelValues(route, ctx.Request().Method, strconv.Itoa(status)).Inc()
			serverMetrics.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}

package middleware

import (
	"errors"

	apperrors "itapay-admin/internal/errors"
	"itapay-admin/internal/handlers"
	"itapay-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// TokenCookieName is the cookie the operator's SSO session stores the console token in
const TokenCookieName = "console_token"

// RequireAdmin creates a middleware that requires a valid operator token carrying the admin role.
// The token is read from the Authorization header, falling back to the console_token cookie.
func RequireAdmin(
	tokenService services.TokenServiceInterface,
	logger services.ConsoleLoggerInterface,
	metrics services.MetricsRecorderInterface,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			path := c.Request().URL.Path

			reject := func(reason string, code apperrors.ErrorCode) error {
				logger.LogAuthorizationFailure(ctx, reason, path)
				metrics.IncrementCounter("authorization_event", map[string]string{"event_type": reason})
				return handlers.SendError(c, code)
			}

			token, err := extractToken(c, tokenService)
			if err != nil {
				if errors.Is(err, errMissingToken) {
					return reject("missing_token", apperrors.AuthMissingToken)
				}
				return reject("invalid_header", apperrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAdminToken(token)
			switch {
			case err == nil:
			case errors.Is(err, services.ErrExpiredToken):
				return reject("expired_token", apperrors.AuthExpiredToken)
			case errors.Is(err, services.ErrNotAdmin):
				return reject("not_admin", apperrors.AuthInsufficientPermission)
			default:
				return reject("invalid_token", apperrors.AuthInvalidTokenFormat)
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.SetRequest(c.Request().WithContext(services.ContextWithOperator(ctx, claims)))
			metrics.IncrementCounter("authorization_event", map[string]string{"event_type": "granted"})

			return next(c)
		}
	}
}

var errMissingToken = errors.New("no operator token on request")

func extractToken(c echo.Context, tokenService services.TokenServiceInterface) (string, error) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		return tokenService.ExtractTokenFromHeader(authHeader)
	}

	cookie, err := c.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", errMissingToken
	}
	return cookie.Value, nil
}

package middleware

import (
	"strings"

	"sweetshop/internal/delivery/api/response"
	deliverycontext "sweetshop/internal/delivery/context"
	domainerrors "sweetshop/internal/domain/errors"
	"sweetshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer authentication and admin authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token to a user and stores it on the context.
// A request without a bearer credential is refused with 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrNotAuthenticated)
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireAdmin rejects non-admin users. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.authUC.RequireAdmin(deliverycontext.GetUser(c)); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

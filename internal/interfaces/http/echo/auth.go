package echo

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	domain "github.com/mhkarimi/prospect-import/internal/domain/prospect"
)

const userIDContextKey = "user_id"

type tokenResolver interface {
	FindByAPIToken(ctx context.Context, token string) (*domain.User, error)
}

// TokenAuth resolves the bearer token to an owning user and stores the
// user id on the request context. Requests without a valid token never
// reach a handler.
func TokenAuth(users tokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
					Code:    "unauthorized",
					Message: "client needs to log in first",
				}})
			}

			user, err := users.FindByAPIToken(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
					Code:    "unauthorized",
					Message: "client needs to log in first",
				}})
			}

			c.Set(userIDContextKey, user.ID)
			return next(c)
		}
	}
}

func currentUserID(c echo.Context) int64 {
	id, _ := c.Get(userIDContextKey).(int64)
	return id
}

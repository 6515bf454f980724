package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulseboard/dashboard-api/internal/api/middleware"
	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Its absence
// means the middleware never ran for this route, which is a wiring bug, but
// the caller still only sees a 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

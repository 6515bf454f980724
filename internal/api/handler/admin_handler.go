package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// AdminHandler serves the user-management surface.
type AdminHandler struct {
	store ports.UserStore
}

func NewAdminHandler(store ports.UserStore) *AdminHandler {
	return &AdminHandler{store: store}
}

// ListUsers returns every registered user.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users})
}

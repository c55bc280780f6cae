package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct{}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Test godoc
// @Summary Placeholder profile route
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]string
// @Router /profile/test [get]
func (h *ProfileHandler) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"msg": "profile route works"})
}

package handler

import (
	"net/http"

	"github.com/Eursukkul/event-portal/internal/devapi/service"
	"github.com/Eursukkul/event-portal/internal/dto"
	"github.com/Eursukkul/event-portal/internal/models"
	"github.com/labstack/echo/v4"
)

type RegistrationHandler struct {
	svc service.RegistrationService
}

func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

func (h *RegistrationHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
}

func (h *RegistrationHandler) Register(c echo.Context) error {
	var reg models.Registration
	if err := c.Bind(&reg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.Register(c.Request().Context(), &reg); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Registration successful"})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/service"
)

// OrganizationHandler is the control-plane surface for managing tenants.
// It sits outside tenantScope: creating or listing organizations has no
// tenant to pin, and the platform gateway restricts who reaches it.
type OrganizationHandler struct {
	svc service.OrganizationService
	log *zap.Logger
}

func (h *OrganizationHandler) Register(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:org_id", h.Get)
	g.PATCH("/:org_id", h.Update)
	g.DELETE("/:org_id", h.Delete)
}

type organizationRequest struct {
	Name            string `json:"name"`
	TimezoneID      string `json:"timezone_id"`
	DefaultDecision string `json:"default_decision"`
	State           string `json:"state"`
}

func (r organizationRequest) input() service.OrganizationInput {
	return service.OrganizationInput{
		Name:            r.Name,
		TimezoneID:      r.TimezoneID,
		DefaultDecision: r.DefaultDecision,
		State:           r.State,
	}
}

func (h *OrganizationHandler) Create(c echo.Context) error {
	var req organizationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	org, err := h.svc.CreateOrganization(c.Request().Context(), req.input())
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, org)
}

func (h *OrganizationHandler) Get(c echo.Context) error {
	org, err := h.svc.GetOrganization(c.Request().Context(), c.Param("org_id"))
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) List(c echo.Context) error {
	page, size, in := pageQuery(c)
	orgs, total, err := h.svc.ListOrganizations(c.Request().Context(), in)
	if err != nil {
		return svcError(c, h.log, err)
	}
	return paged(c, orgs, total, page, size)
}

func (h *OrganizationHandler) Update(c echo.Context) error {
	var req organizationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	org, err := h.svc.UpdateOrganization(c.Request().Context(), c.Param("org_id"), req.input())
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteOrganization(c.Request().Context(), c.Param("org_id")); err != nil {
		return svcError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

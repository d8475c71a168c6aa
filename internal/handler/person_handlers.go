package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/service"
)

// Residents and preauthorized visitors share one payload shape; only the
// table behind them differs.
type personRequest struct {
	DocumentKind   string  `json:"document_kind"`
	DocumentNumber string  `json:"document_number"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	State          string  `json:"state"`
}

func (r personRequest) input() service.PersonInput {
	return service.PersonInput{
		DocumentKind:   r.DocumentKind,
		DocumentNumber: r.DocumentNumber,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		State:          r.State,
	}
}

func personListInput(c echo.Context) (page, size int32, in service.ListPersonsInput) {
	page, size, pg := pageQuery(c)
	return page, size, service.ListPersonsInput{State: c.QueryParam("state"), Page: pg}
}

// ── Residents ──────────────────────────────────────────────────────────────

type ResidentHandler struct {
	svc service.ResidentService
	log *zap.Logger
}

func (h *ResidentHandler) Register(g *echo.Group) {
	r := g.Group("/residents")
	r.POST("", h.Create)
	r.GET("", h.List)
	r.GET("/:resident_id", h.Get)
	r.PATCH("/:resident_id", h.Update)
	r.DELETE("/:resident_id", h.Delete)
}

func (h *ResidentHandler) Create(c echo.Context) error {
	var req personRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	resident, err := h.svc.CreateResident(c.Request().Context(), req.input())
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, resident)
}

func (h *ResidentHandler) Get(c echo.Context) error {
	resident, err := h.svc.GetResident(c.Request().Context(), c.Param("resident_id"))
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resident)
}

func (h *ResidentHandler) List(c echo.Context) error {
	page, size, in := personListInput(c)
	residents, total, err := h.svc.ListResidents(c.Request().Context(), in)
	if err != nil {
		return svcError(c, h.log, err)
	}
	return paged(c, residents, total, page, size)
}

func (h *ResidentHandler) Update(c echo.Context) error {
	var req personRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	resident, err := h.svc.UpdateResident(c.Request().Context(), c.Param("resident_id"), req.input())
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resident)
}

func (h *ResidentHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteResident(c.Request().Context(), c.Param("resident_id")); err != nil {
		return svcError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ── Preauthorized visitors ─────────────────────────────────────────────────

type VisitorHandler struct {
	svc service.VisitorService
	log *zap.Logger
}

func (h *VisitorHandler) Register(g *echo.Group) {
	v := g.Group("/visitors")
	v.POST("", h.Create)
	v.GET("", h.List)
	v.GET("/:visitor_id", h.Get)
	v.PATCH("/:visitor_id", h.Update)
	v.DELETE("/:visitor_id", h.Delete)
}

func (h *VisitorHandler) Create(c echo.Context) error {
	var req personRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	visitor, err := h.svc.CreateVisitor(c.Request().Context(), req.input())
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, visitor)
}

func (h *VisitorHandler) Get(c echo.Context) error {
	visitor, err := h.svc.GetVisitor(c.Request().Context(), c.Param("visitor_id"))
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, visitor)
}

func (h *VisitorHandler) List(c echo.Context) error {
	page, size, in := personListInput(c)
	visitors, total, err := h.svc.ListVisitors(c.Request().Context(), in)
	if err != nil {
		return svcError(c, h.log, err)
	}
	return paged(c, visitors, total, page, size)
}

func (h *VisitorHandler) Update(c echo.Context) error {
	var req personRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	visitor, err := h.svc.UpdateVisitor(c.Request().Context(), c.Param("visitor_id"), req.input())
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, visitor)
}

func (h *VisitorHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteVisitor(c.Request().Context(), c.Param("visitor_id")); err != nil {
		return svcError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

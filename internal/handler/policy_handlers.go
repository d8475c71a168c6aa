package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/service"
)

// ── Areas ──────────────────────────────────────────────────────────────────

type AreaHandler struct {
	svc service.AreaService
	log *zap.Logger
}

func (h *AreaHandler) Register(g *echo.Group) {
	a := g.Group("/areas")
	a.POST("", h.Create)
	a.GET("", h.List)
	a.GET("/:area_id", h.Get)
	a.PATCH("/:area_id", h.Update)
	a.DELETE("/:area_id", h.Delete)
}

type createAreaRequest struct {
	Name       string `json:"name"`
	ImagePath  string `json:"image_path"`
	TimezoneID string `json:"timezone_id"`
}

// updateAreaRequest distinguishes absent from empty: a missing field keeps
// the stored value, an explicit "" clears nullable columns. Clearing
// timezone_id reverts the area to the organization zone.
type updateAreaRequest struct {
	Name       string  `json:"name"`
	ImagePath  *string `json:"image_path"`
	TimezoneID *string `json:"timezone_id"`
}

func (h *AreaHandler) Create(c echo.Context) error {
	var req createAreaRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	area, err := h.svc.CreateArea(c.Request().Context(), service.CreateAreaInput{
		Name:       req.Name,
		ImagePath:  req.ImagePath,
		TimezoneID: req.TimezoneID,
	})
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, area)
}

func (h *AreaHandler) Get(c echo.Context) error {
	area, err := h.svc.GetArea(c.Request().Context(), c.Param("area_id"))
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, area)
}

func (h *AreaHandler) List(c echo.Context) error {
	page, size, in := pageQuery(c)
	areas, total, err := h.svc.ListAreas(c.Request().Context(), in)
	if err != nil {
		return svcError(c, h.log, err)
	}
	return paged(c, areas, total, page, size)
}

func (h *AreaHandler) Update(c echo.Context) error {
	var req updateAreaRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	area, err := h.svc.UpdateArea(c.Request().Context(), c.Param("area_id"), service.UpdateAreaInput{
		Name:       req.Name,
		ImagePath:  req.ImagePath,
		TimezoneID: req.TimezoneID,
	})
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, area)
}

func (h *AreaHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteArea(c.Request().Context(), c.Param("area_id")); err != nil {
		return svcError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ── Devices ────────────────────────────────────────────────────────────────

type DeviceHandler struct {
	svc service.DeviceService
	log *zap.Logger
}

func (h *DeviceHandler) Register(g *echo.Group) {
	d := g.Group("/devices")
	d.POST("", h.Create)
	d.GET("", h.List)
	d.GET("/:device_id", h.Get)
	d.PATCH("/:device_id", h.Update)
	d.DELETE("/:device_id", h.Delete)
}

type createDeviceRequest struct {
	AreaID     string `json:"area_id"`
	Name       string `json:"name"`
	Model      string `json:"model"`
	ExternalID string `json:"external_id"`
	Active     *bool  `json:"active"`
}

type updateDeviceRequest struct {
	AreaID     string  `json:"area_id"`
	Name       string  `json:"name"`
	Model      *string `json:"model"`
	ExternalID *string `json:"external_id"`
	Active     *bool   `json:"active"`
}

func (h *DeviceHandler) Create(c echo.Context) error {
	var req createDeviceRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	device, err := h.svc.CreateDevice(c.Request().Context(), service.CreateDeviceInput{
		AreaID:     req.AreaID,
		Name:       req.Name,
		Model:      req.Model,
		ExternalID: req.ExternalID,
		Active:     req.Active,
	})
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, device)
}

func (h *DeviceHandler) Get(c echo.Context) error {
	device, err := h.svc.GetDevice(c.Request().Context(), c.Param("device_id"))
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, device)
}

func (h *DeviceHandler) List(c echo.Context) error {
	page, size, in := pageQuery(c)
	devices, total, err := h.svc.ListDevices(c.Request().Context(), service.ListDevicesInput{
		AreaID: c.QueryParam("area_id"),
		Page:   in,
	})
	if err != nil {
		return svcError(c, h.log, err)
	}
	return paged(c, devices, total, page, size)
}

func (h *DeviceHandler) Update(c echo.Context) error {
	var req updateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	device, err := h.svc.UpdateDevice(c.Request().Context(), c.Param("device_id"), service.UpdateDeviceInput{
		AreaID:     req.AreaID,
		Name:       req.Name,
		Model:      req.Model,
		ExternalID: req.ExternalID,
		Active:     req.Active,
	})
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, device)
}

func (h *DeviceHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteDevice(c.Request().Context(), c.Param("device_id")); err != nil {
		return svcError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

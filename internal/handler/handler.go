// Package handler mounts the HTTP surface: attempt intake, the policy
// CRUD, and the liveness/readiness probes. Handlers bind, delegate to the
// service layer, and translate sentinel errors into the wire envelope;
// they hold no business logic of their own.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/middleware"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/service"
)

// Services bundles everything the router mounts.
type Services struct {
	Attempts      service.AttemptService
	Organizations service.OrganizationService
	Areas         service.AreaService
	Devices       service.DeviceService
	Residents     service.ResidentService
	Visitors      service.VisitorService
	Groups        service.GroupService
	Rules         service.RuleService
}

// RegisterRoutes mounts all API endpoints onto the Echo instance.
//
// Tenant-scoped paths live under /v1/organizations/:org_id and pass through
// tenantScope, which pins the request context to the path organization.
// The bare /v1/organizations collection is the control-plane surface used
// to manage tenants themselves.
func RegisterRoutes(e *echo.Echo, svcs Services, health *HealthHandler, logger *zap.Logger) {
	health.Register(e)

	v1 := e.Group("/v1")

	orgs := v1.Group("/organizations")
	orgHandler := &OrganizationHandler{svc: svcs.Organizations, log: logger}
	orgHandler.Register(orgs)

	tenant := orgs.Group("/:org_id", tenantScope())
	(&AttemptHandler{svc: svcs.Attempts, log: logger}).Register(tenant)
	(&AreaHandler{svc: svcs.Areas, log: logger}).Register(tenant)
	(&DeviceHandler{svc: svcs.Devices, log: logger}).Register(tenant)
	(&ResidentHandler{svc: svcs.Residents, log: logger}).Register(tenant)
	(&VisitorHandler{svc: svcs.Visitors, log: logger}).Register(tenant)
	(&GroupHandler{svc: svcs.Groups, log: logger}).Register(tenant)
	(&RuleHandler{svc: svcs.Rules, log: logger}).Register(tenant)
}

// tenantScope validates the path organization and installs it as the
// request tenant. When the gateway already injected X-Internal-Org-Id the
// two must agree; a mismatch means the caller is reaching across tenants.
func tenantScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			pathOrg := c.Param("org_id")
			if _, err := uuid.Parse(pathOrg); err != nil {
				return writeError(c, http.StatusBadRequest, codeBadRequest, "org_id must be a UUID")
			}
			if hdr := c.Request().Header.Get("X-Internal-Org-Id"); hdr != "" && hdr != pathOrg {
				return writeError(c, http.StatusForbidden, codeForbidden, "organization does not match the authenticated tenant")
			}
			ctx := middleware.WithOrgID(c.Request().Context(), pathOrg)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// ── Error envelope ─────────────────────────────────────────────────────────

const (
	codeBadRequest   = "BAD_REQUEST"
	codeUnauthorized = "UNAUTHORIZED"
	codeForbidden    = "FORBIDDEN"
	codeNotFound     = "NOT_FOUND"
	codeConflict     = "CONFLICT"
	codeValidation   = "VALIDATION_ERROR"
	codeInternal     = "INTERNAL_ERROR"
)

type errorBody struct {
	Code      string        `json:"code"`
	Message   string        `json:"message"`
	Status    int           `json:"status"`
	Path      string        `json:"path"`
	Timestamp time.Time     `json:"timestamp"`
	Details   []errorDetail `json:"details,omitempty"`
}

type errorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func writeError(c echo.Context, status int, code, message string, details ...errorDetail) error {
	return c.JSON(status, errorBody{
		Code:      code,
		Message:   message,
		Status:    status,
		Path:      c.Request().URL.Path,
		Timestamp: time.Now().UTC(),
		Details:   details,
	})
}

// svcError maps service sentinels onto the envelope. Unknown errors are
// logged here and surfaced opaque; everything typed carries its own text.
func svcError(c echo.Context, logger *zap.Logger, err error) error {
	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		details := make([]errorDetail, 0, len(verrs))
		for _, v := range verrs {
			details = append(details, errorDetail{Field: v.Field, Reason: v.Reason})
		}
		return writeError(c, http.StatusBadRequest, codeValidation, "validation failed", details...)
	case errors.Is(err, service.ErrInvalidInput):
		return writeError(c, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		return writeError(c, http.StatusConflict, codeConflict, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return writeError(c, http.StatusForbidden, codeForbidden, err.Error())
	default:
		logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
		return writeError(c, http.StatusInternalServerError, codeInternal, "internal error")
	}
}

func bindError(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, codeBadRequest, "invalid request body")
}

// ── Pagination ─────────────────────────────────────────────────────────────

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type pagedResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int32       `json:"page"`
	PageSize int32       `json:"page_size"`
}

// pageQuery reads ?page (1-based) and ?page_size and resolves them to the
// limit/offset the repository speaks. Out-of-range values clamp silently.
func pageQuery(c echo.Context) (page, size int32, in service.PageInput) {
	p, _ := strconv.Atoi(c.QueryParam("page"))
	if p < 1 {
		p = 1
	}
	s, _ := strconv.Atoi(c.QueryParam("page_size"))
	if s < 1 {
		s = defaultPageSize
	}
	if s > maxPageSize {
		s = maxPageSize
	}
	page, size = int32(p), int32(s)
	return page, size, service.PageInput{Limit: size, Offset: (page - 1) * size}
}

func paged(c echo.Context, items interface{}, total int64, page, size int32) error {
	return c.JSON(http.StatusOK, pagedResponse{Items: items, Total: total, Page: page, PageSize: size})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// ReasonHandler serves the reason catalog: the fixed set of codes the
// engine stamps on decisions. The catalog is seeded by migration and
// shared by every tenant, so the routes carry no org scope.
type ReasonHandler struct {
	querier db.Querier
	log     *zap.Logger
}

func NewReasonHandler(q db.Querier, logger *zap.Logger) *ReasonHandler {
	return &ReasonHandler{querier: q, log: logger}
}

func (h *ReasonHandler) Register(e *echo.Echo) {
	g := e.Group("/v1/reasons")
	g.GET("", h.List)
	g.GET("/:code", h.Get)
}

func (h *ReasonHandler) List(c echo.Context) error {
	reasons, err := h.querier.ListReasons(c.Request().Context())
	if err != nil {
		h.log.Error("list reasons failed", zap.Error(err))
		return writeError(c, http.StatusInternalServerError, codeInternal, "failed to fetch reasons")
	}
	return c.JSON(http.StatusOK, reasons)
}

func (h *ReasonHandler) Get(c echo.Context) error {
	reason, err := h.querier.GetReason(c.Request().Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return writeError(c, http.StatusNotFound, codeNotFound, "unknown reason code")
		}
		h.log.Error("get reason failed", zap.Error(err))
		return writeError(c, http.StatusInternalServerError, codeInternal, "failed to fetch reason")
	}
	return c.JSON(http.StatusOK, reason)
}

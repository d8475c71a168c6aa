package handler

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// AuditHandler serves the read side of the audit trail. It speaks to the
// repository directly: the rows are immutable and there is no business
// logic between the query and the wire.
//
// Tenancy comes from the gateway header alone; audit paths carry no org
// segment because operators query across their own tenant only.
type AuditHandler struct {
	querier db.Querier
	log     *zap.Logger
}

func NewAuditHandler(q db.Querier, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{querier: q, log: logger}
}

func (h *AuditHandler) Register(e *echo.Echo) {
	g := e.Group("/v1/audit-logs")
	g.GET("", h.List)
	g.GET("/:aggregate_type/:aggregate_id", h.ListByAggregate)
}

// tenant resolves the caller's organization from the gateway header. It
// writes the rejection itself; a false return means the response is done.
func (h *AuditHandler) tenant(c echo.Context) (pgtype.UUID, bool) {
	raw := c.Request().Header.Get("X-Internal-Org-Id")
	if raw == "" {
		_ = writeError(c, http.StatusUnauthorized, codeUnauthorized, "missing X-Internal-Org-Id header")
		return pgtype.UUID{}, false
	}
	var orgID pgtype.UUID
	if err := orgID.Scan(raw); err != nil {
		_ = writeError(c, http.StatusBadRequest, codeBadRequest, "invalid organization id")
		return pgtype.UUID{}, false
	}
	return orgID, true
}

func (h *AuditHandler) List(c echo.Context) error {
	orgID, ok := h.tenant(c)
	if !ok {
		return nil
	}
	page, size, in := pageQuery(c)

	logs, qerr := h.querier.ListAuditLogs(c.Request().Context(), db.ListAuditLogsParams{
		OrganizationID: orgID,
		Limit:          in.Limit,
		Offset:         in.Offset,
	})
	if qerr != nil {
		h.log.Error("list audit logs failed", zap.Error(qerr))
		return writeError(c, http.StatusInternalServerError, codeInternal, "failed to fetch audit logs")
	}
	total, qerr := h.querier.CountAuditLogs(c.Request().Context(), orgID)
	if qerr != nil {
		h.log.Error("count audit logs failed", zap.Error(qerr))
		return writeError(c, http.StatusInternalServerError, codeInternal, "failed to fetch audit logs")
	}
	return paged(c, logs, total, page, size)
}

func (h *AuditHandler) ListByAggregate(c echo.Context) error {
	orgID, ok := h.tenant(c)
	if !ok {
		return nil
	}
	page, size, in := pageQuery(c)

	aggType := pgtype.Text{String: c.Param("aggregate_type"), Valid: true}
	aggID := pgtype.Text{String: c.Param("aggregate_id"), Valid: true}
	logs, qerr := h.querier.ListAuditLogsByAggregate(c.Request().Context(), db.ListAuditLogsByAggregateParams{
		OrganizationID: orgID,
		AggregateType:  aggType,
		AggregateID:    aggID,
		Limit:          in.Limit,
		Offset:         in.Offset,
	})
	if qerr != nil {
		h.log.Error("list audit logs by aggregate failed", zap.Error(qerr))
		return writeError(c, http.StatusInternalServerError, codeInternal, "failed to fetch audit logs")
	}
	total, qerr := h.querier.CountAuditLogsByAggregate(c.Request().Context(), db.CountAuditLogsByAggregateParams{
		OrganizationID: orgID,
		AggregateType:  aggType,
		AggregateID:    aggID,
	})
	if qerr != nil {
		h.log.Error("count audit logs by aggregate failed", zap.Error(qerr))
		return writeError(c, http.StatusInternalServerError, codeInternal, "failed to fetch audit logs")
	}
	return paged(c, logs, total, page, size)
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/service"
)

type RuleHandler struct {
	svc service.RuleService
	log *zap.Logger
}

func (h *RuleHandler) Register(g *echo.Group) {
	r := g.Group("/rules")
	r.POST("", h.Create)
	r.GET("", h.List)
	// Static segments before the param route so echo does not swallow
	// "cache" or "candidates" as a rule id.
	r.POST("/cache/invalidate", h.InvalidateCaches)
	r.GET("/candidates", h.Candidates)
	r.GET("/:rule_id", h.Get)
	r.PATCH("/:rule_id", h.Update)
	r.DELETE("/:rule_id", h.Delete)
	r.POST("/:rule_id/activate", h.Activate)
	r.POST("/:rule_id/inactivate", h.Inactivate)
}

type ruleRequest struct {
	AreaID        string     `json:"area_id"`
	SubjectType   string     `json:"subject_type"`
	DeviceID      string     `json:"device_id"`
	PassDirection string     `json:"pass_direction"`
	AuthMethod    string     `json:"auth_method"`
	Action        string     `json:"action"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidTo       *time.Time `json:"valid_to"`
	DailyFrom     string     `json:"daily_from"`
	DailyTo       string     `json:"daily_to"`
	Priority      int32      `json:"priority"`
	Message       string     `json:"message"`
}

func (r ruleRequest) input() service.RuleInput {
	return service.RuleInput{
		AreaID:        r.AreaID,
		SubjectType:   r.SubjectType,
		DeviceID:      r.DeviceID,
		PassDirection: r.PassDirection,
		AuthMethod:    r.AuthMethod,
		Action:        r.Action,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
		DailyFrom:     r.DailyFrom,
		DailyTo:       r.DailyTo,
		Priority:      r.Priority,
		Message:       r.Message,
	}
}

func (h *RuleHandler) Create(c echo.Context) error {
	var req ruleRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	rule, err := h.svc.CreateRule(c.Request().Context(), req.input())
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, rule)
}

func (h *RuleHandler) Get(c echo.Context) error {
	rule, err := h.svc.GetRule(c.Request().Context(), c.Param("rule_id"))
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rule)
}

func (h *RuleHandler) List(c echo.Context) error {
	page, size, in := pageQuery(c)
	rules, total, err := h.svc.ListRules(c.Request().Context(), service.ListRulesInput{
		AreaID:        c.QueryParam("area_id"),
		DeviceID:      c.QueryParam("device_id"),
		SubjectType:   c.QueryParam("subject_type"),
		PassDirection: c.QueryParam("pass_direction"),
		AuthMethod:    c.QueryParam("auth_method"),
		Action:        c.QueryParam("action"),
		State:         c.QueryParam("state"),
		Page:          in,
	})
	if err != nil {
		return svcError(c, h.log, err)
	}
	return paged(c, rules, total, page, size)
}

// Candidates lists the rules an intent would be matched against, read
// from the store rather than the in-process snapshot. The optional ?at
// probes a different instant than now.
func (h *RuleHandler) Candidates(c echo.Context) error {
	q := service.CandidateQuery{
		DeviceID:      c.QueryParam("device_id"),
		SubjectType:   c.QueryParam("subject_type"),
		PassDirection: c.QueryParam("pass_direction"),
		AuthMethod:    c.QueryParam("auth_method"),
	}
	if raw := c.QueryParam("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return writeError(c, http.StatusBadRequest, codeBadRequest, "at must be an RFC 3339 timestamp")
		}
		q.At = &at
	}
	rules, err := h.svc.FindCandidateRules(c.Request().Context(), q)
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rules)
}

func (h *RuleHandler) Update(c echo.Context) error {
	var req ruleRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	rule, err := h.svc.UpdateRule(c.Request().Context(), c.Param("rule_id"), req.input())
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rule)
}

func (h *RuleHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteRule(c.Request().Context(), c.Param("rule_id")); err != nil {
		return svcError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RuleHandler) Activate(c echo.Context) error {
	rule, err := h.svc.ActivateRule(c.Request().Context(), c.Param("rule_id"))
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rule)
}

func (h *RuleHandler) Inactivate(c echo.Context) error {
	rule, err := h.svc.InactivateRule(c.Request().Context(), c.Param("rule_id"))
	if err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rule)
}

// InvalidateCaches asks every node to drop its rule snapshots. The fanout
// rides the policy-change stream, so the caller gets 202 as soon as the
// event is committed, not when the cluster converges.
func (h *RuleHandler) InvalidateCaches(c echo.Context) error {
	if err := h.svc.InvalidateAllCaches(c.Request().Context()); err != nil {
		return svcError(c, h.log, err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "invalidation requested"})
}

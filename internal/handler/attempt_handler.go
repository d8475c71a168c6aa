package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/service"
)

// AttemptHandler exposes the intake endpoint devices call on every pass.
type AttemptHandler struct {
	svc service.AttemptService
	log *zap.Logger
}

func (h *AttemptHandler) Register(g *echo.Group) {
	g.POST("/accesses/attempts", h.Intake)
}

type registerAttemptRequest struct {
	DeviceID       string          `json:"device_id"`
	IdempotencyKey string          `json:"idempotency_key"`
	SubjectType    string          `json:"subject_type"`
	PassDirection  string          `json:"pass_direction"`
	AuthMethod     string          `json:"auth_method"`
	Subject        *attemptSubject `json:"subject,omitempty"`
	OccurredAt     *time.Time      `json:"occurred_at,omitempty"`
}

type attemptSubject struct {
	ID       string `json:"id,omitempty"`
	Document string `json:"document,omitempty"`
}

// Intake handles POST /accesses/attempts. Replays of a known idempotency
// key answer 200 with the stored outcome; a request that lost a concurrent
// insert race answers 409 with the winner's outcome so the integrator can
// tell the two apart.
func (h *AttemptHandler) Intake(c echo.Context) error {
	var req registerAttemptRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}

	in := service.RegisterAttemptInput{
		DeviceID:       req.DeviceID,
		SubjectType:    req.SubjectType,
		PassDirection:  req.PassDirection,
		AuthMethod:     req.AuthMethod,
		IdempotencyKey: req.IdempotencyKey,
		OccurredAt:     req.OccurredAt,
	}
	if req.Subject != nil {
		in.SubjectID = req.Subject.ID
		in.SubjectDocument = req.Subject.Document
	}

	result, err := h.svc.RegisterAttempt(c.Request().Context(), in)
	if err != nil {
		return svcError(c, h.log, err)
	}

	status := http.StatusOK
	if result.Raced {
		status = http.StatusConflict
	}
	return c.JSON(status, result)
}

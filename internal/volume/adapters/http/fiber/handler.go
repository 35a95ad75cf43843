package fiber

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"quiz-analytics-service/internal/volume/core/domain"
	"quiz-analytics-service/internal/volume/core/usecase"
)

type GetVolumeUseCase interface {
	Execute(ctx context.Context, in usecase.GetVolumeInput) (*domain.StepVolume, error)
}

type Validator interface {
	Validate(s any) error
}

type VolumeHandler struct {
	uc        GetVolumeUseCase
	validator Validator
	logger    *slog.Logger
}

func NewVolumeHandler(uc GetVolumeUseCase, v Validator, logger *slog.Logger) *VolumeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VolumeHandler{uc: uc, validator: v, logger: logger}
}

// GetVolume godoc
// @Summary Raw event volume of a funnel step
// @Description Counts every event of one step, optionally grouped by share channel or time bucket
// @Tags Analytics
// @Produce json
// @Param step query string true "Funnel step"
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param test_id query string false "Restrict to one test (uuid)"
// @Param group_by query string false "Group by: share_channel | time"
// @Param interval query string false "Interval: hour | day (group_by=time)"
// @Success 200 {object} VolumeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/volume [get]
func (h *VolumeHandler) GetVolume(c *fiber.Ctx) error {
	var q VolumeQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c, err)
	}
	if err := h.validator.Validate(&q); err != nil {
		return badQuery(c, err)
	}

	res, err := h.uc.Execute(c.UserContext(), usecase.GetVolumeInput{
		Step:     q.Step,
		From:     time.Unix(q.From, 0).UTC(),
		To:       time.Unix(q.To, 0).UTC(),
		TestID:   q.TestID,
		GroupBy:  domain.GroupBy(q.GroupBy),
		Interval: domain.Interval(q.Interval),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStep),
			errors.Is(err, usecase.ErrInvalidTimeRange),
			errors.Is(err, usecase.ErrInvalidGroupBy),
			errors.Is(err, usecase.ErrInvalidInterval):
			return badQuery(c, err)
		default:
			h.logger.ErrorContext(c.UserContext(), "volume query failed", "step", q.Step, "error", err)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := VolumeResponse{
		Step:           res.Step,
		From:           q.From,
		To:             q.To,
		TestID:         res.TestID,
		TotalEvents:    res.TotalEvents,
		UniqueSessions: res.UniqueSessions,
		GroupBy:        string(res.GroupBy),
		Interval:       string(res.Interval),
		Groups:         make([]VolumeGroupResponse, 0, len(res.Groups)),
	}

	for _, g := range res.Groups {
		resp.Groups = append(resp.Groups, VolumeGroupResponse(g))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func badQuery(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: err.Error(),
	})
}

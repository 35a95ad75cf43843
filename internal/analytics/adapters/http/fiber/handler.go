package fiber

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"quiz-analytics-service/internal/analytics/core/domain"
	"quiz-analytics-service/internal/analytics/core/usecase"
	"quiz-analytics-service/internal/facade"
)

type AnalyticsFacade interface {
	GetFunnelReport(ctx context.Context, in usecase.GetFunnelInput) (*domain.FunnelReport, error)
	GetCohorts(ctx context.Context, weeks int) ([]domain.CohortBucket, error)
	GetChannelShare(ctx context.Context, r domain.DateRange) ([]domain.ChannelShareRow, error)
	GetChannelConversion(ctx context.Context, r domain.DateRange) ([]domain.ChannelConversionRow, error)
	GetDeviceBreakdown(ctx context.Context, r domain.DateRange) ([]domain.DeviceRow, error)
	Overview(ctx context.Context, r domain.DateRange) (*facade.Overview, error)
}

type Validator interface {
	Validate(s any) error
}

type AnalyticsHandler struct {
	facade    AnalyticsFacade
	validator Validator
	logger    *slog.Logger
}

func NewAnalyticsHandler(f AnalyticsFacade, v Validator, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{facade: f, validator: v, logger: logger}
}

// GetFunnel godoc
// @Summary Step conversion funnel
// @Description Counts distinct entities per step over an inclusive unix-seconds range. With test_id the funnel is test_start, test_complete, share counted by session.
// @Tags Analytics
// @Produce json
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Param test_id query string false "Test ID (UUID)"
// @Param steps query string false "Comma separated steps: visit,signup,test_start,test_complete,revisit,share"
// @Success 200 {object} FunnelResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/funnel [get]
func (h *AnalyticsHandler) GetFunnel(c *fiber.Ctx) error {
	var q FunnelQuery
	if err := h.bindQuery(c, &q); err != nil {
		return badQuery(c, err)
	}

	report, err := h.facade.GetFunnelReport(c.UserContext(), usecase.GetFunnelInput{
		Range:  q.toDomain(),
		TestID: q.TestID,
		Steps:  facade.ParseSteps(q.Steps),
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toFunnelResponse(report))
}

// GetCohorts godoc
// @Summary Weekly cohort retention
// @Description Retention grid for the last N ISO weeks, oldest first. Null cells are weeks that have not elapsed yet.
// @Tags Analytics
// @Produce json
// @Param weeks query int false "Number of weeks (1-52, default 8)"
// @Success 200 {object} CohortResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/cohorts [get]
func (h *AnalyticsHandler) GetCohorts(c *fiber.Ctx) error {
	var q CohortQuery
	if err := h.bindQuery(c, &q); err != nil {
		return badQuery(c, err)
	}
	if q.Weeks == 0 {
		q.Weeks = facade.DefaultCohortWeeks
	}

	buckets, err := h.facade.GetCohorts(c.UserContext(), q.Weeks)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toCohortResponse(q.Weeks, buckets))
}

// GetChannelShare godoc
// @Summary Channel traffic share
// @Description Sessions per acquisition channel and their share of all sessions in the range
// @Tags Analytics
// @Produce json
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Success 200 {object} ChannelShareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/channels/share [get]
func (h *AnalyticsHandler) GetChannelShare(c *fiber.Ctx) error {
	var q RangeQuery
	if err := h.bindQuery(c, &q); err != nil {
		return badQuery(c, err)
	}

	rows, err := h.facade.GetChannelShare(c.UserContext(), q.toDomain())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(ChannelShareResponse{
		From:     q.From,
		To:       q.To,
		Channels: toShareRows(rows),
	})
}

// GetChannelConversion godoc
// @Summary Channel conversion rates
// @Description Converted sessions over sessions per acquisition channel
// @Tags Analytics
// @Produce json
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Success 200 {object} ChannelConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/channels/conversion [get]
func (h *AnalyticsHandler) GetChannelConversion(c *fiber.Ctx) error {
	var q RangeQuery
	if err := h.bindQuery(c, &q); err != nil {
		return badQuery(c, err)
	}

	rows, err := h.facade.GetChannelConversion(c.UserContext(), q.toDomain())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(ChannelConversionResponse{
		From:     q.From,
		To:       q.To,
		Channels: toConversionRows(rows),
	})
}

// GetDevices godoc
// @Summary Device breakdown
// @Description Sessions and conversion rate per device type
// @Tags Analytics
// @Produce json
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Success 200 {object} DeviceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/channels/devices [get]
func (h *AnalyticsHandler) GetDevices(c *fiber.Ctx) error {
	var q RangeQuery
	if err := h.bindQuery(c, &q); err != nil {
		return badQuery(c, err)
	}

	rows, err := h.facade.GetDeviceBreakdown(c.UserContext(), q.toDomain())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(DeviceResponse{
		From:    q.From,
		To:      q.To,
		Devices: toDeviceRows(rows),
	})
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Funnel, channel share and channel conversion for one range, computed concurrently
// @Tags Analytics
// @Produce json
// @Param from query int true "From timestamp (unix seconds)"
// @Param to query int true "To timestamp (unix seconds)"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/overview [get]
func (h *AnalyticsHandler) GetOverview(c *fiber.Ctx) error {
	var q RangeQuery
	if err := h.bindQuery(c, &q); err != nil {
		return badQuery(c, err)
	}

	out, err := h.facade.Overview(c.UserContext(), q.toDomain())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(OverviewResponse{
		Funnel:            toFunnelResponse(out.Funnel),
		ChannelShare:      toShareRows(out.ChannelShare),
		ChannelConversion: toConversionRows(out.ChannelConversion),
	})
}

func (h *AnalyticsHandler) bindQuery(c *fiber.Ctx, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return err
	}
	return h.validator.Validate(dst)
}

func badQuery(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: err.Error(),
	})
}

func (h *AnalyticsHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidFunnelStep),
		errors.Is(err, usecase.ErrInvalidWeeks):
		return badQuery(c, err)
	default:
		h.logger.ErrorContext(c.UserContext(), "analytics query failed", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

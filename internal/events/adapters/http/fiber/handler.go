package fiber

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"quiz-analytics-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StoreEventUseCase interface {
	Execute(ctx context.Context, in usecase.StoreEventInput) (bool, error)
	BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
}

type Validator interface {
	Validate(s any) error
}

type EventHandler struct {
	storeUC   StoreEventUseCase
	validator Validator
	logger    *slog.Logger
}

func NewEventHandler(storeUC StoreEventUseCase, v Validator, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{storeUC: storeUC, validator: v, logger: logger}
}

func (r CreateEventRequest) toInput() usecase.StoreEventInput {
	return usecase.StoreEventInput{
		Step:         r.Step,
		SessionID:    r.SessionID,
		UserID:       r.UserID,
		TestID:       r.TestID,
		ShareChannel: r.ShareChannel,
		Timestamp:    r.Timestamp,
		Metadata:     r.Metadata,
	}
}

// CreateEvent godoc
// @Summary Ingest a funnel event
// @Description Stores a single funnel event with idempotency handling
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Success 200 {object} CreateEventResponse "Duplicate event"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	}

	created, err := h.storeUC.Execute(c.UserContext(), req.toInput())
	if err != nil {
		return h.writeError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateEventResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(CreateEventResponse{Status: "created"})
}

// BulkCreateEvents godoc
// @Summary Bulk ingest funnel events
// @Description Validates the whole batch, then stores events individually
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "events_list_required",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	}

	inputs := make([]usecase.StoreEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = e.toInput()
	}

	result, err := h.storeUC.BulkCreateEvents(
		c.UserContext(),
		usecase.BulkCreateEventsInput{Events: inputs},
	)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

func (h *EventHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidEvent),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	default:
		h.logger.ErrorContext(c.UserContext(), "event ingest failed", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

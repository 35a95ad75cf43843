package fiber

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quiz-analytics-service/internal/results/core/domain"
	"quiz-analytics-service/internal/results/core/usecase"
)

type ResolveResultUseCase interface {
	Execute(ctx context.Context, testID string, facts domain.SessionFacts) (*domain.TestResult, error)
	ResolveSession(ctx context.Context, testID, sessionID string) (*domain.TestResult, error)
}

type Validator interface {
	Validate(s any) error
}

type ResultHandler struct {
	uc        ResolveResultUseCase
	validator Validator
	logger    *slog.Logger
}

func NewResultHandler(uc ResolveResultUseCase, v Validator, logger *slog.Logger) *ResultHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResultHandler{uc: uc, validator: v, logger: logger}
}

// ResolveFacts godoc
// @Summary Resolve a result from session facts
// @Description Evaluates the test's candidate results in priority order and returns the first match. result_id is null when nothing matches.
// @Tags Results
// @Accept json
// @Produce json
// @Param testId path string true "Test ID (UUID)"
// @Param request body ResolveRequest true "Answers or session facts"
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tests/{testId}/resolve [post]
func (h *ResultHandler) ResolveFacts(c *fiber.Ctx) error {
	testID, ok := parseUUID(c, "testId")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_test_id",
			Message: "testId must be a UUID",
		})
	}

	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if err := h.validator.Validate(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_facts",
			Message: err.Error(),
		})
	}

	res, err := h.uc.Execute(c.UserContext(), testID, req.toFacts())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

// ResolveSession godoc
// @Summary Resolve a stored session's result
// @Description Loads the session's answers and resolves its result. result_id is null when nothing matches.
// @Tags Results
// @Produce json
// @Param testId path string true "Test ID (UUID)"
// @Param sessionId path string true "Session ID (UUID)"
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tests/{testId}/sessions/{sessionId}/result [get]
func (h *ResultHandler) ResolveSession(c *fiber.Ctx) error {
	testID, ok := parseUUID(c, "testId")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_test_id",
			Message: "testId must be a UUID",
		})
	}

	sessionID, ok := parseUUID(c, "sessionId")
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_session_id",
			Message: "sessionId must be a UUID",
		})
	}

	res, err := h.uc.ResolveSession(c.UserContext(), testID, sessionID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

func (h *ResultHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidTestID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_test_id",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_session_id",
			Message: err.Error(),
		})
	default:
		h.logger.ErrorContext(c.UserContext(), "result resolution failed", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

// parseUUID returns the canonical lower-case form of a UUID path param.
func parseUUID(c *fiber.Ctx, param string) (string, bool) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func (r ResolveRequest) toFacts() domain.SessionFacts {
	if len(r.Answers) > 0 {
		answers := make([]domain.Answer, len(r.Answers))
		for i, a := range r.Answers {
			answers[i] = domain.Answer{
				QuestionID: a.QuestionID,
				ChoiceCode: a.ChoiceCode,
				Score:      a.Score,
				Correct:    a.Correct,
			}
		}
		return domain.DeriveFacts(answers)
	}

	facts := domain.SessionFacts{
		TotalScore:    r.TotalScore,
		ChoiceCounts:  r.ChoiceCounts,
		SelectedCodes: make(map[string]struct{}, len(r.SelectedCodes)),
		AnsweredCount: r.AnsweredCount,
		CorrectCount:  r.CorrectCount,
	}
	if facts.ChoiceCounts == nil {
		facts.ChoiceCounts = map[string]int{}
	}
	for _, code := range r.SelectedCodes {
		facts.SelectedCodes[code] = struct{}{}
	}
	return facts
}

func toResponse(res *domain.TestResult) ResolveResponse {
	if res == nil {
		return ResolveResponse{}
	}
	id := res.ID
	return ResolveResponse{ResultID: &id, Title: res.Title, Order: res.Order}
}

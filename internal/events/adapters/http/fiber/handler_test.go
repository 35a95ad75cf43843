package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quiz-analytics-service/internal/events/core/usecase"
	"quiz-analytics-service/internal/platform/validation"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreEventUseCase struct {
	ExecuteFunc         func(ctx context.Context, in usecase.StoreEventInput) (bool, error)
	BulkCreateFunc      func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error)
	LastExecuteInput    usecase.StoreEventInput
	LastBulkCreateInput usecase.BulkCreateEventsInput
	called              bool
}

func (f *fakeStoreEventUseCase) Execute(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
	f.called = true
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return false, nil
}

func (f *fakeStoreEventUseCase) BulkCreateEvents(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
	f.called = true
	f.LastBulkCreateInput = in
	if f.BulkCreateFunc != nil {
		return f.BulkCreateFunc(ctx, in)
	}
	return usecase.BulkCreateEventsResult{}, nil
}

const testUUID = "3f1b6f0e-2a55-4c39-9a4e-4d1f4a1f9d10"

// helper: create fiber app and routes
func setupTestApp(uc StoreEventUseCase) *fiber.App {
	app := fiber.New()
	h := NewEventHandler(uc, validation.New(), nil)

	app.Post("/events", h.CreateEvent)
	app.Post("/events/bulk", h.BulkCreateEvents)

	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	var respJSON map[string]any
	if err := json.Unmarshal(raw, &respJSON); err != nil {
		t.Fatalf("invalid json response %q: %v", string(raw), err)
	}

	return resp, respJSON
}

func validRequest() CreateEventRequest {
	return CreateEventRequest{
		Step:      "test_start",
		SessionID: "s1",
		UserID:    "user_123",
		TestID:    testUUID,
		Timestamp: time.Now().Add(-time.Minute).Unix(),
		Metadata:  map[string]any{"referrer": "kakao"},
	}
}

func TestCreateEvent_Success_Created(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			return true, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", validRequest())

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusCreated, resp.StatusCode, body)
	}
	if body["status"] != "created" {
		t.Errorf("expected status=created, got %v", body["status"])
	}
	if fakeUC.LastExecuteInput.TestID != testUUID || fakeUC.LastExecuteInput.Step != "test_start" {
		t.Errorf("unexpected input: %+v", fakeUC.LastExecuteInput)
	}
}

func TestCreateEvent_Success_Duplicate(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			// created = false → duplicate
			return false, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", validRequest())

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusOK, resp.StatusCode, body)
	}
	if body["status"] != "duplicate" {
		t.Errorf("expected status=duplicate, got %v", body["status"])
	}
}

func TestCreateEvent_InvalidJSON(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"step":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateEvent_RequestValidation(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	req := validRequest()
	req.Step = "checkout"
	req.TestID = "not-a-uuid"

	resp, body := doRequest(t, app, http.MethodPost, "/events", req)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusBadRequest, resp.StatusCode, body)
	}
	if body["error"] != "invalid_event" {
		t.Errorf("expected error=invalid_event, got %v", body["error"])
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "step") || !strings.Contains(msg, "test_id") {
		t.Errorf("expected both fields in message, got %q", msg)
	}
	if fakeUC.called {
		t.Errorf("use case should not be called on invalid request")
	}
}

func TestCreateEvent_UseCaseValidationError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			return false, usecase.ErrFutureTime
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", validRequest())

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusBadRequest, resp.StatusCode, body)
	}
	if body["error"] != "invalid_event" {
		t.Errorf("expected error=%q, got %v", "invalid_event", body["error"])
	}
}

func TestCreateEvent_InternalError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreEventInput) (bool, error) {
			return false, errors.New("db error")
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events", validRequest())

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusInternalServerError, resp.StatusCode, body)
	}
	if body["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", body["error"])
	}
}

// ---- Bulk tests ----

func TestBulkCreateEvents_MixedCreatedAndDuplicate(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
			return usecase.BulkCreateEventsResult{
				Created:    1,
				Duplicates: 1,
			}, nil
		},
	}

	app := setupTestApp(fakeUC)

	reqBody := BulkCreateEventsRequest{
		Events: []CreateEventRequest{validRequest(), validRequest()},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusCreated, resp.StatusCode, body)
	}
	if int(body["created"].(float64)) != 1 {
		t.Errorf("expected created=1, got %v", body["created"])
	}
	if int(body["duplicates"].(float64)) != 1 {
		t.Errorf("expected duplicates=1, got %v", body["duplicates"])
	}
	if len(fakeUC.LastBulkCreateInput.Events) != 2 {
		t.Errorf("expected 2 events forwarded, got %d", len(fakeUC.LastBulkCreateInput.Events))
	}
}

func TestBulkCreateEvents_EmptyEvents(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", BulkCreateEventsRequest{
		Events: []CreateEventRequest{},
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusBadRequest, resp.StatusCode, body)
	}
	if body["error"] != "events_list_required" {
		t.Errorf("expected error=events_list_required, got %v", body["error"])
	}
}

func TestBulkCreateEvents_InvalidItem(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{}
	app := setupTestApp(fakeUC)

	bad := validRequest()
	bad.SessionID = ""

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", BulkCreateEventsRequest{
		Events: []CreateEventRequest{validRequest(), bad},
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusBadRequest, resp.StatusCode, body)
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "events[1].session_id") {
		t.Errorf("expected failing item in message, got %q", msg)
	}
	if fakeUC.called {
		t.Errorf("use case should not be called on invalid batch")
	}
}

func TestBulkCreateEvents_InternalError(t *testing.T) {
	fakeUC := &fakeStoreEventUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateEventsInput) (usecase.BulkCreateEventsResult, error) {
			return usecase.BulkCreateEventsResult{}, errors.New("db error")
		},
	}

	app := setupTestApp(fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/events/bulk", BulkCreateEventsRequest{
		Events: []CreateEventRequest{validRequest()},
	})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %v)", http.StatusInternalServerError, resp.StatusCode, body)
	}
	if body["error"] != "internal_server_error" {
		t.Errorf("expected error=internal_server_error, got %v", body["error"])
	}
}

package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

// MockTaskStore is a mock implementation of port.TaskStore.
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) ListTasks(ctx context.Context, userID, status string) ([]domain.Task, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskStore) CreateTask(ctx context.Context, userID string, in domain.TaskInput) (*domain.Task, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) UpdateTask(ctx context.Context, userID, taskID string, in domain.TaskInput) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) UpdateTaskStatus(ctx context.Context, userID, taskID, status string) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskStore) DeleteTask(ctx context.Context, userID, taskID string) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

const testUserID = "b7f1c1de-0000-4000-8000-000000000001"

// newAuthedApp builds a Fiber app with an already-verified user context,
// so handler behavior can be tested without the identity round trip.
func newAuthedApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals("user", &domain.UserContext{UserID: testUserID, Email: "student@example.com"})
		return c.Next()
	})
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeErrorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestTaskHandler_CreateRequiresName(t *testing.T) {
	store := new(MockTaskStore)
	app := newAuthedApp()
	NewTaskHandler(store).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/tasks", `{"priority":"High"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Task name is required.", decodeErrorBody(t, resp))
	store.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_CreateReturnsTask(t *testing.T) {
	store := new(MockTaskStore)
	created := &domain.Task{
		ID:        uuid.NewString(),
		UserID:    testUserID,
		Name:      "Read chapter 4",
		Priority:  domain.TaskPriorityHigh,
		Status:    domain.TaskStatusPending,
		CreatedAt: time.Now(),
	}
	store.On("CreateTask", mock.Anything, testUserID, mock.Anything).Return(created, nil)

	app := newAuthedApp()
	NewTaskHandler(store).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/tasks", `{"name":"Read chapter 4","priority":"High"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got domain.Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Read chapter 4", got.Name)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
	store.AssertExpectations(t)
}

func TestTaskHandler_UpdateRequiresName(t *testing.T) {
	store := new(MockTaskStore)
	app := newAuthedApp()
	NewTaskHandler(store).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/tasks/"+uuid.NewString(), `{"name":""}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Task name cannot be empty.", decodeErrorBody(t, resp))
	store.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_UpdateStatusOtherUsersTaskIs404(t *testing.T) {
	// The store scopes every mutation by user id, so another user's task
	// id matches zero rows — reported as the combined 404, never 403.
	store := new(MockTaskStore)
	taskID := uuid.NewString()
	store.On("UpdateTaskStatus", mock.Anything, testUserID, taskID, domain.TaskStatusCompleted).
		Return(nil, port.ErrTaskNotFound)

	app := newAuthedApp()
	NewTaskHandler(store).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/tasks/"+taskID+"/status", `{"status":"Completed"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Task not found or permission denied.", decodeErrorBody(t, resp))
}

func TestTaskHandler_UpdateStatusRequiresStatus(t *testing.T) {
	store := new(MockTaskStore)
	app := newAuthedApp()
	NewTaskHandler(store).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/tasks/"+uuid.NewString()+"/status", `{}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Status is required.", decodeErrorBody(t, resp))
}

func TestTaskHandler_DeleteReturns204EmptyBody(t *testing.T) {
	store := new(MockTaskStore)
	store.On("DeleteTask", mock.Anything, testUserID, mock.Anything).Return(nil)

	app := newAuthedApp()
	NewTaskHandler(store).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/tasks/"+uuid.NewString(), ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestTaskHandler_ListEmptyIsJSONArray(t *testing.T) {
	store := new(MockTaskStore)
	store.On("ListTasks", mock.Anything, testUserID, "").Return([]domain.Task{}, nil)

	app := newAuthedApp()
	NewTaskHandler(store).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/tasks", ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestTaskHandler_ListPassesStatusFilter(t *testing.T) {
	store := new(MockTaskStore)
	store.On("ListTasks", mock.Anything, testUserID, domain.TaskStatusPending).Return([]domain.Task{}, nil)

	app := newAuthedApp()
	NewTaskHandler(store).Register(app)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/tasks?status=Pending", ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	store.AssertExpectations(t)
}

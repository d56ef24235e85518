package event

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/eventdesk/event-manager/internal/handler"
	"github.com/eventdesk/event-manager/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := handler.RegisterValidation(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestHandler_List(t *testing.T) {
	eventService := &mockService{}
	events := []model.Event{
		{Title: "Team sync", Category: "Work"},
		{Title: "Dentist", Category: "Personal"},
	}
	eventService.
		On("FindByUser", mock.Anything, uint(123)).
		Return(events, nil)
	handler := NewHandler(eventService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Request = newGet(t, "/events")

	handler.List(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	var body []model.Event
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body, 2)
	eventService.AssertExpectations(t)
}

func TestHandler_List_Query(t *testing.T) {
	eventService := &mockService{}
	events := []model.Event{
		{Title: "Team sync", Category: "Work"},
		{Title: "Dentist", Category: "Personal"},
	}
	eventService.
		On("FindByUser", mock.Anything, uint(123)).
		Return(events, nil)
	handler := NewHandler(eventService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Request = newGet(t, "/events?query=dent")

	handler.List(c)

	require.Len(t, c.Errors.Errors(), 0)
	var body []model.Event
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Dentist", body[0].Title)
	eventService.AssertExpectations(t)
}

func TestHandler_Create(t *testing.T) {
	eventService := &mockService{}
	event := &model.Event{Title: "Team sync"}
	eventService.
		On("Create", mock.Anything, uint(123), mock.AnythingOfType("event.Input")).
		Return(event, nil)
	handler := NewHandler(eventService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Request = newPost(t, "/events", &SaveEventRequest{
		Title:     "Team sync",
		EventDate: "2099-05-11",
		StartTime: "9",
	})

	handler.Create(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	eventService.AssertExpectations(t)
}

func TestHandler_Create_MalformedDate(t *testing.T) {
	eventService := &mockService{}
	handler := NewHandler(eventService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Request = newPost(t, "/events", &SaveEventRequest{
		Title:     "Team sync",
		EventDate: "11/05/2099",
	})

	handler.Create(c)

	require.Len(t, c.Errors.Errors(), 1)
	eventService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Delete(t *testing.T) {
	eventService := &mockService{}
	eventService.
		On("Delete", mock.Anything, uint(7), uint(123)).
		Return(nil)
	handler := NewHandler(eventService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/events/7", nil)

	handler.Delete(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	eventService.AssertExpectations(t)
}

func TestHandler_Export(t *testing.T) {
	eventService := &mockService{}
	events := []model.Event{
		{
			Title:     "Team sync",
			EventDate: model.NewDate(2024, 5, 11),
			StartTime: model.NewTimeOfDay(9, 0),
			EndTime:   model.NewTimeOfDay(10, 0),
			Category:  "Work",
		},
	}
	eventService.
		On("FindByUser", mock.Anything, uint(123)).
		Return(events, nil)
	handler := NewHandler(eventService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Request = newGet(t, "/events/export")

	handler.Export(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="my_events.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Contains(t, recorder.Body.String(), "Title,Date,Start Time,End Time,Location,Category,Phone")
	assert.Contains(t, recorder.Body.String(), `"Team sync",2024-05-11,09:00,10:00`)
	eventService.AssertExpectations(t)
}

func TestHandler_Export_NoEvents(t *testing.T) {
	eventService := &mockService{}
	eventService.
		On("FindByUser", mock.Anything, uint(123)).
		Return([]model.Event{}, nil)
	handler := NewHandler(eventService)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("user", &model.User{ID: 123})
	c.Request = newGet(t, "/events/export")

	handler.Export(c)

	require.Len(t, c.Errors.Errors(), 0)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "there are no events to export", recorder.Header().Get("X-Export-Notice"))
	eventService.AssertExpectations(t)
}

func newGet(t *testing.T, path string) *http.Request {
	request, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	return request
}

func newPost(t *testing.T, path string, jsonBody any) *http.Request {
	body, err := json.Marshal(jsonBody)
	require.NoError(t, err)
	request, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	return request
}

type mockService struct{ mock.Mock }

func (m *mockService) FindByUser(ctx context.Context, userId uint) ([]model.Event, error) {
	called := m.Called(ctx, userId)
	events, ok := called.Get(0).([]model.Event)
	if ok {
		return events, nil
	}
	return nil, called.Error(1)
}

func (m *mockService) FindById(ctx context.Context, id uint, userId uint) (*model.Event, error) {
	called := m.Called(ctx, id, userId)
	event, ok := called.Get(0).(*model.Event)
	if ok {
		return event, nil
	}
	return nil, called.Error(1)
}

func (m *mockService) Create(ctx context.Context, userId uint, input Input) (*model.Event, error) {
	called := m.Called(ctx, userId, input)
	event, ok := called.Get(0).(*model.Event)
	if ok {
		return event, nil
	}
	return nil, called.Error(1)
}

func (m *mockService) Update(ctx context.Context, id uint, userId uint, input Input) (*model.Event, error) {
	called := m.Called(ctx, id, userId, input)
	event, ok := called.Get(0).(*model.Event)
	if ok {
		return event, nil
	}
	return nil, called.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id uint, userId uint) error {
	called := m.Called(ctx, id, userId)
	return called.Error(0)
}

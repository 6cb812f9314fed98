package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activityhub/core/internal/adapters/repository"
	"github.com/activityhub/core/internal/domain/entities"
	"github.com/activityhub/core/internal/infrastructure/config"
	"github.com/activityhub/core/internal/infrastructure/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "ActivityHub",
			Version:     "test",
			Environment: "test",
		},
		Server: config.ServerConfig{
			Port: 8080,
			Host: "127.0.0.1",
		},
		Database: config.DatabaseConfig{
			Driver: "memory",
		},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: "*",
			RateLimitRequests:  1000,
			RateLimitWindow:    time.Minute,
		},
	}

	srv, err := New(cfg, repository.NewMemoryActivityRepository(), nil, logger.NewNop())
	require.NoError(t, err)

	return srv
}

func doJSON(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

const runActivity = `{
	"id": "1",
	"title": "Run",
	"date": "2024-01-01T18:00:00Z",
	"description": "after-work run",
	"category": "sport",
	"city": "London",
	"venue": "Hyde Park",
	"latitude": 51.5073,
	"longitude": -0.1657
}`

func TestActivityLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Create
	rec := doJSON(srv, http.MethodPost, "/api/activities", runActivity)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var createdID string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &createdID))
	assert.Equal(t, "1", createdID)

	// Read back
	rec = doJSON(srv, http.MethodGet, "/api/activities/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Run", got.Title)
	assert.Equal(t, "sport", got.Category)
	assert.Equal(t, "Hyde Park", got.Venue)
	assert.True(t, got.Date.Equal(time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)))

	// List contains the record
	rec = doJSON(srv, http.MethodGet, "/api/activities", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []entities.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "1", listed[0].ID)

	// Delete
	rec = doJSON(srv, http.MethodDelete, "/api/activities/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Gone
	rec = doJSON(srv, http.MethodGet, "/api/activities/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditActivity_ReplacesRecord(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/activities", runActivity)
	require.Equal(t, http.StatusOK, rec.Code)

	edit := `{
		"id": "1",
		"title": "Swim",
		"date": "2024-02-01T07:00:00Z",
		"category": "sport",
		"city": "London",
		"venue": "Serpentine Lido"
	}`
	rec = doJSON(srv, http.MethodPut, "/api/activities", edit)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Empty(t, rec.Body.String())

	rec = doJSON(srv, http.MethodGet, "/api/activities/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Swim", got.Title)
	assert.Equal(t, "Serpentine Lido", got.Venue)
	assert.Empty(t, got.Description)
	assert.Zero(t, got.Latitude)
}

func TestEditActivity_UnknownIDIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	edit := `{"id": "missing", "title": "Swim", "date": "2024-02-01T07:00:00Z"}`
	rec := doJSON(srv, http.MethodPut, "/api/activities", edit)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditActivity_MissingIDIsRejected(t *testing.T) {
	srv := newTestServer(t)

	edit := `{"title": "Swim", "date": "2024-02-01T07:00:00Z"}`
	rec := doJSON(srv, http.MethodPut, "/api/activities", edit)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateActivity_GeneratesIDWhenOmitted(t *testing.T) {
	srv := newTestServer(t)

	body := `{"title": "Run", "date": "2024-01-01T18:00:00Z"}`
	rec := doJSON(srv, http.MethodPost, "/api/activities", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var id string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &id))
	assert.NotEmpty(t, id)

	rec = doJSON(srv, http.MethodGet, "/api/activities/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateActivity_InvalidBodyIsRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/activities", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateActivity_MissingRequiredFieldsIsRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/activities", `{"description": "no title"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetActivity_EmptyIDIsRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(srv, http.MethodGet, "/api/activities/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteActivity_EmptyIDIsRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(srv, http.MethodDelete, "/api/activities/", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteActivity_UnknownIDIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(srv, http.MethodDelete, "/api/activities/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListActivities_EmptyStore(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(srv, http.MethodGet, "/api/activities", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []entities.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

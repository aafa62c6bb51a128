package api

import (
	"encoding/json"
	"guidance-service/internal/adapters/repositories"
	"guidance-service/internal/api/dto"
	"guidance-service/internal/domain"
	"guidance-service/internal/services"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	repo := repositories.NewMemoryPathRepository(
		domain.StoredPath{
			ID:   "corner",
			Name: "Corner",
			Waypoints: []domain.Waypoint{
				{ID: "a", Location: domain.Coordinates{X: 0, Y: 0}},
				{ID: "b", Location: domain.Coordinates{X: 0, Y: 5}},
				{ID: "c", Location: domain.Coordinates{X: 5, Y: 5}},
			},
		},
		domain.StoredPath{
			ID:   "doorway",
			Name: "Doorway",
			Waypoints: []domain.Waypoint{
				{ID: "a", Location: domain.Coordinates{X: 0, Y: 0}},
				{ID: "b", Location: domain.Coordinates{X: 0, Y: 4}},
				{ID: "c", Location: domain.Coordinates{X: 1, Y: 4}},
			},
		},
		domain.StoredPath{
			ID:   "broken",
			Name: "Broken",
			Waypoints: []domain.Waypoint{
				{ID: "a", Location: domain.Coordinates{X: 0, Y: 0}},
				{ID: "a", Location: domain.Coordinates{X: 0, Y: 3}},
			},
		},
	)
	return NewRouter(services.NewGuidanceService(repo))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestListPaths(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/paths", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListPathsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Paths, 3)
	assert.Equal(t, dto.PathSummaryResponse{PathID: "broken", Name: "Broken", WaypointCount: 2}, res.Paths[0])
	assert.Equal(t, dto.PathSummaryResponse{PathID: "corner", Name: "Corner", WaypointCount: 3}, res.Paths[1])
	assert.Equal(t, dto.PathSummaryResponse{PathID: "doorway", Name: "Doorway", WaypointCount: 3}, res.Paths[2])
}

func TestGetPath(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/paths/corner", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.PathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "corner", res.PathID)
	assert.Equal(t, []dto.WaypointResponse{
		{WaypointID: "a", X: 0, Y: 0},
		{WaypointID: "b", X: 0, Y: 5},
		{WaypointID: "c", X: 5, Y: 5},
	}, res.Waypoints)

	rec = do(t, h, http.MethodGet, "/paths/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuide(t *testing.T) {
	h := newTestRouter()

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "turn",
			target:     "/paths/corner/guidance",
			body:       `{"current":{"x":0,"y":0},"next_waypoint_id":"b"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"distance":5,"event":"turn","direction":"left"}`,
		},
		{
			name:       "destination ahead",
			target:     "/paths/corner/guidance",
			body:       `{"current":{"x":5,"y":1},"next_waypoint_id":"c"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"distance":4,"event":"reaching_destination_ahead","direction":"ahead"}`,
		},
		{
			name:       "destination within one unit of successor",
			target:     "/paths/doorway/guidance",
			body:       `{"current":{"x":0,"y":0},"next_waypoint_id":"b"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"distance":4,"event":"reaching_destination","direction":"left"}`,
		},
		{
			name:       "collinear destination",
			target:     "/paths/doorway/guidance",
			body:       `{"current":{"x":-3,"y":4},"next_waypoint_id":"b"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"distance":3,"event":"reaching_destination","direction":"ahead"}`,
		},
		{
			name:       "unknown waypoint",
			target:     "/paths/corner/guidance",
			body:       `{"current":{"x":0,"y":0},"next_waypoint_id":"zzz"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown path",
			target:     "/paths/nowhere/guidance",
			body:       `{"current":{"x":0,"y":0},"next_waypoint_id":"b"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unusable stored path",
			target:     "/paths/broken/guidance",
			body:       `{"current":{"x":0,"y":0},"next_waypoint_id":"a"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing current",
			target:     "/paths/corner/guidance",
			body:       `{"next_waypoint_id":"b"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing y",
			target:     "/paths/corner/guidance",
			body:       `{"current":{"x":1},"next_waypoint_id":"b"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "x beyond int32",
			target:     "/paths/corner/guidance",
			body:       `{"current":{"x":4294967296,"y":0},"next_waypoint_id":"b"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank waypoint id",
			target:     "/paths/corner/guidance",
			body:       `{"current":{"x":0,"y":0},"next_waypoint_id":"  "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			target:     "/paths/corner/guidance",
			body:       `{"current":{"x":0,"y":0},"next_waypoint_id":"b","heading":90}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "trailing object",
			target:     "/paths/corner/guidance",
			body:       `{"current":{"x":0,"y":0},"next_waypoint_id":"b"}{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGuideMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/paths/corner/guidance", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schultafel/internal/testutil"
)

func TestHealth_WithoutGrid(t *testing.T) {
	hc := NewHealthController(&testutil.MockTimetableService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["has_timetable"])
	assert.NotContains(t, resp, "grid_date")
}

func TestHealth_WithGrid(t *testing.T) {
	svc := &testutil.MockTimetableService{}
	svc.PutCurrent(sampleGrid())
	hc := NewHealthController(svc)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["has_timetable"])
	assert.Equal(t, "2024-02-05", resp["grid_date"])
}

func TestHealth_RejectsPost(t *testing.T) {
	hc := NewHealthController(&testutil.MockTimetableService{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

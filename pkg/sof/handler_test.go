package sof

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(handler *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/portcall/{uid}/events", handler.ReplaceEvents).Methods("PUT")
	router.HandleFunc("/api/portcall/{uid}/events", handler.GetNormalizedEvents).Methods("GET")
	return router
}

func TestHandler_ReplaceAndGetNormalizedEvents(t *testing.T) {
	service, _, uid := setupServiceTest(t)
	router := newTestRouter(NewHandler(service))

	body := `[
		{"label": "Shifting to berth", "category": "anchorage", "startTime": "2026-03-12T10:00:00Z"},
		{"label": "NOR Tendered", "category": "other", "startTime": "2026-03-12T08:00:00Z"},
		{"label": "Loading", "category": "cargo_operations", "startTime": "2026-03-12T12:00:00Z", "endTime": "2026-03-12T16:00:00Z", "status": "Completed"}
	]`
	req := httptest.NewRequest(http.MethodPut, "/api/portcall/"+uid+"/events", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/portcall/"+uid+"/events", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response []EventDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 3)
	// sorted chronologically, with end times filled in
	assert.Equal(t, "NOR Tendered", response[0].Label)
	assert.Equal(t, "2026-03-12T10:00:00Z", response[0].EndTime)
	assert.Equal(t, "Shifting to berth", response[1].Label)
	assert.Equal(t, "2026-03-12T12:00:00Z", response[1].EndTime)
	assert.Equal(t, "Loading", response[2].Label)
}

func TestHandler_ReplaceEventsUnknownCategoryBecomesOther(t *testing.T) {
	service, repo, uid := setupServiceTest(t)
	router := newTestRouter(NewHandler(service))

	body := `[{"label": "Heavy swell", "category": "weather", "startTime": "2026-03-12T08:00:00Z"}]`
	req := httptest.NewRequest(http.MethodPut, "/api/portcall/"+uid+"/events", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	stored, _ := repo.GetEvents(req.Context(), uid)
	require.Len(t, stored, 1)
	assert.Equal(t, CategoryOther, stored[0].Category)
}

func TestHandler_ReplaceEventsInvalidBody(t *testing.T) {
	service, _, uid := setupServiceTest(t)
	router := newTestRouter(NewHandler(service))

	req := httptest.NewRequest(http.MethodPut, "/api/portcall/"+uid+"/events", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReplaceEventsInvalidTimestamp(t *testing.T) {
	service, _, uid := setupServiceTest(t)
	router := newTestRouter(NewHandler(service))

	body := `[{"label": "Arrived", "category": "arrival", "startTime": "12/03/2026 08:00"}]`
	req := httptest.NewRequest(http.MethodPut, "/api/portcall/"+uid+"/events", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReplaceEventsEmptyLabel(t *testing.T) {
	service, _, uid := setupServiceTest(t)
	router := newTestRouter(NewHandler(service))

	body := `[{"label": "", "category": "arrival", "startTime": "2026-03-12T08:00:00Z"}]`
	req := httptest.NewRequest(http.MethodPut, "/api/portcall/"+uid+"/events", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UnknownPortCallReturns404(t *testing.T) {
	service, _, _ := setupServiceTest(t)
	router := newTestRouter(NewHandler(service))

	req := httptest.NewRequest(http.MethodGet, "/api/portcall/"+uuid.NewString()+"/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

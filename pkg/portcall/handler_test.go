package portcall

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
	router.HandleFunc("/api/portcall", handler.CreatePortCall).Methods("POST")
	router.HandleFunc("/api/portcall", handler.ListPortCalls).Methods("GET")
	router.HandleFunc("/api/portcall/{uid}", handler.GetPortCall).Methods("GET")
	router.HandleFunc("/api/portcall/{uid}", handler.DeletePortCall).Methods("DELETE")
	return router
}

func TestHandler_CreateAndGetPortCall(t *testing.T) {
	router := newTestRouter(NewHandler(NewService(NewStubRepository())))

	body := `{"vesselName": "MV Aurora", "portName": "Rotterdam", "voyageNumber": "V042"}`
	req := httptest.NewRequest(http.MethodPost, "/api/portcall", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created PortCallDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Uid)
	assert.Equal(t, "MV Aurora", created.VesselName)

	req = httptest.NewRequest(http.MethodGet, "/api/portcall/"+created.Uid, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched PortCallDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.Uid, fetched.Uid)
	assert.Equal(t, "V042", fetched.VoyageNumber)
}

func TestHandler_CreatePortCallMissingFields(t *testing.T) {
	router := newTestRouter(NewHandler(NewService(NewStubRepository())))

	body := `{"vesselName": "", "portName": "Rotterdam"}`
	req := httptest.NewRequest(http.MethodPost, "/api/portcall", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUnknownPortCall(t *testing.T) {
	router := newTestRouter(NewHandler(NewService(NewStubRepository())))

	req := httptest.NewRequest(http.MethodGet, "/api/portcall/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeletePortCall(t *testing.T) {
	service := NewService(NewStubRepository())
	router := newTestRouter(NewHandler(service))
	created, err := service.Create(httptest.NewRequest(http.MethodGet, "/", nil).Context(), PortCall{VesselName: "MV Aurora", PortName: "Rotterdam"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/portcall/"+created.Uid.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/portcall/"+created.Uid.String(), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListPortCalls(t *testing.T) {
	service := NewService(NewStubRepository())
	router := newTestRouter(NewHandler(service))
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	_, err := service.Create(ctx, PortCall{VesselName: "MV Aurora", PortName: "Rotterdam"})
	require.NoError(t, err)
	_, err = service.Create(ctx, PortCall{VesselName: "MV Borealis", PortName: "Hamburg"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/portcall", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response []PortCallDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
}

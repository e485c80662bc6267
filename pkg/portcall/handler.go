package portcall

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/laydays/laydays/internal/rest"
	log "github.com/sirupsen/logrus"
)

type PortCallDTO struct {
	Uid          string `json:"uid"`
	VesselName   string `json:"vesselName"`
	PortName     string `json:"portName"`
	VoyageNumber string `json:"voyageNumber,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) CreatePortCall(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Creating new port call")

	var createRequest struct {
		VesselName   string `json:"vesselName"`
		PortName     string `json:"portName"`
		VoyageNumber string `json:"voyageNumber"`
	}

	if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	if strings.TrimSpace(createRequest.VesselName) == "" || strings.TrimSpace(createRequest.PortName) == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Missing required fields",
			Details: "vesselName and portName must not be empty",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	portCall, err := h.service.Create(r.Context(), PortCall{
		VesselName:   createRequest.VesselName,
		PortName:     createRequest.PortName,
		VoyageNumber: createRequest.VoyageNumber,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(portCall)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ListPortCalls(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	portCalls, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]PortCallDTO, 0, len(portCalls))
	for _, portCall := range portCalls {
		response = append(response, toDTO(portCall))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetPortCall(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	uid := mux.Vars(r)["uid"]
	portCall, err := h.service.Get(r.Context(), uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(toDTO(*portCall)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeletePortCall(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Deleting port call")

	uid := mux.Vars(r)["uid"]
	if err := h.service.Delete(r.Context(), uid); err != nil {
		if errors.Is(err, ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(portCall PortCall) PortCallDTO {
	return PortCallDTO{
		Uid:          portCall.Uid.String(),
		VesselName:   portCall.VesselName,
		PortName:     portCall.PortName,
		VoyageNumber: portCall.VoyageNumber,
		CreatedAt:    portCall.CreatedAt.Format(time.RFC3339),
	}
}

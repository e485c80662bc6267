package sof

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/laydays/laydays/internal/rest"
	"github.com/laydays/laydays/pkg/portcall"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	Label     string `json:"label"`
	Category  string `json:"category"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Status    string `json:"status,omitempty"`
	Remark    string `json:"remark,omitempty"`
}

func EventToDTO(event Event) EventDTO {
	var startTime, endTime string
	if !event.StartTime.IsZero() {
		startTime = event.StartTime.Format(time.RFC3339)
	}
	if !event.EndTime.IsZero() {
		endTime = event.EndTime.Format(time.RFC3339)
	}
	return EventDTO{
		Label:     event.Label,
		Category:  string(event.Category),
		StartTime: startTime,
		EndTime:   endTime,
		Status:    event.Status,
		Remark:    event.Remark,
	}
}

func eventFromDTO(dto EventDTO) (Event, error) {
	event := Event{
		Label:    dto.Label,
		Category: ParseCategory(dto.Category),
		Status:   dto.Status,
		Remark:   dto.Remark,
	}
	if dto.Label == "" {
		return Event{}, fmt.Errorf("event label must not be empty")
	}
	if dto.StartTime != "" {
		startTime, err := time.Parse(time.RFC3339, dto.StartTime)
		if err != nil {
			return Event{}, fmt.Errorf("invalid startTime %q: %w", dto.StartTime, err)
		}
		event.StartTime = startTime
	}
	if dto.EndTime != "" {
		endTime, err := time.Parse(time.RFC3339, dto.EndTime)
		if err != nil {
			return Event{}, fmt.Errorf("invalid endTime %q: %w", dto.EndTime, err)
		}
		event.EndTime = endTime
	}
	return event, nil
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ReplaceEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Replacing statement of facts events")

	uid := mux.Vars(r)["uid"]

	var eventDTOs []EventDTO
	if err := json.NewDecoder(r.Body).Decode(&eventDTOs); err != nil {
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

	events := make([]Event, 0, len(eventDTOs))
	for _, dto := range eventDTOs {
		event, err := eventFromDTO(dto)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid event",
				Details: err.Error(),
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		events = append(events, event)
	}

	stored, err := h.service.ReplaceEvents(r.Context(), uid, events)
	if err != nil {
		if errors.Is(err, portcall.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]EventDTO, 0, len(stored))
	for _, event := range stored {
		response = append(response, EventToDTO(event))
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetNormalizedEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	uid := mux.Vars(r)["uid"]
	events, err := h.service.NormalizedEvents(r.Context(), uid)
	if err != nil {
		if errors.Is(err, portcall.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]EventDTO, 0, len(events))
	for _, event := range events {
		response = append(response, EventToDTO(event))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

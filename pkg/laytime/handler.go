package laytime

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/laydays/laydays/internal/rest"
	"github.com/laydays/laydays/internal/utils"
	"github.com/laydays/laydays/pkg/portcall"
	"github.com/laydays/laydays/pkg/sof"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	sof.EventDTO
	Counted  bool   `json:"counted"`
	Reason   string `json:"reason"`
	Duration string `json:"duration"`
}

type AllocationDTO struct {
	Events               []EventDTO `json:"events"`
	TotalCountedDuration string     `json:"totalCountedDuration"`
	AllowedDuration      string     `json:"allowedDuration"`
	TimeSaved            string     `json:"timeSaved"`
	Overrun              string     `json:"overrun"`
	OverrunCost          string     `json:"overrunCost,omitempty"`
}

type Handler struct {
	service      Service
	defaultTerms Terms
}

func NewHandler(service Service, defaultTerms Terms) *Handler {
	return &Handler{service, defaultTerms}
}

func (h *Handler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Computing laytime allocation")

	uid := mux.Vars(r)["uid"]

	terms := h.defaultTerms
	if allowedParam := r.URL.Query().Get("allowedMinutes"); allowedParam != "" {
		allowedMinutes, err := strconv.Atoi(allowedParam)
		if err != nil || allowedMinutes < 0 {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid allowedMinutes",
				Details: "allowedMinutes must be a non-negative integer",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		terms.Allowed = time.Duration(allowedMinutes) * time.Minute
	}
	if rateParam := r.URL.Query().Get("dailyRate"); rateParam != "" {
		dailyRate, err := strconv.ParseFloat(rateParam, 64)
		if err != nil || dailyRate < 0 {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid dailyRate",
				Details: "dailyRate must be a non-negative number",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		terms.DailyRate = dailyRate
	}

	allocation, err := h.service.AllocationFor(r.Context(), uid, terms)
	if err != nil {
		if errors.Is(err, portcall.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(allocationToDTO(allocation)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func allocationToDTO(allocation Allocation) AllocationDTO {
	events := make([]EventDTO, 0, len(allocation.Events))
	for _, event := range allocation.Events {
		events = append(events, EventDTO{
			EventDTO: sof.EventToDTO(event.Event),
			Counted:  event.Counted,
			Reason:   event.Reason,
			Duration: utils.FormatDuration(event.Duration()),
		})
	}

	dto := AllocationDTO{
		Events:               events,
		TotalCountedDuration: utils.FormatDuration(allocation.TotalCounted),
		AllowedDuration:      utils.FormatDuration(allocation.Allowed),
		TimeSaved:            utils.FormatDuration(allocation.TimeSaved),
		Overrun:              utils.FormatDuration(allocation.Overrun),
	}
	if allocation.Overrun > 0 {
		dto.OverrunCost = utils.FormatMoney(allocation.OverrunCost)
	}
	return dto
}

package timeline

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/laydays/laydays/internal/utils"
	"github.com/laydays/laydays/pkg/portcall"
	"github.com/laydays/laydays/pkg/sof"
)

type BlockDTO struct {
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	Events      []sof.EventDTO `json:"events"`
	Category    string         `json:"category"`
	DisplayName string         `json:"displayName"`
	Duration    string         `json:"duration"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	uid := mux.Vars(r)["uid"]
	blocks, err := h.service.BlocksFor(r.Context(), uid)
	if err != nil {
		if errors.Is(err, portcall.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]BlockDTO, 0, len(blocks))
	for _, block := range blocks {
		response = append(response, blockToDTO(block))
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func blockToDTO(block Block) BlockDTO {
	events := make([]sof.EventDTO, 0, len(block.Events))
	for _, event := range block.Events {
		events = append(events, sof.EventToDTO(event))
	}
	return BlockDTO{
		StartTime:   block.StartTime.Format(time.RFC3339),
		EndTime:     block.EndTime.Format(time.RFC3339),
		Events:      events,
		Category:    string(block.Category),
		DisplayName: block.DisplayName,
		Duration:    utils.FormatDuration(block.Duration()),
	}
}

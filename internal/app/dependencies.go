package app

import (
	"database/sql"
	"time"

	"github.com/laydays/laydays/internal/config"
	"github.com/laydays/laydays/pkg/laytime"
	"github.com/laydays/laydays/pkg/portcall"
	"github.com/laydays/laydays/pkg/sof"
	"github.com/laydays/laydays/pkg/timeline"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	PortCallService portcall.Service
	EventService    sof.Service
	TimelineService timeline.Service
	LaytimeService  laytime.Service

	PortCallHandler *portcall.Handler
	EventHandler    *sof.Handler
	TimelineHandler *timeline.Handler
	LaytimeHandler  *laytime.Handler
}

// BuildDependencies wires repositories, services, and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	portCallRepo := portcall.NewRepository(db)
	portCallService := portcall.NewService(portCallRepo)

	eventRepo := sof.NewRepository(db)
	eventService := sof.NewService(eventRepo, portCallService)

	timelineService := timeline.NewService(eventService)
	laytimeService := laytime.NewService(eventService)

	defaultTerms := laytime.Terms{
		Allowed:   time.Duration(cfg.Laytime.AllowedMinutes) * time.Minute,
		DailyRate: cfg.Laytime.DailyRate,
	}

	return &Dependencies{
		PortCallService: portCallService,
		EventService:    eventService,
		TimelineService: timelineService,
		LaytimeService:  laytimeService,

		PortCallHandler: portcall.NewHandler(portCallService),
		EventHandler:    sof.NewHandler(eventService),
		TimelineHandler: timeline.NewHandler(timelineService),
		LaytimeHandler:  laytime.NewHandler(laytimeService, defaultTerms),
	}
}

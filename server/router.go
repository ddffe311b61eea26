package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// CalendarHandler is the set of endpoints the router wires up.
type CalendarHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
	UpcomingEvents(w http.ResponseWriter, r *http.Request)
	WeeklySchedules(w http.ResponseWriter, r *http.Request)
	Agenda(w http.ResponseWriter, r *http.Request)
	ExportICS(w http.ResponseWriter, r *http.Request)
	ForecastChart(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	calendarHandler CalendarHandler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	calendarHandler CalendarHandler,
	router *mux.Router) *Router {
	return &Router{
		calendarHandler: calendarHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?verbose={bool}
	r.router.HandleFunc("/v1/events/upcoming", r.calendarHandler.UpcomingEvents).Methods("GET")

	r.router.HandleFunc("/v1/schedules/week", r.calendarHandler.WeeklySchedules).Methods("GET")

	// expects ?days={horizon(int)}
	r.router.HandleFunc("/v1/agenda", r.calendarHandler.Agenda).Methods("GET")

	r.router.HandleFunc("/v1/export.ics", r.calendarHandler.ExportICS).Methods("GET")

	r.router.HandleFunc("/v1/forecast/chart", r.calendarHandler.ForecastChart).Methods("GET")

	r.router.HandleFunc("/ping", r.calendarHandler.Ping).Methods("GET")
}

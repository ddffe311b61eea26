package handlers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strconv"

	"chronos/ical"
	"chronos/models"
	"chronos/models/forecast"
	services "chronos/service"
	"chronos/session"
	"chronos/util"
)

const (
	DAYS_QUERY_ARG    = "days"
	VERBOSE_QUERY_ARG = "verbose"
)

// MinifiedEvent is the small form returned when verbose=false: display
// strings only, ready to render.
type MinifiedEvent struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	Temperature *int   `json:"temperature,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type CalendarHandler struct {
	events    *services.EventService
	schedules *services.ScheduleService
	agenda    *services.AgendaService
	exporter  *ical.Exporter
	sess      *session.Session
}

func NewCalendarHandler(
	events *services.EventService,
	schedules *services.ScheduleService,
	agenda *services.AgendaService,
	exporter *ical.Exporter,
	sess *session.Session) *CalendarHandler {

	return &CalendarHandler{
		events:    events,
		schedules: schedules,
		agenda:    agenda,
		exporter:  exporter,
		sess:      sess,
	}
}

// UpcomingEvents handles GET /v1/events/upcoming. The default response
// is minified display rows; ?verbose=true returns the full events with
// their weather summaries.
func (h *CalendarHandler) UpcomingEvents(w http.ResponseWriter, r *http.Request) {
	verbose := false
	if v := r.URL.Query().Get(VERBOSE_QUERY_ARG); v != "" {
		verbose, _ = strconv.ParseBool(v)
	}

	events, err := h.events.UpcomingWithWeather()
	if err != nil {
		log.Println("Error loading upcoming events:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.transform(events, verbose))
}

func (h *CalendarHandler) transform(events []services.EventWithWeather, verbose bool) interface{} {
	if verbose {
		return events
	}
	min := make([]MinifiedEvent, 0, len(events))
	for _, e := range events {
		row := MinifiedEvent{
			Name:        e.Name,
			Description: e.Description,
			Date:        util.FormatDisplayDate(e.Date, h.sess.DateFormat),
			StartTime:   e.StartTime,
		}
		if e.Weather.MaxTemp != nil {
			t := int(math.Round(*e.Weather.MaxTemp))
			row.Temperature = &t
		}
		if e.Weather.Condition != nil {
			row.Icon = forecast.IconName(*e.Weather.Condition)
		}
		min = append(min, row)
	}
	return min
}

// WeeklySchedules handles GET /v1/schedules/week.
func (h *CalendarHandler) WeeklySchedules(w http.ResponseWriter, r *http.Request) {
	week, err := h.schedules.WeeklyView()
	if err != nil {
		log.Println("Error loading weekly schedules:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, week)
}

// Agenda handles GET /v1/agenda?days={n}. Out-of-range day counts fall
// back to the default horizon inside the service.
func (h *CalendarHandler) Agenda(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get(DAYS_QUERY_ARG); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid argument "+DAYS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		days = parsed
	}

	items, err := h.agenda.Upcoming(days)
	if err != nil {
		log.Println("Error building agenda:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

// ExportICS handles GET /v1/export.ics.
func (h *CalendarHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.UpcomingEvents()
	if err != nil {
		log.Println("Error loading events for export:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	week, err := h.schedules.WeeklyView()
	if err != nil {
		log.Println("Error loading schedules for export:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	var schedules []models.Schedule
	for _, bucket := range week {
		schedules = append(schedules, bucket.Schedules...)
	}

	payload, err := h.exporter.Export(events, schedules)
	if err != nil {
		log.Println("Error serializing calendar:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="chronos.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(payload)); err != nil {
		log.Println("Error writing calendar response:", err)
	}
}

// ForecastChart handles GET /v1/forecast/chart: an HTML page charting
// the max temperature across the upcoming event dates.
func (h *CalendarHandler) ForecastChart(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.UpcomingWithWeather()
	if err != nil {
		log.Println("Error loading events for chart:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var (
		days      []string
		summaries []forecast.Summary
		seen      = map[string]bool{}
	)
	for _, e := range events {
		if seen[e.Date] {
			continue
		}
		seen[e.Date] = true
		days = append(days, e.Date)
		summaries = append(summaries, e.Weather)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderTemperatureChart(w, days, summaries); err != nil {
		log.Println("Error rendering temperature chart:", err)
	}
}

// Ping handles GET /ping
func (h *CalendarHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

package services

import (
	"errors"
	"fmt"
	"log"

	"chronos/api/chronos"
	redisdao "chronos/dao/redis"
	"chronos/models"
	"chronos/models/forecast"
	"chronos/session"
)

// WeatherService resolves the user's city and reduces the forecast
// feed to per-day summaries, caching them per (city, date).
type WeatherService struct {
	chronosApi  chronos.ChronosAPI
	forecastDao *redisdao.RedisForecastDAO
	sess        *session.Session
	sessionPath string
}

// NewWeatherService constructs a WeatherService.
func NewWeatherService(
	chronosApi chronos.ChronosAPI,
	forecastDao *redisdao.RedisForecastDAO,
	sess *session.Session,
	sessionPath string) *WeatherService {

	return &WeatherService{
		chronosApi:  chronosApi,
		forecastDao: forecastDao,
		sess:        sess,
		sessionPath: sessionPath,
	}
}

// City returns the selected city, or nil when none has been resolved.
func (ws *WeatherService) City() *models.City {
	return ws.sess.City
}

// ResolveCity looks up the city for a coordinate pair and persists it
// as the selected weather location.
func (ws *WeatherService) ResolveCity(lat, lon float64) (*models.City, error) {
	city, err := ws.chronosApi.GetWeather(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve city for %.4f,%.4f: %w", lat, lon, err)
	}
	ws.sess.City = city
	if err := ws.sess.Save(ws.sessionPath); err != nil {
		log.Printf("[WeatherService] Failed to persist selected city: %v", err)
	}
	log.Printf("[WeatherService] Selected city %q (%.4f, %.4f)",
		city.Name, city.Coord.Lat, city.Coord.Lon)
	return city, nil
}

// DaySummary returns the reduced forecast for a calendar date.
//
// Both "date beyond the feed horizon" and "fetch failed" land on the
// same empty summary so display code has one no-data path; the error
// return tells them apart for callers that care.
func (ws *WeatherService) DaySummary(date string) (forecast.Summary, error) {
	city := ws.sess.City
	if city == nil {
		return forecast.Summary{}, errors.New("no city selected")
	}

	cached, err := ws.forecastDao.GetDaySummary(city.Name, date)
	if err != nil {
		log.Printf("[WeatherService] Cache read failed for %s/%s: %v", city.Name, date, err)
	} else if cached != nil {
		return *cached, nil
	}

	resp, err := ws.chronosApi.GetForecast(city.Coord.Lat, city.Coord.Lon)
	if err != nil {
		log.Printf("[WeatherService] Forecast fetch failed for %s: %v", city.Name, err)
		return forecast.Summary{}, err
	}

	summary := forecast.MatchDay(date, resp.List)
	if summary.Available() {
		if err := ws.forecastDao.SetDaySummary(city.Name, date, summary); err != nil {
			log.Printf("[WeatherService] Cache write failed for %s/%s: %v", city.Name, date, err)
		}
	}
	return summary, nil
}

// DaySummaries resolves summaries for several dates, sharing one fetch
// per uncached date. Failures degrade to empty summaries.
func (ws *WeatherService) DaySummaries(dates []string) map[string]forecast.Summary {
	out := make(map[string]forecast.Summary, len(dates))
	for _, date := range dates {
		summary, err := ws.DaySummary(date)
		if err != nil {
			// Logged above; the caller renders "no data".
			out[date] = forecast.Summary{}
			continue
		}
		out[date] = summary
	}
	return out
}

// RefreshDaySummaries drops and recomputes the cached summaries for
// the given dates. Used by the periodic refresher so a stale peak does
// not outlive the feed that produced it.
func (ws *WeatherService) RefreshDaySummaries(dates []string) {
	city := ws.sess.City
	if city == nil {
		log.Println("[WeatherService] No city selected; skipping summary refresh")
		return
	}
	for _, date := range dates {
		if err := ws.forecastDao.DeleteDaySummary(city.Name, date); err != nil {
			log.Printf("[WeatherService] Failed to drop cached summary %s/%s: %v", city.Name, date, err)
		}
		if _, err := ws.DaySummary(date); err != nil {
			log.Printf("[WeatherService] Refresh failed for %s/%s: %v", city.Name, date, err)
		}
	}
}

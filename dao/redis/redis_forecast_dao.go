package redis

import (
    "encoding/json"
    "fmt"
    "log"
    "strings"

    "chronos/db"
    "chronos/models/forecast"
)

// DAY_SUMMARY_KEY_FORMAT keys one reduced forecast per (city, date).
const DAY_SUMMARY_KEY_FORMAT = "day_summary_v1:%s:%s"

// RedisForecastDAO caches per-day forecast summaries so each refresh
// cycle does not re-fetch the feed for every event date.
type RedisForecastDAO struct {
    client db.RedisClient
}

// NewRedisForecastDAO initializes a RedisForecastDAO with the Redis client.
func NewRedisForecastDAO(client db.RedisClient) *RedisForecastDAO {
    return &RedisForecastDAO{client: client}
}

// SetDaySummary caches the reduced forecast for a city and date.
func (dao *RedisForecastDAO) SetDaySummary(city, date string, summary forecast.Summary) error {
    key := fmt.Sprintf(DAY_SUMMARY_KEY_FORMAT, city, date)
    data, err := json.Marshal(summary)
    if err != nil {
        return fmt.Errorf("failed to marshal day summary for %s/%s: %w", city, date, err)
    }
    if err := dao.client.Set(key, string(data)); err != nil {
        return fmt.Errorf("failed to set day summary in redis: %w", err)
    }
    return nil
}

// GetDaySummary retrieves the cached summary for a city and date.
// A cache miss returns (nil, nil).
func (dao *RedisForecastDAO) GetDaySummary(city, date string) (*forecast.Summary, error) {
    key := fmt.Sprintf(DAY_SUMMARY_KEY_FORMAT, city, date)
    str, err := dao.client.Get(key)
    if err != nil {
        if isCacheMiss(err) {
            return nil, nil
        }
        return nil, fmt.Errorf("failed to get day summary from redis: %w", err)
    }
    var summary forecast.Summary
    if err := json.Unmarshal([]byte(str), &summary); err != nil {
        return nil, fmt.Errorf("failed to unmarshal day summary JSON: %w", err)
    }
    return &summary, nil
}

// DeleteDaySummary drops the cached summary for a city and date.
func (dao *RedisForecastDAO) DeleteDaySummary(city, date string) error {
    key := fmt.Sprintf(DAY_SUMMARY_KEY_FORMAT, city, date)
    if err := dao.client.Del(key); err != nil {
        return fmt.Errorf("failed to delete day summary key %s: %w", key, err)
    }
    log.Printf("[RedisForecastDAO] Deleted day summary cache for %s/%s", city, date)
    return nil
}

// ListCachedDates returns the dates with a cached summary for a city.
func (dao *RedisForecastDAO) ListCachedDates(city string) ([]string, error) {
    prefix := fmt.Sprintf(DAY_SUMMARY_KEY_FORMAT, city, "")
    keys, err := dao.client.Keys(prefix + "*")
    if err != nil {
        return nil, fmt.Errorf("failed to list day summary keys: %w", err)
    }
    dates := make([]string, 0, len(keys))
    for _, k := range keys {
        dates = append(dates, strings.TrimPrefix(k, prefix))
    }
    return dates, nil
}

// isCacheMiss covers both the go-redis nil reply and the mock client's
// key-not-found error.
func isCacheMiss(err error) bool {
    return strings.Contains(err.Error(), "nil") ||
        strings.Contains(err.Error(), "key not found")
}

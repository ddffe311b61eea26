package forecast

// Response is the multi-day, 3-hour-interval forecast feed the backend
// proxies from the weather provider for a given location.
type Response struct {
	List []Sample `json:"list"`
	City FeedCity `json:"city"`
}

// Sample is one forecast data point at a fixed timestamp.
type Sample struct {
	Dt      int64       `json:"dt"`
	DtTxt   string      `json:"dt_txt"` // "2006-01-02 15:04:05"
	Main    Metrics     `json:"main"`
	Weather []Condition `json:"weather"`
}

// Metrics holds the numeric readings of a sample.
type Metrics struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity int     `json:"humidity"`
}

// Condition is one weather classification of a sample. The Main code
// ("Clear", "Clouds", "Rain", ...) is what the UI keys icons on.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FeedCity is the location block embedded in the forecast feed.
type FeedCity struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Day returns the calendar-date part of the sample timestamp, or the
// empty string when the timestamp is malformed.
func (s Sample) Day() string {
	if len(s.DtTxt) < 10 {
		return ""
	}
	return s.DtTxt[:10]
}

// ConditionMain returns the first-listed condition code, or the empty
// string when the sample carries none.
func (s Sample) ConditionMain() string {
	if len(s.Weather) == 0 {
		return ""
	}
	return s.Weather[0].Main
}

// IconName maps a condition code to the icon identifier the display
// layer uses. Unknown codes fall back to a generic cloud.
func IconName(condition string) string {
	switch condition {
	case "Clear":
		return "sun"
	case "Clouds":
		return "cloud"
	case "Rain":
		return "cloud-rain"
	case "Snow":
		return "cloud-snow"
	case "Thunderstorm":
		return "cloud-lightning"
	default:
		return "cloud"
	}
}

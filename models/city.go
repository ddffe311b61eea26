package models

// City is the resolved weather location, as returned by GET /weather.
// It is persisted in the session file, hence the yaml tags.
type City struct {
	Name  string `json:"name" yaml:"name"`
	Coord Coord  `json:"coord" yaml:"coord"`
}

// Coord is a latitude/longitude pair.
type Coord struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

package entity

import "time"

type WeatherQuery struct {
	Latitude  float64
	Longitude float64
}

func (q WeatherQuery) Validate() error {
	if q.Latitude < -90 || q.Latitude > 90 {
		return NewValidationError("lat", "must be between -90 and 90")
	}

	if q.Longitude < -180 || q.Longitude > 180 {
		return NewValidationError("lon", "must be between -180 and 180")
	}

	return nil
}

type Weather struct {
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Temperature   float64   `json:"temperature"`
	WindSpeed     float64   `json:"windSpeed"`
	WindDirection float64   `json:"windDirection"`
	WeatherCode   int       `json:"weatherCode"`
	ObservedAt    time.Time `json:"observedAt"`
}

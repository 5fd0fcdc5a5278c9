package models

// WeatherObservation is one station-day reading from the weather proxy.
// Values are tenths of a degree / millimeters as delivered upstream; the
// correlator only uses them as relative series so no unit conversion is
// applied.
type WeatherObservation struct {
	Station string  `json:"station"`
	Date    string  `json:"date"` // YYYY-MM-DD
	TMax    float64 `json:"tmax"`
	TMin    float64 `json:"tmin"`
	Prcp    float64 `json:"prcp"`
}

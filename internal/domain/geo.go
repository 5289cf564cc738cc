package domain

// GeoPoint is a WGS 84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the point can be used for distance calculations.
// The (0,0) sentinel that upstream data sources emit for "unknown" is
// treated as invalid.
func (p GeoPoint) Valid() bool {
	if p.Lat == 0 && p.Lon == 0 {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

type Continent string

const (
	ContinentEurope       Continent = "europe"
	ContinentAsia         Continent = "asia"
	ContinentNorthAmerica Continent = "north-america"
	ContinentSouthAmerica Continent = "south-america"
	ContinentAfrica       Continent = "africa"
	ContinentOceania      Continent = "oceania"
)

// Airport is static reference data; the list ships with the binary.
type Airport struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Country string   `json:"country"`
	State   string   `json:"state,omitempty"`
	Coord   GeoPoint `json:"coord"`
}

package geo

import (
	"math"

	"github.com/nmoreaux/skylux/internal/domain"
)

const (
	earthRadiusKm = 6371

	// DefaultDistanceKm is used when neither coordinates nor a known
	// continent pair are available. Distances here feed display estimates,
	// not billing, so a plausible default beats an error.
	DefaultDistanceKm = 5000
)

// continentKm holds representative distances between continent pairs for
// records that carry only coarse region data. Symmetric; same-continent
// pairs use a short intra-continental hop.
var continentKm = map[domain.Continent]map[domain.Continent]float64{
	domain.ContinentEurope: {
		domain.ContinentEurope:       1500,
		domain.ContinentAsia:         6000,
		domain.ContinentNorthAmerica: 7500,
		domain.ContinentSouthAmerica: 10000,
		domain.ContinentAfrica:       5500,
		domain.ContinentOceania:      16000,
	},
	domain.ContinentAsia: {
		domain.ContinentAsia:         3000,
		domain.ContinentNorthAmerica: 10500,
		domain.ContinentSouthAmerica: 17000,
		domain.ContinentAfrica:       8000,
		domain.ContinentOceania:      8500,
	},
	domain.ContinentNorthAmerica: {
		domain.ContinentNorthAmerica: 2500,
		domain.ContinentSouthAmerica: 7000,
		domain.ContinentAfrica:       11000,
		domain.ContinentOceania:      13000,
	},
	domain.ContinentSouthAmerica: {
		domain.ContinentSouthAmerica: 2500,
		domain.ContinentAfrica:       8500,
		domain.ContinentOceania:      12500,
	},
	domain.ContinentAfrica: {
		domain.ContinentAfrica:       3000,
		domain.ContinentOceania:      14000,
	},
	domain.ContinentOceania: {
		domain.ContinentOceania: 2500,
	},
}

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(a, b domain.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// ContinentPairKm returns the table distance for a continent pair, or
// DefaultDistanceKm when either side is unknown.
func ContinentPairKm(from, to domain.Continent) float64 {
	if d, ok := continentKm[from][to]; ok {
		return d
	}
	if d, ok := continentKm[to][from]; ok {
		return d
	}
	return DefaultDistanceKm
}

// Endpoint is one side of a distance estimate: precise coordinates when the
// record has them, a continent as the coarse fallback.
type Endpoint struct {
	Point     domain.GeoPoint
	Continent domain.Continent
}

// EstimateKm picks the best available granularity: Haversine when both
// endpoints carry valid coordinates, the continent table otherwise, and the
// fixed default when even the continents are unknown. Never negative, never
// fails.
func EstimateKm(origin, destination Endpoint) float64 {
	if origin.Point.Valid() && destination.Point.Valid() {
		return HaversineKm(origin.Point, destination.Point)
	}
	return ContinentPairKm(origin.Continent, destination.Continent)
}

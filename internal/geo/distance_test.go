package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmoreaux/skylux/internal/domain"
)

var (
	zurich   = domain.GeoPoint{Lat: 47.4647, Lon: 8.5492}
	heathrow = domain.GeoPoint{Lat: 51.4700, Lon: -0.4543}
)

func TestHaversineKm_KnownPair(t *testing.T) {
	d := HaversineKm(zurich, heathrow)

	// ZRH-LHR great circle is just under 790 km
	assert.InDelta(t, 788, d, 8)
}

func TestHaversineKm_Symmetric(t *testing.T) {
	pairs := [][2]domain.GeoPoint{
		{zurich, heathrow},
		{{Lat: -33.9399, Lon: 151.1753}, {Lat: 40.6413, Lon: -73.7781}},
		{{Lat: 1.3644, Lon: 103.9915}, {Lat: 25.2532, Lon: 55.3657}},
	}
	for _, p := range pairs {
		assert.InDelta(t, HaversineKm(p[0], p[1]), HaversineKm(p[1], p[0]), 1e-9)
	}
}

func TestHaversineKm_ZeroForSamePoint(t *testing.T) {
	assert.InDelta(t, 0, HaversineKm(zurich, zurich), 1e-9)
}

func TestContinentPairKm(t *testing.T) {
	assert.Equal(t, float64(6000), ContinentPairKm(domain.ContinentEurope, domain.ContinentAsia))
	// table lookups are order independent
	assert.Equal(t, float64(6000), ContinentPairKm(domain.ContinentAsia, domain.ContinentEurope))
	assert.Equal(t, float64(13000), ContinentPairKm(domain.ContinentNorthAmerica, domain.ContinentOceania))
}

func TestContinentPairKm_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, float64(DefaultDistanceKm), ContinentPairKm("", ""))
	assert.Equal(t, float64(DefaultDistanceKm), ContinentPairKm(domain.ContinentEurope, "atlantis"))
}

func TestEstimateKm_PrefersCoordinates(t *testing.T) {
	origin := Endpoint{Point: zurich, Continent: domain.ContinentEurope}
	destination := Endpoint{Point: heathrow, Continent: domain.ContinentEurope}

	assert.InDelta(t, HaversineKm(zurich, heathrow), EstimateKm(origin, destination), 1e-9)
}

func TestEstimateKm_InvalidPointUsesContinents(t *testing.T) {
	// (0,0) is the "unknown" sentinel, not a real location
	origin := Endpoint{Point: domain.GeoPoint{}, Continent: domain.ContinentEurope}
	destination := Endpoint{Point: heathrow, Continent: domain.ContinentAsia}

	assert.Equal(t, float64(6000), EstimateKm(origin, destination))
}

func TestEstimateKm_OutOfRangeCoordinateIsDropped(t *testing.T) {
	origin := Endpoint{Point: domain.GeoPoint{Lat: 95, Lon: 8}}
	destination := Endpoint{Point: heathrow}

	assert.Equal(t, float64(DefaultDistanceKm), EstimateKm(origin, destination))
}

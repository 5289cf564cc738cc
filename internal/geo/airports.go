package geo

import (
	"strings"

	"github.com/nmoreaux/skylux/internal/domain"
)

// airports is the static reference list shipped with the binary. The
// marketplace only brokers charters between major private-aviation hubs, so
// a fixed list covers the catalogue.
var airports = []domain.Airport{
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", Coord: domain.GeoPoint{Lat: 47.4647, Lon: 8.5492}},
	{Code: "GVA", Name: "Geneva Airport", City: "Geneva", Country: "Switzerland", Coord: domain.GeoPoint{Lat: 46.2381, Lon: 6.1089}},
	{Code: "LHR", Name: "London Heathrow", City: "London", Country: "United Kingdom", Coord: domain.GeoPoint{Lat: 51.4700, Lon: -0.4543}},
	{Code: "LTN", Name: "London Luton", City: "London", Country: "United Kingdom", Coord: domain.GeoPoint{Lat: 51.8747, Lon: -0.3683}},
	{Code: "LBG", Name: "Paris Le Bourget", City: "Paris", Country: "France", Coord: domain.GeoPoint{Lat: 48.9694, Lon: 2.4414}},
	{Code: "NCE", Name: "Nice Cote d'Azur", City: "Nice", Country: "France", Coord: domain.GeoPoint{Lat: 43.6584, Lon: 7.2159}},
	{Code: "IBZ", Name: "Ibiza Airport", City: "Ibiza", Country: "Spain", Coord: domain.GeoPoint{Lat: 38.8729, Lon: 1.3731}},
	{Code: "OLB", Name: "Olbia Costa Smeralda", City: "Olbia", Country: "Italy", Coord: domain.GeoPoint{Lat: 40.8987, Lon: 9.5176}},
	{Code: "MXP", Name: "Milan Malpensa", City: "Milan", Country: "Italy", Coord: domain.GeoPoint{Lat: 45.6306, Lon: 8.7281}},
	{Code: "VIE", Name: "Vienna International", City: "Vienna", Country: "Austria", Coord: domain.GeoPoint{Lat: 48.1103, Lon: 16.5697}},
	{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "United Arab Emirates", Coord: domain.GeoPoint{Lat: 25.2532, Lon: 55.3657}},
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "United States", State: "NY", Coord: domain.GeoPoint{Lat: 40.6413, Lon: -73.7781}},
	{Code: "TEB", Name: "Teterboro", City: "Teterboro", Country: "United States", State: "NJ", Coord: domain.GeoPoint{Lat: 40.8501, Lon: -74.0608}},
	{Code: "VNY", Name: "Van Nuys", City: "Los Angeles", Country: "United States", State: "CA", Coord: domain.GeoPoint{Lat: 34.2098, Lon: -118.4890}},
	{Code: "MIA", Name: "Miami International", City: "Miami", Country: "United States", State: "FL", Coord: domain.GeoPoint{Lat: 25.7959, Lon: -80.2870}},
	{Code: "SIN", Name: "Singapore Changi", City: "Singapore", Country: "Singapore", Coord: domain.GeoPoint{Lat: 1.3644, Lon: 103.9915}},
	{Code: "HKG", Name: "Hong Kong International", City: "Hong Kong", Country: "China", Coord: domain.GeoPoint{Lat: 22.3080, Lon: 113.9185}},
	{Code: "NBO", Name: "Jomo Kenyatta International", City: "Nairobi", Country: "Kenya", Coord: domain.GeoPoint{Lat: -1.3192, Lon: 36.9278}},
	{Code: "CPT", Name: "Cape Town International", City: "Cape Town", Country: "South Africa", Coord: domain.GeoPoint{Lat: -33.9715, Lon: 18.6021}},
	{Code: "SYD", Name: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia", Coord: domain.GeoPoint{Lat: -33.9399, Lon: 151.1753}},
	{Code: "GIG", Name: "Rio de Janeiro Galeao", City: "Rio de Janeiro", Country: "Brazil", Coord: domain.GeoPoint{Lat: -22.8090, Lon: -43.2506}},
}

// SearchAirports matches code, name, city, or country case-insensitively.
// An empty query returns the full list.
func SearchAirports(query string) []domain.Airport {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]domain.Airport, len(airports))
		copy(out, airports)
		return out
	}
	var out []domain.Airport
	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.City), q) ||
			strings.Contains(strings.ToLower(a.Country), q) {
			out = append(out, a)
		}
	}
	return out
}

// AirportByCode returns the airport for an exact IATA code, nil if unknown.
func AirportByCode(code string) *domain.Airport {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i := range airports {
		if airports[i].Code == code {
			return &airports[i]
		}
	}
	return nil
}

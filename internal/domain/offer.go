package domain

import "time"

type OfferType string

const (
	OfferPrivateJet       OfferType = "private-jet"
	OfferHelicopter       OfferType = "helicopter"
	OfferYacht            OfferType = "yacht"
	OfferLuxuryCar        OfferType = "luxury-car"
	OfferAdventurePackage OfferType = "adventure-package"
	OfferEmptyLeg         OfferType = "empty-leg"
	OfferGroundTransport  OfferType = "ground-transport"
)

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
)

type AircraftCategory string

const (
	AircraftTurboprop    AircraftCategory = "turboprop"
	AircraftLightJet     AircraftCategory = "light-jet"
	AircraftMidsizeJet   AircraftCategory = "midsize-jet"
	AircraftHeavyJet     AircraftCategory = "heavy-jet"
	AircraftUltraLongJet AircraftCategory = "ultra-long-range"
	AircraftRotorcraft   AircraftCategory = "rotorcraft"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Offer is the tagged union over marketplace listing variants. Type is the
// discriminant; exactly one of the variant payload pointers is set per row.
type Offer struct {
	ID             int64     `json:"id"`
	Type           OfferType `json:"type"`
	Title          string    `json:"title"`
	BasePriceCents int64     `json:"base_price_cents"`
	Currency       Currency  `json:"currency"`
	Capacity       int       `json:"capacity"`
	DurationText   string    `json:"duration_text,omitempty"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Jet      *JetDetails      `json:"jet,omitempty"`
	Yacht    *YachtDetails    `json:"yacht,omitempty"`
	Package  *PackageDetails  `json:"package,omitempty"`
	EmptyLeg *EmptyLegDetails `json:"empty_leg,omitempty"`
	Car      *CarDetails      `json:"car,omitempty"`
}

type JetDetails struct {
	Category AircraftCategory `json:"category"`
	RangeKm  int              `json:"range_km,omitempty"`
}

type YachtDetails struct {
	LengthMeters float64 `json:"length_meters"`
	HomePort     string  `json:"home_port,omitempty"`
}

type PackageDetails struct {
	Activities []string        `json:"activities,omitempty"`
	Difficulty Difficulty      `json:"difficulty,omitempty"`
	Inclusions []InclusionFlag `json:"inclusions,omitempty"`
	Exclusions []string        `json:"exclusions,omitempty"`
}

type EmptyLegDetails struct {
	FromAirport     string           `json:"from_airport"`
	ToAirport       string           `json:"to_airport"`
	FromCoord       GeoPoint         `json:"from_coord,omitzero"`
	ToCoord         GeoPoint         `json:"to_coord,omitzero"`
	FromContinent   Continent        `json:"from_continent,omitempty"`
	ToContinent     Continent        `json:"to_continent,omitempty"`
	Departure       time.Time        `json:"departure"`
	DiscountPercent float64          `json:"discount_percent"`
	Category        AircraftCategory `json:"category,omitempty"`
}

type CarDetails struct {
	Model  string `json:"model"`
	Driver bool   `json:"driver"`
}

// AircraftCategory returns the category relevant for the emissions table,
// empty for variants that have no flight component.
func (o *Offer) AircraftCategory() AircraftCategory {
	switch {
	case o.Jet != nil:
		return o.Jet.Category
	case o.Type == OfferHelicopter:
		return AircraftRotorcraft
	case o.EmptyLeg != nil:
		return o.EmptyLeg.Category
	}
	return ""
}

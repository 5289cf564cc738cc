// Package intent extracts best-effort trip intent from free-form chat
// input. It is heuristic and deliberately permissive: false positives are
// an accepted UX tradeoff, and the output is advisory only, to be
// re-confirmed by the user before anything is booked. Keep it isolated
// from the structured-criteria filter path.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// TripIntent is what the heuristics could infer from one utterance. Zero
// values mean "not mentioned".
type TripIntent struct {
	From            string
	To              string
	Passengers      int
	BudgetCents     int64
	AircraftType    string
	NeedsJet        bool
	NeedsCar        bool
	NeedsAdventure  bool
	NeedsEmptyLeg   bool
	NeedsYacht      bool
	NeedsHelicopter bool
}

var (
	fromRe       = regexp.MustCompile(`from\s+([a-z][a-z\s]*?)(?:\s+to\s|,|\.|$)`)
	toRe         = regexp.MustCompile(`\bto\s+([a-z][a-z\s]*?)(?:\s+for\s|\s+with\s|,|\.|$)`)
	passengersRe = regexp.MustCompile(`(\d+)\s*(?:passengers?|people|pax|persons?|guests?|travellers?|travelers?)`)
	budgetRe     = regexp.MustCompile(`(?:budget|under|below|max|up to|around)\s*(?:of\s*)?[€$£]?\s*([\d][\d,.]*)\s*(k)?`)
	aircraftRe   = regexp.MustCompile(`\b(light jet|midsize jet|super midsize|heavy jet|ultra long range|turboprop)\b`)
)

// keyword groups per need flag; matching any word sets the flag.
var needKeywords = map[string][]string{
	"jet":        {"jet", "flight", "fly", "plane", "aircraft"},
	"car":        {"car", "drive", "chauffeur", "limousine"},
	"adventure":  {"adventure", "safari", "trek", "expedition", "hiking"},
	"emptyleg":   {"empty leg", "empty-leg", "deal", "last minute"},
	"yacht":      {"yacht", "boat", "charter", "cruise", "sailing"},
	"helicopter": {"helicopter", "heli", "chopper"},
}

// Parse runs the fixed, ordered heuristic set against one lowercased input.
func Parse(input string) TripIntent {
	text := strings.ToLower(strings.TrimSpace(input))
	var out TripIntent
	if text == "" {
		return out
	}

	if m := fromRe.FindStringSubmatch(text); m != nil {
		out.From = strings.TrimSpace(m[1])
	}
	if m := toRe.FindStringSubmatch(text); m != nil {
		out.To = strings.TrimSpace(m[1])
	}
	if m := passengersRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			out.Passengers = n
		}
	}
	if m := budgetRe.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		raw = strings.TrimSuffix(raw, ".")
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			if m[2] == "k" {
				v *= 1000
			}
			out.BudgetCents = int64(v * 100)
		}
	}
	if m := aircraftRe.FindStringSubmatch(text); m != nil {
		out.AircraftType = m[1]
	}

	out.NeedsJet = containsAny(text, needKeywords["jet"])
	out.NeedsCar = containsAny(text, needKeywords["car"])
	out.NeedsAdventure = containsAny(text, needKeywords["adventure"])
	out.NeedsEmptyLeg = containsAny(text, needKeywords["emptyleg"])
	out.NeedsYacht = containsAny(text, needKeywords["yacht"])
	out.NeedsHelicopter = containsAny(text, needKeywords["helicopter"])
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

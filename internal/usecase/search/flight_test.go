package search

import (
	"regexp"
	"testing"

	"github.com/meridian-travel/tripdex/internal/catalog"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func TestGenerateFlights_Fields(t *testing.T) {
	svc := New(catalog.Static{})

	names := make(map[string]travel.Tier)
	for _, a := range (catalog.Static{}).Airlines() {
		names[a.Name] = a.Tier
	}

	for _, date := range []string{"2025-06-01", "2025-06-02", "2025-07-15"} {
		req := mustRequest(t, travel.Flight, "LHR", "JFK", date, 1)
		for _, o := range svc.generateFlights(req) {
			tier, known := names[o.Provider]
			if !known {
				t.Fatalf("provider %q not in catalog", o.Provider)
			}
			if o.Tier != tier {
				t.Errorf("%s: tier %q, catalog says %q", o.Provider, o.Tier, tier)
			}

			// 90 + up to 239 minutes, budget carriers stretched by 1.1.
			maxDur := 329
			if tier == travel.TierBudget {
				maxDur = 362
			}
			if o.DurationMin < 90 || o.DurationMin > maxDur {
				t.Errorf("duration %d out of [90, %d]", o.DurationMin, maxDur)
			}

			if o.DurationMin <= nonStopMaxMinutes && o.Stops != travel.StopNone {
				t.Errorf("short flight (%dm) classified %q", o.DurationMin, o.Stops)
			}
			if o.Stops != travel.StopNone && o.Stops != travel.StopOne {
				t.Errorf("unexpected stop class %q", o.Stops)
			}

			if !clockRe.MatchString(o.Departure) || !clockRe.MatchString(o.Arrival) {
				t.Errorf("bad time strings %q -> %q", o.Departure, o.Arrival)
			}
			if o.Price <= 0 {
				t.Errorf("price %f must be positive", o.Price)
			}
			if o.FlightNumber == "" {
				t.Error("empty flight number")
			}
			if o.ID == "" {
				t.Error("empty offer id")
			}
		}
	}
}

func TestGenerateFlights_CurrencyRateScalesPrices(t *testing.T) {
	svc := New(catalog.Static{})

	base := svc.generateFlights(mustRequest(t, travel.Flight, "LHR", "JFK", "2025-07-15", 1))
	scaled := svc.generateFlights(mustRequest(t, travel.Flight, "LHR", "JFK", "2025-07-15", 2))

	if len(base) != len(scaled) {
		t.Fatalf("rate changed the count: %d vs %d", len(base), len(scaled))
	}
	for i := range base {
		if scaled[i].Price <= base[i].Price {
			t.Errorf("offer %d: price %f not scaled above %f", i, scaled[i].Price, base[i].Price)
		}
		if scaled[i].DurationMin != base[i].DurationMin {
			t.Errorf("offer %d: rate changed the duration", i)
		}
	}
}

func TestGenerateFlights_StableIDs(t *testing.T) {
	svc := New(catalog.Static{})
	req := mustRequest(t, travel.Flight, "A", "B", "2025-06-01", 1)

	a := svc.generateFlights(req)
	b := svc.generateFlights(req)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("offer %d changed id across runs: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}

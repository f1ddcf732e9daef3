package search

import (
	"testing"

	"github.com/meridian-travel/tripdex/internal/catalog"
	"github.com/meridian-travel/tripdex/internal/domain/query"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

func TestGenerateTrains_Fields(t *testing.T) {
	svc := New(catalog.Static{})

	for _, date := range []string{"2025-08-01", "2025-08-02", "2025-08-03"} {
		req := mustRequest(t, travel.Train, "Berlin", "Munich", date, 1)
		offers := svc.generateTrains(req)

		if len(offers) < 4 || len(offers) > 6 {
			t.Errorf("%s: %d offers, want 4-6", date, len(offers))
		}

		for _, o := range offers {
			if o.Seats < 5 || o.Seats > 49 {
				t.Errorf("seats %d out of [5, 49]", o.Seats)
			}
			if o.DurationMin <= 0 {
				t.Errorf("duration %d must be positive", o.DurationMin)
			}
			if !clockRe.MatchString(o.Departure) || !clockRe.MatchString(o.Arrival) {
				t.Errorf("bad time strings %q -> %q", o.Departure, o.Arrival)
			}
			if o.Price <= 0 {
				t.Errorf("price %f must be positive", o.Price)
			}
			if o.ServiceNumber == "" {
				t.Error("empty service number")
			}
			if o.Class == "" {
				t.Error("empty class")
			}
		}
	}
}

func TestGenerateTrains_EchoesRequestedClass(t *testing.T) {
	svc := New(catalog.Static{})

	req, err := query.New(travel.Train, "Berlin", "Munich", "2025-08-02", 1, 1, "first")
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}

	for _, o := range svc.generateTrains(&req) {
		if o.Class != "first" {
			t.Errorf("class %q, want echoed %q", o.Class, "first")
		}
	}
}

func TestGenerateTrains_SpeedFactorShortensDuration(t *testing.T) {
	// A 2x speed factor must halve the duration relative to a 1x
	// service drawing the same fractions.
	slow := New(stubCatalog{trains: []catalog.TrainService{
		{Name: "Slow Liner", Class: travel.TierBudget, SpeedFactor: 1.0},
	}})
	fast := New(stubCatalog{trains: []catalog.TrainService{
		{Name: "Fast Liner", Class: travel.TierBudget, SpeedFactor: 2.0},
	}})

	req := mustRequest(t, travel.Train, "A", "B", "2025-08-02", 1)
	slowOffers := slow.generateTrains(req)
	fastOffers := fast.generateTrains(req)

	for i := range slowOffers {
		if fastOffers[i].DurationMin >= slowOffers[i].DurationMin {
			t.Errorf("offer %d: fast %dm not below slow %dm",
				i, fastOffers[i].DurationMin, slowOffers[i].DurationMin)
		}
	}
}

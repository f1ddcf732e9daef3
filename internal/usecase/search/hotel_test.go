package search

import (
	"math"
	"strings"
	"testing"

	"github.com/meridian-travel/tripdex/internal/catalog"
	"github.com/meridian-travel/tripdex/internal/domain/query"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

func TestGenerateHotels_Fields(t *testing.T) {
	svc := New(catalog.Static{})

	vocab := make(map[string]struct{})
	for _, a := range (catalog.Static{}).Amenities() {
		vocab[a] = struct{}{}
	}

	req, err := query.New(travel.Hotel, "", "Paris", "2025-09-10", 1, 2, "")
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}

	for _, o := range svc.generateHotels(&req) {
		if o.Rating < 3.0 || o.Rating > 5.0 {
			t.Errorf("%s: rating %f out of [3.0, 5.0]", o.Name, o.Rating)
		}
		// Rounded to one decimal.
		if math.Abs(o.Rating*10-math.Round(o.Rating*10)) > 1e-9 {
			t.Errorf("%s: rating %f not rounded to one decimal", o.Name, o.Rating)
		}

		if o.Reviews < 50 || o.Reviews > 499 {
			t.Errorf("%s: review count %d out of [50, 499]", o.Name, o.Reviews)
		}

		want, ok := hotelAmenityCount[o.Tier]
		if !ok {
			t.Fatalf("%s: unexpected tier %q", o.Name, o.Tier)
		}
		if len(o.Amenities) != want {
			t.Errorf("%s (%s): %d amenities, want %d", o.Name, o.Tier, len(o.Amenities), want)
		}
		seen := make(map[string]struct{})
		for _, a := range o.Amenities {
			if _, known := vocab[a]; !known {
				t.Errorf("%s: amenity %q not in vocabulary", o.Name, a)
			}
			if _, dup := seen[a]; dup {
				t.Errorf("%s: duplicate amenity %q", o.Name, a)
			}
			seen[a] = struct{}{}
		}

		if !strings.HasSuffix(o.Name, " Paris") {
			t.Errorf("hotel name %q missing destination suffix", o.Name)
		}
		if o.Guests != 2 {
			t.Errorf("guests %d, want echoed 2", o.Guests)
		}
		if o.Location == "" {
			t.Error("empty location label")
		}
		if o.Price <= 0 {
			t.Errorf("price %f must be positive", o.Price)
		}
	}
}

func TestAmenitySubset_UnknownTierFallsBack(t *testing.T) {
	vocab := []string{"a", "b", "c", "d", "e", "f"}
	got := amenitySubset(vocab, "presidential", 17)
	if len(got) != hotelAmenityCount[travel.TierBudget] {
		t.Errorf("unknown tier picked %d amenities, want budget size %d",
			len(got), hotelAmenityCount[travel.TierBudget])
	}
}

func TestAmenitySubset_CappedByVocabulary(t *testing.T) {
	got := amenitySubset([]string{"a", "b"}, travel.TierLuxury, 3)
	if len(got) != 2 {
		t.Errorf("picked %d amenities from a 2-entry vocabulary", len(got))
	}
}

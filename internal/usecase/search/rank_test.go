package search

import (
	"reflect"
	"sort"
	"testing"

	"github.com/meridian-travel/tripdex/internal/domain/offer"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

func rankedSet() offer.ResultSet {
	return offer.ResultSet{
		Domain: travel.Flight,
		Offers: []offer.Offer{
			{ID: "a", Price: 300, Score: 60},
			{ID: "b", Price: 100, Score: 85, Recommended: true},
			{ID: "c", Price: 200, Score: 70, Rating: 4.5},
			{ID: "d", Price: 150, Score: 70},
		},
	}
}

func TestMarkRecommended(t *testing.T) {
	offers := []offer.Offer{
		{ID: "a", Score: 60},
		{ID: "b", Score: 80},
		{ID: "c", Score: 70},
	}
	markRecommended(offers)

	for _, o := range offers {
		if o.Recommended != (o.ID == "b") {
			t.Errorf("%s: recommended = %v", o.ID, o.Recommended)
		}
	}
}

func TestMarkRecommended_TieGoesToFirst(t *testing.T) {
	offers := []offer.Offer{
		{ID: "a", Score: 80},
		{ID: "b", Score: 80},
		{ID: "c", Score: 80},
	}
	markRecommended(offers)

	if !offers[0].Recommended {
		t.Error("first max-score offer not recommended")
	}
	if offers[1].Recommended || offers[2].Recommended {
		t.Error("more than one offer recommended on a tie")
	}
}

func TestMarkRecommended_Empty(t *testing.T) {
	markRecommended(nil) // must not panic
}

func TestSort_PriceLow(t *testing.T) {
	got := Sort(rankedSet(), travel.SortPriceLow)
	for i := 1; i < len(got.Offers); i++ {
		if got.Offers[i].Price < got.Offers[i-1].Price {
			t.Fatalf("prices not non-decreasing: %v", prices(got))
		}
	}
}

func TestSort_PriceHigh(t *testing.T) {
	got := Sort(rankedSet(), travel.SortPriceHigh)
	for i := 1; i < len(got.Offers); i++ {
		if got.Offers[i].Price > got.Offers[i-1].Price {
			t.Fatalf("prices not non-increasing: %v", prices(got))
		}
	}
}

func TestSort_Recommended(t *testing.T) {
	got := Sort(rankedSet(), travel.SortRecommended)
	for i := 1; i < len(got.Offers); i++ {
		if got.Offers[i].Score > got.Offers[i-1].Score {
			t.Fatal("scores not non-increasing")
		}
	}
	// Equal scores keep generation order (stable sort).
	if got.Offers[1].ID != "c" || got.Offers[2].ID != "d" {
		t.Errorf("tie order changed: %s before %s", got.Offers[1].ID, got.Offers[2].ID)
	}
}

func TestSort_RatingTreatsMissingAsZero(t *testing.T) {
	got := Sort(rankedSet(), travel.SortRating)
	if got.Offers[0].ID != "c" {
		t.Errorf("first by rating = %s, want c", got.Offers[0].ID)
	}
}

func TestSort_UnknownModeDefaultsToRecommended(t *testing.T) {
	want := Sort(rankedSet(), travel.SortRecommended)
	got := Sort(rankedSet(), "shuffle")
	if !reflect.DeepEqual(want, got) {
		t.Error("unknown mode did not fall back to recommended ordering")
	}
}

func TestSort_IsAPermutationAndDoesNotMutate(t *testing.T) {
	set := rankedSet()
	snapshot := append([]offer.Offer(nil), set.Offers...)

	got := Sort(set, travel.SortPriceLow)

	if !reflect.DeepEqual(set.Offers, snapshot) {
		t.Error("Sort mutated the input set")
	}
	if !sameIDs(set, got) {
		t.Error("Sort changed the offer membership")
	}
}

func prices(s offer.ResultSet) []float64 {
	out := make([]float64, 0, len(s.Offers))
	for _, o := range s.Offers {
		out = append(out, o.Price)
	}
	return out
}

func sameIDs(a, b offer.ResultSet) bool {
	ids := func(s offer.ResultSet) []string {
		out := make([]string, 0, len(s.Offers))
		for _, o := range s.Offers {
			out = append(out, o.ID)
		}
		sort.Strings(out)
		return out
	}
	return reflect.DeepEqual(ids(a), ids(b))
}

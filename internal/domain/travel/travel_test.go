package travel

import "testing"

func TestDomainIsValid(t *testing.T) {
	for _, d := range []Domain{Flight, Hotel, Train} {
		if !d.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", d)
		}
	}

	for _, d := range []Domain{"", "bus", "FLIGHT", "hotels"} {
		if d.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", d)
		}
	}
}

func TestSortModeIsValid(t *testing.T) {
	for _, m := range []SortMode{SortRecommended, SortPriceLow, SortPriceHigh, SortRating} {
		if !m.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", m)
		}
	}

	for _, m := range []SortMode{"", "price", "score", "RECOMMENDED"} {
		if m.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", m)
		}
	}
}

func TestConstants(t *testing.T) {
	if Flight != "flight" || Hotel != "hotel" || Train != "train" {
		t.Errorf("domain constants changed: %q %q %q", Flight, Hotel, Train)
	}
	if SortRecommended != "recommended" {
		t.Errorf("SortRecommended = %q", SortRecommended)
	}
	if StopNone != "Non-stop" || StopOne != "1 Stop" || StopMany != "2+ Stops" {
		t.Errorf("stop class constants changed: %q %q %q", StopNone, StopOne, StopMany)
	}
}

// Package offer defines the generated travel offers and the result set
// returned for one search query.
package offer

import "github.com/meridian-travel/tripdex/internal/domain/travel"

// Offer is one generated candidate. Common fields are always set;
// domain-specific fields are populated only for the matching domain.
// Offers are immutable once the result set is returned: the score is
// written exactly once, at generation time.
type Offer struct {
	ID          string        `json:"id"`
	Domain      travel.Domain `json:"domain"`
	Provider    string        `json:"provider"`
	Tier        travel.Tier   `json:"tier"`
	Price       float64       `json:"price"`
	Score       int           `json:"score"`
	Recommended bool          `json:"recommended"`

	// Flight fields.
	FlightNumber string           `json:"flight_number,omitempty"`
	Departure    string           `json:"departure,omitempty"`
	Arrival      string           `json:"arrival,omitempty"`
	DurationMin  int              `json:"duration_min,omitempty"`
	Stops        travel.StopClass `json:"stops,omitempty"`
	OnTimeRate   float64          `json:"on_time_rate,omitempty"`

	// Hotel fields.
	Name      string   `json:"name,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
	Reviews   int      `json:"reviews,omitempty"`
	Location  string   `json:"location,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Guests    int      `json:"guests,omitempty"`

	// Train fields. Departure/Arrival/DurationMin are shared with flights.
	ServiceNumber string `json:"service_number,omitempty"`
	Seats         int    `json:"seats,omitempty"`
	Class         string `json:"class,omitempty"`
}

// ResultSet is the ordered list of offers produced for one query.
// A non-empty set carries exactly one recommended offer: the one with
// the maximum composite score, ties broken by generation order.
type ResultSet struct {
	Domain travel.Domain `json:"domain"`
	Offers []Offer       `json:"results"`
}

// Recommended returns the recommended offer, if the set has one.
func (s ResultSet) Recommended() (Offer, bool) {
	for _, o := range s.Offers {
		if o.Recommended {
			return o, true
		}
	}
	return Offer{}, false
}

// Len returns the number of offers in the set.
func (s ResultSet) Len() int { return len(s.Offers) }

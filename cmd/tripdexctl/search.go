package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-travel/tripdex"
)

var (
	searchOrigin string
	searchDate   string
	searchRate   float64
	searchGuests int
	searchClass  string
	searchSort   string
	searchAsJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search <domain> <destination>",
	Short: "Search flights, hotels, or trains",
	Long:  "Runs one search. Domain is flight, hotel, or train; destination is the city or airport.\nFlights and trains also need --from.",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchOrigin, "from", "", "origin city or airport")
	searchCmd.Flags().StringVar(&searchDate, "date", "", "travel date (YYYY-MM-DD)")
	searchCmd.Flags().Float64Var(&searchRate, "currency-rate", 1.0, "price multiplier for currency conversion")
	searchCmd.Flags().IntVar(&searchGuests, "guests", 1, "guest count (hotel)")
	searchCmd.Flags().StringVar(&searchClass, "class", "", "requested train class")
	searchCmd.Flags().StringVar(&searchSort, "sort", string(tripdex.SortRecommended), "sort mode: recommended, price_low, price_high, rating")
	searchCmd.Flags().BoolVar(&searchAsJSON, "json", false, "output results as JSON")
	_ = searchCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	engine := tripdex.New()

	set, err := engine.Search(context.Background(), tripdex.Query{
		Domain:       tripdex.Domain(args[0]),
		Origin:       searchOrigin,
		Destination:  args[1],
		Date:         searchDate,
		CurrencyRate: searchRate,
		Guests:       searchGuests,
		TrainClass:   searchClass,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	set = tripdex.Sort(set, tripdex.SortMode(searchSort))

	if searchAsJSON {
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printTable(cmd, set)
	return nil
}

func printTable(cmd *cobra.Command, set tripdex.ResultSet) {
	cmd.Printf("%d %s results\n\n", set.Len(), set.Domain)
	for _, o := range set.Offers {
		marker := " "
		if o.Recommended {
			marker = "*"
		}
		switch set.Domain {
		case tripdex.DomainFlight:
			cmd.Printf("%s [%3d] %-18s %s  %s -> %s  %4dm  %-8s %8.0f\n",
				marker, o.Score, o.Provider, o.FlightNumber, o.Departure, o.Arrival, o.DurationMin, o.Stops, o.Price)
		case tripdex.DomainHotel:
			cmd.Printf("%s [%3d] %-32s %.1f★ (%d reviews)  %-17s %8.0f\n",
				marker, o.Score, o.Name, o.Rating, o.Reviews, o.Location, o.Price)
		case tripdex.DomainTrain:
			cmd.Printf("%s [%3d] %-18s %s  %s -> %s  %4dm  %2d seats  %8.0f\n",
				marker, o.Score, o.Provider, o.ServiceNumber, o.Departure, o.Arrival, o.DurationMin, o.Seats, o.Price)
		}
	}
}

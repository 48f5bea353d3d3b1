// Package main is the command-line entry point for the trip search engine.
// It loads a flight dataset from CSV, runs the search, and prints the ranked
// trips as JSON on stdout. Logs go to stderr so stdout stays machine-readable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/trip-search/flight-trip-search/internal/adapter/csvfile"
	"github.com/trip-search/flight-trip-search/internal/domain"
	"github.com/trip-search/flight-trip-search/internal/infrastructure/logger"
	"github.com/trip-search/flight-trip-search/internal/usecase"
)

// options holds the parsed command line.
type options struct {
	csvPath     string
	origin      string
	destination string
	bags        int
	roundTrip   bool
	minLayover  time.Duration
	maxLayover  time.Duration
	startDate   time.Time
	logLevel    string
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(logger.Config{
		Level:       opts.logLevel,
		Format:      "console",
		ServiceName: "trip-search",
	})

	reader := csvfile.NewReader(opts.csvPath)
	if opts.bags > 0 {
		reader.AddFilter(csvfile.MinBagsFilter(opts.bags))
	}
	if !opts.startDate.IsZero() {
		// Connections always depart after the first leg, so dropping rows
		// before the start date at load time cannot exclude a valid chain.
		reader.AddFilter(csvfile.DepartsAfterFilter(opts.startDate))
	}

	flights, err := reader.Read()
	if err != nil {
		log.Fatal().Err(err).Str("dataset", opts.csvPath).Msg("Failed to load dataset")
	}

	index := usecase.BuildIndex(flights)
	log.Debug().
		Int("flights", index.Size()).
		Int("airports", index.Airports()).
		Msg("Flight index built")

	searcher := usecase.NewTripSearcher(index, nil)
	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      opts.origin,
		Destination: opts.destination,
		Bags:        opts.bags,
		RoundTrip:   opts.roundTrip,
		StartDate:   opts.startDate,
		MinLayover:  opts.minLayover,
		MaxLayover:  opts.maxLayover,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Search failed")
	}

	log.Debug().
		Int("trips", result.Metadata.TotalResults).
		Int64("search_time_ms", result.Metadata.SearchTimeMs).
		Msg("Search finished")

	out, err := json.MarshalIndent(result.Trips, "", "    ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render results")
	}
	fmt.Println(string(out))
}

// parseArgs parses flags and the three positional arguments:
// the dataset path, the origin airport, and the destination airport.
func parseArgs(args []string) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: search [flags] CSV ORIGIN DESTINATION")
		fmt.Fprintln(fs.Output(), "Prints all trips for the route sorted by total price, as JSON.")
		fs.PrintDefaults()
	}

	bags := fs.Int("bags", 0, "number of requested bags")
	roundTrip := fs.Bool("return", false, "search a return trip")
	minLayover := fs.Int("min-layover", int(domain.DefaultMinLayover.Hours()),
		"minimum layover between connections, in hours")
	maxLayover := fs.Int("max-layover", int(domain.DefaultMaxLayover.Hours()),
		"maximum layover between connections, in hours")
	startDate := fs.String("start-date", "", "earliest departure date of the trip (YYYY-MM-DD)")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if len(rest) != 3 {
		fs.Usage()
		return nil, fmt.Errorf("expected 3 arguments (CSV ORIGIN DESTINATION), got %d", len(rest))
	}
	opts.csvPath = rest[0]
	opts.origin = rest[1]
	opts.destination = rest[2]

	if *bags < 0 || *bags > domain.MaxBags {
		return nil, fmt.Errorf("invalid bags value: %d", *bags)
	}
	if *minLayover < 0 || *maxLayover < 0 {
		return nil, fmt.Errorf("layover hours cannot be negative")
	}

	opts.bags = *bags
	opts.roundTrip = *roundTrip
	opts.minLayover = time.Duration(*minLayover) * time.Hour
	opts.maxLayover = time.Duration(*maxLayover) * time.Hour
	opts.logLevel = *logLevel

	if *startDate != "" {
		parsed, err := domain.ParseDate(*startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: want YYYY-MM-DD", *startDate)
		}
		opts.startDate = parsed
	}

	return opts, nil
}

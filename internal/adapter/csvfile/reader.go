// Package csvfile loads and validates the flight dataset from a CSV file.
// It is the only component that sees raw rows: every record it hands to the
// search core has passed header, type, and structural validation, and the
// core does not re-validate.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/trip-search/flight-trip-search/internal/domain"
)

// Columns is the exact header the dataset file must carry, in order.
var Columns = []string{
	"flight_no",
	"origin",
	"destination",
	"departure",
	"arrival",
	"base_price",
	"bag_price",
	"bags_allowed",
}

// Sentinel errors for dataset loading. Row errors carry the 1-based row
// number of the offending line.
var (
	// ErrHeader reports a dataset file whose header row does not match Columns.
	ErrHeader = errors.New("incorrect CSV headers")

	// ErrRow reports a row with a missing, malformed, or out-of-range value.
	ErrRow = errors.New("wrong value in CSV file")
)

// RowFilter drops validated records before they reach the index.
// Returning false excludes the record.
type RowFilter func(domain.Flight) bool

// MinBagsFilter drops flights that cannot carry the requested bag count.
// The search engine prunes these again; filtering at load time just shrinks
// the index for bag-heavy requests.
func MinBagsFilter(bags int) RowFilter {
	return func(f domain.Flight) bool {
		return f.CanCarry(bags)
	}
}

// DepartsAfterFilter drops flights departing before the given instant.
func DepartsAfterFilter(earliest time.Time) RowFilter {
	return func(f domain.Flight) bool {
		return !f.Departure.Before(earliest)
	}
}

// Reader loads flight records from a CSV dataset file.
type Reader struct {
	path    string
	filters []RowFilter
}

// NewReader creates a Reader for the dataset at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// AddFilter registers a row filter. Filters apply after validation, so a
// malformed row still fails the load even when a filter would drop it.
func (r *Reader) AddFilter(f RowFilter) {
	r.filters = append(r.filters, f)
}

// Read loads, validates, and filters the whole dataset.
func (r *Reader) Read() ([]domain.Flight, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	return r.readAll(csv.NewReader(file))
}

// readAll consumes the header and every data row from the CSV reader.
func (r *Reader) readAll(cr *csv.Reader) ([]domain.Flight, error) {
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: expected: %s", ErrHeader, strings.Join(Columns, ", "))
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("%w: expected: %s", ErrHeader, strings.Join(Columns, ", "))
	}

	var flights []domain.Flight
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w at row [%d]: %v", ErrRow, row, err)
		}

		flight, err := parseRow(row, record)
		if err != nil {
			return nil, err
		}
		if r.keep(flight) {
			flights = append(flights, flight)
		}
	}

	return flights, nil
}

// keep applies every registered filter to a validated record.
func (r *Reader) keep(f domain.Flight) bool {
	for _, filter := range r.filters {
		if !filter(f) {
			return false
		}
	}
	return true
}

// headerMatches compares the header row against Columns exactly.
func headerMatches(header []string) bool {
	if len(header) != len(Columns) {
		return false
	}
	for n, want := range Columns {
		if strings.TrimSpace(header[n]) != want {
			return false
		}
	}
	return true
}

// parseRow validates and converts one data row. Errors name the offending
// column and carry the 1-based row number.
func parseRow(row int, record []string) (domain.Flight, error) {
	if len(record) != len(Columns) {
		return domain.Flight{}, rowError(row, fmt.Sprintf("expected %d columns, got %d", len(Columns), len(record)))
	}

	flight := domain.Flight{
		FlightNo:    record[0],
		Origin:      record[1],
		Destination: record[2],
	}

	for n, name := range Columns[:3] {
		if record[n] == "" {
			return domain.Flight{}, rowError(row, name+" cannot be an empty string")
		}
	}

	var err error
	if flight.Departure, err = domain.ParseDateTime(record[3]); err != nil {
		return domain.Flight{}, rowError(row, "departure has an invalid date-time format")
	}
	if flight.Arrival, err = domain.ParseDateTime(record[4]); err != nil {
		return domain.Flight{}, rowError(row, "arrival has an invalid date-time format")
	}

	if flight.BasePrice, err = parsePrice(record[5]); err != nil {
		return domain.Flight{}, rowError(row, "base_price "+err.Error())
	}
	if flight.BagPrice, err = parsePrice(record[6]); err != nil {
		return domain.Flight{}, rowError(row, "bag_price "+err.Error())
	}

	if flight.BagsAllowed, err = parseCount(record[7]); err != nil {
		return domain.Flight{}, rowError(row, "bags_allowed "+err.Error())
	}

	// Structural invariants the core relies on.
	if flight.Origin == flight.Destination {
		return domain.Flight{}, rowError(row, "origin and destination must be different")
	}
	if !flight.Arrival.After(flight.Departure.Time) {
		return domain.Flight{}, rowError(row, "arrival must be after departure")
	}

	return flight, nil
}

// parsePrice converts a non-negative float cell.
func parsePrice(cell string) (float64, error) {
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, errors.New("is not a float number")
	}
	if value < 0 {
		return 0, errors.New("cannot be a negative number")
	}
	return value, nil
}

// parseCount converts a non-negative integer cell.
func parseCount(cell string) (int, error) {
	value, err := strconv.Atoi(cell)
	if err != nil {
		return 0, errors.New("is not an integer number")
	}
	if value < 0 {
		return 0, errors.New("cannot be a negative number")
	}
	return value, nil
}

// rowError builds a row-scoped ErrRow.
func rowError(row int, message string) error {
	return fmt.Errorf("%w at row [%d]: %s", ErrRow, row, message)
}

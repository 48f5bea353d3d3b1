// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/trip-search/flight-trip-search/internal/domain"
)

// MustParseDateTime parses a schedule timestamp in the dataset layout.
// It fails the test if parsing fails.
func MustParseDateTime(t *testing.T, s string) domain.DateTime {
	t.Helper()
	parsed, err := domain.ParseDateTime(s)
	if err != nil {
		t.Fatalf("Failed to parse date-time %s: %v", s, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", s, err)
	}
	return parsed
}

// WriteTempCSV writes content to a temporary file and returns its path.
// The file is removed automatically when the test finishes.
func WriteTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp CSV: %v", err)
	}
	return path
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

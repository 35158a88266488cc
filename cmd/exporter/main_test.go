package main

import (
	"errors"
	"testing"

	"fixtures-exporter/internal/export"
	"fixtures-exporter/internal/providers"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"network", &providers.NetworkError{Provider: "gmsfeed"}, exitNetwork},
		{"parse", &providers.ParseError{Provider: "gmsfeed"}, exitParse},
		{"io", &export.IOError{Path: "data/latest_fixtures.csv"}, exitIO},
		{"unknown", errors.New("boom"), exitIO},
	}

	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Fatalf("%s: expected exit code %d, got %d", tc.name, tc.want, got)
		}
	}
}

package order

import (
	"errors"
	"testing"

	"github.com/signadot/ini-format/go-ini/format"
)

func TestNext(t *testing.T) {
	tests := []struct {
		max  string
		want string
	}{
		{max: Initial(), want: "000000001"},
		{max: "000000001", want: "000000002"},
		{max: "000000041/000000002", want: "000000042"},
	}
	for _, tc := range tests {
		got, err := Next(tc.max)
		if err != nil {
			t.Fatalf("Next(%q): %v", tc.max, err)
		}
		if got != tc.want {
			t.Errorf("Next(%q) = %q, want %q", tc.max, got, tc.want)
		}
	}
}

func TestNextExhausted(t *testing.T) {
	_, err := Next("999999999")
	if !errors.Is(err, format.ErrResource) {
		t.Errorf("want ErrResource, got %v", err)
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		low, high string
	}{
		{low: "000000001", high: "000000002"},
		{low: "000000001", high: ""},
		{low: "000000001/000000001", high: "000000002"},
		{low: "000000001/000000001", high: "000000001/000000002"},
		{low: "000000001", high: "000000001/000000001"},
		{low: "000000001", high: "000000001/000000000/000000001"},
	}
	for _, tc := range tests {
		got, err := Between(tc.low, tc.high)
		if err != nil {
			t.Fatalf("Between(%q, %q): %v", tc.low, tc.high, err)
		}
		if Compare(got, tc.low) <= 0 {
			t.Errorf("Between(%q, %q) = %q, not above low", tc.low, tc.high, got)
		}
		if tc.high != "" && Compare(got, tc.high) >= 0 {
			t.Errorf("Between(%q, %q) = %q, not below high", tc.low, tc.high, got)
		}
	}
}

func TestBetweenEmptyRange(t *testing.T) {
	_, err := Between("000000002", "000000002")
	if !errors.Is(err, format.ErrInvariant) {
		t.Errorf("want ErrInvariant, got %v", err)
	}
}

// Repeated insertion right after the same token must keep producing new
// tokens without touching the neighbors' tokens.
func TestBetweenRepeated(t *testing.T) {
	low, high := "000000001", "000000002"
	prev := low
	for i := 0; i < 40; i++ {
		tok, err := Between(prev, high)
		if err != nil {
			t.Fatalf("insertion %d: %v", i, err)
		}
		if Compare(tok, prev) <= 0 || Compare(tok, high) >= 0 {
			t.Fatalf("insertion %d: %q not in (%q, %q)", i, tok, prev, high)
		}
		prev = tok
	}
}

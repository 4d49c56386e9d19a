package pkg_test

import (
	"testing"

	"github.com/rodrigordgfs/CashWise-API/internal/pkg"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{150, 150},
		{150.006, 150.01},
		{150.004, 150},
		{-150.006, -150.01},
		{-150.004, -150},
		{0.125, 0.13},
		{-0.125, -0.13},
		{0, 0},
	}

	for _, tt := range tests {
		if got := pkg.Round2(tt.in); got != tt.want {
			t.Fatalf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{150, "150.00"},
		{150.5, "150.50"},
		{150.506, "150.51"},
		{0, "0.00"},
		{-42.9, "-42.90"},
	}

	for _, tt := range tests {
		if got := pkg.FormatAmount(tt.in); got != tt.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

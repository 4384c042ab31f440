package service_test

import (
	"testing"

	"github.com/falconsystemsai/UOA/internal/domain/service"
)

func TestSanitizeNumericRejectsNoise(t *testing.T) {
	for _, raw := range []string{"", "abc", "--", "++", "+-", "$", "N/A", "  "} {
		if got := service.SanitizeNumeric(raw); got != nil {
			t.Errorf("SanitizeNumeric(%q) = %+v, expected nil", raw, got)
		}
	}
}

func TestSanitizeNumericStripsFormatting(t *testing.T) {
	got := service.SanitizeNumeric("$50,000")
	if got == nil {
		t.Fatal("expected a filter for $50,000, got nil")
	}
	if got.NumericValue != 50000 {
		t.Errorf("expected numeric value 50000, got %f", got.NumericValue)
	}
	if got.TextValue != "50000" {
		t.Errorf("expected text value \"50000\", got %q", got.TextValue)
	}
}

func TestSanitizeNumericKeepsSignsAndDecimals(t *testing.T) {
	got := service.SanitizeNumeric("-1,250.75 USD")
	if got == nil {
		t.Fatal("expected a filter, got nil")
	}
	if got.NumericValue != -1250.75 {
		t.Errorf("expected -1250.75, got %f", got.NumericValue)
	}
	if got.TextValue != "-1250.75" {
		t.Errorf("expected text \"-1250.75\", got %q", got.TextValue)
	}
}

func TestSanitizeNumericRejectsUnparseableRemainder(t *testing.T) {
	// Digits survive but the cleaned string still fails to parse.
	if got := service.SanitizeNumeric("1.2.3"); got != nil {
		t.Errorf("expected nil for \"1.2.3\", got %+v", got)
	}
}

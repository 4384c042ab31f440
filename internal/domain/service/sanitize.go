package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/falconsystemsai/UOA/internal/domain/model"
)

// SanitizeNumeric parses an untrusted query-string value into a numeric
// filter. All characters except digits, '.', '+' and '-' are stripped, so
// formatted inputs like "$50,000" survive as 50000. Returns nil when the
// cleaned string is empty, consists only of sign characters, or does not
// parse to a finite number. Absence is the only error signal.
func SanitizeNumeric(raw string) *model.NumericFilter {
	var cleaned strings.Builder
	signsOnly := true
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			cleaned.WriteRune(r)
			signsOnly = false
		case r == '+' || r == '-':
			cleaned.WriteRune(r)
		}
	}

	text := cleaned.String()
	if text == "" || signsOnly {
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	return &model.NumericFilter{NumericValue: value, TextValue: text}
}

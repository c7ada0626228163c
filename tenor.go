package czkcurve

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseTenor converts a human tenor label into a maturity in years.
//
// It accepts the forms seen on benchmark pages and in quote sheets:
// "3 months", "9M", "1 year", "10Y", "2 weeks", "1W". A bare number is read
// as years. Matching is case-insensitive.
func ParseTenor(tenor string) (float64, error) {
	s := strings.TrimSpace(strings.ToUpper(tenor))
	if s == "" {
		return 0, fmt.Errorf("empty tenor")
	}

	digits := strings.Builder{}
	for _, r := range s {
		if unicode.IsDigit(r) || r == '.' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("tenor %q has no numeric part", tenor)
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("tenor %q: %w", tenor, err)
	}

	switch {
	case strings.Contains(s, "WEEK") || (strings.HasSuffix(s, "W") && !strings.Contains(s, "Y")):
		return v * 7 / 365, nil
	case strings.Contains(s, "MONTH") || (strings.HasSuffix(s, "M") && !strings.Contains(s, "Y")):
		return v / 12, nil
	default:
		// "year", "Y" suffix or a bare number.
		return v, nil
	}
}

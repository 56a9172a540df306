package common

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ParseAmount normalizes a user-entered monetary string to a float64.
// Full-width digits and punctuation are folded to ASCII, thousands
// separators are stripped, and an empty string or a bare minus sign is
// treated as zero. Anything else non-numeric returns an error so the
// caller can keep the prior value.
func ParseAmount(input string) (float64, error) {
	s := width.Fold.String(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, ",", "")

	if s == "" || s == "-" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a numeric amount: %q", input)
	}
	return v, nil
}

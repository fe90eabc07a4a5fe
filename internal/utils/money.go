package utils

import (
	"fmt"
	"math"
	"strings"
)

// RoundMoney rounds to two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToMinorUnits converts rupees to paise.
func ToMinorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FormatINR renders an amount with the rupee sign and Indian digit grouping,
// e.g. 1234567.5 -> ₹12,34,567.50.
func FormatINR(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	fixed := fmt.Sprintf("%.2f", RoundMoney(v))
	whole, frac, _ := strings.Cut(fixed, ".")

	if len(whole) > 3 {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]

		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}

		if head != "" {
			groups = append([]string{head}, groups...)
		}

		whole = strings.Join(groups, ",") + "," + tail
	}

	return sign + "₹" + whole + "." + frac
}

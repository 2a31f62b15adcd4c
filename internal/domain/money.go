package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount in whole rupees with Indian digit grouping,
// e.g. ₹12,34,567.
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + "₹" + GroupIndian(rounded.Abs().String())
}

// FormatPercent renders a percentage to two places.
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}

// GroupIndian inserts separators into a string of digits: the last three
// digits form one group and every two digits before that another.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a span as a compact "2d 4h 30m" style string.
// Once days are involved all three units are shown; below a day, zero
// trailing units are dropped. A zero (or negative) span renders as "0m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMinutes := int(d.Minutes())
	days := totalMinutes / (24 * 60)
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		if minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatMoney renders a dollar amount with thousands separators and two
// decimal places, e.g. 20000 -> "$20,000.00".
func FormatMoney(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart, decPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, strings.Join(groups, ","), decPart)
}

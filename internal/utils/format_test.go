package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"zero span", 0, "0m"},
		{"negative span clamps to zero", -30 * time.Minute, "0m"},
		{"minutes only", 45 * time.Minute, "45m"},
		{"whole hours", 4 * time.Hour, "4h"},
		{"hours and minutes", 2*time.Hour + 30*time.Minute, "2h 30m"},
		{"exactly one day", 24 * time.Hour, "1d 0h 0m"},
		{"days with remainder", 49*time.Hour + 5*time.Minute, "2d 1h 5m"},
		{"three days", 3 * 24 * time.Hour, "3d 0h 0m"},
		{"sub-minute rounds down", 59 * time.Second, "0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.duration))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0.00"},
		{"no grouping needed", 500.5, "$500.50"},
		{"thousands", 20000, "$20,000.00"},
		{"fifteen and a half thousand", 15500, "$15,500.00"},
		{"millions", 1234567.891, "$1,234,567.89"},
		{"negative", -2500, "-$2,500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount))
		})
	}
}

package utils

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"inventory-manager/core/apperr"

	"github.com/shopspring/decimal"
)

// DateLayout is the MM/DD/YYYY layout used by inventory CSV files.
const DateLayout = "01/02/2006"

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// ParsePrice converts text such as "$5.99" into integer cents.
// A single leading currency symbol is stripped and the fractional part beyond
// cents is truncated. Negative or malformed values are rejected.
func ParsePrice(text string) (int64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperr.NewParse("price", "please enter a price (ex 5.99)")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, apperr.NewParse("price", "please enter a price (ex 5.99)").WrapParent(err)
	}
	if d.IsNegative() {
		return 0, apperr.NewParse("price", "price cannot be negative")
	}

	cents := d.Mul(hundred).Truncate(0)
	if cents.GreaterThan(maxCents) {
		return 0, apperr.NewParse("price", "price is too large")
	}
	return cents.IntPart(), nil
}

// FormatPrice renders cents as "$D.DD", the inverse of ParsePrice.
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// ParseQuantity converts text into a non-negative integer quantity.
func ParseQuantity(text string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, apperr.NewParse("quantity", "please enter a quantity (ex 5)").WrapParent(err)
	}
	if q < 0 {
		return 0, apperr.NewParse("quantity", "quantity cannot be negative")
	}
	return q, nil
}

// ParseDate converts "M/D/YYYY" text into a calendar date at UTC midnight.
// Exactly three numeric components are required and they must form a real date.
func ParseDate(text string) (time.Time, error) {
	bad := apperr.NewParse("date", "please enter a date (ex 04/08/2021)")

	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return time.Time{}, bad
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, bad.WrapParent(err)
		}
		nums[i] = n
	}
	month, day, year := nums[0], nums[1], nums[2]

	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 || year > 9999 {
		return time.Time{}, bad
	}

	// time.Date normalizes overflow (April 31 -> May 1), so a mismatch means
	// the components were not a real calendar date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, bad
	}
	return t, nil
}

// FormatDate renders a date as MM/DD/YYYY, the inverse of ParseDate.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly drops the clock part of t, keeping its calendar day at UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseID converts text into an identifier and checks it against the valid set.
func ParseID(text string, valid []uint) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(text), 10, 0)
	if err != nil {
		return 0, apperr.NewParse("id", "the ID format should be a number").WrapParent(err)
	}
	if !slices.Contains(valid, uint(id)) {
		return 0, apperr.NewLookup("id", fmt.Sprintf("options: %v", valid))
	}
	return uint(id), nil
}

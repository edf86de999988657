// Package duration turns free-text spans like "2 months 1 week" into the
// task counts a plan must contain.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxDays is the longest plan a duration may describe, about ten years.
const MaxDays = 3650

// ErrTooLong is returned by Spec.Validate for durations beyond MaxDays.
var ErrTooLong = errors.New("duration too long")

// maxCount caps a single parsed unit. It sits just above MaxDays so an
// oversized unit still fails Validate while the day arithmetic stays small.
const maxCount = MaxDays + 1

var (
	monthPattern = regexp.MustCompile(`(\d+)\s*months?`)
	weekPattern  = regexp.MustCompile(`(\d+)\s*weeks?`)
	dayPattern   = regexp.MustCompile(`(\d+)\s*days?`)
)

// Spec holds the unit counts found in a duration expression.
type Spec struct {
	Months int `json:"months"`
	Weeks  int `json:"weeks"`
	Days   int `json:"days"`
}

// Totals are the derived task counts for a plan.
type Totals struct {
	TotalDays   int `json:"total_days"`
	TotalWeeks  int `json:"total_weeks"`
	TotalMonths int `json:"total_months"`
}

// Parse extracts month, week and day counts from text. Each unit is matched
// independently; a missing unit is zero and a huge one is capped just above
// MaxDays. Parse never fails.
func Parse(text string) Spec {
	s := strings.ToLower(strings.TrimSpace(text))
	return Spec{
		Months: firstCount(monthPattern, s),
		Weeks:  firstCount(weekPattern, s),
		Days:   firstCount(dayPattern, s),
	}
}

// spanDays is the span of s in days, with a month counted as 30 days.
func (s Spec) spanDays() int {
	return s.Months*30 + s.Weeks*7 + s.Days
}

// Validate reports ErrTooLong when s spans more than MaxDays.
func (s Spec) Validate() error {
	if d := s.spanDays(); d > MaxDays {
		return fmt.Errorf("%w: %d days is more than the %d-day maximum", ErrTooLong, d, MaxDays)
	}
	return nil
}

// Totals derives plan counts from s. Months count as four weeks each and
// are never back-derived from days or weeks; TotalDays is at least 1.
// Counts for a spec that fails Validate are clamped to MaxDays, MaxDays/7
// weeks and MaxDays/30 months.
func (s Spec) Totals() Totals {
	days := s.spanDays()

	var weeks int
	switch {
	case s.Months > 0 || s.Weeks > 0:
		weeks = s.Months*4 + s.Weeks
	case days >= 7:
		weeks = max(1, days/7)
	}

	return Totals{
		TotalDays:   min(max(1, days), MaxDays),
		TotalWeeks:  min(weeks, MaxDays/7),
		TotalMonths: min(s.Months, MaxDays/30),
	}
}

// ParseTotals is shorthand for Parse(text).Totals().
func ParseTotals(text string) Totals {
	return Parse(text).Totals()
}

func firstCount(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Only overflow can get here.
		return maxCount
	}
	return min(n, maxCount)
}

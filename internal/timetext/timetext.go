// Package timetext converts the human-readable posting-time strings shown
// on listing cards into a numeric days-on-site value.
package timetext

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"DealerScanner/internal/domain"
)

var relativeExpr = regexp.MustCompile(`^(\d+)\s+(\w+)\s+ago`)

const (
	minutesPerDay = 24 * 60
	hoursPerDay   = 24
	daysPerWeek   = 7
	daysPerMonth  = 30  // approximate, not calendar-aware
	daysPerYear   = 365 // approximate, not calendar-aware
)

// RelativeDays parses "<n> <unit> ago" text (e.g. "35 minutes ago",
// "2 days ago") into days on site. Sub-day units are rounded to two
// decimals. Anything that does not match the pattern, including an unknown
// unit word, yields an unknown age.
func RelativeDays(text string) domain.Age {
	match := relativeExpr.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return domain.Age{}
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return domain.Age{}
	}

	unit := strings.ToLower(match[2])
	switch {
	case strings.Contains(unit, "minute"):
		return domain.KnownAge(round2(float64(value) / minutesPerDay))
	case strings.Contains(unit, "hour"):
		return domain.KnownAge(round2(float64(value) / hoursPerDay))
	case strings.Contains(unit, "day"):
		return domain.KnownAge(float64(value))
	case strings.Contains(unit, "week"):
		return domain.KnownAge(float64(value * daysPerWeek))
	case strings.Contains(unit, "month"):
		return domain.KnownAge(float64(value * daysPerMonth))
	case strings.Contains(unit, "year"):
		return domain.KnownAge(float64(value * daysPerYear))
	default:
		return domain.Age{}
	}
}

// AbsoluteDays parses a fixed YYYY-MM-DD posting date and returns the whole
// days elapsed until now, truncated. Unparseable text yields an unknown
// age; the caller decides whether that deserves a warning.
func AbsoluteDays(text string, now time.Time) domain.Age {
	posted, err := time.Parse("2006-01-02", strings.TrimSpace(text))
	if err != nil {
		return domain.Age{}
	}
	return domain.KnownAge(math.Trunc(now.Sub(posted).Hours() / hoursPerDay))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

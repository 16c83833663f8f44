package timetext

import (
	"testing"
	"time"
)

func TestRelativeDays(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want float64
	}{
		{"35 minutes ago", 0.02},
		{"1 minute ago", 0},
		{"12 hours ago", 0.5},
		{"2 days ago", 2},
		{"1 day ago", 1},
		{"3 weeks ago", 21},
		{"2 months ago", 60},
		{"1 year ago", 365},
	}

	for _, tc := range cases {
		got := RelativeDays(tc.text)
		if !got.Known {
			t.Fatalf("RelativeDays(%q) unexpectedly unknown", tc.text)
		}
		if got.Days != tc.want {
			t.Fatalf("RelativeDays(%q) = %v, want %v", tc.text, got.Days, tc.want)
		}
	}
}

func TestRelativeDaysUnparseable(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"garbage", "", "yesterday", "ago 2 days", "2 fortnights ago"} {
		if got := RelativeDays(text); got.Known {
			t.Fatalf("RelativeDays(%q) = %v, want unknown", text, got.Days)
		}
	}
}

func TestAbsoluteDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	got := AbsoluteDays("2025-03-10", now)
	if !got.Known || got.Days != 5 {
		t.Fatalf("AbsoluteDays(2025-03-10) = %+v, want 5 days", got)
	}

	// Partial days truncate toward zero.
	got = AbsoluteDays("2025-03-15", now)
	if !got.Known || got.Days != 0 {
		t.Fatalf("same-day listing should be 0 days, got %+v", got)
	}
}

func TestAbsoluteDaysUnparseable(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	for _, text := range []string{"15/03/2025", "March 10", ""} {
		if got := AbsoluteDays(text, now); got.Known {
			t.Fatalf("AbsoluteDays(%q) = %v, want unknown", text, got.Days)
		}
	}
}

package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in        string
		hour, min int
	}{
		{"09:30", 9, 30},
		{"17:00", 17, 0},
		{"7:5", 7, 5},
		{"", 0, 0},
		{"garbage", 0, 0},
		{"12:xx", 12, 0},
		{"xx:45", 0, 45},
		{" 08:15 ", 8, 15},
	}
	for _, tt := range tests {
		h, m := ParseClock(tt.in)
		if h != tt.hour || m != tt.min {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.in, h, m, tt.hour, tt.min)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 12, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(from, to); got != 2 {
		t.Errorf("DaysBetween = %d, want 2", got)
	}
	if got := DaysBetween(to, from); got != -2 {
		t.Errorf("reverse DaysBetween = %d, want -2", got)
	}
	if got := DaysBetween(from, from); got != 0 {
		t.Errorf("same-day DaysBetween = %d, want 0", got)
	}
}

func TestCategory(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{8, Morning},
		{11, Morning},
		{12, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{22, Evening},
	}
	for _, tt := range tests {
		got := Category(day.Add(time.Duration(tt.hour) * time.Hour))
		if got != tt.want {
			t.Errorf("Category(hour=%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestAdjacent(t *testing.T) {
	if !Adjacent(Morning, Afternoon) || !Adjacent(Afternoon, Evening) {
		t.Error("expected morning↔afternoon and afternoon↔evening adjacency")
	}
	if Adjacent(Morning, Evening) || Adjacent(Evening, Morning) {
		t.Error("morning and evening must not be adjacent")
	}
}

func TestLoadLocationFallback(t *testing.T) {
	if loc := LoadLocation("Not/AZone"); loc != time.UTC {
		t.Errorf("unknown zone should fall back to UTC, got %v", loc)
	}
	if loc := LoadLocation(""); loc != time.UTC {
		t.Errorf("empty zone should fall back to UTC, got %v", loc)
	}
}

func TestAtClock(t *testing.T) {
	day := time.Date(2026, 3, 10, 15, 42, 7, 0, time.UTC)
	got := AtClock(day, "12:30")
	want := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AtClock = %v, want %v", got, want)
	}
}

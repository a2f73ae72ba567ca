package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/gcalendar"
	"smart-task-scheduler/pkg/log"
)

// Monday 2026-03-09.
var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func weekdayPrefs() model.SchedulingPreferences {
	return model.DefaultPreferences("user-1")
}

func TestBuildWindowsSubtractsBusyTime(t *testing.T) {
	busy := []availability.BusyInterval{
		{Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour)},
		{Start: monday.Add(14 * time.Hour), End: monday.Add(15 * time.Hour)},
	}

	windows := availability.BuildWindows(monday, monday, weekdayPrefs(), busy)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}

	w := windows[0]
	if len(w.Slots) != 3 {
		t.Fatalf("expected 3 free blocks around the busy spans, got %d: %+v", len(w.Slots), w.Slots)
	}
	// 09-10, 11-14, 15-17.
	wantMinutes := []int{60, 180, 120}
	for i, s := range w.Slots {
		if got := s.Minutes(); got != wantMinutes[i] {
			t.Errorf("block %d = %d minutes, want %d", i, got, wantMinutes[i])
		}
		if !s.Available {
			t.Errorf("block %d should be available", i)
		}
	}

	if w.FreeMinutes != 360 || w.BusyMinutes != 120 {
		t.Errorf("free=%d busy=%d, want 360/120", w.FreeMinutes, w.BusyMinutes)
	}
	if w.FreeMinutes+w.BusyMinutes != 480 {
		t.Errorf("free+busy must equal the 8-hour working span")
	}
}

func TestBuildWindowsSkipsNonWorkingDays(t *testing.T) {
	saturday := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	sunday := saturday.AddDate(0, 0, 1)

	windows := availability.BuildWindows(saturday, sunday, weekdayPrefs(), nil)
	if len(windows) != 0 {
		t.Errorf("expected no windows over a weekend, got %d", len(windows))
	}

	// Friday through Monday yields exactly the two weekdays.
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	windows = availability.BuildWindows(friday, friday.AddDate(0, 0, 3), weekdayPrefs(), nil)
	if len(windows) != 2 {
		t.Fatalf("expected friday and monday, got %d windows", len(windows))
	}
	if windows[0].FreeMinutes != 480 || windows[1].FreeMinutes != 480 {
		t.Errorf("untouched working days should be fully free")
	}
}

func TestBuildWindowsFullyBusyDay(t *testing.T) {
	busy := []availability.BusyInterval{
		{Start: monday.Add(8 * time.Hour), End: monday.Add(18 * time.Hour)},
	}
	windows := availability.BuildWindows(monday, monday, weekdayPrefs(), busy)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	if windows[0].FreeMinutes != 0 || windows[0].BusyMinutes != 480 {
		t.Errorf("fully booked day: free=%d busy=%d", windows[0].FreeMinutes, windows[0].BusyMinutes)
	}
	if len(windows[0].Slots) != 0 {
		t.Errorf("no free blocks expected, got %+v", windows[0].Slots)
	}
}

func TestBuildWindowsHonorsHalfHourWorkingHours(t *testing.T) {
	prefs := weekdayPrefs()
	prefs.WorkingHoursStart = "09:30"
	prefs.WorkingHoursEnd = "17:15"

	windows := availability.BuildWindows(monday, monday, prefs, nil)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}

	w := windows[0]
	if len(w.Slots) != 1 {
		t.Fatalf("expected a single free block, got %+v", w.Slots)
	}
	wantStart := monday.Add(9*time.Hour + 30*time.Minute)
	wantEnd := monday.Add(17*time.Hour + 15*time.Minute)
	if !w.Slots[0].Start.Equal(wantStart) || !w.Slots[0].End.Equal(wantEnd) {
		t.Errorf("block = %v-%v, want %v-%v", w.Slots[0].Start, w.Slots[0].End, wantStart, wantEnd)
	}
	if w.FreeMinutes != 465 {
		t.Errorf("free = %d minutes, want 465", w.FreeMinutes)
	}
}

type fakeCalendar struct {
	busy      []gcalendar.BusyInterval
	events    []gcalendar.Event
	err       error
	freeBusyN int
	listN     int
}

func (f *fakeCalendar) FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyInterval, error) {
	f.freeBusyN++
	return f.busy, f.err
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.listN++
	return f.events, f.err
}

func TestServiceCachesSnapshots(t *testing.T) {
	fake := &fakeCalendar{
		busy: []gcalendar.BusyInterval{
			{Start: monday.Add(12 * time.Hour), End: monday.Add(13 * time.Hour)},
		},
		events: []gcalendar.Event{
			{
				ID:              "ev-1",
				Summary:         "Managed block",
				StartTime:       monday.Add(12 * time.Hour),
				EndTime:         monday.Add(13 * time.Hour),
				PrivateMetadata: map[string]string{"smartScheduler": "true", "taskId": "task-9"},
			},
			{
				ID:        "ev-2",
				Summary:   "External meeting",
				StartTime: monday.Add(15 * time.Hour),
				EndTime:   monday.Add(16 * time.Hour),
			},
		},
	}
	svc := availability.NewService(fake, log.NewNoop(), time.Minute)
	sc := model.Scope{UserID: "user-1"}

	snap, err := svc.Snapshot(context.Background(), sc, monday, monday.AddDate(0, 0, 1), weekdayPrefs())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Windows) == 0 {
		t.Fatal("expected windows")
	}
	if len(snap.Existing) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(snap.Existing))
	}
	if !snap.Existing[0].Managed || snap.Existing[0].TaskID != "task-9" {
		t.Errorf("owner-tagged event should be managed with its task id: %+v", snap.Existing[0])
	}
	if snap.Existing[1].Managed {
		t.Errorf("external event must not be managed")
	}

	if _, err := svc.Snapshot(context.Background(), sc, monday, monday.AddDate(0, 0, 1), weekdayPrefs()); err != nil {
		t.Fatalf("Snapshot (cached): %v", err)
	}
	if fake.freeBusyN != 1 || fake.listN != 1 {
		t.Errorf("second call should hit the cache, api calls: freebusy=%d list=%d", fake.freeBusyN, fake.listN)
	}

	svc.Invalidate(sc, monday, monday.AddDate(0, 0, 1))
	if _, err := svc.Snapshot(context.Background(), sc, monday, monday.AddDate(0, 0, 1), weekdayPrefs()); err != nil {
		t.Fatalf("Snapshot (after invalidate): %v", err)
	}
	if fake.freeBusyN != 2 {
		t.Errorf("invalidate should force a refetch, freebusy calls = %d", fake.freeBusyN)
	}
}

func TestServicePropagatesAPIErrors(t *testing.T) {
	fake := &fakeCalendar{err: errors.New("calendar unavailable")}
	svc := availability.NewService(fake, log.NewNoop(), time.Minute)

	_, err := svc.Snapshot(context.Background(), model.Scope{UserID: "user-1"}, monday, monday.AddDate(0, 0, 1), weekdayPrefs())
	if err == nil {
		t.Fatal("expected error from the calendar client")
	}
}

package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/pkg/gcalendar"
	"smart-task-scheduler/pkg/log"
)

// CalendarClient is the slice of the calendar API the service needs.
type CalendarClient interface {
	FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyInterval, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Snapshot is a point-in-time view of a user's calendar: the free
// windows plus the bookings occupying the rest.
type Snapshot struct {
	Windows  []model.AvailabilityWindow
	Existing []model.ScheduledTask
	TakenAt  time.Time
}

// ownerMetadataKey marks events created by this system.
const ownerMetadataKey = "smartScheduler"

const taskIDMetadataKey = "taskId"

// Service fetches calendar state and caches snapshots per user+range so
// repeated scheduling calls within the TTL reuse one API round trip.
type Service struct {
	client CalendarClient
	cache  *expirable.LRU[string, Snapshot]
	l      log.Logger
	now    func() time.Time
}

// NewService builds a Service with the given snapshot TTL. A TTL of
// zero disables expiry, which is only useful in tests.
func NewService(client CalendarClient, l log.Logger, ttl time.Duration) *Service {
	return &Service{
		client: client,
		cache:  expirable.NewLRU[string, Snapshot](256, nil, ttl),
		l:      l,
		now:    time.Now,
	}
}

// Snapshot returns the cached calendar view for the user and range, or
// fetches a fresh one.
func (s *Service) Snapshot(ctx context.Context, sc model.Scope, from, to time.Time, prefs model.SchedulingPreferences) (Snapshot, error) {
	key := cacheKey(sc.UserID, from, to)
	if snap, ok := s.cache.Get(key); ok {
		s.l.Debugf(ctx, "availability: cache hit user=%s range=%s..%s", sc.UserID, from.Format(time.RFC3339), to.Format(time.RFC3339))
		return snap, nil
	}

	busy, err := s.client.FreeBusy(ctx, gcalendar.FreeBusyRequest{
		CalendarID: prefs.DefaultCalendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetching free/busy: %w", err)
	}

	events, err := s.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: prefs.DefaultCalendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("listing events: %w", err)
	}

	intervals := make([]BusyInterval, 0, len(busy))
	for _, b := range busy {
		intervals = append(intervals, BusyInterval{Start: b.Start, End: b.End})
	}

	snap := Snapshot{
		Windows:  BuildWindows(from, to, prefs, intervals),
		Existing: toScheduledTasks(events),
		TakenAt:  s.now(),
	}
	s.cache.Add(key, snap)
	s.l.Debugf(ctx, "availability: fetched user=%s windows=%d existing=%d", sc.UserID, len(snap.Windows), len(snap.Existing))
	return snap, nil
}

// Invalidate drops the cached snapshot for a user and range, typically
// after committing new events.
func (s *Service) Invalidate(sc model.Scope, from, to time.Time) {
	s.cache.Remove(cacheKey(sc.UserID, from, to))
}

func cacheKey(userID string, from, to time.Time) string {
	return fmt.Sprintf("%s|%d|%d", userID, from.Unix(), to.Unix())
}

// toScheduledTasks maps calendar events to bookings; events carrying
// our owner metadata are displaceable, everything else is immovable.
func toScheduledTasks(events []gcalendar.Event) []model.ScheduledTask {
	out := make([]model.ScheduledTask, 0, len(events))
	for _, ev := range events {
		if ev.StartTime.IsZero() || ev.EndTime.IsZero() {
			continue
		}
		st := model.ScheduledTask{
			ID:              ev.ID,
			Content:         ev.Summary,
			CalendarEventID: ev.ID,
			Start:           ev.StartTime,
			End:             ev.EndTime,
			Managed:         ev.PrivateMetadata[ownerMetadataKey] == "true",
		}
		if st.Managed {
			st.TaskID = ev.PrivateMetadata[taskIDMetadataKey]
		}
		out = append(out, st)
	}
	return out
}

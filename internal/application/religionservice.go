package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// ReligionService serves prayer timetables, daily devotional content, and
// fixed religious occasions. Live timetables are cached per date for 24
// hours; every failure degrades to the static fallback timetable rather than
// an error.
type ReligionService struct {
	client   driven.PrayerTimesClient
	settings driven.SettingsStore // may be nil; location then lives in memory only
	cache    *dailyCache
	now      func() time.Time

	mu  sync.RWMutex
	loc model.Location
}

// NewReligionService creates a ReligionService. The stored location is loaded
// lazily on first use; until one is stored the Tehran default applies.
func NewReligionService(client driven.PrayerTimesClient, settings driven.SettingsStore) *ReligionService {
	return newReligionService(client, settings, time.Now)
}

// newReligionService exists so tests can inject a clock.
func newReligionService(client driven.PrayerTimesClient, settings driven.SettingsStore, now func() time.Time) *ReligionService {
	return &ReligionService{
		client:   client,
		settings: settings,
		cache:    newDailyCache(now),
		now:      now,
		loc:      model.DefaultLocation,
	}
}

// LoadLocation reads the persisted location into memory. Called once at
// startup; absence keeps the default.
func (s *ReligionService) LoadLocation(ctx context.Context) {
	if s.settings == nil {
		return
	}
	loc, ok, err := s.settings.GetLocation(ctx)
	if err != nil {
		slog.Warn("loading stored location failed", "error", err)
		return
	}
	if ok {
		s.mu.Lock()
		s.loc = loc
		s.mu.Unlock()
	}
}

// Location returns the location timetables are computed for.
func (s *ReligionService) Location() model.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loc
}

// SetLocation changes the prayer-time location, persists it, and drops every
// cached timetable immediately: entries computed for the old city must not
// survive, not even until their natural expiry.
func (s *ReligionService) SetLocation(ctx context.Context, loc model.Location) error {
	s.mu.Lock()
	s.loc = loc
	s.mu.Unlock()

	s.cache.clear()

	if s.settings != nil {
		if err := s.settings.SetLocation(ctx, loc); err != nil {
			return err
		}
	}
	return nil
}

// PrayerTimes returns the timetable for the given date (YYYY-MM-DD; empty
// means today). A live cached entry short-circuits the remote call; a failed
// fetch is never cached and yields the static fallback timetable.
func (s *ReligionService) PrayerTimes(ctx context.Context, date string) *model.PrayerTimes {
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	if times, ok := s.cache.get(date); ok {
		return times
	}

	if s.client == nil {
		return fallbackTimetable(date)
	}

	times, err := s.client.FetchTimes(ctx, s.Location(), date)
	if err != nil {
		slog.Error("prayer time lookup failed", "date", date, "error", err)
		return fallbackTimetable(date)
	}

	s.cache.put(date, times)
	return times
}

// DailyPrayer returns the dhikr for today, picked by day of year. This is
// always computed locally; it never calls a remote service.
func (s *ReligionService) DailyPrayer() model.DailyPrayer {
	return dailyPrayers[pickByDay(s.now().YearDay(), len(dailyPrayers))]
}

// DailyQuote returns the quote for today, picked by day of year.
func (s *ReligionService) DailyQuote() model.Quote {
	return dailyQuotes[pickByDay(s.now().YearDay(), len(dailyQuotes))]
}

// Holidays returns the fixed holidays of a Jalali month.
func (s *ReligionService) Holidays(month int) []model.Holiday {
	return filterByMonth(fixedHolidays, month)
}

// CulturalEvents returns the fixed cultural occasions of a Jalali month.
func (s *ReligionService) CulturalEvents(month int) []model.Holiday {
	return filterByMonth(culturalEvents, month)
}

func filterByMonth(all []model.Holiday, month int) []model.Holiday {
	out := []model.Holiday{}
	for _, h := range all {
		if h.Month == month {
			out = append(out, h)
		}
	}
	return out
}

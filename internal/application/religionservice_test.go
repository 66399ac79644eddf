package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

type fakePrayerClient struct {
	calls int
	times *model.PrayerTimes
	err   error
	loc   model.Location
}

func (f *fakePrayerClient) FetchTimes(_ context.Context, loc model.Location, date string) (*model.PrayerTimes, error) {
	f.calls++
	f.loc = loc
	if f.err != nil {
		return nil, f.err
	}
	out := *f.times
	out.Date = date
	return &out, nil
}

type fakeSettings struct {
	loc    model.Location
	stored bool
	err    error
}

func (f *fakeSettings) GetLocation(context.Context) (model.Location, bool, error) {
	return f.loc, f.stored, f.err
}

func (f *fakeSettings) SetLocation(_ context.Context, loc model.Location) error {
	if f.err != nil {
		return f.err
	}
	f.loc = loc
	f.stored = true
	return nil
}

func testClock(start time.Time) (func() time.Time, func(time.Duration)) {
	current := start
	return func() time.Time { return current }, func(d time.Duration) { current = current.Add(d) }
}

func TestPrayerTimesFetchesOncePerDay(t *testing.T) {
	client := &fakePrayerClient{times: &model.PrayerTimes{Fajr: "04:12"}}
	clock, _ := testClock(time.Date(2025, 3, 21, 8, 0, 0, 0, time.UTC))
	svc := newReligionService(client, nil, clock)

	first := svc.PrayerTimes(context.Background(), "2025-03-21")
	second := svc.PrayerTimes(context.Background(), "2025-03-21")

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, first, second)
	assert.False(t, first.IsFallback)
	assert.Equal(t, "04:12", first.Fajr)
}

func TestPrayerTimesRefetchesAfterExpiry(t *testing.T) {
	client := &fakePrayerClient{times: &model.PrayerTimes{Fajr: "04:12"}}
	clock, advance := testClock(time.Date(2025, 3, 21, 8, 0, 0, 0, time.UTC))
	svc := newReligionService(client, nil, clock)

	svc.PrayerTimes(context.Background(), "2025-03-21")
	advance(25 * time.Hour)
	svc.PrayerTimes(context.Background(), "2025-03-21")

	assert.Equal(t, 2, client.calls)
}

func TestPrayerTimesCachesPerDate(t *testing.T) {
	client := &fakePrayerClient{times: &model.PrayerTimes{Fajr: "04:12"}}
	svc := NewReligionService(client, nil)

	svc.PrayerTimes(context.Background(), "2025-03-21")
	svc.PrayerTimes(context.Background(), "2025-03-22")
	svc.PrayerTimes(context.Background(), "2025-03-21")

	assert.Equal(t, 2, client.calls)
}

func TestPrayerTimesFallsBackOnError(t *testing.T) {
	client := &fakePrayerClient{err: errors.New("boom")}
	svc := NewReligionService(client, nil)

	times := svc.PrayerTimes(context.Background(), "2025-03-21")

	require.NotNil(t, times)
	assert.True(t, times.IsFallback)
	assert.Equal(t, "2025-03-21", times.Date)
	assert.Equal(t, "05:00", times.Fajr)
}

func TestPrayerTimesFailureNotCached(t *testing.T) {
	client := &fakePrayerClient{err: errors.New("boom")}
	svc := NewReligionService(client, nil)

	svc.PrayerTimes(context.Background(), "2025-03-21")

	client.err = nil
	client.times = &model.PrayerTimes{Fajr: "04:12"}
	times := svc.PrayerTimes(context.Background(), "2025-03-21")

	assert.Equal(t, 2, client.calls)
	assert.False(t, times.IsFallback)
}

func TestPrayerTimesWithoutClient(t *testing.T) {
	svc := NewReligionService(nil, nil)

	times := svc.PrayerTimes(context.Background(), "2025-03-21")

	require.NotNil(t, times)
	assert.True(t, times.IsFallback)
}

func TestPrayerTimesEmptyDateUsesToday(t *testing.T) {
	client := &fakePrayerClient{times: &model.PrayerTimes{Fajr: "04:12"}}
	clock, _ := testClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := newReligionService(client, nil, clock)

	times := svc.PrayerTimes(context.Background(), "")

	assert.Equal(t, "2025-06-01", times.Date)
}

func TestSetLocationClearsCache(t *testing.T) {
	client := &fakePrayerClient{times: &model.PrayerTimes{Fajr: "04:12"}}
	settings := &fakeSettings{}
	svc := NewReligionService(client, settings)

	svc.PrayerTimes(context.Background(), "2025-03-21")
	require.NoError(t, svc.SetLocation(context.Background(), model.Location{City: "Shiraz", Country: "Iran"}))
	svc.PrayerTimes(context.Background(), "2025-03-21")

	assert.Equal(t, 2, client.calls)
	assert.Equal(t, "Shiraz", client.loc.City)
	assert.True(t, settings.stored)
	assert.Equal(t, "Shiraz", settings.loc.City)
}

func TestLoadLocationUsesStoredValue(t *testing.T) {
	settings := &fakeSettings{loc: model.Location{City: "Mashhad", Country: "Iran"}, stored: true}
	svc := NewReligionService(&fakePrayerClient{times: &model.PrayerTimes{}}, settings)

	svc.LoadLocation(context.Background())

	assert.Equal(t, "Mashhad", svc.Location().City)
}

func TestLoadLocationDefaultsWhenUnset(t *testing.T) {
	svc := NewReligionService(&fakePrayerClient{times: &model.PrayerTimes{}}, &fakeSettings{})

	svc.LoadLocation(context.Background())

	assert.Equal(t, model.DefaultLocation, svc.Location())
}

func TestDailyPicksAreStableWithinADay(t *testing.T) {
	clock, _ := testClock(time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC))
	a := newReligionService(nil, nil, clock)
	b := newReligionService(nil, nil, clock)

	assert.Equal(t, a.DailyPrayer(), b.DailyPrayer())
	assert.Equal(t, a.DailyQuote(), b.DailyQuote())
	assert.Equal(t, a.DailyPrayer(), a.DailyPrayer())
}

func TestDailyPicksRotateAcrossDays(t *testing.T) {
	clock, advance := testClock(time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC))
	svc := newReligionService(nil, nil, clock)

	first := svc.DailyPrayer()
	advance(24 * time.Hour)
	second := svc.DailyPrayer()

	assert.NotEqual(t, first, second)
}

func TestHolidaysFiltersByMonth(t *testing.T) {
	svc := NewReligionService(nil, nil)

	farvardin := svc.Holidays(1)
	require.NotEmpty(t, farvardin)
	for _, h := range farvardin {
		assert.Equal(t, 1, h.Month)
	}

	assert.Empty(t, svc.Holidays(5))
}

func TestCulturalEventsIncludeYalda(t *testing.T) {
	svc := NewReligionService(nil, nil)

	azar := svc.CulturalEvents(9)
	require.Len(t, azar, 1)
	assert.Equal(t, "شب یلدا", azar[0].Title)
	assert.Equal(t, 30, azar[0].Day)
}

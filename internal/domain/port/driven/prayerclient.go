package driven

import (
	"context"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

// PrayerTimesClient defines the driven port for the prayer-time lookup backend.
type PrayerTimesClient interface {
	// FetchTimes returns the timetable for the given date (YYYY-MM-DD) and
	// location. Any transport error, non-200 status, or malformed body is
	// returned as an error; the caller decides the fallback.
	FetchTimes(ctx context.Context, loc model.Location, date string) (*model.PrayerTimes, error)
}

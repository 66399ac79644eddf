package application

import (
	"context"
	"fmt"
	"time"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
	"github.com/pouyakarimi/zendegi/internal/jalali"
)

// MonthView is one Jalali month with the user's entries and the fixed
// occasions that fall inside it.
type MonthView struct {
	Year      int
	Month     int
	MonthName string
	Days      int
	Events    []model.Event
	Tasks     []model.Task
	Holidays  []model.Holiday
	Occasions []model.Holiday
}

// CalendarService relays events and tasks to the hosted backend and assembles
// Jalali month views. A nil store means the backend was not configured; the
// month view still works with the fixed occasion tables alone.
type CalendarService struct {
	store driven.CalendarStore
}

func NewCalendarService(store driven.CalendarStore) *CalendarService {
	return &CalendarService{store: store}
}

// AddEvent forwards a calendar event to the backend.
func (s *CalendarService) AddEvent(ctx context.Context, e model.Event) error {
	if s.store == nil {
		return fmt.Errorf("calendar: %w", driven.ErrUnavailable)
	}
	if e.UserID == "" {
		return fmt.Errorf("calendar: missing user id")
	}
	if e.Title == "" {
		return fmt.Errorf("calendar: missing title")
	}
	if e.Date == "" {
		return fmt.Errorf("calendar: missing date")
	}
	if err := s.store.AddEvent(ctx, e); err != nil {
		return fmt.Errorf("adding event: %w", err)
	}
	return nil
}

// ListEvents returns the user's events in ascending date order.
func (s *CalendarService) ListEvents(ctx context.Context, userID string) ([]model.Event, error) {
	if s.store == nil {
		return nil, fmt.Errorf("calendar: %w", driven.ErrUnavailable)
	}
	events, err := s.store.ListEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// AddTask forwards a to-do item to the backend.
func (s *CalendarService) AddTask(ctx context.Context, t model.Task) error {
	if s.store == nil {
		return fmt.Errorf("calendar: %w", driven.ErrUnavailable)
	}
	if t.UserID == "" {
		return fmt.Errorf("calendar: missing user id")
	}
	if t.Title == "" {
		return fmt.Errorf("calendar: missing title")
	}
	if err := s.store.AddTask(ctx, t); err != nil {
		return fmt.Errorf("adding task: %w", err)
	}
	return nil
}

// ListTasks returns the user's tasks ordered by due date.
func (s *CalendarService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("calendar: %w", driven.ErrUnavailable)
	}
	tasks, err := s.store.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// MonthView assembles a Jalali month: the user's events and due tasks inside
// it plus the fixed holidays and cultural occasions. When the backend is
// unavailable the view carries the occasion tables only.
func (s *CalendarService) MonthView(ctx context.Context, userID string, year, month int) (MonthView, error) {
	days, err := jalali.MonthDays(year, month)
	if err != nil {
		return MonthView{}, err
	}
	name, err := jalali.MonthName(month)
	if err != nil {
		return MonthView{}, err
	}
	start, end, err := jalali.MonthRange(year, month)
	if err != nil {
		return MonthView{}, err
	}

	view := MonthView{
		Year:      year,
		Month:     month,
		MonthName: name,
		Days:      days,
		Holidays:  filterByMonth(fixedHolidays, month),
		Occasions: filterByMonth(culturalEvents, month),
	}

	if s.store == nil {
		return view, nil
	}

	events, err := s.store.ListEvents(ctx, userID)
	if err != nil {
		return MonthView{}, fmt.Errorf("listing events: %w", err)
	}
	for _, ev := range events {
		if dateInRange(ev.Date, start, end) {
			view.Events = append(view.Events, ev)
		}
	}

	tasks, err := s.store.ListTasks(ctx, userID)
	if err != nil {
		return MonthView{}, fmt.Errorf("listing tasks: %w", err)
	}
	for _, task := range tasks {
		if task.DueDate == "" || dateInRange(task.DueDate, start, end) {
			view.Tasks = append(view.Tasks, task)
		}
	}

	return view, nil
}

// dateInRange reports whether a YYYY-MM-DD Gregorian date falls within
// [start, end]. Malformed dates are excluded.
func dateInRange(date string, start, end time.Time) bool {
	t, err := time.ParseInLocation("2006-01-02", date, start.Location())
	if err != nil {
		return false
	}
	return !t.Before(start) && !t.After(end)
}

package supabase

import (
	"context"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.FinanceStore  = (*Client)(nil)
	_ driven.HealthStore   = (*Client)(nil)
	_ driven.CalendarStore = (*Client)(nil)
)

// listLimit is the backend page cap for list queries.
const listLimit = 50

// Table names in the hosted backend.
const (
	tableTransactions = "finance_transactions"
	tableMetrics      = "health_metrics"
	tableExercises    = "exercises"
	tableEvents       = "calendar_events"
	tableTasks        = "tasks"
)

// transactionRow mirrors the finance_transactions table.
type transactionRow struct {
	ID           string  `json:"id,omitempty"`
	UserID       string  `json:"user_id"`
	Title        string  `json:"title"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	CategoryID   string  `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// AddTransaction inserts a transaction row stamped with the user's id.
func (c *Client) AddTransaction(ctx context.Context, tx model.Transaction) error {
	return c.insertRow(ctx, tableTransactions, transactionRow{
		UserID:       tx.UserID,
		Title:        tx.Title,
		Amount:       tx.Amount,
		Date:         tx.Date,
		Type:         string(tx.Type),
		CategoryID:   tx.CategoryID,
		CategoryName: tx.CategoryName,
		Description:  tx.Description,
	})
}

// ListTransactions returns the user's transactions, newest date first, capped
// at the backend page limit.
func (c *Client) ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	var rows []transactionRow
	if err := c.selectRows(ctx, tableTransactions, userID, "date.desc", listLimit, &rows); err != nil {
		return nil, err
	}

	txs := make([]model.Transaction, 0, len(rows))
	for _, r := range rows {
		txs = append(txs, model.Transaction{
			ID:           r.ID,
			UserID:       r.UserID,
			Title:        r.Title,
			Amount:       r.Amount,
			Date:         r.Date,
			Type:         model.TransactionType(r.Type),
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Description:  r.Description,
		})
	}
	return txs, nil
}

// metricRow mirrors the health_metrics table. Optional measurements are
// nullable columns, hence pointer fields.
type metricRow struct {
	ID         string   `json:"id,omitempty"`
	UserID     string   `json:"user_id"`
	Date       string   `json:"date"`
	Weight     *float64 `json:"weight,omitempty"`
	Systolic   *int     `json:"systolic,omitempty"`
	Diastolic  *int     `json:"diastolic,omitempty"`
	HeartRate  *int     `json:"heart_rate,omitempty"`
	SleepHours *float64 `json:"sleep_hours,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// AddMetric inserts a health metric row.
func (c *Client) AddMetric(ctx context.Context, m model.HealthMetric) error {
	return c.insertRow(ctx, tableMetrics, metricRow{
		UserID:     m.UserID,
		Date:       m.Date,
		Weight:     m.Weight,
		Systolic:   m.Systolic,
		Diastolic:  m.Diastolic,
		HeartRate:  m.HeartRate,
		SleepHours: m.SleepHours,
		Notes:      m.Notes,
	})
}

// ListMetrics returns the user's health metrics, newest date first.
func (c *Client) ListMetrics(ctx context.Context, userID string) ([]model.HealthMetric, error) {
	var rows []metricRow
	if err := c.selectRows(ctx, tableMetrics, userID, "date.desc", listLimit, &rows); err != nil {
		return nil, err
	}

	metrics := make([]model.HealthMetric, 0, len(rows))
	for _, r := range rows {
		metrics = append(metrics, model.HealthMetric{
			ID:         r.ID,
			UserID:     r.UserID,
			Date:       r.Date,
			Weight:     r.Weight,
			Systolic:   r.Systolic,
			Diastolic:  r.Diastolic,
			HeartRate:  r.HeartRate,
			SleepHours: r.SleepHours,
			Notes:      r.Notes,
		})
	}
	return metrics, nil
}

// exerciseRow mirrors the exercises table.
type exerciseRow struct {
	ID             string `json:"id,omitempty"`
	UserID         string `json:"user_id"`
	Date           string `json:"date"`
	ExerciseType   string `json:"exercise_type"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"calories_burned"`
	Notes          string `json:"notes,omitempty"`
}

// AddExercise inserts an exercise row.
func (c *Client) AddExercise(ctx context.Context, e model.Exercise) error {
	return c.insertRow(ctx, tableExercises, exerciseRow{
		UserID:         e.UserID,
		Date:           e.Date,
		ExerciseType:   e.Type,
		Duration:       e.DurationMin,
		CaloriesBurned: e.CaloriesBurned,
		Notes:          e.Notes,
	})
}

// ListExercises returns the user's exercises, newest date first.
func (c *Client) ListExercises(ctx context.Context, userID string) ([]model.Exercise, error) {
	var rows []exerciseRow
	if err := c.selectRows(ctx, tableExercises, userID, "date.desc", listLimit, &rows); err != nil {
		return nil, err
	}

	exercises := make([]model.Exercise, 0, len(rows))
	for _, r := range rows {
		exercises = append(exercises, model.Exercise{
			ID:             r.ID,
			UserID:         r.UserID,
			Date:           r.Date,
			Type:           r.ExerciseType,
			DurationMin:    r.Duration,
			CaloriesBurned: r.CaloriesBurned,
			Notes:          r.Notes,
		})
	}
	return exercises, nil
}

// eventRow mirrors the calendar_events table.
type eventRow struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	AllDay      bool   `json:"all_day"`
	HasReminder bool   `json:"has_reminder"`
}

// AddEvent inserts a calendar event row.
func (c *Client) AddEvent(ctx context.Context, e model.Event) error {
	return c.insertRow(ctx, tableEvents, eventRow{
		UserID:      e.UserID,
		Title:       e.Title,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		Description: e.Description,
		AllDay:      e.AllDay,
		HasReminder: e.HasReminder,
	})
}

// ListEvents returns the user's events in ascending date order, so upcoming
// events come out ready for display.
func (c *Client) ListEvents(ctx context.Context, userID string) ([]model.Event, error) {
	var rows []eventRow
	if err := c.selectRows(ctx, tableEvents, userID, "date.asc", listLimit, &rows); err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(rows))
	for _, r := range rows {
		events = append(events, model.Event{
			ID:          r.ID,
			UserID:      r.UserID,
			Title:       r.Title,
			Date:        r.Date,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			Location:    r.Location,
			Description: r.Description,
			AllDay:      r.AllDay,
			HasReminder: r.HasReminder,
		})
	}
	return events, nil
}

// taskRow mirrors the tasks table.
type taskRow struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date,omitempty"`
	Completed   bool   `json:"completed"`
	Description string `json:"description,omitempty"`
}

// AddTask inserts a task row.
func (c *Client) AddTask(ctx context.Context, t model.Task) error {
	return c.insertRow(ctx, tableTasks, taskRow{
		UserID:      t.UserID,
		Title:       t.Title,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Description: t.Description,
	})
}

// ListTasks returns the user's tasks in ascending due-date order.
func (c *Client) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	var rows []taskRow
	if err := c.selectRows(ctx, tableTasks, userID, "due_date.asc", listLimit, &rows); err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, model.Task{
			ID:          r.ID,
			UserID:      r.UserID,
			Title:       r.Title,
			DueDate:     r.DueDate,
			Completed:   r.Completed,
			Description: r.Description,
		})
	}
	return tasks, nil
}

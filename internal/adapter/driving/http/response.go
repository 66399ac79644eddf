package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/pouyakarimi/zendegi/internal/application"
	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// LoginRequest is the JSON body for the sign-in endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the JSON representation of an account.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name"`
	IsGuest bool   `json:"is_guest"`
}

// TransactionRequest is the JSON body for adding a transaction.
type TransactionRequest struct {
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	CategoryID  string  `json:"category_id,omitempty"`
	Description string  `json:"description,omitempty"`
}

// TransactionResponse is the JSON representation of a transaction.
type TransactionResponse struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// BalanceResponse is the JSON representation of income/expense totals.
type BalanceResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// MetricRequest is the JSON body for adding a health metric. Absent fields
// stay unrecorded.
type MetricRequest struct {
	Date       string   `json:"date"`
	Weight     *float64 `json:"weight,omitempty"`
	Systolic   *int     `json:"systolic,omitempty"`
	Diastolic  *int     `json:"diastolic,omitempty"`
	HeartRate  *int     `json:"heart_rate,omitempty"`
	SleepHours *float64 `json:"sleep_hours,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// MetricResponse mirrors MetricRequest with the record id.
type MetricResponse struct {
	ID         string   `json:"id,omitempty"`
	Date       string   `json:"date"`
	Weight     *float64 `json:"weight,omitempty"`
	Systolic   *int     `json:"systolic,omitempty"`
	Diastolic  *int     `json:"diastolic,omitempty"`
	HeartRate  *int     `json:"heart_rate,omitempty"`
	SleepHours *float64 `json:"sleep_hours,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// ExerciseRequest is the JSON body for logging a workout.
type ExerciseRequest struct {
	Date           string `json:"date"`
	Type           string `json:"type"`
	DurationMin    int    `json:"duration_min"`
	CaloriesBurned int    `json:"calories_burned,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ExerciseResponse is the JSON representation of a workout entry.
type ExerciseResponse struct {
	ID             string `json:"id,omitempty"`
	Date           string `json:"date"`
	Type           string `json:"type"`
	DurationMin    int    `json:"duration_min"`
	CaloriesBurned int    `json:"calories_burned,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// EventRequest is the JSON body for adding a calendar event.
type EventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	AllDay      bool   `json:"all_day,omitempty"`
	HasReminder bool   `json:"has_reminder,omitempty"`
}

// EventResponse is the JSON representation of a calendar event.
type EventResponse struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	AllDay      bool   `json:"all_day,omitempty"`
	HasReminder bool   `json:"has_reminder,omitempty"`
}

// TaskRequest is the JSON body for adding a to-do item.
type TaskRequest struct {
	Title       string `json:"title"`
	DueDate     string `json:"due_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// TaskResponse is the JSON representation of a to-do item.
type TaskResponse struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date,omitempty"`
	Completed   bool   `json:"completed"`
	Description string `json:"description,omitempty"`
}

// ChatRequest is the JSON body for the assistant endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatMessageResponse is one stored conversation turn.
type ChatMessageResponse struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// TranscribeRequest is the JSON body for the speech-to-text endpoint. Audio
// is base64-encoded.
type TranscribeRequest struct {
	Audio    string `json:"audio"`
	Language string `json:"language,omitempty"`
}

// TranscribeResponse carries the recognized text.
type TranscribeResponse struct {
	Text string `json:"text"`
}

// PrayerTimesResponse is the JSON representation of one day's timetable.
// Fallback marks a static default served because the live lookup failed.
type PrayerTimesResponse struct {
	Date     string `json:"date"`
	Fajr     string `json:"fajr"`
	Sunrise  string `json:"sunrise"`
	Dhuhr    string `json:"dhuhr"`
	Asr      string `json:"asr"`
	Maghrib  string `json:"maghrib"`
	Isha     string `json:"isha"`
	Midnight string `json:"midnight"`
	Fallback bool   `json:"fallback"`
}

// LocationRequest is the JSON body for changing the prayer-time location.
type LocationRequest struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// LocationResponse is the JSON representation of the configured location.
type LocationResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// DailyPrayerResponse is the JSON representation of the day's dhikr.
type DailyPrayerResponse struct {
	Title   string `json:"title"`
	Arabic  string `json:"arabic"`
	Persian string `json:"persian"`
}

// QuoteResponse is the JSON representation of the day's quote.
type QuoteResponse struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// HolidayResponse is a fixed occasion on the Jalali calendar.
type HolidayResponse struct {
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

// ConvertResponse is the JSON representation of a date conversion.
type ConvertResponse struct {
	Gregorian string `json:"gregorian"`
	Jalali    string `json:"jalali"`
	Weekday   string `json:"weekday"`
	MonthName string `json:"month_name"`
}

// MonthViewResponse is a Jalali month with the user's entries and fixed occasions.
type MonthViewResponse struct {
	Year      int               `json:"year"`
	Month     int               `json:"month"`
	MonthName string            `json:"month_name"`
	Days      int               `json:"days"`
	Events    []EventResponse   `json:"events"`
	Tasks     []TaskResponse    `json:"tasks"`
	Holidays  []HolidayResponse `json:"holidays"`
	Occasions []HolidayResponse `json:"occasions"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.DisplayName(),
		IsGuest: u.IsGuest,
	}
}

func toTransactionResponse(tx model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Title:       tx.Title,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Type:        string(tx.Type),
		Category:    tx.CategoryName,
		Description: tx.Description,
	}
}

func toMetricResponse(m model.HealthMetric) MetricResponse {
	return MetricResponse{
		ID:         m.ID,
		Date:       m.Date,
		Weight:     m.Weight,
		Systolic:   m.Systolic,
		Diastolic:  m.Diastolic,
		HeartRate:  m.HeartRate,
		SleepHours: m.SleepHours,
		Notes:      m.Notes,
	}
}

func toExerciseResponse(e model.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:             e.ID,
		Date:           e.Date,
		Type:           e.Type,
		DurationMin:    e.DurationMin,
		CaloriesBurned: e.CaloriesBurned,
		Notes:          e.Notes,
	}
}

func toEventResponse(e model.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		Description: e.Description,
		AllDay:      e.AllDay,
		HasReminder: e.HasReminder,
	}
}

func toTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		Description: t.Description,
	}
}

func toPrayerTimesResponse(p model.PrayerTimes) PrayerTimesResponse {
	return PrayerTimesResponse{
		Date:     p.Date,
		Fajr:     p.Fajr,
		Sunrise:  p.Sunrise,
		Dhuhr:    p.Dhuhr,
		Asr:      p.Asr,
		Maghrib:  p.Maghrib,
		Isha:     p.Isha,
		Midnight: p.Midnight,
		Fallback: p.IsFallback,
	}
}

func toHolidayResponses(hs []model.Holiday) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, HolidayResponse{
			Month: h.Month,
			Day:   h.Day,
			Title: h.Title,
			Kind:  string(h.Kind),
		})
	}
	return out
}

func toMonthViewResponse(v application.MonthView) MonthViewResponse {
	events := make([]EventResponse, 0, len(v.Events))
	for _, e := range v.Events {
		events = append(events, toEventResponse(e))
	}
	tasks := make([]TaskResponse, 0, len(v.Tasks))
	for _, t := range v.Tasks {
		tasks = append(tasks, toTaskResponse(t))
	}

	return MonthViewResponse{
		Year:      v.Year,
		Month:     v.Month,
		MonthName: v.MonthName,
		Days:      v.Days,
		Events:    events,
		Tasks:     tasks,
		Holidays:  toHolidayResponses(v.Holidays),
		Occasions: toHolidayResponses(v.Occasions),
	}
}

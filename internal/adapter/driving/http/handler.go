package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pouyakarimi/zendegi/internal/application"
	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
	"github.com/pouyakarimi/zendegi/internal/jalali"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	auth       *application.AuthService
	finance    *application.FinanceService
	health     *application.HealthService
	calendar   *application.CalendarService
	chat       *application.ChatService
	transcribe *application.TranscriptionService
	religion   *application.ReligionService
	snapshots  *application.SnapshotLoader
	logger     *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	auth *application.AuthService,
	finance *application.FinanceService,
	health *application.HealthService,
	calendar *application.CalendarService,
	chat *application.ChatService,
	transcribe *application.TranscriptionService,
	religion *application.ReligionService,
	snapshots *application.SnapshotLoader,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		auth:       auth,
		finance:    finance,
		health:     health,
		calendar:   calendar,
		chat:       chat,
		transcribe: transcribe,
		religion:   religion,
		snapshots:  snapshots,
		logger:     logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/login", h.Login)
	mux.HandleFunc("POST /api/v1/auth/guest", h.GuestLogin)

	mux.HandleFunc("GET /api/v1/users/{userID}/transactions", h.ListTransactions)
	mux.HandleFunc("POST /api/v1/users/{userID}/transactions", h.AddTransaction)
	mux.HandleFunc("GET /api/v1/users/{userID}/balance", h.Balance)

	mux.HandleFunc("GET /api/v1/users/{userID}/metrics", h.ListMetrics)
	mux.HandleFunc("POST /api/v1/users/{userID}/metrics", h.AddMetric)
	mux.HandleFunc("GET /api/v1/users/{userID}/exercises", h.ListExercises)
	mux.HandleFunc("POST /api/v1/users/{userID}/exercises", h.AddExercise)
	mux.HandleFunc("POST /api/v1/users/{userID}/exercises/suggest", h.SuggestActivity)

	mux.HandleFunc("GET /api/v1/users/{userID}/events", h.ListEvents)
	mux.HandleFunc("POST /api/v1/users/{userID}/events", h.AddEvent)
	mux.HandleFunc("GET /api/v1/users/{userID}/tasks", h.ListTasks)
	mux.HandleFunc("POST /api/v1/users/{userID}/tasks", h.AddTask)
	mux.HandleFunc("GET /api/v1/users/{userID}/calendar/{year}/{month}", h.MonthView)

	mux.HandleFunc("POST /api/v1/users/{userID}/chat", h.Chat)
	mux.HandleFunc("GET /api/v1/users/{userID}/chat/history", h.ChatHistory)
	mux.HandleFunc("DELETE /api/v1/users/{userID}/chat/history", h.ClearChatHistory)
	mux.HandleFunc("POST /api/v1/users/{userID}/plan", h.DailyPlan)

	mux.HandleFunc("POST /api/v1/transcribe", h.Transcribe)

	mux.HandleFunc("GET /api/v1/prayer-times", h.PrayerTimes)
	mux.HandleFunc("GET /api/v1/location", h.GetLocation)
	mux.HandleFunc("PUT /api/v1/location", h.SetLocation)
	mux.HandleFunc("GET /api/v1/daily/prayer", h.DailyPrayer)
	mux.HandleFunc("GET /api/v1/daily/quote", h.DailyQuote)

	mux.HandleFunc("GET /api/v1/calendar/convert", h.ConvertDate)

	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// writeServiceError maps application-layer failures onto HTTP status codes.
func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, driven.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, driven.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "backend not configured")
	default:
		h.logger.Error("request failed", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// Login exchanges an email/password pair for the user record.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

// GuestLogin hands out a local-only guest session.
func (h *Handler) GuestLogin(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toUserResponse(*h.auth.Guest()))
}

// ListTransactions returns the user's recent transactions, newest first.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.finance.ListTransactions(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeServiceError(w, "list transactions", err)
		return
	}

	resp := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, toTransactionResponse(tx))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddTransaction records a new transaction.
func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx := model.Transaction{
		UserID:      r.PathValue("userID"),
		Title:       req.Title,
		Amount:      req.Amount,
		Date:        req.Date,
		Type:        model.TransactionType(req.Type),
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}
	if err := h.finance.AddTransaction(r.Context(), tx); err != nil {
		if errors.Is(err, driven.ErrUnavailable) {
			h.writeServiceError(w, "add transaction", err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

// Balance returns income/expense totals over the user's recent transactions.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	summary, err := h.finance.Balance(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeServiceError(w, "balance", err)
		return
	}

	writeJSON(w, http.StatusOK, BalanceResponse{
		Income:  summary.Income,
		Expense: summary.Expense,
		Net:     summary.Net(),
	})
}

// ListMetrics returns the user's recent health measurements, newest first.
func (h *Handler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.health.ListMetrics(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeServiceError(w, "list metrics", err)
		return
	}

	resp := make([]MetricResponse, 0, len(metrics))
	for _, m := range metrics {
		resp = append(resp, toMetricResponse(m))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddMetric records a dated measurement set.
func (h *Handler) AddMetric(w http.ResponseWriter, r *http.Request) {
	var req MetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m := model.HealthMetric{
		UserID:     r.PathValue("userID"),
		Date:       req.Date,
		Weight:     req.Weight,
		Systolic:   req.Systolic,
		Diastolic:  req.Diastolic,
		HeartRate:  req.HeartRate,
		SleepHours: req.SleepHours,
		Notes:      req.Notes,
	}
	if err := h.health.AddMetric(r.Context(), m); err != nil {
		if errors.Is(err, driven.ErrUnavailable) {
			h.writeServiceError(w, "add metric", err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toMetricResponse(m))
}

// ListExercises returns the user's workout log, newest first.
func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.health.ListExercises(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeServiceError(w, "list exercises", err)
		return
	}

	resp := make([]ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		resp = append(resp, toExerciseResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddExercise logs a workout session.
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	var req ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e := model.Exercise{
		UserID:         r.PathValue("userID"),
		Date:           req.Date,
		Type:           req.Type,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		Notes:          req.Notes,
	}
	if err := h.health.AddExercise(r.Context(), e); err != nil {
		if errors.Is(err, driven.ErrUnavailable) {
			h.writeServiceError(w, "add exercise", err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toExerciseResponse(e))
}

// SuggestActivity asks the assistant for one workout suggestion. Always
// answers 200; a failed suggestion degrades to the walking default.
func (h *Handler) SuggestActivity(w http.ResponseWriter, r *http.Request) {
	user := model.User{ID: r.PathValue("userID")}
	snapshot := h.snapshots.Load(r.Context(), user)

	q := r.URL.Query()
	hints := application.ActivityHints{
		TimeOfDay: q.Get("time_of_day"),
		Energy:    q.Get("energy"),
	}
	if v := q.Get("minutes"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes < 0 {
			writeError(w, http.StatusBadRequest, "minutes must be a non-negative integer")
			return
		}
		hints.AvailableMinutes = minutes
	}

	writeJSON(w, http.StatusOK, toExerciseResponse(h.chat.SuggestActivity(r.Context(), snapshot, hints)))
}

// ListEvents returns the user's events in ascending date order.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.calendar.ListEvents(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeServiceError(w, "list events", err)
		return
	}

	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddEvent records a calendar event.
func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e := model.Event{
		UserID:      r.PathValue("userID"),
		Title:       req.Title,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Description: req.Description,
		AllDay:      req.AllDay,
		HasReminder: req.HasReminder,
	}
	if err := h.calendar.AddEvent(r.Context(), e); err != nil {
		if errors.Is(err, driven.ErrUnavailable) {
			h.writeServiceError(w, "add event", err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(e))
}

// ListTasks returns the user's tasks ordered by due date.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.calendar.ListTasks(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.writeServiceError(w, "list tasks", err)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTaskResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddTask records a to-do item.
func (h *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t := model.Task{
		UserID:      r.PathValue("userID"),
		Title:       req.Title,
		DueDate:     req.DueDate,
		Description: req.Description,
	}
	if err := h.calendar.AddTask(r.Context(), t); err != nil {
		if errors.Is(err, driven.ErrUnavailable) {
			h.writeServiceError(w, "add task", err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(t))
}

// MonthView returns one Jalali month with the user's entries and the fixed
// occasions falling inside it.
func (h *Handler) MonthView(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month")
		return
	}

	view, err := h.calendar.MonthView(r.Context(), r.PathValue("userID"), year, month)
	if err != nil {
		if errors.Is(err, driven.ErrUnavailable) {
			h.writeServiceError(w, "month view", err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toMonthViewResponse(view))
}

// Chat answers a user message through the Persian assistant. Always answers
// 200; inference failures degrade to an apology reply.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	userID := r.PathValue("userID")
	snapshot := h.snapshots.Load(r.Context(), model.User{ID: userID})

	reply, err := h.chat.Ask(r.Context(), userID, req.Message, snapshot)
	if err != nil {
		h.writeServiceError(w, "chat", err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

// ChatHistory returns the user's stored conversation, oldest first.
func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	msgs, err := h.chat.History(r.Context(), r.PathValue("userID"), limit)
	if err != nil {
		h.writeServiceError(w, "chat history", err)
		return
	}

	resp := make([]ChatMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		resp = append(resp, ChatMessageResponse{
			Role:      string(msg.Role),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// ClearChatHistory deletes the user's stored conversation.
func (h *Handler) ClearChatHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.chat.ClearHistory(r.Context(), r.PathValue("userID")); err != nil {
		h.writeServiceError(w, "clear chat history", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DailyPlan asks the assistant for a short plan for today.
func (h *Handler) DailyPlan(w http.ResponseWriter, r *http.Request) {
	snapshot := h.snapshots.Load(r.Context(), model.User{ID: r.PathValue("userID")})

	plan, err := h.chat.DailyPlan(r.Context(), snapshot)
	if err != nil {
		h.writeServiceError(w, "daily plan", err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Reply: plan})
}

// Transcribe converts base64-encoded audio to text.
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req TranscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.transcribe.Transcribe(r.Context(), req.Audio, req.Language)
	if err != nil {
		if errors.Is(err, driven.ErrUnavailable) {
			h.writeServiceError(w, "transcribe", err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, TranscribeResponse{Text: text})
}

// PrayerTimes returns the timetable for the date query parameter (YYYY-MM-DD,
// default today). Never fails; a broken lookup yields the static fallback.
func (h *Handler) PrayerTimes(w http.ResponseWriter, r *http.Request) {
	times := h.religion.PrayerTimes(r.Context(), r.URL.Query().Get("date"))
	writeJSON(w, http.StatusOK, toPrayerTimesResponse(*times))
}

// GetLocation returns the configured prayer-time location.
func (h *Handler) GetLocation(w http.ResponseWriter, _ *http.Request) {
	loc := h.religion.Location()
	writeJSON(w, http.StatusOK, LocationResponse{City: loc.City, Country: loc.Country})
}

// SetLocation changes the prayer-time location.
func (h *Handler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.City == "" || req.Country == "" {
		writeError(w, http.StatusBadRequest, "city and country are required")
		return
	}

	loc := model.Location{City: req.City, Country: req.Country}
	if err := h.religion.SetLocation(r.Context(), loc); err != nil {
		h.writeServiceError(w, "set location", err)
		return
	}

	writeJSON(w, http.StatusOK, LocationResponse{City: loc.City, Country: loc.Country})
}

// DailyPrayer returns the dhikr for today.
func (h *Handler) DailyPrayer(w http.ResponseWriter, _ *http.Request) {
	p := h.religion.DailyPrayer()
	writeJSON(w, http.StatusOK, DailyPrayerResponse{Title: p.Title, Arabic: p.Arabic, Persian: p.Persian})
}

// DailyQuote returns the quote for today.
func (h *Handler) DailyQuote(w http.ResponseWriter, _ *http.Request) {
	q := h.religion.DailyQuote()
	writeJSON(w, http.StatusOK, QuoteResponse{Text: q.Text, Source: q.Source})
}

// ConvertDate converts between Gregorian and Jalali dates. Exactly one of the
// gregorian (YYYY-MM-DD) or jalali (YYYY/MM/DD) query parameters must be set.
func (h *Handler) ConvertDate(w http.ResponseWriter, r *http.Request) {
	gregorian := r.URL.Query().Get("gregorian")
	jalaliParam := r.URL.Query().Get("jalali")

	var (
		jd  jalali.Date
		gt  time.Time
		err error
	)
	switch {
	case gregorian != "" && jalaliParam == "":
		gt, err = time.Parse("2006-01-02", gregorian)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid gregorian date")
			return
		}
		jd = jalali.FromTime(gt)
	case jalaliParam != "" && gregorian == "":
		jd, err = jalali.Parse(jalaliParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid jalali date")
			return
		}
		gt, err = jalali.ToTime(jd)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid jalali date")
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "exactly one of gregorian or jalali is required")
		return
	}

	weekday, err := jalali.WeekdayName(jd)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	monthName, err := jalali.MonthName(jd.Month)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		Gregorian: gt.Format("2006-01-02"),
		Jalali:    jd.String(),
		Weekday:   weekday,
		MonthName: monthName,
	})
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// Persian degradation messages returned to the user instead of a hard error.
const (
	msgServiceUnavailable = "متأسفانه سرویس هوش مصنوعی در دسترس نیست. لطفاً بعداً دوباره تلاش کنید."
	msgErrorPrefix        = "متأسفانه خطایی رخ داد: "
)

const (
	chatMaxNewTokens = 500
	chatTemperature  = 0.7
	chatHistoryDepth = 5
)

// ChatService runs the Persian assistant conversation loop. A nil generator
// means the inference backend was not configured; the service then answers
// with a fixed apology instead of failing.
type ChatService struct {
	generator driven.TextGenerator
	history   driven.ChatHistoryStore
	modelID   string
	now       func() time.Time
}

// NewChatService wires the assistant. history may be nil when no local store
// is available; the conversation then carries no memory between calls.
func NewChatService(generator driven.TextGenerator, history driven.ChatHistoryStore, modelID string) *ChatService {
	return &ChatService{
		generator: generator,
		history:   history,
		modelID:   modelID,
		now:       time.Now,
	}
}

// Ask answers a user message in Persian, using the user's data snapshot and
// the recent conversation as context. Inference failures never return an
// error; the reply degrades to an apology string so the caller can always
// show something.
func (s *ChatService) Ask(ctx context.Context, userID, message string, snapshot UserSnapshot) (string, error) {
	if s.generator == nil {
		return msgServiceUnavailable, nil
	}

	prompt := s.buildPrompt(ctx, userID, message, snapshot)

	raw, err := s.generator.Generate(ctx, s.modelID, prompt, driven.GenerateParams{
		MaxNewTokens:   chatMaxNewTokens,
		Temperature:    chatTemperature,
		ReturnFullText: false,
	})
	if err != nil {
		slog.Error("chat generation failed", "error", err)
		return msgErrorPrefix + err.Error(), nil
	}

	reply := cleanResponse(raw, prompt)
	if reply == "" {
		reply = msgServiceUnavailable
	}

	s.record(ctx, userID, message, reply)
	return reply, nil
}

// ActivityHints narrows an activity suggestion to the user's current
// situation. Zero values mean the hint is unknown and is left out of the
// prompt.
type ActivityHints struct {
	TimeOfDay        string // "صبح", "ظهر", "عصر", "شب"
	Energy           string // "کم", "متوسط", "زیاد"
	AvailableMinutes int
}

// SuggestActivity asks the model for one workout suggestion tailored to the
// user's recent exercise log and the given hints, and returns it as
// structured data. A failed or unparseable answer falls back to a walking
// suggestion.
func (s *ChatService) SuggestActivity(ctx context.Context, snapshot UserSnapshot, hints ActivityHints) model.Exercise {
	fallback := model.Exercise{Type: "پیاده‌روی", DurationMin: 30, CaloriesBurned: 150}
	if s.generator == nil {
		return fallback
	}

	var b strings.Builder
	b.WriteString("با توجه به تمرینات اخیر کاربر، یک فعالیت ورزشی مناسب برای امروز پیشنهاد بده.\n")
	if hints.TimeOfDay != "" {
		fmt.Fprintf(&b, "زمان روز: %s\n", hints.TimeOfDay)
	}
	if hints.Energy != "" {
		fmt.Fprintf(&b, "سطح انرژی: %s\n", hints.Energy)
	}
	if hints.AvailableMinutes > 0 {
		fmt.Fprintf(&b, "زمان در دسترس: %d دقیقه\n", hints.AvailableMinutes)
	}
	if len(snapshot.Exercises) > 0 {
		b.WriteString("تمرینات اخیر:\n")
		for _, ex := range capExercises(snapshot.Exercises) {
			fmt.Fprintf(&b, "- %s: %d دقیقه\n", ex.Type, ex.DurationMin)
		}
	}
	b.WriteString(`پاسخ را فقط به صورت JSON با کلیدهای "type" و "duration_min" و "calories" بده.`)

	raw, err := s.generator.Generate(ctx, s.modelID, b.String(), driven.GenerateParams{
		MaxNewTokens:   chatMaxNewTokens,
		Temperature:    chatTemperature,
		ReturnFullText: false,
	})
	if err != nil {
		slog.Error("activity suggestion failed", "error", err)
		return fallback
	}

	suggestion, ok := parseActivityJSON(raw)
	if !ok {
		return fallback
	}
	return suggestion
}

// DailyPlan asks the model for a short Persian plan for today built from the
// user's snapshot. Failures degrade the same way Ask does.
func (s *ChatService) DailyPlan(ctx context.Context, snapshot UserSnapshot) (string, error) {
	if s.generator == nil {
		return msgServiceUnavailable, nil
	}

	var b strings.Builder
	b.WriteString("بر اساس اطلاعات زیر، یک برنامه روزانه کوتاه و عملی به زبان فارسی بنویس.\n\n")
	b.WriteString(FormatUserContext(snapshot))

	prompt := b.String()
	raw, err := s.generator.Generate(ctx, s.modelID, prompt, driven.GenerateParams{
		MaxNewTokens:   chatMaxNewTokens,
		Temperature:    chatTemperature,
		ReturnFullText: false,
	})
	if err != nil {
		slog.Error("daily plan generation failed", "error", err)
		return msgErrorPrefix + err.Error(), nil
	}

	plan := cleanResponse(raw, prompt)
	if plan == "" {
		plan = msgServiceUnavailable
	}
	return plan, nil
}

// History returns the most recent stored messages for the user, oldest first.
func (s *ChatService) History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, userID, limit)
}

// ClearHistory deletes the user's stored conversation.
func (s *ChatService) ClearHistory(ctx context.Context, userID string) error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear(ctx, userID)
}

func (s *ChatService) buildPrompt(ctx context.Context, userID, message string, snapshot UserSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "تاریخ امروز: %s\n", s.now().Format("2006-01-02"))
	b.WriteString("تو یک دستیار هوشمند فارسی‌زبان برای مدیریت زندگی هستی. ")
	b.WriteString("با لحنی دوستانه و محترمانه به فارسی پاسخ بده و از اطلاعات کاربر برای پاسخ دقیق‌تر استفاده کن.\n\n")

	b.WriteString(FormatUserContext(snapshot))

	if s.history != nil {
		recent, err := s.history.Recent(ctx, userID, chatHistoryDepth)
		if err != nil {
			slog.Warn("loading chat history failed", "error", err)
		}
		if len(recent) > 0 {
			b.WriteString("\nگفتگوی اخیر:\n")
			for _, msg := range recent {
				label := "کاربر"
				if msg.Role == model.ChatRoleAssistant {
					label = "دستیار"
				}
				fmt.Fprintf(&b, "%s: %s\n", label, msg.Content)
			}
		}
	}

	fmt.Fprintf(&b, "\nکاربر: %s\nدستیار:", message)
	return b.String()
}

func (s *ChatService) record(ctx context.Context, userID, message, reply string) {
	if s.history == nil {
		return
	}
	if err := s.history.Append(ctx, model.ChatMessage{UserID: userID, Role: model.ChatRoleUser, Content: message}); err != nil {
		slog.Warn("storing chat message failed", "role", "user", "error", err)
	}
	if err := s.history.Append(ctx, model.ChatMessage{UserID: userID, Role: model.ChatRoleAssistant, Content: reply}); err != nil {
		slog.Warn("storing chat message failed", "role", "assistant", "error", err)
	}
}

// cleanResponse strips an echoed prompt and any trailing turn the model
// hallucinated past its own answer.
func cleanResponse(raw, prompt string) string {
	text := strings.TrimSpace(raw)
	if after, ok := strings.CutPrefix(text, strings.TrimSpace(prompt)); ok {
		text = after
	}
	if idx := strings.LastIndex(text, "دستیار:"); idx >= 0 {
		text = text[idx+len("دستیار:"):]
	}
	if idx := strings.Index(text, "\nکاربر:"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// parseActivityJSON extracts the first JSON object from the model's answer.
// Models often wrap JSON in prose, so everything outside the outermost braces
// is ignored.
func parseActivityJSON(raw string) (model.Exercise, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return model.Exercise{}, false
	}

	var payload struct {
		Type        string `json:"type"`
		DurationMin int    `json:"duration_min"`
		Calories    int    `json:"calories"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return model.Exercise{}, false
	}
	if payload.Type == "" {
		return model.Exercise{}, false
	}

	ex := model.Exercise{
		Type:           payload.Type,
		DurationMin:    payload.DurationMin,
		CaloriesBurned: payload.Calories,
	}
	if ex.DurationMin <= 0 {
		ex.DurationMin = 30
	}
	return ex, true
}

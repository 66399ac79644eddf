package application

import (
	"fmt"
	"strings"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

// Per-section caps for prompt context. Only the most recent items go into the
// prompt so it stays within token limits.
const (
	maxContextTransactions = 5
	maxContextExercises    = 3
	maxContextEvents       = 3
	maxContextTasks        = 3
)

// UserSnapshot is the structured view of a user's data handed to the prompt
// formatter. Any slice may be empty; empty sections are omitted from the
// rendered text entirely.
type UserSnapshot struct {
	User         model.User
	Transactions []model.Transaction // newest first
	Metrics      []model.HealthMetric
	Exercises    []model.Exercise
	Events       []model.Event // upcoming first
	Tasks        []model.Task
}

func (s UserSnapshot) isEmpty() bool {
	return len(s.Transactions) == 0 && len(s.Metrics) == 0 && len(s.Exercises) == 0 &&
		len(s.Events) == 0 && len(s.Tasks) == 0
}

// FormatUserContext renders the snapshot as the Persian context block the
// assistant's system prompt embeds. Missing records and missing optional
// fields drop their lines; nothing here can fail.
func FormatUserContext(snapshot UserSnapshot) string {
	if snapshot.isEmpty() {
		return "اطلاعاتی در مورد کاربر در دسترس نیست.\n"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "نام کاربری: %s\n", snapshot.User.DisplayName())

	if len(snapshot.Transactions) > 0 {
		b.WriteString("\nاطلاعات مالی:\nتراکنش‌های اخیر:\n")
		for _, tx := range capTransactions(snapshot.Transactions) {
			kind := "درآمد"
			if tx.Type == model.TransactionExpense {
				kind = "هزینه"
			}
			fmt.Fprintf(&b, "- %s: %s تومان (%s)\n", tx.Title, formatAmount(tx.Amount), kind)
		}
	}

	if len(snapshot.Metrics) > 0 || len(snapshot.Exercises) > 0 {
		b.WriteString("\nاطلاعات سلامتی:\n")

		if len(snapshot.Metrics) > 0 {
			latest := snapshot.Metrics[0]
			fmt.Fprintf(&b, "آخرین معیارهای سلامتی (تاریخ: %s):\n", latest.Date)
			if latest.Weight != nil {
				fmt.Fprintf(&b, "- وزن: %g کیلوگرم\n", *latest.Weight)
			}
			if latest.HasBloodPressure() {
				fmt.Fprintf(&b, "- فشار خون: %d/%d\n", *latest.Systolic, *latest.Diastolic)
			}
		}

		if len(snapshot.Exercises) > 0 {
			b.WriteString("تمرینات اخیر:\n")
			for _, ex := range capExercises(snapshot.Exercises) {
				fmt.Fprintf(&b, "- %s: %d دقیقه (%s)\n", ex.Type, ex.DurationMin, ex.Date)
			}
		}
	}

	if len(snapshot.Events) > 0 || len(snapshot.Tasks) > 0 {
		b.WriteString("\nاطلاعات تقویم:\n")

		if len(snapshot.Events) > 0 {
			b.WriteString("رویدادهای آینده:\n")
			for _, ev := range capEvents(snapshot.Events) {
				line := fmt.Sprintf("- %s: %s", ev.Title, ev.Date)
				if ev.StartTime != "" {
					line += " ساعت " + ev.StartTime
				}
				b.WriteString(line + "\n")
			}
		}

		if len(snapshot.Tasks) > 0 {
			b.WriteString("وظایف در انتظار:\n")
			for _, task := range capTasks(snapshot.Tasks) {
				line := "- " + task.Title
				if task.DueDate != "" {
					line += fmt.Sprintf(" (موعد: %s)", task.DueDate)
				}
				b.WriteString(line + "\n")
			}
		}
	}

	return b.String()
}

// formatAmount renders an amount with thousands separators, e.g. 1,250,000.
func formatAmount(amount float64) string {
	s := fmt.Sprintf("%.0f", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func capTransactions(txs []model.Transaction) []model.Transaction {
	if len(txs) > maxContextTransactions {
		return txs[:maxContextTransactions]
	}
	return txs
}

func capExercises(exs []model.Exercise) []model.Exercise {
	if len(exs) > maxContextExercises {
		return exs[:maxContextExercises]
	}
	return exs
}

func capEvents(evs []model.Event) []model.Event {
	if len(evs) > maxContextEvents {
		return evs[:maxContextEvents]
	}
	return evs
}

func capTasks(tasks []model.Task) []model.Task {
	if len(tasks) > maxContextTasks {
		return tasks[:maxContextTasks]
	}
	return tasks
}

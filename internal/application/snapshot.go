package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// SnapshotLoader gathers a user's records from the relay services into the
// snapshot the assistant prompts are built from. Each section is best effort:
// an unavailable or failing backend leaves that section empty so the assistant
// can still answer from whatever is reachable.
type SnapshotLoader struct {
	finance  *FinanceService
	health   *HealthService
	calendar *CalendarService
}

func NewSnapshotLoader(finance *FinanceService, health *HealthService, calendar *CalendarService) *SnapshotLoader {
	return &SnapshotLoader{finance: finance, health: health, calendar: calendar}
}

// Load assembles the snapshot for the given user. Guest users get an empty
// snapshot since their data is never stored on the backend.
func (l *SnapshotLoader) Load(ctx context.Context, user model.User) UserSnapshot {
	snapshot := UserSnapshot{User: user}
	if user.IsGuest {
		return snapshot
	}

	if txs, err := l.finance.ListTransactions(ctx, user.ID); err != nil {
		logSnapshotErr("transactions", err)
	} else {
		snapshot.Transactions = txs
	}

	if metrics, err := l.health.ListMetrics(ctx, user.ID); err != nil {
		logSnapshotErr("metrics", err)
	} else {
		snapshot.Metrics = metrics
	}

	if exercises, err := l.health.ListExercises(ctx, user.ID); err != nil {
		logSnapshotErr("exercises", err)
	} else {
		snapshot.Exercises = exercises
	}

	if events, err := l.calendar.ListEvents(ctx, user.ID); err != nil {
		logSnapshotErr("events", err)
	} else {
		snapshot.Events = events
	}

	if tasks, err := l.calendar.ListTasks(ctx, user.ID); err != nil {
		logSnapshotErr("tasks", err)
	} else {
		snapshot.Tasks = tasks
	}

	return snapshot
}

func logSnapshotErr(section string, err error) {
	if errors.Is(err, driven.ErrUnavailable) {
		return
	}
	slog.Warn("snapshot section unavailable", "section", section, "error", err)
}

package driven

import (
	"context"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

// FinanceStore defines the driven port for financial records held by the
// hosted backend. List results are ordered by date descending and capped at
// the backend's page limit (50).
type FinanceStore interface {
	AddTransaction(ctx context.Context, tx model.Transaction) error
	ListTransactions(ctx context.Context, userID string) ([]model.Transaction, error)
}

// HealthStore defines the driven port for health records held by the hosted backend.
type HealthStore interface {
	AddMetric(ctx context.Context, m model.HealthMetric) error
	ListMetrics(ctx context.Context, userID string) ([]model.HealthMetric, error)
	AddExercise(ctx context.Context, e model.Exercise) error
	ListExercises(ctx context.Context, userID string) ([]model.Exercise, error)
}

// CalendarStore defines the driven port for events and tasks held by the
// hosted backend. Events are listed in ascending date order.
type CalendarStore interface {
	AddEvent(ctx context.Context, e model.Event) error
	ListEvents(ctx context.Context, userID string) ([]model.Event, error)
	AddTask(ctx context.Context, t model.Task) error
	ListTasks(ctx context.Context, userID string) ([]model.Task, error)
}

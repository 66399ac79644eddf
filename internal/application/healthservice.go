package application

import (
	"context"
	"fmt"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// HealthService relays body metrics and exercise logs to the hosted backend.
// A nil store means the backend was not configured.
type HealthService struct {
	store driven.HealthStore
}

func NewHealthService(store driven.HealthStore) *HealthService {
	return &HealthService{store: store}
}

// AddMetric forwards a dated measurement set to the backend. At least one
// measurement must be present.
func (s *HealthService) AddMetric(ctx context.Context, m model.HealthMetric) error {
	if s.store == nil {
		return fmt.Errorf("health: %w", driven.ErrUnavailable)
	}
	if m.UserID == "" {
		return fmt.Errorf("health: missing user id")
	}
	if m.Weight == nil && m.Systolic == nil && m.Diastolic == nil && m.HeartRate == nil && m.SleepHours == nil {
		return fmt.Errorf("health: metric has no measurements")
	}
	if err := s.store.AddMetric(ctx, m); err != nil {
		return fmt.Errorf("adding metric: %w", err)
	}
	return nil
}

// ListMetrics returns the user's recent measurements, newest first.
func (s *HealthService) ListMetrics(ctx context.Context, userID string) ([]model.HealthMetric, error) {
	if s.store == nil {
		return nil, fmt.Errorf("health: %w", driven.ErrUnavailable)
	}
	metrics, err := s.store.ListMetrics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing metrics: %w", err)
	}
	return metrics, nil
}

// LatestMetric returns the most recent measurement set, or ok=false when the
// user has none.
func (s *HealthService) LatestMetric(ctx context.Context, userID string) (model.HealthMetric, bool, error) {
	metrics, err := s.ListMetrics(ctx, userID)
	if err != nil {
		return model.HealthMetric{}, false, err
	}
	if len(metrics) == 0 {
		return model.HealthMetric{}, false, nil
	}
	return metrics[0], true, nil
}

// AddExercise forwards a workout log entry to the backend.
func (s *HealthService) AddExercise(ctx context.Context, e model.Exercise) error {
	if s.store == nil {
		return fmt.Errorf("health: %w", driven.ErrUnavailable)
	}
	if e.UserID == "" {
		return fmt.Errorf("health: missing user id")
	}
	if e.Type == "" {
		return fmt.Errorf("health: missing exercise type")
	}
	if e.DurationMin <= 0 {
		return fmt.Errorf("health: duration must be positive")
	}
	if err := s.store.AddExercise(ctx, e); err != nil {
		return fmt.Errorf("adding exercise: %w", err)
	}
	return nil
}

// ListExercises returns the user's recent workout log, newest first.
func (s *HealthService) ListExercises(ctx context.Context, userID string) ([]model.Exercise, error) {
	if s.store == nil {
		return nil, fmt.Errorf("health: %w", driven.ErrUnavailable)
	}
	exercises, err := s.store.ListExercises(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	return exercises, nil
}

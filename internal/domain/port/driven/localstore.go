package driven

import (
	"context"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

// ChatHistoryStore defines the driven port for locally persisted conversation
// history. History survives restarts so the assistant keeps its short-term
// context without a round trip to the hosted backend.
type ChatHistoryStore interface {
	Append(ctx context.Context, msg model.ChatMessage) error
	// Recent returns the newest limit messages for the user in chronological order.
	Recent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error)
	Clear(ctx context.Context, userID string) error
}

// SettingsStore defines the driven port for locally persisted user settings.
type SettingsStore interface {
	// GetLocation returns the stored prayer-time location, or ok=false when
	// none has been saved yet.
	GetLocation(ctx context.Context) (model.Location, bool, error)
	SetLocation(ctx context.Context, loc model.Location) error
}

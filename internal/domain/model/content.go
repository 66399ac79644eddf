package model

// DailyPrayer is a short dhikr with its Persian translation.
type DailyPrayer struct {
	Arabic  string
	Persian string
	Title   string
}

// Quote is a religious quote with its source attribution.
type Quote struct {
	Text   string
	Source string
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	ID        int64
	UserID    string
	Role      ChatRole
	Content   string
	CreatedAt string // RFC 3339.
}

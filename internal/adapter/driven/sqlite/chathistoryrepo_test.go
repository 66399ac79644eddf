package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

func TestChatHistoryRepo_AppendAndRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatHistoryRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.ChatMessage{
		UserID: "u1", Role: model.ChatRoleUser, Content: "سلام",
	}))
	require.NoError(t, repo.Append(ctx, model.ChatMessage{
		UserID: "u1", Role: model.ChatRoleAssistant, Content: "سلام! چه کمکی از دستم برمی‌آید؟",
	}))

	msgs, err := repo.Recent(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, model.ChatRoleUser, msgs[0].Role)
	assert.Equal(t, "سلام", msgs[0].Content)
	assert.Equal(t, model.ChatRoleAssistant, msgs[1].Role)
	assert.NotEmpty(t, msgs[0].CreatedAt)
}

func TestChatHistoryRepo_RecentReturnsNewestInOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatHistoryRepo(db)
	ctx := context.Background()

	for i := 1; i <= 8; i++ {
		require.NoError(t, repo.Append(ctx, model.ChatMessage{
			UserID: "u1", Role: model.ChatRoleUser, Content: fmt.Sprintf("پیام %d", i),
		}))
	}

	msgs, err := repo.Recent(ctx, "u1", 5)
	require.NoError(t, err)
	require.Len(t, msgs, 5)

	// Newest five, oldest of them first.
	assert.Equal(t, "پیام 4", msgs[0].Content)
	assert.Equal(t, "پیام 8", msgs[4].Content)
}

func TestChatHistoryRepo_RecentIsolatesUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatHistoryRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.ChatMessage{UserID: "u1", Role: model.ChatRoleUser, Content: "a"}))
	require.NoError(t, repo.Append(ctx, model.ChatMessage{UserID: "u2", Role: model.ChatRoleUser, Content: "b"}))

	msgs, err := repo.Recent(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "a", msgs[0].Content)
}

func TestChatHistoryRepo_Clear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatHistoryRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.ChatMessage{UserID: "u1", Role: model.ChatRoleUser, Content: "x"}))
	require.NoError(t, repo.Clear(ctx, "u1"))

	msgs, err := repo.Recent(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestSettingsRepo_LocationRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)
	ctx := context.Background()

	_, ok, err := repo.GetLocation(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	loc := model.Location{City: "Mashhad", Country: "Iran"}
	require.NoError(t, repo.SetLocation(ctx, loc))

	got, ok, err := repo.GetLocation(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, loc, got)
}

func TestSettingsRepo_SetLocationOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.SetLocation(ctx, model.Location{City: "Tehran", Country: "Iran"}))
	require.NoError(t, repo.SetLocation(ctx, model.Location{City: "Shiraz", Country: "Iran"}))

	got, ok, err := repo.GetLocation(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Shiraz", got.City)
}

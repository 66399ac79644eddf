package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pouyakarimi/zendegi/internal/adapter/driven/supabase"
	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *supabase.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return supabase.NewClientWithHTTPClient(server.Client(), server.URL, "anon-key")
}

func TestListTransactions(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/finance_transactions", r.URL.Path)
		require.Equal(t, "anon-key", r.Header.Get("apikey"))
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"t2","user_id":"u1","title":"حقوق","amount":50000000,"date":"2026-08-01","type":"income"},
			{"id":"t1","user_id":"u1","title":"خرید","amount":1200000,"date":"2026-07-28","type":"expense","category_name":"خوراک"}
		]`))
	})

	client := newTestClient(t, handler)
	txs, err := client.ListTransactions(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "حقوق", txs[0].Title)
	assert.Equal(t, model.TransactionIncome, txs[0].Type)
	assert.Equal(t, "خوراک", txs[1].CategoryName)

	assert.Equal(t, []string{"eq.u1"}, gotQuery["user_id"])
	assert.Equal(t, []string{"date.desc"}, gotQuery["order"])
	assert.Equal(t, []string{"50"}, gotQuery["limit"])
}

func TestListEvents_AscendingOrder(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "date.asc", r.URL.Query().Get("order"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestClient(t, handler)
	events, err := client.ListEvents(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAddTransaction(t *testing.T) {
	var gotBody map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/finance_transactions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	client := newTestClient(t, handler)
	err := client.AddTransaction(context.Background(), model.Transaction{
		UserID: "u1",
		Title:  "اجاره",
		Amount: 30000000,
		Date:   "2026-08-05",
		Type:   model.TransactionExpense,
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", gotBody["user_id"])
	assert.Equal(t, "اجاره", gotBody["title"])
	assert.Equal(t, "expense", gotBody["type"])
}

func TestListMetrics_OptionalFields(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"m1","user_id":"u1","date":"2026-08-20","weight":78.5},
			{"id":"m2","user_id":"u1","date":"2026-08-10","systolic":120,"diastolic":80}
		]`))
	})

	client := newTestClient(t, handler)
	metrics, err := client.ListMetrics(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, metrics, 2)

	require.NotNil(t, metrics[0].Weight)
	assert.InDelta(t, 78.5, *metrics[0].Weight, 0.001)
	assert.False(t, metrics[0].HasBloodPressure())

	assert.Nil(t, metrics[1].Weight)
	assert.True(t, metrics[1].HasBloodPressure())
}

func TestSelect_ServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	client := newTestClient(t, handler)
	_, err := client.ListTransactions(context.Background(), "u1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSignIn_Success(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sara@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "jwt",
			"user": {
				"id": "user-123",
				"email": "sara@example.com",
				"created_at": "2025-01-15T09:30:00Z",
				"last_sign_in_at": "2026-08-29T07:00:00Z",
				"user_metadata": {"name": "سارا"}
			}
		}`))
	})

	client := newTestClient(t, handler)
	user, err := client.SignIn(context.Background(), "sara@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "سارا", user.Name)
	assert.False(t, user.IsGuest)
	assert.Equal(t, 2025, user.CreatedAt.Year())
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	})

	client := newTestClient(t, handler)
	_, err := client.SignIn(context.Background(), "sara@example.com", "wrong")

	assert.ErrorIs(t, err, driven.ErrInvalidCredentials)
}

func TestSignIn_MalformedBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	client := newTestClient(t, handler)
	_, err := client.SignIn(context.Background(), "sara@example.com", "secret")

	assert.Error(t, err)
}

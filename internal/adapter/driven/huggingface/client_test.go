package huggingface_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pouyakarimi/zendegi/internal/adapter/driven/huggingface"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *huggingface.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return huggingface.NewClientWithHTTPClient(
		server.Client(), server.URL, "test-key", "fa-model", "en-model")
}

var defaultParams = driven.GenerateParams{MaxNewTokens: 800, Temperature: 0.7}

func TestGenerate_ListShape(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat-model", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "سلام", body["inputs"])
		params, ok := body["parameters"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 800, params["max_new_tokens"], 0.001)

		_, _ = w.Write([]byte(`[{"generated_text": "سلام! چطور می‌توانم کمک کنم؟"}]`))
	})

	client := newTestClient(t, handler)
	text, err := client.Generate(context.Background(), "chat-model", "سلام", defaultParams)

	require.NoError(t, err)
	assert.Equal(t, "سلام! چطور می‌توانم کمک کنم؟", text)
}

func TestGenerate_ObjectShape(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text": "پاسخ"}`))
	})

	client := newTestClient(t, handler)
	text, err := client.Generate(context.Background(), "chat-model", "سوال", defaultParams)

	require.NoError(t, err)
	assert.Equal(t, "پاسخ", text)
}

func TestGenerate_BareStringShape(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`"یک پاسخ ساده"`))
	})

	client := newTestClient(t, handler)
	text, err := client.Generate(context.Background(), "chat-model", "سوال", defaultParams)

	require.NoError(t, err)
	assert.Equal(t, "یک پاسخ ساده", text)
}

func TestGenerate_UnknownShapeCoercesToString(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"something_else": 42}`))
	})

	client := newTestClient(t, handler)
	text, err := client.Generate(context.Background(), "chat-model", "سوال", defaultParams)

	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "something_else")
}

func TestGenerate_APIErrorField(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Model is currently loading"}`))
	})

	client := newTestClient(t, handler)
	_, err := client.Generate(context.Background(), "chat-model", "سوال", defaultParams)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Model is currently loading")
}

func TestGenerate_HTTPError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	})

	client := newTestClient(t, handler)
	_, err := client.Generate(context.Background(), "chat-model", "سوال", defaultParams)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestTranscribe_PersianModelSelection(t *testing.T) {
	var gotPath string
	var gotBody []byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"text": "سلام دنیا"}`))
	})

	client := newTestClient(t, handler)
	text, err := client.Transcribe(context.Background(), []byte{0x1a, 0x45}, "fa")

	require.NoError(t, err)
	assert.Equal(t, "سلام دنیا", text)
	assert.Equal(t, "/fa-model", gotPath)
	assert.Equal(t, []byte{0x1a, 0x45}, gotBody)
}

func TestTranscribe_EnglishModelSelection(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"text": "hello world"}]`))
	})

	client := newTestClient(t, handler)
	text, err := client.Transcribe(context.Background(), []byte{0x00}, "en")

	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, "/en-model", gotPath)
}

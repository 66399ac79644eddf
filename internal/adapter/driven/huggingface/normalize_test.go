package huggingface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractGeneratedText_AllShapesYieldText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"list", `[{"generated_text": "a"}]`, "a"},
		{"list text field", `[{"text": "b"}]`, "b"},
		{"object", `{"generated_text": "c"}`, "c"},
		{"object text field", `{"text": "d"}`, "d"},
		{"bare string", `"e"`, "e"},
		{"empty list falls back", `[]`, "[]"},
		{"unknown object falls back", `{"foo": 1}`, `{"foo": 1}`},
		{"non-json falls back", `plain`, "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractGeneratedText([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestExtractGeneratedText_ErrorField(t *testing.T) {
	_, err := extractGeneratedText([]byte(`{"error": "overloaded"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded")
}

func TestExtractTranscript(t *testing.T) {
	got, err := extractTranscript([]byte(`{"text": "x"}`))
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	got, err = extractTranscript([]byte(`[{"text": "y"}]`))
	require.NoError(t, err)
	assert.Equal(t, "y", got)

	got, err = extractTranscript([]byte(`"z"`))
	require.NoError(t, err)
	assert.Equal(t, "z", got)
}

func TestSniffShape(t *testing.T) {
	assert.Equal(t, shapeList, sniffShape([]byte(`  [1]`)))
	assert.Equal(t, shapeObject, sniffShape([]byte(`{}`)))
	assert.Equal(t, shapeString, sniffShape([]byte(`"s"`)))
	assert.Equal(t, shapeOther, sniffShape([]byte(`123`)))
	assert.Equal(t, shapeOther, sniffShape([]byte(``)))
}

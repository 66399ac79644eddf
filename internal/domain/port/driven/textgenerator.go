package driven

import "context"

// GenerateParams are the decoding knobs forwarded to the inference backend.
type GenerateParams struct {
	MaxNewTokens   int
	Temperature    float64
	ReturnFullText bool
}

// TextGenerator defines the driven port for the hosted text-inference backend.
// Implementations perform exactly one network call per Generate; no retries.
type TextGenerator interface {
	// Generate sends the prompt to the named model and returns the extracted
	// generated text. The response body's shape is not contractually fixed;
	// implementations must tolerate a list of objects, a single object, or a
	// bare string, and fall back to a string rendering of the whole payload.
	Generate(ctx context.Context, modelID, prompt string, params GenerateParams) (string, error)
}

// Transcriber defines the driven port for speech-to-text inference.
type Transcriber interface {
	// Transcribe sends raw audio bytes and returns the recognized text.
	// language is an ISO 639-1 code; "fa" selects the Persian model.
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

package application

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// TranscriptionService turns recorded audio into text through the hosted
// speech model. A nil transcriber means the inference backend was not
// configured.
type TranscriptionService struct {
	transcriber driven.Transcriber
}

func NewTranscriptionService(transcriber driven.Transcriber) *TranscriptionService {
	return &TranscriptionService{transcriber: transcriber}
}

// Transcribe decodes base64 audio and sends it to the speech model. language
// defaults to Persian when empty.
func (s *TranscriptionService) Transcribe(ctx context.Context, audioBase64, language string) (string, error) {
	if s.transcriber == nil {
		return "", fmt.Errorf("transcription: %w", driven.ErrUnavailable)
	}
	if language == "" {
		language = "fa"
	}

	audio, err := base64.StdEncoding.DecodeString(strings.TrimSpace(audioBase64))
	if err != nil {
		return "", fmt.Errorf("decoding audio: %w", err)
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("decoding audio: empty payload")
	}

	text, err := s.transcriber.Transcribe(ctx, audio, language)
	if err != nil {
		return "", fmt.Errorf("transcribing audio: %w", err)
	}
	return strings.TrimSpace(text), nil
}

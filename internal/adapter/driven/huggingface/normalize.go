package huggingface

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The inference API's response body is not contractually fixed-shape: the same
// endpoint may answer with a list of objects, a single object, or a bare
// string. The shape is decoded exactly once here, into a closed set of cases,
// so consumers never see raw JSON.

// payloadShape is the closed set of response shapes the API produces.
type payloadShape int

const (
	shapeList payloadShape = iota
	shapeObject
	shapeString
	shapeOther
)

// sniffShape classifies a response body by its first JSON token.
func sniffShape(raw []byte) payloadShape {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return shapeOther
	}
	switch trimmed[0] {
	case '[':
		return shapeList
	case '{':
		return shapeObject
	case '"':
		return shapeString
	default:
		return shapeOther
	}
}

// generatedObject is the object form of a generation result.
type generatedObject struct {
	GeneratedText *string `json:"generated_text"`
	Text          *string `json:"text"`
	Error         *string `json:"error"`
}

// extractGeneratedText pulls the generated text out of a generation response.
// A designated text field is preferred; shapes without one fall back to a
// string rendering of the whole payload. An explicit error field from the API
// is surfaced as an error.
func extractGeneratedText(raw []byte) (string, error) {
	switch sniffShape(raw) {
	case shapeList:
		var items []generatedObject
		if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
			return coerce(raw), nil
		}
		if text, ok := textField(items[0]); ok {
			return text, nil
		}
		return coerce(raw), nil

	case shapeObject:
		var obj generatedObject
		if err := json.Unmarshal(raw, &obj); err != nil {
			return coerce(raw), nil
		}
		if obj.Error != nil {
			return "", fmt.Errorf("inference error: %s", *obj.Error)
		}
		if text, ok := textField(obj); ok {
			return text, nil
		}
		return coerce(raw), nil

	case shapeString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return coerce(raw), nil
		}
		return s, nil

	default:
		return coerce(raw), nil
	}
}

// extractTranscript pulls recognized text out of a speech-to-text response,
// which answers either {"text": ...} or [{"text": ...}].
func extractTranscript(raw []byte) (string, error) {
	switch sniffShape(raw) {
	case shapeObject:
		var obj generatedObject
		if err := json.Unmarshal(raw, &obj); err == nil {
			if obj.Error != nil {
				return "", fmt.Errorf("inference error: %s", *obj.Error)
			}
			if obj.Text != nil {
				return *obj.Text, nil
			}
		}
		return coerce(raw), nil

	case shapeList:
		var items []generatedObject
		if err := json.Unmarshal(raw, &items); err == nil && len(items) > 0 && items[0].Text != nil {
			return *items[0].Text, nil
		}
		return coerce(raw), nil

	case shapeString:
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, nil
		}
		return coerce(raw), nil

	default:
		return coerce(raw), nil
	}
}

// textField returns the designated text field of an object, preferring
// generated_text over text.
func textField(obj generatedObject) (string, bool) {
	if obj.GeneratedText != nil {
		return *obj.GeneratedText, true
	}
	if obj.Text != nil {
		return *obj.Text, true
	}
	return "", false
}

// coerce is the last-resort string rendering of an unrecognized payload.
func coerce(raw []byte) string {
	return strings.TrimSpace(string(raw))
}

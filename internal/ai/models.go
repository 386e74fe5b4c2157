package ai

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any network call when no credential is configured.
var ErrMissingAPIKey = errors.New("openrouter: missing api key")

// DecodeError means the upstream body was not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("openrouter: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ShapeError means the upstream body was JSON but lacked a usable choices array.
// Payload holds the whole decoded body for diagnostics.
type ShapeError struct {
	// MissingChoices is true when the key is absent, false when it is present but empty or malformed.
	MissingChoices bool
	Payload        any
}

func (e *ShapeError) Error() string {
	if e.MissingChoices {
		return "openrouter: response has no choices key"
	}
	return "openrouter: response has empty choices"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatChoice struct {
	Message struct {
		Role    string  `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
}

// firstChoiceContent validates the decoded payload and pulls the first reply text out of it.
func firstChoiceContent(payload any) (string, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return "", &ShapeError{MissingChoices: true, Payload: payload}
	}
	raw, ok := obj["choices"]
	if !ok {
		return "", &ShapeError{MissingChoices: true, Payload: payload}
	}

	// Round-trip through json to get typed choices without a second read of the body.
	b, err := json.Marshal(raw)
	if err != nil {
		return "", &ShapeError{Payload: payload}
	}
	var choices []chatChoice
	if err := json.Unmarshal(b, &choices); err != nil || len(choices) == 0 {
		return "", &ShapeError{Payload: payload}
	}

	content := choices[0].Message.Content
	if content == nil {
		return "", nil
	}
	return *content, nil
}

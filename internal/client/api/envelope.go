package api

import (
	"encoding/json"
	"fmt"

	"pyset/internal/core"
)

// Envelope is the normalised outcome of every pySET call.
// Status is true iff the server answered with an accepted status token.
type Envelope struct {
	Status  bool           `json:"status"`
	Content map[string]any `json:"content"`
}

// Token returns the status token carried by the content
func (e Envelope) Token() core.Status {
	token, _ := e.Content["status"].(string)
	return core.Status(token)
}

// ErrorText returns the content's error field, empty when absent
func (e Envelope) ErrorText() string {
	switch v := e.Content["error"].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Decode re-reads the content into a typed payload
func (e Envelope) Decode(v any) error {
	data, err := json.Marshal(e.Content)
	if err != nil {
		return fmt.Errorf("encoding envelope content: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding envelope content: %w", err)
	}
	return nil
}

func failure(status core.Status, text string) Envelope {
	return Envelope{
		Status: false,
		Content: map[string]any{
			"status": string(status),
			"error":  text,
		},
	}
}

// ModalMessage is the caller-owned notification slot written by the
// endpoint wrappers when a call fails.
type ModalMessage struct {
	TriggerModal bool   `json:"triggerModal"`
	Title        string `json:"modalTitle"`
	Message      string `json:"modalMessage"`
}

// Fail fills the slot from a failed envelope. A nil slot is ignored.
func (m *ModalMessage) Fail(title string, env Envelope) {
	if m == nil {
		return
	}
	*m = ModalMessage{
		TriggerModal: true,
		Title:        title,
		Message:      "Request failed: " + env.ErrorText(),
	}
}

// Reset clears the slot once the caller has displayed it
func (m *ModalMessage) Reset() {
	if m == nil {
		return
	}
	*m = ModalMessage{}
}

// Package meetingapi is the HTTP client for the meeting intelligence
// service: the audio-processing endpoint, the Trello bridge and the health
// probe.
package meetingapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nguyentantai21042004/meeting-flow/internal/upload"
)

// Client talks to the remote meeting intelligence service.
type Client interface {
	ProcessAudio(ctx context.Context, req upload.Request) (Result, error)
	SendToTrello(ctx context.Context, actionItems []string) (DispatchResponse, error)
	Health(ctx context.Context) (Health, error)
}

// HTTPDoer describes the HTTP client used to reach the service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is the processed form of one recording.
type Result struct {
	Transcript  string   `json:"transcript"`
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
}

// DispatchResponse is the Trello bridge's answer to a successful dispatch.
type DispatchResponse struct {
	Message      string            `json:"message"`
	CreatedCards []json.RawMessage `json:"created_cards,omitempty"`
	Status       string            `json:"status,omitempty"`
}

// Health reports whether the service and each of its agents are up.
type Health struct {
	Message string       `json:"message"`
	Agents  AgentsStatus `json:"agents"`
}

type AgentsStatus struct {
	Transcription bool `json:"transcription"`
	Summarization bool `json:"summarization"`
	Trello        bool `json:"trello"`
}

// Package workflow is the client-side controller: it owns the session
// state, issues the two outbound requests and derives what to render.
package workflow

import (
	"context"

	"github.com/nguyentantai21042004/meeting-flow/internal/meetingapi"
	"github.com/nguyentantai21042004/meeting-flow/internal/upload"
)

// Service is the remote side the controller drives.
type Service interface {
	ProcessAudio(ctx context.Context, req upload.Request) (meetingapi.Result, error)
	SendToTrello(ctx context.Context, actionItems []string) (meetingapi.DispatchResponse, error)
}

// Controller runs the processing and dispatch sub-machines over one State.
//
// SubmitAudio and DispatchActionItems block until their request resolves and
// report whether the command was accepted. A command issued while the same
// kind of request is in flight, or a dispatch with nothing to send, is
// dropped. Request failures never surface as errors; they land in State.Err.
type Controller interface {
	SubmitAudio(ctx context.Context, req upload.Request) bool
	DispatchActionItems(ctx context.Context) bool
	Snapshot() State
	// Subscribe registers fn to receive every applied transition, in order.
	// fn must not issue commands; it may subscribe or unsubscribe. The
	// returned func unregisters fn and is safe to call more than once.
	Subscribe(fn func(State)) func()
	// Close aborts in-flight requests and rejects further commands.
	Close()
}

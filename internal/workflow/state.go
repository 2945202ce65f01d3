package workflow

import "github.com/nguyentantai21042004/meeting-flow/internal/meetingapi"

// State is everything the client knows about the current session. The zero
// value is the initial state.
type State struct {
	Phase         Phase
	DispatchPhase DispatchPhase

	// Result is nil until the latest submission succeeds.
	Result *meetingapi.Result
	// Err is the latest error from either sub-machine; "" means none.
	Err string
	// DispatchMessage is the bridge's success message; "" means none.
	DispatchMessage string

	// generation counts submissions. A dispatch that resolves after a newer
	// submission started belongs to a discarded result.
	generation         uint64
	dispatchGeneration uint64
}

func (s State) IsProcessing() bool { return s.Phase == PhaseProcessing }

func (s State) IsDispatching() bool { return s.DispatchPhase == DispatchInFlight }

// HasActionItems reports whether there is anything to dispatch.
func (s State) HasActionItems() bool {
	return s.Result != nil && len(s.Result.ActionItems) > 0
}

// clone returns a copy that shares no memory with s.
func (s State) clone() State {
	if s.Result != nil {
		r := copyResult(*s.Result)
		s.Result = &r
	}
	return s
}

func copyResult(r meetingapi.Result) meetingapi.Result {
	if r.ActionItems != nil {
		r.ActionItems = append([]string(nil), r.ActionItems...)
	}
	return r
}

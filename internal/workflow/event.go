package workflow

import "github.com/nguyentantai21042004/meeting-flow/internal/meetingapi"

// Event is an input to Reduce.
type Event interface {
	event()
}

// SubmitStarted is a new audio submission.
type SubmitStarted struct{}

type ProcessSucceeded struct {
	Result meetingapi.Result
}

type ProcessFailed struct {
	Message string
}

// DispatchStarted is a request to forward the current action items.
type DispatchStarted struct{}

// DispatchResolved events carry the generation recorded by DispatchStarted.
type DispatchResolved struct {
	Generation uint64
	Message    string
	Failed     bool
}

func (SubmitStarted) event()    {}
func (ProcessSucceeded) event() {}
func (ProcessFailed) event()    {}
func (DispatchStarted) event()  {}
func (DispatchResolved) event() {}

package workflow

// Phase is the position of the audio-processing sub-machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseProcessing
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseProcessing:
		return "Processing"
	case PhaseSucceeded:
		return "Succeeded"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// DispatchPhase is the position of the Trello dispatch sub-machine.
type DispatchPhase int

const (
	DispatchReady DispatchPhase = iota
	DispatchInFlight
	DispatchSucceeded
	DispatchFailed
)

func (p DispatchPhase) String() string {
	switch p {
	case DispatchReady:
		return "Ready"
	case DispatchInFlight:
		return "Dispatching"
	case DispatchSucceeded:
		return "DispatchSucceeded"
	case DispatchFailed:
		return "DispatchFailed"
	default:
		return "Unknown"
	}
}

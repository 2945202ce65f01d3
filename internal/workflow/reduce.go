package workflow

// Reduce applies ev to s and returns the next state. The boolean is false
// when the event is rejected, in which case s is returned unchanged.
//
// Rejected events: a submission while one is in flight, a dispatch while
// one is in flight or with no action items, and any resolution that has no
// matching in-flight request.
func Reduce(s State, ev Event) (State, bool) {
	switch e := ev.(type) {
	case SubmitStarted:
		if s.IsProcessing() {
			return s, false
		}
		s.generation++
		s.Phase = PhaseProcessing
		s.Result = nil
		s.Err = ""
		s.DispatchMessage = ""
		if !s.IsDispatching() {
			s.DispatchPhase = DispatchReady
		}
		return s, true

	case ProcessSucceeded:
		if !s.IsProcessing() {
			return s, false
		}
		r := copyResult(e.Result)
		s.Phase = PhaseSucceeded
		s.Result = &r
		return s, true

	case ProcessFailed:
		if !s.IsProcessing() {
			return s, false
		}
		s.Phase = PhaseFailed
		s.Err = e.Message
		return s, true

	case DispatchStarted:
		if s.IsDispatching() || !s.HasActionItems() {
			return s, false
		}
		s.DispatchPhase = DispatchInFlight
		s.DispatchMessage = ""
		s.dispatchGeneration = s.generation
		return s, true

	case DispatchResolved:
		if !s.IsDispatching() || e.Generation != s.dispatchGeneration {
			return s, false
		}
		if e.Generation != s.generation {
			// The result it was sent for has been replaced; only release the flag.
			s.DispatchPhase = DispatchReady
			return s, true
		}
		if e.Failed {
			s.DispatchPhase = DispatchFailed
			s.Err = e.Message
			return s, true
		}
		s.DispatchPhase = DispatchSucceeded
		s.DispatchMessage = e.Message
		return s, true
	}
	return s, false
}

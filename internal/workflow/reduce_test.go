package workflow

import (
	"reflect"
	"testing"

	"github.com/nguyentantai21042004/meeting-flow/internal/meetingapi"
)

func succeededState(items ...string) State {
	s, _ := Reduce(State{}, SubmitStarted{})
	s, _ = Reduce(s, ProcessSucceeded{Result: meetingapi.Result{
		Transcript:  "Hello world",
		Summary:     "Greeting",
		ActionItems: items,
	}})
	return s
}

func TestReduceSubmitClearsPreviousSession(t *testing.T) {
	prior := succeededState("Say hi")
	prior, _ = Reduce(prior, DispatchStarted{})
	prior, _ = Reduce(prior, DispatchResolved{Generation: prior.dispatchGeneration, Message: "Added 1 card"})
	prior.Err = "Failed to send to Trello"

	tests := []struct {
		name  string
		state State
	}{
		{"from initial", State{}},
		{"from succeeded with outcome and error", prior},
		{"from failed", func() State {
			s, _ := Reduce(State{}, SubmitStarted{})
			s, _ = Reduce(s, ProcessFailed{Message: "Failed to process audio"})
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := Reduce(tt.state, SubmitStarted{})
			if !ok {
				t.Fatal("SubmitStarted rejected")
			}
			if next.Result != nil || next.Err != "" || next.DispatchMessage != "" {
				t.Errorf("stale data kept: result=%v err=%q dispatch=%q", next.Result, next.Err, next.DispatchMessage)
			}
			if !next.IsProcessing() {
				t.Errorf("Phase = %v, want %v", next.Phase, PhaseProcessing)
			}
			if next.DispatchPhase != DispatchReady {
				t.Errorf("DispatchPhase = %v, want %v", next.DispatchPhase, DispatchReady)
			}
		})
	}
}

func TestReduceRejectsReentrantSubmit(t *testing.T) {
	s, _ := Reduce(State{}, SubmitStarted{})
	next, ok := Reduce(s, SubmitStarted{})
	if ok {
		t.Error("second SubmitStarted accepted while processing")
	}
	if !reflect.DeepEqual(next, s) {
		t.Errorf("state changed on rejected submit: %+v -> %+v", s, next)
	}
}

func TestReduceDispatchGuard(t *testing.T) {
	processing, _ := Reduce(State{}, SubmitStarted{})

	tests := []struct {
		name  string
		state State
	}{
		{"no result", State{}},
		{"processing", processing},
		{"empty action items", succeededState()},
		{"nil action items", succeededState(nil...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := Reduce(tt.state, DispatchStarted{})
			if ok {
				t.Error("DispatchStarted accepted")
			}
			if !reflect.DeepEqual(next, tt.state) {
				t.Errorf("state changed: %+v -> %+v", tt.state, next)
			}
		})
	}
}

func TestReduceDispatchLifecycle(t *testing.T) {
	s := succeededState("Email finance team", "Schedule follow-up")

	s, ok := Reduce(s, DispatchStarted{})
	if !ok || !s.IsDispatching() {
		t.Fatalf("DispatchStarted: ok=%v dispatching=%v", ok, s.IsDispatching())
	}
	if _, ok := Reduce(s, DispatchStarted{}); ok {
		t.Error("second DispatchStarted accepted while dispatching")
	}

	done, ok := Reduce(s, DispatchResolved{Generation: s.dispatchGeneration, Message: "2 cards created"})
	if !ok {
		t.Fatal("DispatchResolved rejected")
	}
	if done.DispatchPhase != DispatchSucceeded || done.DispatchMessage != "2 cards created" {
		t.Errorf("got phase %v message %q", done.DispatchPhase, done.DispatchMessage)
	}
	if done.Result == nil || len(done.Result.ActionItems) != 2 {
		t.Errorf("Result changed by dispatch: %+v", done.Result)
	}

	failed, _ := Reduce(s, DispatchResolved{Generation: s.dispatchGeneration, Message: "Failed to send to Trello", Failed: true})
	if failed.DispatchPhase != DispatchFailed || failed.Err != "Failed to send to Trello" {
		t.Errorf("got phase %v err %q", failed.DispatchPhase, failed.Err)
	}
	if failed.DispatchMessage != "" {
		t.Errorf("DispatchMessage = %q, want empty", failed.DispatchMessage)
	}
}

func TestReduceDispatchDoesNotClearError(t *testing.T) {
	s := succeededState("Say hi")
	s, _ = Reduce(s, DispatchStarted{})
	s, _ = Reduce(s, DispatchResolved{Generation: s.dispatchGeneration, Message: "Failed to send to Trello", Failed: true})

	s, ok := Reduce(s, DispatchStarted{})
	if !ok {
		t.Fatal("retry dispatch rejected")
	}
	if s.Err != "Failed to send to Trello" {
		t.Errorf("Err = %q, want it kept until the next submission", s.Err)
	}
}

func TestReduceDiscardsDispatchForReplacedResult(t *testing.T) {
	s := succeededState("Say hi")
	s, _ = Reduce(s, DispatchStarted{})
	gen := s.dispatchGeneration

	s, ok := Reduce(s, SubmitStarted{})
	if !ok {
		t.Fatal("SubmitStarted rejected during dispatch")
	}
	if !s.IsDispatching() {
		t.Error("dispatch flag released before its request resolved")
	}

	s, ok = Reduce(s, DispatchResolved{Generation: gen, Message: "Added 1 card"})
	if !ok {
		t.Fatal("stale DispatchResolved rejected")
	}
	if s.IsDispatching() || s.DispatchMessage != "" || s.Err != "" {
		t.Errorf("stale outcome applied: %+v", s)
	}
	if !s.IsProcessing() {
		t.Error("processing interrupted by stale dispatch")
	}
}

func TestReduceRejectsUnmatchedResolutions(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{"process succeeded", ProcessSucceeded{}},
		{"process failed", ProcessFailed{Message: "x"}},
		{"dispatch resolved", DispatchResolved{Message: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Reduce(State{}, tt.ev); ok {
				t.Errorf("%T accepted without a request in flight", tt.ev)
			}
		})
	}
}

func TestReduceCopiesResult(t *testing.T) {
	items := []string{"Say hi"}
	s, _ := Reduce(State{}, SubmitStarted{})
	s, _ = Reduce(s, ProcessSucceeded{Result: meetingapi.Result{ActionItems: items}})

	items[0] = "mutated"
	if s.Result.ActionItems[0] != "Say hi" {
		t.Errorf("ActionItems aliased caller slice: %v", s.Result.ActionItems)
	}
}

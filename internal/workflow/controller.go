package workflow

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/meetingapi"
	"github.com/nguyentantai21042004/meeting-flow/internal/upload"
)

type implController struct {
	svc     Service
	timeout time.Duration
	logger  logger.Logger

	lifetime context.Context
	cancel   context.CancelFunc

	mu     sync.Mutex
	state  State
	closed bool

	// notifyMu keeps subscriber delivery in transition order.
	notifyMu sync.Mutex

	// subsMu guards the registry only, so fn may (un)subscribe during delivery.
	subsMu      sync.Mutex
	subscribers map[int]func(State)
	nextSubID   int
}

func (c *implController) SubmitAudio(ctx context.Context, req upload.Request) bool {
	if _, ok := c.apply(SubmitStarted{}); !ok {
		c.logger.Debug(ctx, "Submission of %s dropped: already processing", req.Filename)
		return false
	}
	c.logger.Info(ctx, "Submitting %s (%d bytes)", req.Filename, len(req.Data))

	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	start := time.Now()
	result, err := c.svc.ProcessAudio(reqCtx, req)
	if err != nil {
		msg := meetingapi.UserMessage(err, meetingapi.ProcessFallback)
		c.logger.Error(ctx, "Processing %s failed: %v", req.Filename, err)
		c.apply(ProcessFailed{Message: msg})
		return true
	}

	c.logger.Info(ctx, "Processed %s in %s", req.Filename, time.Since(start).Round(time.Millisecond))
	c.apply(ProcessSucceeded{Result: result})
	return true
}

func (c *implController) DispatchActionItems(ctx context.Context) bool {
	started, ok := c.apply(DispatchStarted{})
	if !ok {
		c.logger.Debug(ctx, "Dispatch dropped: in flight or no action items")
		return false
	}
	items := append([]string(nil), started.Result.ActionItems...)
	gen := started.dispatchGeneration
	c.logger.Info(ctx, "Dispatching %d action items", len(items))

	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	resp, err := c.svc.SendToTrello(reqCtx, items)
	if err != nil {
		msg := meetingapi.UserMessage(err, meetingapi.DispatchFallback)
		c.logger.Error(ctx, "Dispatch failed: %v", err)
		c.resolveDispatch(ctx, DispatchResolved{Generation: gen, Message: msg, Failed: true})
		return true
	}

	c.resolveDispatch(ctx, DispatchResolved{Generation: gen, Message: resp.Message})
	return true
}

func (c *implController) resolveDispatch(ctx context.Context, ev DispatchResolved) {
	next, ok := c.apply(ev)
	if ok && next.DispatchPhase == DispatchReady {
		c.logger.Warn(ctx, "Dispatch outcome discarded: a newer submission replaced its action items")
	}
}

func (c *implController) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *implController) Subscribe(fn func(State)) func() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	return func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		delete(c.subscribers, id)
	}
}

// listeners returns the registered subscribers in registration order.
func (c *implController) listeners() []func(State) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	ids := make([]int, 0, len(c.subscribers))
	for id := range c.subscribers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(State), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.subscribers[id])
	}
	return fns
}

func (c *implController) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}

// apply runs ev through Reduce and publishes the result when accepted.
func (c *implController) apply(ev Event) (State, bool) {
	c.mu.Lock()
	if c.closed && isCommand(ev) {
		s := c.state.clone()
		c.mu.Unlock()
		return s, false
	}
	next, ok := Reduce(c.state, ev)
	if !ok {
		c.mu.Unlock()
		return next.clone(), false
	}
	c.state = next
	snapshot := next.clone()

	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()
	for _, fn := range c.listeners() {
		fn(snapshot.clone())
	}
	return snapshot, true
}

// requestContext bounds one outbound call by the caller's context, the
// controller lifetime and the configured timeout.
func (c *implController) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.lifetime, cancel)
	if c.timeout <= 0 {
		return ctx, func() {
			stop()
			cancel()
		}
	}
	ctx, cancelTimeout := context.WithTimeout(ctx, c.timeout)
	return ctx, func() {
		cancelTimeout()
		stop()
		cancel()
	}
}

func isCommand(ev Event) bool {
	switch ev.(type) {
	case SubmitStarted, DispatchStarted:
		return true
	}
	return false
}

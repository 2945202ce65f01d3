package workflow

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type Options struct {
	// Timeout bounds each outbound request. Zero means no bound.
	Timeout time.Duration
}

// New creates a Controller in the initial state.
func New(svc Service, opts Options, log logger.Logger) Controller {
	if log == nil {
		log = logger.Nop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &implController{
		svc:         svc,
		timeout:     opts.Timeout,
		logger:      log,
		lifetime:    ctx,
		cancel:      cancel,
		subscribers: make(map[int]func(State)),
	}
}

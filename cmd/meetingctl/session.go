package main

import (
	"net/http"

	"github.com/nguyentantai21042004/meeting-flow/internal/meetingapi"
	"github.com/nguyentantai21042004/meeting-flow/internal/workflow"
)

func (a *appContext) newClient() meetingapi.Client {
	return meetingapi.New(a.cfg.API.BaseURL, &http.Client{}, a.log)
}

// newController builds a controller whose transitions are drawn by r.
func (a *appContext) newController(r *renderer) workflow.Controller {
	ctrl := workflow.New(a.newClient(), workflow.Options{Timeout: a.cfg.API.Timeout}, a.log)
	if r != nil {
		ctrl.Subscribe(func(s workflow.State) {
			r.Render(workflow.View(s))
		})
	}
	return ctrl
}

package workflow

// RenderModel is what a presentation layer should draw for one State.
type RenderModel struct {
	UploadDisabled bool
	ShowLoading    bool

	ShowError   bool
	ErrorBanner string

	ShowSuccess   bool
	SuccessBanner string

	ShowResults bool
	Transcript  string
	Summary     string
	ActionItems []string

	DispatchDisabled   bool
	DispatchInProgress bool
}

// View derives the render model from s. It has no side effects.
func View(s State) RenderModel {
	m := RenderModel{
		UploadDisabled:     s.IsProcessing(),
		ShowLoading:        s.IsProcessing(),
		ShowError:          s.Err != "",
		ErrorBanner:        s.Err,
		ShowSuccess:        s.DispatchMessage != "",
		SuccessBanner:      s.DispatchMessage,
		DispatchDisabled:   s.IsDispatching() || !s.HasActionItems(),
		DispatchInProgress: s.IsDispatching(),
	}
	if s.Result != nil && !s.IsProcessing() {
		m.ShowResults = true
		m.Transcript = s.Result.Transcript
		m.Summary = s.Result.Summary
		m.ActionItems = append([]string(nil), s.Result.ActionItems...)
	}
	return m
}

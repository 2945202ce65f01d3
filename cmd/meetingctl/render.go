package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/nguyentantai21042004/meeting-flow/internal/workflow"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// renderer draws render models as they change. It only prints what differs
// from the previous model so a terminal reads like a log of the session.
type renderer struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
	prev     workflow.RenderModel
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out, colorize: shouldColorize(out)}
}

// Reset forgets the previous model, e.g. when a new file starts.
func (r *renderer) Reset(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prev = workflow.RenderModel{}
	if title != "" {
		for _, line := range renderSectionHeader(title, r.colorize) {
			fmt.Fprintln(r.out, line)
		}
	}
}

func (r *renderer) Render(m workflow.RenderModel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ShowLoading && !r.prev.ShowLoading {
		r.line(ansiBlue, "Processing your audio file...")
	}
	if m.DispatchInProgress && !r.prev.DispatchInProgress {
		r.line(ansiBlue, "Sending action items to Trello...")
	}
	// A settled dispatch without a success banner failed, possibly with the
	// same text as the last error.
	dispatchFailed := r.prev.DispatchInProgress && !m.DispatchInProgress && !m.ShowSuccess
	if m.ShowError && (m.ErrorBanner != r.prev.ErrorBanner || dispatchFailed) {
		r.line(ansiRed, "[ERROR] "+m.ErrorBanner)
	}
	if m.ShowSuccess && m.SuccessBanner != r.prev.SuccessBanner {
		r.line(ansiGreen, "[OK] "+m.SuccessBanner)
	}
	if m.ShowResults && !r.prev.ShowResults {
		r.results(m)
	}

	r.prev = m
}

func (r *renderer) results(m workflow.RenderModel) {
	r.section("Transcript")
	fmt.Fprintln(r.out, strings.TrimSpace(m.Transcript))
	fmt.Fprintln(r.out)

	r.section("Summary")
	fmt.Fprintln(r.out, strings.TrimSpace(m.Summary))
	fmt.Fprintln(r.out)

	r.section(fmt.Sprintf("Action Items (%d)", len(m.ActionItems)))
	if len(m.ActionItems) == 0 {
		r.line(ansiYellow, "No action items found.")
		return
	}
	rows := make([][]string, 0, len(m.ActionItems))
	for i, item := range m.ActionItems {
		rows = append(rows, []string{strconv.Itoa(i + 1), item})
	}
	fmt.Fprintln(r.out, renderTable([]string{"#", "Action item"}, rows, []columnAlignment{alignRight, alignLeft}))
}

func (r *renderer) section(title string) {
	for _, line := range renderSectionHeader(title, r.colorize) {
		fmt.Fprintln(r.out, line)
	}
}

func (r *renderer) line(color, text string) {
	if r.colorize {
		text = color + text + ansiReset
	}
	fmt.Fprintln(r.out, text)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

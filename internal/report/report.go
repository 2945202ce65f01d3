package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-flow/internal/meetingapi"
)

// Write renders result to <name>.md and <name>.docx in the destination dir.
func (w *implWriter) Write(ctx context.Context, name string, result meetingapi.Result) (Files, error) {
	if err := os.MkdirAll(w.destDir, 0755); err != nil {
		return Files{}, fmt.Errorf("create reports dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	md := Markdown(base, w.now().Format("2006-01-02 15:04"), result)

	files := Files{
		Markdown: filepath.Join(w.destDir, base+".md"),
		Docx:     filepath.Join(w.destDir, base+".docx"),
	}

	if err := os.WriteFile(files.Markdown, []byte(md), 0644); err != nil {
		return Files{}, fmt.Errorf("write markdown report: %w", err)
	}
	if err := markdownToDocx(base, md, files.Docx); err != nil {
		return Files{}, fmt.Errorf("write docx report: %w", err)
	}

	w.logger.Info(ctx, "Report written: %s, %s", files.Markdown, files.Docx)
	return files, nil
}

// Markdown lays a processed meeting out as a Markdown document.
func Markdown(title, timestamp string, result meetingapi.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	if timestamp != "" {
		fmt.Fprintf(&b, "_%s_\n\n", timestamp)
	}

	b.WriteString("## Summary\n\n")
	b.WriteString(strings.TrimSpace(result.Summary))
	b.WriteString("\n\n")

	b.WriteString("## Action Items\n\n")
	if len(result.ActionItems) == 0 {
		b.WriteString("No action items.\n\n")
	}
	for i, item := range result.ActionItems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.TrimSpace(item))
	}
	if len(result.ActionItems) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## Transcript\n\n")
	b.WriteString(strings.TrimSpace(result.Transcript))
	b.WriteString("\n")

	return b.String()
}

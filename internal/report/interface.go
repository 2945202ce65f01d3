package report

import (
	"context"

	"github.com/nguyentantai21042004/meeting-flow/internal/meetingapi"
)

// Writer saves a processed meeting as Markdown and Word documents.
type Writer interface {
	Write(ctx context.Context, name string, result meetingapi.Result) (Files, error)
}

// Files lists what Write produced.
type Files struct {
	Markdown string
	Docx     string
}

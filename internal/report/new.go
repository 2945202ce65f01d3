package report

import (
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type implWriter struct {
	destDir string
	logger  logger.Logger
	now     func() time.Time
}

// New creates a Writer that stores reports under destDir.
func New(destDir string, log logger.Logger) Writer {
	return &implWriter{
		destDir: destDir,
		logger:  log,
		now:     time.Now,
	}
}

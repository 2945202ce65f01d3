package meetingapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type implClient struct {
	baseURL   string
	client    HTTPDoer
	logger    logger.Logger
	requestID func() string
}

// New creates a Client rooted at baseURL. A nil doer uses http.DefaultClient.
func New(baseURL string, doer HTTPDoer, log logger.Logger) Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	if log == nil {
		log = logger.Nop()
	}
	return &implClient{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:    doer,
		logger:    log,
		requestID: uuid.NewString,
	}
}

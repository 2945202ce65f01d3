package meetingapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	ProcessFallback  = "Failed to process audio"
	DispatchFallback = "Failed to send to Trello"
	TimeoutMessage   = "Request timed out"

	maxErrorBody = 64 << 10
)

// Kind classifies why a call failed.
type Kind int

const (
	// KindTransport: the request never produced a response.
	KindTransport Kind = iota
	// KindApplication: the service answered with a non-2xx status.
	KindApplication
	// KindMalformed: a 2xx answer whose body did not have the expected shape.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindApplication:
		return "application"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// APIError is returned by every Client call that fails. Message is the text
// meant for the user: the service's detail when it sent one, otherwise the
// operation's fallback.
type APIError struct {
	Op         string
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// UserMessage maps any error from a Client call to the text shown to the
// user. Deadline expiry wins over everything else.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return TimeoutMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// failureFromResponse applies the detail-or-fallback policy to a non-2xx
// response.
func failureFromResponse(op string, resp *http.Response, fallback string) *APIError {
	return &APIError{
		Op:         op,
		Kind:       KindApplication,
		StatusCode: resp.StatusCode,
		Message:    detailOrFallback(resp.Body, fallback),
	}
}

func detailOrFallback(body io.Reader, fallback string) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return fallback
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Detail) == 0 {
		return fallback
	}
	// FastAPI validation errors carry a list here; only a plain string counts.
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil || detail == "" {
		return fallback
	}
	return detail
}

func transportError(op string, err error, fallback string) *APIError {
	return &APIError{Op: op, Kind: KindTransport, Message: fallback, Err: err}
}

func malformedError(op string, status int, err error, fallback string) *APIError {
	return &APIError{Op: op, Kind: KindMalformed, StatusCode: status, Message: fallback, Err: err}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

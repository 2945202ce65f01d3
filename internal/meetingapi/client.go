package meetingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/upload"
)

const (
	processAudioPath = "/process-audio"
	sendToTrelloPath = "/send-to-trello"
	healthPath       = "/"

	requestIDHeader = "X-Request-ID"
)

// ProcessAudio uploads the recording as multipart field "file".
func (c *implClient) ProcessAudio(ctx context.Context, req upload.Request) (Result, error) {
	const op = "process audio"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", req.Filename)
	if err != nil {
		return Result{}, transportError(op, fmt.Errorf("create form file: %w", err), ProcessFallback)
	}
	if _, err := part.Write(req.Data); err != nil {
		return Result{}, transportError(op, fmt.Errorf("write form file: %w", err), ProcessFallback)
	}
	if err := mw.Close(); err != nil {
		return Result{}, transportError(op, fmt.Errorf("close multipart body: %w", err), ProcessFallback)
	}

	ctx, resp, err := c.do(ctx, op, http.MethodPost, processAudioPath, mw.FormDataContentType(), &body, ProcessFallback)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		apiErr := failureFromResponse(op, resp, ProcessFallback)
		c.logger.Warn(ctx, "Audio processing rejected (%d): %s", resp.StatusCode, apiErr.Message)
		return Result{}, apiErr
	}

	var payload struct {
		Transcript  *string   `json:"transcript"`
		Summary     *string   `json:"summary"`
		ActionItems *[]string `json:"action_items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, malformedError(op, resp.StatusCode, fmt.Errorf("decode response: %w", err), ProcessFallback)
	}
	if payload.Transcript == nil || payload.Summary == nil || payload.ActionItems == nil {
		return Result{}, malformedError(op, resp.StatusCode, errors.New("response missing transcript, summary or action_items"), ProcessFallback)
	}

	result := Result{
		Transcript:  *payload.Transcript,
		Summary:     *payload.Summary,
		ActionItems: *payload.ActionItems,
	}
	c.logger.Info(ctx, "Audio processed: %s (%d action items)", req.Filename, len(result.ActionItems))
	return result, nil
}

// SendToTrello posts the action items, in order, as a JSON array of strings.
func (c *implClient) SendToTrello(ctx context.Context, actionItems []string) (DispatchResponse, error) {
	const op = "send to trello"

	if actionItems == nil {
		actionItems = []string{}
	}
	data, err := json.Marshal(actionItems)
	if err != nil {
		return DispatchResponse{}, transportError(op, fmt.Errorf("encode action items: %w", err), DispatchFallback)
	}

	ctx, resp, err := c.do(ctx, op, http.MethodPost, sendToTrelloPath, "application/json", bytes.NewReader(data), DispatchFallback)
	if err != nil {
		return DispatchResponse{}, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		apiErr := failureFromResponse(op, resp, DispatchFallback)
		c.logger.Warn(ctx, "Trello dispatch rejected (%d): %s", resp.StatusCode, apiErr.Message)
		return DispatchResponse{}, apiErr
	}

	var out DispatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return DispatchResponse{}, malformedError(op, resp.StatusCode, fmt.Errorf("decode response: %w", err), DispatchFallback)
	}
	if out.Message == "" {
		return DispatchResponse{}, malformedError(op, resp.StatusCode, errors.New("response missing message"), DispatchFallback)
	}

	c.logger.Info(ctx, "Sent %d action items to Trello: %s", len(actionItems), out.Message)
	return out, nil
}

// Health queries the service root, which reports per-agent availability.
func (c *implClient) Health(ctx context.Context) (Health, error) {
	const op = "health"
	const fallback = "Service unavailable"

	ctx, resp, err := c.do(ctx, op, http.MethodGet, healthPath, "", nil, fallback)
	if err != nil {
		return Health{}, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return Health{}, failureFromResponse(op, resp, fallback)
	}

	var out Health
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Health{}, malformedError(op, resp.StatusCode, fmt.Errorf("decode response: %w", err), fallback)
	}
	return out, nil
}

// do sends one request tagged with a fresh request id. The returned context
// carries that id for logging.
func (c *implClient) do(ctx context.Context, op, method, path, contentType string, body io.Reader, fallback string) (context.Context, *http.Response, error) {
	id := c.requestID()
	ctx = logger.WithRequestID(ctx, id)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return ctx, nil, transportError(op, fmt.Errorf("build request: %w", err), fallback)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, id)

	start := time.Now()
	c.logger.Debug(ctx, "%s %s", method, req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error(ctx, "%s failed after %s: %v", op, time.Since(start).Round(time.Millisecond), err)
		return ctx, nil, transportError(op, err, fallback)
	}
	c.logger.Debug(ctx, "%s %s -> %d in %s", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return ctx, resp, nil
}

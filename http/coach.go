package http

import (
	"context"
	"io"
	"net/http"

	"github.com/fwojciec/compass"
)

// Ensure Coacher implements compass.Coacher at compile time.
var _ compass.Coacher = (*Coacher)(nil)

// Coacher requests coach responses via the backend API.
type Coacher struct {
	client *Client
}

// NewCoacher creates a new Coacher.
func NewCoacher(client *Client) *Coacher {
	return &Coacher{client: client}
}

// Coach posts the request to the coaching endpoint and returns the response
// body untouched.
func (c *Coacher) Coach(ctx context.Context, req compass.CoachRequest) (compass.CoachResult, error) {
	resp, err := c.client.do(ctx, http.MethodPost, CoachPath, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, statusError(resp.StatusCode, "Coach API error")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return compass.CoachResult(body), nil
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parking_kiosk/internal/models"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

// ErrTransport wraps failures to reach the backend or to decode its answer.
var ErrTransport = errors.New("backend unreachable")

// APIError is a non-2xx answer the backend did not explain with a {status,msg} body.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Client talks to the parking backend's REST API.
type Client struct {
	base string
	h    *http.Client
}

// New returns a client for base, e.g. "http://192.168.1.10:5000".
// A zero timeout selects the default.
func New(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		h:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string { return c.base }

// History calls GET /api/history. Both bounds are sent only when both are set;
// otherwise the backend answers with its default (latest) set.
func (c *Client) History(ctx context.Context, rng models.DateRange) ([]models.TransactionRecord, error) {
	path := "/api/history"
	if rng.Filtered() {
		q := url.Values{}
		q.Set("start", rng.Start)
		q.Set("end", rng.End)
		path += "?" + q.Encode()
	}
	var out []models.TransactionRecord
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Registered calls GET /api/registered.
func (c *Client) Registered(ctx context.Context) ([]models.RegisteredVehicle, error) {
	var out []models.RegisteredVehicle
	if err := c.getJSON(ctx, "/api/registered", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddRegistered calls POST /api/registered. The backend reports rejections
// (duplicate plate, invalid plate) through the returned result, with a 400.
func (c *Client) AddRegistered(ctx context.Context, in models.VehicleInput) (models.APIResult, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return models.APIResult{}, fmt.Errorf("encode vehicle: %w", err)
	}
	return c.doResult(ctx, http.MethodPost, "/api/registered", bytes.NewReader(body))
}

// DeleteRegistered calls DELETE /api/registered/<plate>.
func (c *Client) DeleteRegistered(ctx context.Context, plate string) (models.APIResult, error) {
	return c.doResult(ctx, http.MethodDelete, "/api/registered/"+url.PathEscape(plate), nil)
}

// Control calls POST /api/control/<action> with no body.
func (c *Client) Control(ctx context.Context, action string) (models.APIResult, error) {
	return c.doResult(ctx, http.MethodPost, "/api/control/"+url.PathEscape(action), nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.h.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Method: http.MethodGet, Path: path, Status: resp.StatusCode, Body: string(b)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrTransport, path, err)
	}
	return nil
}

// doResult decodes the {status,msg} envelope regardless of the status code.
func (c *Client) doResult(ctx context.Context, method, path string, body io.Reader) (models.APIResult, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return models.APIResult{}, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.APIResult{}, fmt.Errorf("%w: read %s: %v", ErrTransport, path, err)
	}
	var res models.APIResult
	if err := json.Unmarshal(b, &res); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if len(b) > maxErrorBody {
				b = b[:maxErrorBody]
			}
			return models.APIResult{}, &APIError{Method: method, Path: path, Status: resp.StatusCode, Body: string(b)}
		}
		return models.APIResult{}, fmt.Errorf("%w: decode %s: %v", ErrTransport, path, err)
	}
	return res, nil
}

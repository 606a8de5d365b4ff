// Package upload talks to the daily report API: login, project lookup and
// batch import.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/session"
)

// API paths relative to the server URL.
const (
	loginPath       = "/api/v1/auth/login"
	myProjectPath   = "/api/v1/projects/my-project"
	batchImportPath = "/api/v1/daily-reports/batch-import"
)

// codeOK is the envelope code for success.
const codeOK = 1

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

// Client performs API calls. Every call fails fast after the configured
// timeout.
type Client struct {
	http *http.Client
	now  func() time.Time
}

// NewClient creates a client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a client on top of an existing http.Client.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{http: hc, now: time.Now}
}

// envelope is the response wrapper used by every endpoint.
type envelope struct {
	Code    int             `json:"code"`
	Msg     string          `json:"msg"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// errorMessage picks msg, then message, then def.
func (e *envelope) errorMessage(def string) string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Message != "" {
		return e.Message
	}
	return def
}

// call describes one API request.
type call struct {
	method  string
	baseURL string
	path    string
	token   string
	body    interface{}
	// okCodes lists the envelope codes treated as success.
	okCodes []int
	// failMessage is reported when the envelope carries no message.
	failMessage string
}

func (c *Client) do(ctx context.Context, req call, out interface{}) error {
	logger := zerolog.Ctx(ctx)

	url := strings.TrimRight(req.baseURL, "/") + req.path
	requestID := uuid.New().String()

	var body io.Reader
	if req.body != nil {
		data, err := encodeJSON(req.body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", requestID)
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
		httpReq.Header.Set("token", req.token)
	}

	reqLogger := logger.With().
		Str("method", req.method).
		Str("url", url).
		Str("request_id", requestID).
		Logger()
	if req.token != "" {
		reqLogger = reqLogger.With().Str("token", session.Mask(req.token)).Logger()
	}

	start := c.now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		reqLogger.Error().Err(err).Msg("request failed")
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	reqLogger.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", c.now().Sub(start)).
		Msg("response received")

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := ""
		if decodeErr == nil {
			msg = env.errorMessage("")
		}
		if msg == "" {
			msg = statusMessage(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: msg}
	}
	if decodeErr != nil {
		return fmt.Errorf("invalid response format: %w", decodeErr)
	}

	if !containsCode(req.okCodes, env.Code) {
		return &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.errorMessage(req.failMessage)}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("invalid response data: %w", err)
	}
	return nil
}

func containsCode(codes []int, code int) bool {
	if len(codes) == 0 {
		return code == codeOK
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// encodeJSON marshals v without HTML escaping.
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func classifyTransportError(err error) error {
	var netErr interface{ Timeout() bool }
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
}

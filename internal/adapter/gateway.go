// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/esteh-pos/pos-client/internal/config"
	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/esteh-pos/pos-client/internal/metrics"
	"github.com/esteh-pos/pos-client/internal/utils"
	"github.com/go-resty/resty/v2"
)

// connectivityMarkers are substrings of transport errors that mean the
// backend could not be reached at all. The first two are the wordings of
// browser and mobile fetch implementations proxied through the web shell.
var connectivityMarkers = []string{
	"Failed to fetch",
	"Network request failed",
	"connection refused",
	"no such host",
	"network is unreachable",
	"dial tcp",
	"i/o timeout",
	"connection reset",
}

type httpGateway struct {
	client  *utils.HTTPClient
	baseURL string
	tokens  TokenSource

	metrics *metrics.GatewayMetrics
	logger  *logger.Logger
}

// NewHTTPGateway constructs the resty-backed [Gateway]. cfg.BaseURL must be
// the already resolved backend URL; it is normalised once here. tokens is
// consulted on every call. m may be nil.
func NewHTTPGateway(cfg config.ClientAdapter, tokens TokenSource, m *metrics.GatewayMetrics, log *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if tokens == nil {
		return nil, fmt.Errorf("token source is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &httpGateway{
		client:  utils.NewHTTPClient(cfg.RequestTimeout, log),
		baseURL: baseURL,
		tokens:  tokens,
		metrics: m,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// URL implements [Gateway]. A missing leading slash is added, so "foo" and
// "/foo" resolve to the same URL.
func (g *httpGateway) URL(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return g.baseURL + endpoint
}

// Do implements [Gateway].
func (g *httpGateway) Do(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error) {
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}
	target := g.URL(endpoint)

	req := g.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	for k, v := range opts.Headers {
		req.SetHeader(k, v)
	}
	g.authorize(ctx, req)

	if opts.Body != nil {
		body, err := encodeBody(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body for %s: %w", target, err)
		}
		req.SetBody(body)
	}

	return g.execute(req, method, target, "[API]", methodNotAllowedMessage)
}

// DoForm implements [Gateway].
func (g *httpGateway) DoForm(ctx context.Context, endpoint string, form *FormData, method string) (json.RawMessage, error) {
	method = strings.ToUpper(method)
	if method == "" {
		method = http.MethodPost
	}
	target := g.URL(endpoint)

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil, &RequestError{
			Kind: ErrMethodNotAllowed,
			URL:  target,
			Message: fmt.Sprintf("Method not allowed for upload: %s %s. "+
				"Multipart forms are sent with POST, PUT or PATCH; use a _method field for other verbs.", method, target),
		}
	}
	if form == nil {
		form = NewFormData()
	}

	fields, closeFiles, err := form.multipartFields()
	if err != nil {
		return nil, fmt.Errorf("prepare upload for %s: %w", target, err)
	}
	defer closeFiles()

	req := g.newRequest(ctx).
		SetHeader("Accept", "application/json").
		SetMultipartFields(fields...)
	g.authorize(ctx, req)

	return g.execute(req, method, target, "[FormData]", uploadMethodNotAllowedMessage)
}

func (g *httpGateway) newRequest(ctx context.Context) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader(utils.RequestIDHeader, utils.NewRequestID())
}

// authorize sets the bearer header last, so a caller-supplied Authorization
// header never survives when a session exists.
func (g *httpGateway) authorize(ctx context.Context, req *resty.Request) {
	if token, ok := g.tokens.GetToken(ctx); ok && token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
}

func (g *httpGateway) execute(req *resty.Request, method, target, tag string, notAllowed func(method, target string) string) (json.RawMessage, error) {
	requestID := req.Header.Get(utils.RequestIDHeader)
	log := g.logger.With().Str("request_id", requestID).Logger()
	log.Debug().Msgf("%s %s %s", tag, method, target)

	start := time.Now()
	resp, err := req.Execute(method, target)

	var data json.RawMessage
	if err != nil {
		err = g.transportError(err, target)
	} else {
		data, err = classify(resp.StatusCode(), resp.Body(), method, target, notAllowed)
	}

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = KindName(err)
		log.Warn().Err(err).Str("outcome", outcome).Msgf("%s %s %s failed", tag, method, target)
	}
	g.metrics.Observe(method, outcome, time.Since(start))

	return data, err
}

// classify turns a received response into data or a [*RequestError].
// Order matters: an empty body is reported even for 2xx, and a non-JSON
// body is reported before the status is looked at. A 404 or 405 keeps its
// dedicated wording in every branch.
func classify(status int, body []byte, method, target string, notAllowed func(method, target string) string) (json.RawMessage, error) {
	statusText := http.StatusText(status)
	hint := statusHint(status, method, target, notAllowed)

	if len(body) == 0 {
		return nil, &RequestError{
			Kind:    ErrEmptyResponse,
			Status:  status,
			URL:     target,
			Message: withHint(fmt.Sprintf("Server returned empty response: %d %s", status, statusText), hint),
		}
	}

	if !json.Valid(body) {
		return nil, &RequestError{
			Kind:   ErrInvalidJSON,
			Status: status,
			URL:    target,
			Message: withHint(fmt.Sprintf("Invalid JSON response from server (HTTP %d) at %s. "+
				"The backend may be unreachable or misconfigured.", status, target), hint),
		}
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		switch status {
		case http.StatusNotFound:
			return nil, &RequestError{Kind: ErrNotFound, Status: status, URL: target, Message: hint}
		case http.StatusMethodNotAllowed:
			return nil, &RequestError{Kind: ErrMethodNotAllowed, Status: status, URL: target, Message: hint}
		}

		msg, ok := serverMessage(body)
		if !ok {
			msg = fmt.Sprintf("HTTP %d: %s", status, statusText)
		}
		return nil, &RequestError{Kind: ErrHTTP, Status: status, URL: target, Message: msg}
	}

	return json.RawMessage(body), nil
}

// statusHint returns the dedicated message of a 404 or 405, or "".
func statusHint(status int, method, target string, notAllowed func(method, target string) string) string {
	switch status {
	case http.StatusNotFound:
		return fmt.Sprintf("Endpoint not found (404): %s. "+
			"Check that the backend exposes this route.", target)
	case http.StatusMethodNotAllowed:
		return notAllowed(method, target)
	default:
		return ""
	}
}

func withHint(msg, hint string) string {
	if hint == "" {
		return msg
	}
	return msg + "\n" + hint
}

func methodNotAllowedMessage(method, target string) string {
	return fmt.Sprintf("Method not allowed (405): %s %s is not supported by the backend.", method, target)
}

func uploadMethodNotAllowedMessage(method, target string) string {
	return fmt.Sprintf("Method not allowed (405) for upload: %s %s. "+
		"The backend may expect POST with a _method override.", method, target)
}

// transportError classifies a failure to obtain any response.
func (g *httpGateway) transportError(err error, target string) error {
	raw := err.Error()
	for _, marker := range connectivityMarkers {
		if strings.Contains(raw, marker) {
			return &RequestError{
				Kind: ErrNetwork,
				URL:  target,
				Message: "Cannot connect to the server.\n" +
					"- Make sure the backend server is running.\n" +
					"- Check your network or internet connection.\n" +
					"- Verify the backend URL: " + g.baseURL,
				Err: err,
			}
		}
	}

	return &RequestError{Kind: ErrNetwork, URL: target, Message: raw, Err: err}
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return json.Marshal(body)
	}
}

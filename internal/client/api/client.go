package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pyset/internal/core"
)

const requestIDHeader = "X-Request-ID"

type Client struct {
	Router     *Router
	HTTPClient *http.Client
	Logger     zerolog.Logger
	Verbose    bool
}

// New builds a client without a request timeout: a hung server hangs the
// call until ctx is cancelled.
func New(router *Router) *Client {
	return &Client{
		Router:     router,
		HTTPClient: &http.Client{},
		Logger:     zerolog.Nop(),
	}
}

func (c *Client) SetVerbose(v bool) {
	c.Verbose = v
}

func (c *Client) SetLogger(l zerolog.Logger) {
	c.Logger = l
}

// SetTimeout bounds every request; zero disables the bound
func (c *Client) SetTimeout(d time.Duration) {
	c.HTTPClient.Timeout = d
}

// SetLocation points the router at another origin, keeping the local port.
// Not safe to call while requests are in flight.
func (c *Client) SetLocation(loc Location) {
	c.Router = NewRouter(loc, c.Router.localPort)
}

// verboseLogger lowers the threshold to debug while Verbose is set, so request
// traces show whatever level the logger was built with
func (c *Client) verboseLogger() zerolog.Logger {
	if c.Verbose && c.Logger.GetLevel() > zerolog.DebugLevel {
		return c.Logger.Level(zerolog.DebugLevel)
	}
	return c.Logger
}

// fetch performs one request and decodes the JSON object answer.
// The HTTP status code is ignored: the pySET server reports outcome in the body.
func (c *Client) fetch(ctx context.Context, method, route string, data any) (map[string]any, error) {
	log := c.verboseLogger()

	var bodyReader io.Reader
	if method == http.MethodPost {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encoding body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
		if c.Verbose {
			log.Debug().Str("route", route).RawJSON("body", payload).Msg("request body")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Router.Route(route), bodyReader)
	if err != nil {
		return nil, err
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.New().String())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if c.Verbose {
		log.Debug().
			Str("route", route).
			Str("request_id", req.Header.Get(requestIDHeader)).
			Int("http_status", resp.StatusCode).
			Bytes("body", respBody).
			Msg("response")
	}

	var content map[string]any
	if err := json.Unmarshal(respBody, &content); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if content == nil {
		return nil, errors.New("decoding response: empty JSON object")
	}
	return content, nil
}

// Attempt performs a single GET or POST against a route and normalises the
// outcome. It never returns an error: transport failures, unsupported verbs
// and server-reported failures all come back as an Envelope with Status false.
func (c *Client) Attempt(ctx context.Context, route string, data any, method string) Envelope {
	log := c.Logger.With().Str("route", route).Str("method", method).Logger()

	switch method {
	case http.MethodGet, http.MethodPost:
	default:
		log.Error().Msg("unknown CRUD request")
		return failure(core.StatusCRUDError, fmt.Sprintf("unknown CRUD method %s", method))
	}

	content, err := c.fetch(ctx, method, route, data)
	if err != nil {
		log.Error().Err(err).Msg("API unreachable")
		return failure(core.StatusServerError, fmt.Sprintf("API %s unreachable: %v", route, err))
	}

	env := Envelope{Status: true, Content: content}
	if !env.Token().Accepted() {
		event := log.Warn().Str("status", string(env.Token())).Str("error", env.ErrorText())
		if method == http.MethodPost {
			event = event.Interface("params", data)
		}
		event.Msg("request failed")
		env.Status = false
	}
	return env
}

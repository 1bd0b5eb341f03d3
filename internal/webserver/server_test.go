package webserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyset/internal/config"
	"pyset/internal/testutil"
)

func newTestApp(t *testing.T, upstream string) func(*http.Request) (*http.Response, string) {
	t.Helper()
	app, err := NewApp(&config.WebConfig{Host: "localhost", Port: 9090, APIUpstream: upstream}, zerolog.Nop())
	require.NoError(t, err)

	return func(req *http.Request) (*http.Response, string) {
		resp, err := app.Test(req, 5000)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()
		return resp, string(body)
	}
}

func TestIndexRendersHead(t *testing.T) {
	do := newTestApp(t, "")

	resp, body := do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `<html lang="en">`)
	assert.Contains(t, body, `<meta charset="utf-8">`)
	assert.Contains(t, body, "<title>pySET</title>")
	assert.Contains(t, body, `content="pySET WebApp"`)
	assert.Contains(t, body, `href="/static/favicon.svg"`)
}

func TestConfigEndpoint(t *testing.T) {
	do := newTestApp(t, "http://api.example.org")

	resp, body := do(httptest.NewRequest(http.MethodGet, "/config", nil))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cfg map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &cfg))
	assert.Equal(t, "http://api.example.org", cfg["apiUrl"])
}

func TestNotFoundPages(t *testing.T) {
	do := newTestApp(t, "")

	for _, path := range []string{"/404/app/missing/", "/nope", "/static/missing.js", "/api/app/get_game/"} {
		resp, body := do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Contains(t, body, "<title>pySET - not found</title>", path)
	}
}

func TestStaticAssets(t *testing.T) {
	do := newTestApp(t, "")

	resp, body := do(httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/javascript")
	assert.Contains(t, body, "LOCAL_HOSTS")

	resp, _ = do(httptest.NewRequest(http.MethodGet, "/static/favicon.svg", nil))
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
}

func TestAPIProxy(t *testing.T) {
	upstream := testutil.NewFakeServer(t)
	upstream.RespondRaw("app/get_game_state", `{"status":"SUCCESS","game_state":"RUNNING"}`)
	do := newTestApp(t, upstream.Server.URL+"/")

	resp, body := do(httptest.NewRequest(http.MethodGet, "/api/app/get_game_state/?x=1", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"SUCCESS","game_state":"RUNNING"}`, body)
	req := upstream.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/app/get_game_state/", req.Path)
}

func TestAPIProxyUnreachable(t *testing.T) {
	do := newTestApp(t, "http://127.0.0.1:1")

	resp, body := do(httptest.NewRequest(http.MethodGet, "/api/app/get_game/", nil))

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "SERVER_ERROR")
}

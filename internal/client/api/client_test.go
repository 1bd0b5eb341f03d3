package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyset/internal/testutil"
)

func newTestClient(t *testing.T, port int) (*Client, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	c := New(NewRouter(Location{Scheme: "http", Hostname: "127.0.0.1"}, port))
	c.SetLogger(zerolog.New(logs))
	return c, logs
}

func TestAttemptSuccess(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/get_game", `{"status":"SUCCESS","value":42}`)
	c, _ := newTestClient(t, srv.Port(t))

	env := c.Attempt(context.Background(), "app/get_game", nil, http.MethodGet)

	assert.True(t, env.Status)
	assert.Equal(t, map[string]any{"status": "SUCCESS", "value": float64(42)}, env.Content)
}

func TestAttemptAcceptsDoneAndOngoing(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/a", `{"status":"DONE"}`)
	srv.RespondRaw("app/b", `{"status":"ONGOING"}`)
	c, _ := newTestClient(t, srv.Port(t))

	assert.True(t, c.Attempt(context.Background(), "app/a", nil, http.MethodGet).Status)
	assert.True(t, c.Attempt(context.Background(), "app/b", nil, http.MethodGet).Status)
}

func TestAttemptPassesServerFailureThrough(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/add_player", `{"status":"FAILED","error":"bad input"}`)
	c, logs := newTestClient(t, srv.Port(t))

	env := c.Attempt(context.Background(), "app/add_player", map[string]string{"name": "al"}, http.MethodPost)

	assert.False(t, env.Status)
	assert.Equal(t, map[string]any{"status": "FAILED", "error": "bad input"}, env.Content)
	assert.Contains(t, logs.String(), "bad input")
}

func TestAttemptTreatsMissingStatusAsFailure(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/get_game", `{"grid":[[1111]]}`)
	c, _ := newTestClient(t, srv.Port(t))

	env := c.Attempt(context.Background(), "app/get_game", nil, http.MethodGet)

	assert.False(t, env.Status)
	assert.Contains(t, env.Content, "grid")
	assert.Equal(t, "", env.ErrorText())
}

func TestAttemptGetNeverSendsBody(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/get_hints", `{"status":"SUCCESS"}`)
	c, _ := newTestClient(t, srv.Port(t))

	c.Attempt(context.Background(), "app/get_hints", map[string]string{"ignored": "yes"}, http.MethodGet)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/app/get_hints/", req.Path)
	assert.Empty(t, req.Body)
	assert.NotEmpty(t, req.RequestID)
}

func TestAttemptPostSendsJSONBody(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/reset_game", `{"status":"SUCCESS"}`)
	c, _ := newTestClient(t, srv.Port(t))

	c.Attempt(context.Background(), "app/reset_game", ResetGameRequest{Hard: true}, http.MethodPost)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"hard":true}`, string(req.Body))
}

func TestAttemptRejectsUnsupportedMethod(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	c, logs := newTestClient(t, srv.Port(t))

	for _, method := range []string{http.MethodDelete, http.MethodPut, "get", ""} {
		env := c.Attempt(context.Background(), "app/remove_player", nil, method)

		assert.False(t, env.Status, method)
		assert.Equal(t, "CRUD_ERROR", env.Content["status"], method)
		assert.Contains(t, env.ErrorText(), "unknown CRUD method", method)
	}
	assert.Empty(t, srv.Requests())
	assert.Contains(t, logs.String(), "unknown CRUD request")
}

func TestAttemptConnectionRefused(t *testing.T) {
	c, logs := newTestClient(t, testutil.ClosedPort(t))

	env := c.Attempt(context.Background(), "app/get_game_state", nil, http.MethodGet)

	assert.False(t, env.Status)
	assert.Equal(t, "SERVER_ERROR", env.Content["status"])
	assert.Contains(t, env.ErrorText(), "app/get_game_state")
	assert.Contains(t, logs.String(), "API unreachable")
}

func TestAttemptInvalidJSONIsServerError(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/get_game", `<html>oops</html>`)
	srv.RespondRaw("app/get_hints", `null`)
	srv.RespondRaw("app/get_players_infos", `["SUCCESS"]`)
	c, _ := newTestClient(t, srv.Port(t))

	for _, route := range []string{"app/get_game", "app/get_hints", "app/get_players_infos"} {
		env := c.Attempt(context.Background(), route, nil, http.MethodGet)
		assert.False(t, env.Status, route)
		assert.Equal(t, "SERVER_ERROR", env.Content["status"], route)
		assert.Contains(t, env.ErrorText(), route)
	}
}

func TestAttemptIgnoresHTTPStatusCode(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	// no canned answer: the fake server replies 500 with an ERROR body
	c, _ := newTestClient(t, srv.Port(t))

	env := c.Attempt(context.Background(), "app/get_game", nil, http.MethodGet)

	assert.False(t, env.Status)
	assert.Equal(t, "ERROR", env.Content["status"])
	assert.Equal(t, "no canned response", env.ErrorText())
}

func TestAttemptHonoursCancelledContext(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/get_game", `{"status":"SUCCESS"}`)
	c, _ := newTestClient(t, srv.Port(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := c.Attempt(ctx, "app/get_game", nil, http.MethodGet)
	assert.False(t, env.Status)
	assert.Equal(t, "SERVER_ERROR", env.Content["status"])
}

func TestSetTimeoutAndLocation(t *testing.T) {
	c := New(NewRouter(Location{Scheme: "http", Hostname: "localhost"}, 6000))
	c.SetTimeout(2 * time.Second)
	c.SetLocation(Location{Scheme: "https", Hostname: "pyset.example.org"})

	assert.Equal(t, 2*time.Second, c.HTTPClient.Timeout)
	assert.Equal(t, "https://pyset.example.org/api/app/get_game/", c.Router.Route(RouteGetGame))

	c.SetLocation(Location{Scheme: "http", Hostname: "127.0.0.1"})
	assert.Equal(t, "http://127.0.0.1:6000/api/app/get_game/", c.Router.Route(RouteGetGame))
}

func TestEnvelopeDecode(t *testing.T) {
	env := Envelope{Status: true, Content: map[string]any{
		"status":     "SUCCESS",
		"grid":       []any{[]any{float64(1111), float64(2222)}},
		"draw_pile":  float64(69),
		"game_state": "RUNNING",
		"error":      "",
	}}

	var game GameResponse
	require.NoError(t, env.Decode(&game))
	assert.Equal(t, [][]int{{1111, 2222}}, game.Grid)
	assert.Equal(t, 69, game.DrawPile)
	assert.Equal(t, "RUNNING", game.GameState.String())

	out, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"status":true`)
}

func TestVerboseTracesAtInfoLevel(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw("app/submit_set", `{"status":"SUCCESS"}`)
	c, logs := newTestClient(t, srv.Port(t))
	c.SetLogger(zerolog.New(logs).Level(zerolog.InfoLevel))

	c.Attempt(context.Background(), "app/submit_set", map[string]any{"set": []int{1111}}, http.MethodPost)
	assert.Zero(t, logs.Len())

	c.SetVerbose(true)
	c.Attempt(context.Background(), "app/submit_set", map[string]any{"set": []int{1111}}, http.MethodPost)
	assert.Contains(t, logs.String(), `"message":"request body"`)
	assert.Contains(t, logs.String(), `"message":"response"`)
	assert.Contains(t, logs.String(), `"set":[1111]`)
}

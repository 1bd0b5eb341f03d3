package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyset/internal/core"
	"pyset/internal/testutil"
)

func TestInitConfig(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw(RouteGetConfig, `{"MAX_PLAYERS":6,"PENALTY_TIMEOUT_SECONDS":15,"PLAYER_NAME_MAX_CHARS":12,"app_version":"0.1.0","version":"1.2.0","logging_level":"INFO"}`)
	c, _ := newTestClient(t, srv.Port(t))

	cfg, err := c.InitConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.MaxPlayers())
	assert.Equal(t, 15, cfg.PenaltyTimeoutSeconds())
	assert.Equal(t, 12, cfg.PlayerNameMaxChars())
	assert.Equal(t, "0.1.0", cfg.AppVersion())
	assert.Equal(t, "1.2.0", cfg.Version())
	assert.Equal(t, "INFO", cfg.LoggingLevel())
	assert.Equal(t, "GET", srv.LastRequest(t).Method)
}

func TestInitConfigIgnoresStatusField(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw(RouteGetConfig, `{"status":"ERROR","MAX_PLAYERS":2}`)
	c, _ := newTestClient(t, srv.Port(t))

	cfg, err := c.InitConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxPlayers())
}

func TestInitConfigEmptyOnUnreachableServer(t *testing.T) {
	c, logs := newTestClient(t, testutil.ClosedPort(t))

	cfg, err := c.InitConfig(context.Background())

	assert.Error(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg)
	assert.Contains(t, logs.String(), "init config failed")
}

func TestInitConfigEmptyOnInvalidJSON(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw(RouteGetConfig, `{"MAX_PLAYERS":`)
	c, _ := newTestClient(t, srv.Port(t))

	cfg, err := c.InitConfig(context.Background())

	assert.Error(t, err)
	assert.Equal(t, GameConfig{}, cfg)
}

func TestGameConfigDefaults(t *testing.T) {
	cfg := GameConfig{}

	assert.Equal(t, 4, cfg.MaxPlayers())
	assert.Equal(t, 20, cfg.PenaltyTimeoutSeconds())
	assert.Equal(t, 16, cfg.PlayerNameMaxChars())
	assert.Empty(t, cfg.AppVersion())
}

func TestServerVersionAndStatusEnum(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw(RouteGetVersion, `{"version":"1.2.0"}`)
	srv.RespondRaw(RouteGetStatusEnum, `{"SUCCESS":"SUCCESS","FAIL":"FAIL","DONE":"DONE"}`)
	c, _ := newTestClient(t, srv.Port(t))

	version, err := c.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", version)

	statuses, err := c.StatusEnum(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []core.Status{core.StatusDone, core.StatusFail, core.StatusSuccess}, statuses)
}

func TestServerVersionMissingField(t *testing.T) {
	srv := testutil.NewFakeServer(t)
	srv.RespondRaw(RouteGetVersion, `{}`)
	c, _ := newTestClient(t, srv.Port(t))

	_, err := c.ServerVersion(context.Background())
	assert.Error(t, err)
}

func TestPlayerNameMaxCharsIgnoresNonPositive(t *testing.T) {
	assert.Equal(t, 16, GameConfig{"PLAYER_NAME_MAX_CHARS": float64(0)}.PlayerNameMaxChars())
	assert.Equal(t, 16, GameConfig{"PLAYER_NAME_MAX_CHARS": float64(-1)}.PlayerNameMaxChars())
	assert.Equal(t, 3, GameConfig{"PLAYER_NAME_MAX_CHARS": float64(3)}.PlayerNameMaxChars())
}

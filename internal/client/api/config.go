package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"pyset/internal/core"
)

const (
	defaultMaxPlayers     = 4
	defaultPenaltySeconds = 20
	defaultNameMaxChars   = 16
)

// GameConfig is the configuration object served by the pySET server
type GameConfig map[string]any

func (g GameConfig) intValue(key string, fallback int) int {
	switch v := g[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

func (g GameConfig) stringValue(key string) string {
	s, _ := g[key].(string)
	return s
}

func (g GameConfig) MaxPlayers() int {
	return g.intValue("MAX_PLAYERS", defaultMaxPlayers)
}

func (g GameConfig) PenaltyTimeoutSeconds() int {
	return g.intValue("PENALTY_TIMEOUT_SECONDS", defaultPenaltySeconds)
}

// PlayerNameMaxChars counts runes; a non-positive value falls back to the default
func (g GameConfig) PlayerNameMaxChars() int {
	if n := g.intValue("PLAYER_NAME_MAX_CHARS", defaultNameMaxChars); n > 0 {
		return n
	}
	return defaultNameMaxChars
}

func (g GameConfig) AppVersion() string {
	return g.stringValue("app_version")
}

func (g GameConfig) Version() string {
	return g.stringValue("version")
}

func (g GameConfig) LoggingLevel() string {
	return g.stringValue("logging_level")
}

// InitConfig fetches the server configuration once. The answer carries no
// status token so it bypasses the envelope. On failure it returns an empty
// config together with the error; callers that only want a config may ignore
// the error.
func (c *Client) InitConfig(ctx context.Context) (GameConfig, error) {
	content, err := c.fetch(ctx, http.MethodGet, RouteGetConfig, nil)
	if err != nil {
		c.Logger.Error().Err(err).Str("route", RouteGetConfig).Msg("init config failed")
		return GameConfig{}, fmt.Errorf("init config: %w", err)
	}
	return GameConfig(content), nil
}

// ServerVersion returns the version string reported by the server
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	content, err := c.fetch(ctx, http.MethodGet, RouteGetVersion, nil)
	if err != nil {
		c.Logger.Error().Err(err).Str("route", RouteGetVersion).Msg("version fetch failed")
		return "", fmt.Errorf("get version: %w", err)
	}
	version, ok := content["version"]
	if !ok {
		return "", fmt.Errorf("get version: missing version field")
	}
	return fmt.Sprint(version), nil
}

// StatusEnum lists the status tokens the server knows, sorted by name
func (c *Client) StatusEnum(ctx context.Context) ([]core.Status, error) {
	content, err := c.fetch(ctx, http.MethodGet, RouteGetStatusEnum, nil)
	if err != nil {
		c.Logger.Error().Err(err).Str("route", RouteGetStatusEnum).Msg("status enum fetch failed")
		return nil, fmt.Errorf("get status enum: %w", err)
	}
	statuses := make([]core.Status, 0, len(content))
	for name := range content {
		statuses = append(statuses, core.Status(name))
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses, nil
}

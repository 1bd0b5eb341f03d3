//go:build !js && !wasm

package main

import (
	"pyset/internal/client/api"
	"pyset/internal/config"
)

// defaultLocation stands in for the page origin outside a browser
func defaultLocation(cfg *config.ClientConfig) api.Location {
	return api.Location{Scheme: cfg.Scheme, Hostname: cfg.Hostname}
}

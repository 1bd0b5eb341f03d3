//go:build js && wasm

package main

import (
	"syscall/js"

	"pyset/internal/client/api"
	"pyset/internal/config"
)

// defaultLocation reads the page's own origin at runtime, so the same build
// works on localhost and on any hosted domain
func defaultLocation(cfg *config.ClientConfig) api.Location {
	loc := js.Global().Get("location")
	return api.Location{
		Scheme:   loc.Get("protocol").String(),
		Hostname: loc.Get("hostname").String(),
	}
}

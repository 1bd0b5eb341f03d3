//go:build !js && !wasm

package main

import (
	"pyset/internal/client/display"
)

func handleExit() (restart bool) {
	display.Println(display.Cyan, "Goodbye!")
	return false
}

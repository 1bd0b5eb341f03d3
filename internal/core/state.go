package core

import (
	"fmt"
)

// GameState tags the lifecycle of a SET game as reported by the server.
// Transitions are decided server-side; the client only compares values.
type GameState int

const (
	GameUndefined GameState = iota
	GameNew
	GameUpdate
	GameReset
	GameRunning
	GamePaused
	GameEnded
)

func (s GameState) String() string {
	switch s {
	case GameNew:
		return "NEW"
	case GameUpdate:
		return "UPDATE"
	case GameReset:
		return "RESET"
	case GameRunning:
		return "RUNNING"
	case GamePaused:
		return "PAUSED"
	case GameEnded:
		return "ENDED"
	default:
		return "UNDEFINED"
	}
}

// ParseGameState maps a server token to a GameState.
// Unknown tokens yield GameUndefined and an error.
func ParseGameState(token string) (GameState, error) {
	switch token {
	case "NEW":
		return GameNew, nil
	case "UPDATE":
		return GameUpdate, nil
	case "RESET":
		return GameReset, nil
	case "RUNNING":
		return GameRunning, nil
	case "PAUSED":
		return GamePaused, nil
	case "ENDED":
		return GameEnded, nil
	case "UNDEFINED":
		return GameUndefined, nil
	}
	return GameUndefined, fmt.Errorf("unknown game state %q", token)
}

func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameState) UnmarshalText(data []byte) error {
	parsed, err := ParseGameState(string(data))
	*s = parsed
	return err
}

// PlayerState tags what the local player is doing
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerUpdate
	PlayerSubmitting
	PlayerLocked
)

func (s PlayerState) String() string {
	switch s {
	case PlayerUpdate:
		return "UPDATE"
	case PlayerSubmitting:
		return "SUBMITTING"
	case PlayerLocked:
		return "LOCKED"
	default:
		return "IDLE"
	}
}

func ParsePlayerState(token string) (PlayerState, error) {
	switch token {
	case "IDLE":
		return PlayerIdle, nil
	case "UPDATE":
		return PlayerUpdate, nil
	case "SUBMITTING":
		return PlayerSubmitting, nil
	case "LOCKED":
		return PlayerLocked, nil
	}
	return PlayerIdle, fmt.Errorf("unknown player state %q", token)
}

func (s PlayerState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *PlayerState) UnmarshalText(data []byte) error {
	parsed, err := ParsePlayerState(string(data))
	*s = parsed
	return err
}

// TypeState says which side of the session a refresh concerns
type TypeState int

const (
	TypeGame TypeState = iota
	TypePlayer
)

func (t TypeState) String() string {
	if t == TypePlayer {
		return "PLAYER"
	}
	return "GAME"
}

func ParseTypeState(token string) (TypeState, error) {
	switch token {
	case "GAME":
		return TypeGame, nil
	case "PLAYER":
		return TypePlayer, nil
	}
	return TypeGame, fmt.Errorf("unknown type state %q", token)
}

func (t TypeState) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TypeState) UnmarshalText(data []byte) error {
	parsed, err := ParseTypeState(string(data))
	*t = parsed
	return err
}

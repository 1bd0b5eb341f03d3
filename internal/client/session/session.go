// Package session holds the state of one interactive pySET client.
package session

import (
	"time"

	"pyset/internal/client/api"
	"pyset/internal/core"
)

// Session implements commands.Session
type Session struct {
	Client        *api.Client
	Config        api.GameConfig
	CurrentPlayer string
	GameState     core.GameState
	PlayerState   core.PlayerState
	LockedAt      time.Time
	Modal         api.ModalMessage
	Verbose       bool
}

func New(client *api.Client) *Session {
	return &Session{
		Client:      client,
		Config:      api.GameConfig{},
		GameState:   core.GameUndefined,
		PlayerState: core.PlayerIdle,
	}
}

func (s *Session) GetClient() *api.Client {
	return s.Client
}

func (s *Session) GetLocation() api.Location {
	return s.Client.Router.Location()
}

func (s *Session) GetConfig() api.GameConfig {
	return s.Config
}

func (s *Session) SetConfig(cfg api.GameConfig) {
	s.Config = cfg
}

func (s *Session) GetCurrentPlayer() string {
	return s.CurrentPlayer
}

func (s *Session) SetCurrentPlayer(name string) {
	s.CurrentPlayer = name
}

func (s *Session) GetGameState() core.GameState {
	return s.GameState
}

func (s *Session) SetGameState(st core.GameState) {
	s.GameState = st
}

func (s *Session) GetPlayerState() core.PlayerState {
	return s.PlayerState
}

// SetPlayerState records when the player got locked, so the penalty can expire
func (s *Session) SetPlayerState(st core.PlayerState) {
	if st == core.PlayerLocked {
		s.LockedAt = time.Now()
	}
	s.PlayerState = st
}

func (s *Session) GetLockedAt() time.Time {
	return s.LockedAt
}

func (s *Session) GetModal() *api.ModalMessage {
	return &s.Modal
}

func (s *Session) IsVerbose() bool {
	return s.Verbose
}

func (s *Session) SetVerbose(v bool) {
	s.Verbose = v
}

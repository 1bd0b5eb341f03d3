package api

import (
	"pyset/internal/core"
)

// Request types

type ChangeGameStateRequest struct {
	EnablePause bool `json:"enablePause"`
}

type ResetGameRequest struct {
	Hard bool `json:"hard"`
}

type SubmitSetRequest struct {
	PlayerName string `json:"playerName" validate:"required"`
	Set        []int  `json:"set" validate:"len=3,dive,gt=0"`
}

type PenaltyRequest struct {
	PlayerName string `json:"playerName" validate:"required"`
}

type PlayerRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

type InitSetGameRequest struct {
	MaxPlayers            int `json:"maxPlayers,omitempty" validate:"omitempty,min=1,max=16"`
	PenaltyTimeoutSeconds int `json:"penaltyTimeoutSeconds" validate:"min=0,max=600"`
}

// Response types

type GameStateResponse struct {
	Status    core.Status    `json:"status"`
	GameState core.GameState `json:"game_state"`
	Error     string         `json:"error"`
}

type GameResponse struct {
	Status    core.Status    `json:"status"`
	Grid      [][]int        `json:"grid"`
	DrawPile  int            `json:"draw_pile"`
	GameState core.GameState `json:"game_state"`
	Error     string         `json:"error"`
}

type PlayerStats struct {
	Name               string         `json:"name"`
	IsAI               bool           `json:"is_ai"`
	Difficulty         map[string]any `json:"difficulty,omitempty"`
	Calls              int            `json:"calls"`
	NumberInvalidSets  int            `json:"number_invalid_sets"`
	NumberValidSets    int            `json:"number_valid_sets"`
	ValidSets          [][]int        `json:"valid_sets"`
	AverageAnswersTime float64        `json:"average_answers_time"`
	AnswersTime        []float64      `json:"answers_time"`
}

type PlayersResponse struct {
	Status       core.Status    `json:"status"`
	PlayersStats []PlayerStats  `json:"players_stats"`
	GameState    core.GameState `json:"game_state"`
	Error        string         `json:"error"`
}

type SubmitSetResponse struct {
	Status     core.Status    `json:"status"`
	IsValid    bool           `json:"is_valid"`
	Set        []int          `json:"set"`
	PlayerName string         `json:"player_name"`
	GameState  core.GameState `json:"game_state"`
	Error      string         `json:"error"`
}

type HintsResponse struct {
	Status    core.Status    `json:"status"`
	Sets      [][]int        `json:"sets"`
	GameState core.GameState `json:"game_state"`
	Error     string         `json:"error"`
}

type RunningGame struct {
	GameID    string         `json:"game_id"`
	GameState core.GameState `json:"game_state"`
	Players   int            `json:"players"`
}

type RunningGamesResponse struct {
	Status core.Status   `json:"status"`
	Games  []RunningGame `json:"games"`
	Error  string        `json:"error"`
}

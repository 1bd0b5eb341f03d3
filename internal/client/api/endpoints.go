package api

import (
	"context"
	"net/http"
)

// Route names served by the pySET server
const (
	RouteGetConfig       = "app/get_config"
	RouteGetVersion      = "app/get_version"
	RouteGetStatusEnum   = "app/get_status_enum"
	RouteChangeGameState = "app/change_game_state"
	RouteGetGameState    = "app/get_game_state"
	RouteGetGame         = "app/get_game"
	RouteResetGame       = "app/reset_game"
	RouteSubmitSet       = "app/submit_set"
	RouteApplyPenalty    = "app/apply_penalty"
	RouteGetHints        = "app/get_hints"
	RouteGetPlayersInfos = "app/get_players_infos"
	RouteRemovePlayer    = "app/remove_player"
	RouteAddPlayer       = "app/add_player"
	RouteInitSetGame     = "app/init_set_game"
	RouteGetRunningGames = "app/get_running_games"
)

// Modal titles written on failure
const (
	TitleChangeGameState = "Starting / Resuming / Pausing game"
	TitleGetGameState    = "Checking game status"
	TitleGetGame         = "Fetching game data"
	TitleResetGame       = "Resetting game"
	TitleSubmitSet       = "Sending SET"
	TitleApplyPenalty    = "Applying penalty"
	TitleGetHints        = "Fetching hints"
	TitleGetPlayersInfos = "Fetching players data"
	TitleRemovePlayer    = "Deleting player"
	TitleAddPlayer       = "Adding player"
	TitleInitSetGame     = "Initialising game"
	TitleGetRunningGames = "Fetching running games"
)

// call runs one wrapped request. Reads are GET without a body, mutations
// POST their JSON body; msg is only touched when the call fails.
func (c *Client) call(ctx context.Context, msg *ModalMessage, title, route, method string, body any) Envelope {
	env := c.Attempt(ctx, route, body, method)
	if !env.Status {
		msg.Fail(title, env)
	}
	return env
}

// Game endpoints

func (c *Client) ChangeGameState(ctx context.Context, msg *ModalMessage, body ChangeGameStateRequest) Envelope {
	return c.call(ctx, msg, TitleChangeGameState, RouteChangeGameState, http.MethodPost, body)
}

func (c *Client) GetGameState(ctx context.Context, msg *ModalMessage) Envelope {
	return c.call(ctx, msg, TitleGetGameState, RouteGetGameState, http.MethodGet, nil)
}

func (c *Client) GetGame(ctx context.Context, msg *ModalMessage) Envelope {
	return c.call(ctx, msg, TitleGetGame, RouteGetGame, http.MethodGet, nil)
}

func (c *Client) ResetGame(ctx context.Context, msg *ModalMessage, body ResetGameRequest) Envelope {
	return c.call(ctx, msg, TitleResetGame, RouteResetGame, http.MethodPost, body)
}

func (c *Client) SubmitSet(ctx context.Context, msg *ModalMessage, body SubmitSetRequest) Envelope {
	return c.call(ctx, msg, TitleSubmitSet, RouteSubmitSet, http.MethodPost, body)
}

func (c *Client) SendPenalty(ctx context.Context, msg *ModalMessage, body PenaltyRequest) Envelope {
	return c.call(ctx, msg, TitleApplyPenalty, RouteApplyPenalty, http.MethodPost, body)
}

func (c *Client) GetHints(ctx context.Context, msg *ModalMessage) Envelope {
	return c.call(ctx, msg, TitleGetHints, RouteGetHints, http.MethodGet, nil)
}

func (c *Client) InitSetGame(ctx context.Context, msg *ModalMessage, body InitSetGameRequest) Envelope {
	return c.call(ctx, msg, TitleInitSetGame, RouteInitSetGame, http.MethodPost, body)
}

func (c *Client) GetRunningGames(ctx context.Context, msg *ModalMessage) Envelope {
	return c.call(ctx, msg, TitleGetRunningGames, RouteGetRunningGames, http.MethodGet, nil)
}

// Player endpoints

func (c *Client) GetPlayersInfos(ctx context.Context, msg *ModalMessage) Envelope {
	return c.call(ctx, msg, TitleGetPlayersInfos, RouteGetPlayersInfos, http.MethodGet, nil)
}

func (c *Client) RemovePlayer(ctx context.Context, msg *ModalMessage, body PlayerRequest) Envelope {
	return c.call(ctx, msg, TitleRemovePlayer, RouteRemovePlayer, http.MethodPost, body)
}

func (c *Client) AddPlayer(ctx context.Context, msg *ModalMessage, body PlayerRequest) Envelope {
	return c.call(ctx, msg, TitleAddPlayer, RouteAddPlayer, http.MethodPost, body)
}

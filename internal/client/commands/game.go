package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"pyset/internal/client/api"
	"pyset/internal/client/display"
	"pyset/internal/core"
)

func (r *Registry) registerGameCommands() {
	r.Register(&Command{
		Name:        "state",
		ShortName:   "s",
		Description: "Check game status",
		Usage:       "state",
		Handler:     gameStateHandler,
	})

	r.Register(&Command{
		Name:        "show",
		ShortName:   "g",
		Description: "Show cards on the grid",
		Usage:       "show",
		Handler:     showGameHandler,
	})

	r.Register(&Command{
		Name:        "start",
		ShortName:   "t",
		Description: "Start or resume the game",
		Usage:       "start",
		Handler:     startHandler,
	})

	r.Register(&Command{
		Name:        "pause",
		ShortName:   "p",
		Description: "Pause the game",
		Usage:       "pause",
		Handler:     pauseHandler,
	})

	r.Register(&Command{
		Name:        "reset",
		ShortName:   "r",
		Description: "Reset the game, 'soft' keeps the players",
		Usage:       "reset [soft]",
		Handler:     resetHandler,
	})

	r.Register(&Command{
		Name:        "submit",
		ShortName:   "m",
		Description: "Submit a SET for the current player",
		Usage:       "submit <card> <card> <card>",
		Handler:     submitHandler,
	})

	r.Register(&Command{
		Name:        "penalty",
		ShortName:   "y",
		Description: "Apply a penalty to a player",
		Usage:       "penalty [player]",
		Handler:     penaltyHandler,
	})

	r.Register(&Command{
		Name:        "hints",
		ShortName:   "h",
		Description: "List the SETs left on the grid",
		Usage:       "hints",
		Handler:     hintsHandler,
	})

	r.Register(&Command{
		Name:        "games",
		ShortName:   "a",
		Description: "List running games",
		Usage:       "games",
		Handler:     runningGamesHandler,
	})

	r.Register(&Command{
		Name:        "init",
		ShortName:   "i",
		Description: "Initialise a new SET game",
		Usage:       "init [maxPlayers] [penaltySeconds]",
		Handler:     initGameHandler,
	})
}

// refresh re-reads one side of the session from the server and reports
// whether the server answered
func refresh(ctx context.Context, s Session, t core.TypeState) bool {
	c := s.GetClient()

	switch t {
	case core.TypeGame:
		env := c.GetGameState(ctx, s.GetModal())
		var resp api.GameStateResponse
		if !env.Status || env.Decode(&resp) != nil {
			return false
		}
		s.SetGameState(resp.GameState)
	case core.TypePlayer:
		env := c.GetPlayersInfos(ctx, s.GetModal())
		var resp api.PlayersResponse
		if !env.Status || env.Decode(&resp) != nil {
			return false
		}
		s.SetGameState(resp.GameState)
		current := s.GetCurrentPlayer()
		if current == "" {
			return true
		}
		for _, p := range resp.PlayersStats {
			if p.Name == current {
				return true
			}
		}
		s.SetCurrentPlayer("")
		s.SetPlayerState(core.PlayerIdle)
	}
	return true
}

func gameStateHandler(ctx context.Context, s Session, args []string) error {
	c := s.GetClient()
	env := c.GetGameState(ctx, s.GetModal())
	if !env.Status {
		return nil
	}

	var resp api.GameStateResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}
	s.SetGameState(resp.GameState)

	fmt.Printf("%sGame state:%s %s\n", display.Cyan, display.Reset, resp.GameState)
	return nil
}

func printGame(resp *api.GameResponse) {
	fmt.Println()
	display.RenderGrid(resp.Grid)
	fmt.Printf("\nState: %s | Draw pile: %d\n", resp.GameState, resp.DrawPile)
}

func showGameHandler(ctx context.Context, s Session, args []string) error {
	c := s.GetClient()
	env := c.GetGame(ctx, s.GetModal())
	if !env.Status {
		return nil
	}

	var resp api.GameResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}
	s.SetGameState(resp.GameState)
	printGame(&resp)
	return nil
}

func changeGameState(ctx context.Context, s Session, pause bool) error {
	c := s.GetClient()
	env := c.ChangeGameState(ctx, s.GetModal(), api.ChangeGameStateRequest{EnablePause: pause})
	if !env.Status {
		return nil
	}

	var resp api.GameResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}
	s.SetGameState(resp.GameState)

	if pause {
		fmt.Printf("%sGame paused%s\n", display.Yellow, display.Reset)
		return nil
	}
	fmt.Printf("%sGame running%s\n", display.Green, display.Reset)
	printGame(&resp)
	return nil
}

func startHandler(ctx context.Context, s Session, args []string) error {
	return changeGameState(ctx, s, false)
}

func pauseHandler(ctx context.Context, s Session, args []string) error {
	return changeGameState(ctx, s, true)
}

func resetHandler(ctx context.Context, s Session, args []string) error {
	hard := true
	if len(args) > 0 {
		switch args[0] {
		case "soft":
			hard = false
		case "hard":
		default:
			return fmt.Errorf("usage: reset [soft|hard]")
		}
	}

	c := s.GetClient()
	env := c.ResetGame(ctx, s.GetModal(), api.ResetGameRequest{Hard: hard})
	if !env.Status {
		return nil
	}

	var resp api.GameStateResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}
	s.SetGameState(resp.GameState)
	s.SetPlayerState(core.PlayerIdle)
	if hard {
		s.SetCurrentPlayer("")
	}

	mode := "soft"
	if hard {
		mode = "hard"
	}
	fmt.Printf("%sGame reset (%s)%s\n", display.Green, mode, display.Reset)
	return nil
}

// lockRemaining is the time left on the current player's penalty
func lockRemaining(s Session) time.Duration {
	penalty := time.Duration(s.GetConfig().PenaltyTimeoutSeconds()) * time.Second
	return time.Until(s.GetLockedAt().Add(penalty))
}

func parseCards(args []string) ([]int, error) {
	cards := make([]int, 0, len(args))
	for _, arg := range args {
		card, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid card: %s", arg)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func submitHandler(ctx context.Context, s Session, args []string) error {
	player := s.GetCurrentPlayer()
	if player == "" {
		return fmt.Errorf("no current player, use 'add <name>' or 'use <name>'")
	}
	switch s.GetPlayerState() {
	case core.PlayerSubmitting:
		return fmt.Errorf("a SET is already being submitted")
	case core.PlayerLocked:
		if left := lockRemaining(s); left > 0 {
			return fmt.Errorf("%s is locked for %s", player, left.Round(time.Second))
		}
		s.SetPlayerState(core.PlayerIdle)
	}

	cards, err := parseCards(args)
	if err != nil {
		return err
	}

	req := api.SubmitSetRequest{PlayerName: player, Set: cards}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	c := s.GetClient()
	s.SetPlayerState(core.PlayerSubmitting)
	env := c.SubmitSet(ctx, s.GetModal(), req)
	if !env.Status {
		s.SetPlayerState(core.PlayerIdle)
		return nil
	}

	var resp api.SubmitSetResponse
	if err := env.Decode(&resp); err != nil {
		s.SetPlayerState(core.PlayerIdle)
		return err
	}
	s.SetGameState(resp.GameState)

	if resp.IsValid {
		s.SetPlayerState(core.PlayerIdle)
		fmt.Printf("%sSET!%s\n", display.Green, display.Reset)
		display.RenderSet(resp.Set)
	} else {
		s.SetPlayerState(core.PlayerLocked)
		fmt.Printf("%sRejected: %s%s\n", display.Red, resp.Error, display.Reset)
	}

	refresh(ctx, s, core.TypeGame)
	return nil
}

func penaltyHandler(ctx context.Context, s Session, args []string) error {
	player := s.GetCurrentPlayer()
	if len(args) > 0 {
		player = args[0]
	}

	req := api.PenaltyRequest{PlayerName: player}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	c := s.GetClient()
	env := c.SendPenalty(ctx, s.GetModal(), req)
	if !env.Status {
		return nil
	}

	if player == s.GetCurrentPlayer() {
		s.SetPlayerState(core.PlayerLocked)
	}
	fmt.Printf("%sPenalty applied to %s%s\n", display.Yellow, player, display.Reset)

	refresh(ctx, s, core.TypeGame)
	return nil
}

func hintsHandler(ctx context.Context, s Session, args []string) error {
	c := s.GetClient()
	env := c.GetHints(ctx, s.GetModal())
	if !env.Status {
		return nil
	}

	var resp api.HintsResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}
	s.SetGameState(resp.GameState)

	fmt.Printf("%s%d SET(s) on the grid:%s\n", display.Cyan, len(resp.Sets), display.Reset)
	for _, set := range resp.Sets {
		display.RenderSet(set)
	}
	return nil
}

func runningGamesHandler(ctx context.Context, s Session, args []string) error {
	c := s.GetClient()
	env := c.GetRunningGames(ctx, s.GetModal())
	if !env.Status {
		return nil
	}

	var resp api.RunningGamesResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}

	if len(resp.Games) == 0 {
		fmt.Printf("%sNo running games%s\n", display.Yellow, display.Reset)
		return nil
	}
	fmt.Printf("%sRunning games:%s\n", display.Cyan, display.Reset)
	for _, g := range resp.Games {
		fmt.Printf("  %s  %-9s %d player(s)\n", g.GameID, g.GameState, g.Players)
	}
	return nil
}

func initGameHandler(ctx context.Context, s Session, args []string) error {
	cfg := s.GetConfig()
	req := api.InitSetGameRequest{
		MaxPlayers:            cfg.MaxPlayers(),
		PenaltyTimeoutSeconds: cfg.PenaltyTimeoutSeconds(),
	}

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid max players: %s", args[0])
		}
		req.MaxPlayers = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid penalty: %s", args[1])
		}
		req.PenaltyTimeoutSeconds = n
	}

	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	c := s.GetClient()
	env := c.InitSetGame(ctx, s.GetModal(), req)
	if !env.Status {
		return nil
	}

	var resp api.GameStateResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}
	s.SetGameState(resp.GameState)
	s.SetPlayerState(core.PlayerIdle)

	fmt.Printf("%sGame initialised: %d player(s) max, %ds penalty%s\n",
		display.Green, req.MaxPlayers, req.PenaltyTimeoutSeconds, display.Reset)
	return nil
}

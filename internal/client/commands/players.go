package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pyset/internal/client/api"
	"pyset/internal/client/display"
	"pyset/internal/core"
)

func (r *Registry) registerPlayerCommands() {
	r.Register(&Command{
		Name:        "players",
		ShortName:   "l",
		Description: "List players and their stats",
		Usage:       "players",
		Handler:     playersHandler,
	})

	r.Register(&Command{
		Name:        "add",
		ShortName:   "+",
		Description: "Add a player",
		Usage:       "add <name>",
		Handler:     addPlayerHandler,
	})

	r.Register(&Command{
		Name:        "bot",
		ShortName:   "b",
		Description: "Add a bot player",
		Usage:       "bot",
		Handler:     addBotHandler,
	})

	r.Register(&Command{
		Name:        "remove",
		ShortName:   "d",
		Description: "Remove a player",
		Usage:       "remove <name>",
		Handler:     removePlayerHandler,
	})

	r.Register(&Command{
		Name:        "use",
		ShortName:   "u",
		Description: "Play as an existing player",
		Usage:       "use <name>",
		Handler:     usePlayerHandler,
	})
}

// botName mirrors the server's naming of AI players
func botName() string {
	return "bot-" + strings.SplitN(uuid.New().String(), "-", 2)[0]
}

func playersHandler(ctx context.Context, s Session, args []string) error {
	c := s.GetClient()
	env := c.GetPlayersInfos(ctx, s.GetModal())
	if !env.Status {
		return nil
	}

	var resp api.PlayersResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}
	s.SetGameState(resp.GameState)

	if len(resp.PlayersStats) == 0 {
		fmt.Printf("%sNo players%s\n", display.Yellow, display.Reset)
		return nil
	}

	fmt.Printf("%sPlayers (game %s):%s\n", display.Cyan, resp.GameState, display.Reset)
	for _, p := range resp.PlayersStats {
		marker := "  "
		if p.Name == s.GetCurrentPlayer() {
			marker = display.Magenta + "* " + display.Reset
		}
		kind := ""
		if p.IsAI {
			kind = " (bot)"
		}
		fmt.Printf("%s%-16s%s valid: %d  invalid: %d  calls: %d  avg: %.1fs\n",
			marker, p.Name, kind, p.NumberValidSets, p.NumberInvalidSets, p.Calls, p.AverageAnswersTime)
	}
	return nil
}

func addPlayer(ctx context.Context, s Session, name string) error {
	maxChars := s.GetConfig().PlayerNameMaxChars()
	if runes := []rune(name); len(runes) > maxChars {
		name = string(runes[:maxChars])
		fmt.Printf("%sName truncated to %q%s\n", display.Yellow, name, display.Reset)
	}

	req := api.PlayerRequest{Name: name}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	c := s.GetClient()
	env := c.AddPlayer(ctx, s.GetModal(), req)
	if !env.Status {
		return nil
	}

	var resp api.PlayersResponse
	if err := env.Decode(&resp); err != nil {
		return err
	}
	s.SetGameState(resp.GameState)

	if s.GetCurrentPlayer() == "" {
		s.SetCurrentPlayer(name)
		s.SetPlayerState(core.PlayerIdle)
	}
	fmt.Printf("%sPlayer added: %s (%d in game)%s\n", display.Green, name, len(resp.PlayersStats), display.Reset)
	return nil
}

func addPlayerHandler(ctx context.Context, s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: add <name>")
	}
	return addPlayer(ctx, s, strings.Join(args, " "))
}

func addBotHandler(ctx context.Context, s Session, args []string) error {
	current := s.GetCurrentPlayer()
	if err := addPlayer(ctx, s, botName()); err != nil {
		return err
	}
	// a bot never becomes the local player
	if current == "" && s.GetCurrentPlayer() != "" {
		s.SetCurrentPlayer("")
	}
	return nil
}

func removePlayerHandler(ctx context.Context, s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: remove <name>")
	}
	name := strings.Join(args, " ")

	req := api.PlayerRequest{Name: name}
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}

	c := s.GetClient()
	env := c.RemovePlayer(ctx, s.GetModal(), req)
	if !env.Status {
		return nil
	}

	fmt.Printf("%sPlayer removed: %s%s\n", display.Green, name, display.Reset)
	refresh(ctx, s, core.TypePlayer)
	return nil
}

func usePlayerHandler(ctx context.Context, s Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: use <name>")
	}
	name := strings.Join(args, " ")

	previous := s.GetCurrentPlayer()
	s.SetCurrentPlayer(name)
	if !refresh(ctx, s, core.TypePlayer) {
		s.SetCurrentPlayer(previous)
		return nil
	}

	if s.GetCurrentPlayer() == "" {
		return fmt.Errorf("no player named %q in the game", name)
	}
	// a lock follows the player, not the terminal
	if name != previous {
		s.SetPlayerState(core.PlayerIdle)
	}
	fmt.Printf("%sPlaying as %s%s\n", display.Cyan, name, display.Reset)
	return nil
}

// Package main implements the interactive terminal client for a pySET server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"pyset/internal/client/api"
	"pyset/internal/client/commands"
	"pyset/internal/client/display"
	"pyset/internal/client/session"
	"pyset/internal/config"
	"pyset/internal/core"
	"pyset/internal/logger"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadClient()
	if err != nil {
		display.Println(display.Red, err.Error())
		os.Exit(1)
	}

	loc := defaultLocation(cfg)
	var (
		host      = flag.String("host", loc.Hostname, "Hostname the router resolves from")
		scheme    = flag.String("scheme", loc.Scheme, "URL scheme, http or https")
		localPort = flag.Int("local-port", cfg.LocalPort, "pySET server port for loopback hosts")
		verbose   = flag.Bool("v", false, "Log every request and response")
	)
	flag.Parse()

	log := logger.New(logger.Options{
		ServiceName: "pyset-client",
		Level:       logger.ParseLevel(cfg.Log.Level),
		Format:      cfg.Log.Format,
	})

	router := api.NewRouter(api.Location{Scheme: *scheme, Hostname: *host}, *localPort)
	client := api.New(router)
	client.SetLogger(log)
	client.SetTimeout(cfg.HTTPTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := session.New(client)
	s.SetVerbose(*verbose)
	// The client stays usable with defaults when the server is down
	gameConfig, _ := client.InitConfig(ctx)
	s.SetConfig(gameConfig)

	for {
		if restart := run(ctx, s, cfg.HistoryFile); !restart {
			return
		}
		s = session.New(client)
		s.SetConfig(gameConfig)
	}
}

// run drives one readline session and reports whether to start another
func run(ctx context.Context, s *session.Session, historyFile string) bool {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("pyset"),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		display.Println(display.Red, err.Error())
		return false
	}
	defer rl.Close()

	router := s.GetClient().Router
	fmt.Printf("%spySET Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sAPI: %s%s\n", display.Cyan, router.APIBase(), display.Reset)
	if v := s.GetConfig().AppVersion(); v != "" {
		fmt.Printf("%sServer app version: %s%s\n", display.Cyan, v, display.Reset)
	}
	fmt.Printf("Type 'help' for commands\n\n")

	registry := commands.NewRegistry(s)
	defaultVerbose := s.IsVerbose()

	for {
		rl.SetPrompt(buildPrompt(s))

		line, err := rl.Readline()
		if err == io.EOF {
			return handleExit()
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Trailing -v turns on request logging for this command only
		if strings.HasSuffix(line, " -v") {
			s.SetVerbose(true)
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.SetVerbose(defaultVerbose)
		}

		if err := registry.Execute(ctx, line); errors.Is(err, commands.ErrExit) {
			return handleExit()
		}
	}
}

func buildPrompt(s *session.Session) string {
	promptStr := "pyset"

	if player := s.GetCurrentPlayer(); player != "" {
		promptStr += display.Yellow + " [" + display.Magenta + player + display.Reset
		promptStr += display.Yellow + " - " + display.Reset + s.GetPlayerState().String()
		promptStr += display.Yellow + "]" + display.Reset
	}

	if st := s.GetGameState(); st != core.GameUndefined {
		color := display.White
		switch st {
		case core.GameRunning:
			color = display.Green
		case core.GamePaused:
			color = display.Yellow
		case core.GameEnded:
			color = display.Red
		}
		promptStr += fmt.Sprintf(" - %s%s%s", color, st, display.Reset)
	}

	return display.Prompt(promptStr)
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"pyset/internal/client/api"
	"pyset/internal/client/display"
)

func (r *Registry) registerDebugCommands() {
	r.Register(&Command{
		Name:        "config",
		ShortName:   "c",
		Description: "Reload and show the server game config",
		Usage:       "config",
		Handler:     configHandler,
	})

	r.Register(&Command{
		Name:        "version",
		ShortName:   "v",
		Description: "Show server version",
		Usage:       "version",
		Handler:     versionHandler,
	})

	r.Register(&Command{
		Name:        "statuses",
		ShortName:   "e",
		Description: "List status tokens known to the server",
		Usage:       "statuses",
		Handler:     statusesHandler,
	})

	r.Register(&Command{
		Name:        "host",
		ShortName:   "/",
		Description: "Show or set the page location the router resolves from",
		Usage:       "host [hostname] [scheme]",
		Handler:     hostHandler,
	})

	r.Register(&Command{
		Name:        "raw",
		ShortName:   ":",
		Description: "Send raw API request",
		Usage:       "raw <method> <route> [json-body]",
		Handler:     rawRequestHandler,
	})

	r.Register(&Command{
		Name:        "clear",
		ShortName:   "-",
		Description: "Clear screen",
		Usage:       "clear",
		Handler:     clearHandler,
	})
}

func configHandler(ctx context.Context, s Session, args []string) error {
	cfg, err := s.GetClient().InitConfig(ctx)
	if err != nil {
		return err
	}
	s.SetConfig(cfg)

	fmt.Printf("%sGame config:%s\n", display.Cyan, display.Reset)
	display.PrintJSON(display.White, cfg)
	return nil
}

func versionHandler(ctx context.Context, s Session, args []string) error {
	version, err := s.GetClient().ServerVersion(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Server version: %s\n", version)
	return nil
}

func statusesHandler(ctx context.Context, s Session, args []string) error {
	statuses, err := s.GetClient().StatusEnum(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%sStatus tokens:%s\n", display.Cyan, display.Reset)
	for _, st := range statuses {
		mark := " "
		if st.Accepted() {
			mark = display.Green + "✓" + display.Reset
		}
		fmt.Printf("  %s %s\n", mark, st)
	}
	return nil
}

func hostHandler(ctx context.Context, s Session, args []string) error {
	c := s.GetClient()
	if len(args) == 0 {
		loc := s.GetLocation()
		kind := "hosted"
		if c.Router.IsLocal() {
			kind = "local"
		}
		fmt.Printf("Location: %s://%s (%s)\n", loc.Scheme, loc.Hostname, kind)
		fmt.Printf("API base: %s\n", c.Router.APIBase())
		return nil
	}

	loc := api.Location{Hostname: args[0], Scheme: s.GetLocation().Scheme}
	if len(args) > 1 {
		loc.Scheme = args[1]
	}
	if err := validate.Var(loc.Hostname, "hostname|ip"); err != nil {
		return fmt.Errorf("invalid hostname: %s", loc.Hostname)
	}
	c.SetLocation(loc)

	fmt.Printf("%sAPI base set to: %s%s\n", display.Cyan, c.Router.APIBase(), display.Reset)
	return nil
}

// rawRequestHandler bypasses the wrappers and prints the envelope as is
func rawRequestHandler(ctx context.Context, s Session, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: raw <method> <route> [json-body]")
	}

	method := strings.ToUpper(args[0])
	route := args[1]

	var body any
	if len(args) > 2 {
		raw := strings.Join(args[2:], " ")
		if err := json.Unmarshal([]byte(raw), &body); err != nil {
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}

	env := s.GetClient().Attempt(ctx, route, body, method)
	display.PrintEnvelope(env.Status, string(env.Token()), env.Content)
	return nil
}

func clearHandler(ctx context.Context, s Session, args []string) error {
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"realtime-checklist/config"
	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/realtime"
	"realtime-checklist/internal/checklist/repository/remote"
	"realtime-checklist/internal/checklist/usecase"
	"realtime-checklist/pkg/log"
)

var (
	baseURL    string
	token      string
	jsonOutput bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "checklistctl",
	Short: "Work with realtime checklists from the terminal",
	Long: `checklistctl talks to a realtime checklist API.

Connection settings come from config.yaml (remote.base_url, remote.access_token)
and can be overridden with --url and --token.

Examples:
  checklistctl create --title "Launch review"
  checklistctl show <checklist-id>
  checklistctl complete <checklist-id> <item-id> [item-id...]
  checklistctl watch <checklist-id>`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "", "API base URL (default from remote.base_url)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token (default from remote.access_token)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// app bundles the remote store with the use case running on top of it.
type app struct {
	l      log.Logger
	client *remote.Client
	uc     checklist.UseCase
	cfg    *config.Config
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if baseURL != "" {
		cfg.Remote.BaseURL = baseURL
	}
	if token != "" {
		cfg.Remote.AccessToken = token
	}
	if cfg.Remote.AccessToken == "" {
		return nil, fmt.Errorf("no access token: set remote.access_token or pass --token")
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{Level: level, Mode: "production", Encoding: "console"})

	client := remote.New(l, cfg.Remote.BaseURL, cfg.Remote.AccessToken)
	return &app{
		l:      l,
		client: client,
		uc:     usecase.New(l, client, client),
		cfg:    cfg,
	}, nil
}

// mount opens a realtime session and fails if the checklist could not be loaded.
func (a *app) mount(ctx context.Context, id string) (*realtime.Session, error) {
	s, err := realtime.Mount(ctx, a.l, a.client, a.uc, id, realtime.Options{ReloadDebounce: a.cfg.Realtime.ReloadDebounce})
	if err != nil {
		return nil, err
	}
	if st := s.State(); st.Checklist == nil {
		_ = s.Close()
		return nil, fmt.Errorf("load checklist %s: %s", id, st.Error)
	}
	return s, nil
}

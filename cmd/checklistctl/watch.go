package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"realtime-checklist/internal/checklist/realtime"
)

var watchCmd = &cobra.Command{
	Use:   "watch <checklist-id>",
	Short: "Follow a checklist live until interrupted",
	Long: `Watch mounts a realtime session and prints the progress line every time
the checklist changes, whoever changed it. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp()
		if err != nil {
			return err
		}
		s, err := a.mount(ctx, args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		last := ""
		for {
			st := s.State()
			if line := progressLine(st); line != last {
				fmt.Fprintln(out, line)
				last = line
			}

			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-s.Changes():
				if !ok {
					return nil
				}
			}
		}
	},
}

// withSession mounts the checklist, runs fn and prints the state once the change is reloaded.
func withSession(cmd *cobra.Command, id string, fn func(s *realtime.Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	s, err := a.mount(ctx, id)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := fn(s); err != nil {
		return err
	}
	if err := s.Refetch(ctx); err != nil {
		return fmt.Errorf("reload checklist: %w", err)
	}

	st := s.State()
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), st)
	}
	renderChecklist(cmd.OutOrStdout(), *st.Checklist, *st.Stats)
	return nil
}

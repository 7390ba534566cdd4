package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/realtime"
	"realtime-checklist/internal/model"
)

var (
	createTitle       string
	createDescription string
	listLimit         int
	exportFormat      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your checklists, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out, err := a.uc.List(cmd.Context(), checklist.ListInput{Limit: listLimit})
		if err != nil {
			return fmt.Errorf("list checklists: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), out.Checklists)
		}
		renderList(cmd.OutOrStdout(), out.Checklists)
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a website audit checklist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out, err := a.uc.Create(cmd.Context(), checklist.CreateInput{Title: createTitle, Description: createDescription})
		if err != nil {
			return fmt.Errorf("create checklist: %w", err)
		}
		cmd.Println(out.ID)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <checklist-id>",
	Short: "Show a checklist with its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		out, err := a.uc.Detail(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load checklist: %w", err)
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), out)
		}
		renderChecklist(cmd.OutOrStdout(), out.Checklist, out.Stats)
		return nil
	},
}

var completeAll bool

var completeCmd = &cobra.Command{
	Use:   "complete <checklist-id> [item-id...]",
	Short: "Complete items, or every item with --all",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !completeAll && len(args) < 2 {
			return fmt.Errorf("name at least one item or pass --all")
		}
		return withSession(cmd, args[0], func(s *realtime.Session) error {
			if completeAll {
				return s.CompleteAll(cmd.Context())
			}
			done := true
			entries := make([]checklist.BatchEntry, 0, len(args)-1)
			for _, id := range args[1:] {
				entries = append(entries, checklist.BatchEntry{ItemID: id, Patch: model.ItemPatch{IsCompleted: &done}})
			}
			return s.BatchUpdateItems(cmd.Context(), entries)
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <checklist-id>",
	Short: "Un-complete every item and clear notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, args[0], func(s *realtime.Session) error {
			return s.ResetChecklist(cmd.Context())
		})
	},
}

var noteCmd = &cobra.Command{
	Use:   "note <checklist-id> <item-id> <text>",
	Short: "Set the note of an item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, args[0], func(s *realtime.Session) error {
			return s.AddNote(cmd.Context(), args[1], args[2])
		})
	},
}

var evidenceCmd = &cobra.Command{
	Use:   "evidence <checklist-id> <item-id> <url>",
	Short: "Attach an evidence URL to an item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, args[0], func(s *realtime.Session) error {
			return s.AddEvidence(cmd.Context(), args[1], args[2])
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <checklist-id>",
	Short: "Export a checklist as JSON or markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "json" && exportFormat != "markdown" {
			return fmt.Errorf("unknown format %q, want json or markdown", exportFormat)
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		s, err := a.mount(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		exp, ok := s.ExportChecklist()
		if !ok {
			return checklist.ErrNoChecklistLoaded
		}
		if exportFormat == "markdown" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), checklist.RenderMarkdown(exp.Checklist.Checklist, exp.Stats))
			return err
		}
		return printJSON(cmd.OutOrStdout(), exp)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <checklist-id> <file.md>",
	Short: "Apply checkbox states from a markdown file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[1], err)
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		out, err := a.uc.ImportMarkdown(cmd.Context(), checklist.ImportMarkdownInput{ChecklistID: args[0], Content: string(content)})
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		cmd.Printf("matched %d items, updated %d\n", out.Matched, out.Updated)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "checklist title")
	createCmd.Flags().StringVar(&createDescription, "description", "", "checklist description")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "max checklists to list")
	completeCmd.Flags().BoolVar(&completeAll, "all", false, "complete every incomplete item")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "markdown", "json or markdown")

	rootCmd.AddCommand(listCmd, createCmd, showCmd, completeCmd, resetCmd, noteCmd, evidenceCmd, exportCmd, importCmd, watchCmd)
}

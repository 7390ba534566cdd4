package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/realtime"
	"realtime-checklist/internal/model"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderList(w io.Writer, list []model.Checklist) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No checklists yet. Create one with: checklistctl create")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPROGRESS\tSTATUS")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d (%d%%)\t%s\n", c.ID, c.Title, c.CompletedItems, c.TotalItems, c.ProgressPercentage, c.Status)
	}
	tw.Flush()
}

func renderChecklist(w io.Writer, c model.Checklist, stats checklist.Stats) {
	fmt.Fprintf(w, "%s  [%s]\n", c.Title, c.Status)
	fmt.Fprintf(w, "%s\n\n", progressBar(stats.ProgressPercentage, 30))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, category := range stats.Categories {
		fmt.Fprintf(tw, "%s\t\t\t\n", category)
		for _, it := range c.Items {
			if it.Category != category {
				continue
			}
			box := "[ ]"
			if it.IsCompleted {
				box = "[x]"
			}
			fmt.Fprintf(tw, "  %s %s\t%s\t%dm\t%s\n", box, it.Title, it.Priority, it.EstimatedMinutes, it.ID)
		}
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d/%d done, %d min remaining\n", stats.CompletedItems, stats.TotalItems, stats.EstimatedTimeRemaining)
}

// progressLine summarizes a session state on one line.
func progressLine(st realtime.State) string {
	switch {
	case st.Checklist == nil && st.Error != "":
		return "error: " + st.Error
	case st.Checklist == nil:
		return "loading..."
	}

	line := fmt.Sprintf("%s %d/%d (%d%%)", progressBar(st.Checklist.ProgressPercentage, 20),
		st.Checklist.CompletedItems, st.Checklist.TotalItems, st.Checklist.ProgressPercentage)
	if st.Stats != nil {
		line += fmt.Sprintf(", %d min remaining", st.Stats.EstimatedTimeRemaining)
	}
	if st.Error != "" {
		line += " (error: " + st.Error + ")"
	}
	return line
}

func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

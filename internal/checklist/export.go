package checklist

import (
	"time"

	"realtime-checklist/internal/model"
)

// BuildExport snapshots c (with its items) and stats into an Export stamped at now.
func BuildExport(c model.Checklist, stats Stats, now time.Time) Export {
	categoriesCompleted := 0
	for _, cp := range stats.CategoryProgress {
		if cp.Progress == 100 {
			categoriesCompleted++
		}
	}

	highPriorityCompleted := 0
	for _, it := range c.Items {
		if it.IsCompleted && it.IsHighPriority() {
			highPriorityCompleted++
		}
	}

	return Export{
		Checklist: ExportedChecklist{Checklist: c.Clone(), ExportedAt: now.UTC()},
		Stats:     stats.Clone(),
		Summary: Summary{
			CompletionPercentage:  stats.ProgressPercentage,
			TimeSaved:             c.EstimatedMinutes() - stats.EstimatedTimeRemaining,
			CategoriesCompleted:   categoriesCompleted,
			HighPriorityCompleted: highPriorityCompleted,
		},
	}
}

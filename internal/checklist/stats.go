package checklist

import (
	"math"

	"realtime-checklist/internal/model"
)

// CalculateStats derives display statistics from c and items.
// Totals and progress come from the checklist row; the rest is computed from items.
// Categories are listed in order of first appearance in items.
func CalculateStats(c model.Checklist, items []model.ChecklistItem) Stats {
	stats := Stats{
		TotalItems:         c.TotalItems,
		CompletedItems:     c.CompletedItems,
		ProgressPercentage: c.ProgressPercentage,
		Categories:         []string{},
		PriorityBreakdown:  map[model.Priority]int{},
		CategoryProgress:   []CategoryProgress{},
	}

	index := map[string]int{}
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(stats.CategoryProgress)
			index[it.Category] = i
			stats.Categories = append(stats.Categories, it.Category)
			stats.CategoryProgress = append(stats.CategoryProgress, CategoryProgress{Category: it.Category})
		}

		stats.CategoryProgress[i].Total++
		if it.IsCompleted {
			stats.CategoryProgress[i].Completed++
		} else {
			stats.EstimatedTimeRemaining += it.EstimatedMinutes
		}
		stats.PriorityBreakdown[it.Priority]++
	}

	for i := range stats.CategoryProgress {
		stats.CategoryProgress[i].Progress = Percent(stats.CategoryProgress[i].Completed, stats.CategoryProgress[i].Total)
	}

	return stats
}

// Percent returns round(part/total*100), 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

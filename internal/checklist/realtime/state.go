package realtime

import (
	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/model"
)

// State is a snapshot of a session's observable state.
// Checklist and Stats are nil until the first successful load.
type State struct {
	Checklist  *model.Checklist
	Stats      *checklist.Stats
	Loading    bool
	Error      string
	IsUpdating bool
}

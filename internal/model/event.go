package model

import "time"

// EntityKind is the table a change event refers to.
type EntityKind string

const (
	EntityChecklist EntityKind = "checklist"
	EntityItem      EntityKind = "item"
)

// ChangeOp is the row-level operation carried by a change event.
type ChangeOp string

const (
	OpInsert ChangeOp = "insert"
	OpUpdate ChangeOp = "update"
	OpDelete ChangeOp = "delete"
)

// ChangeEvent is one row-level notification on a checklist channel.
// Exactly one of Checklist or Item is set, according to Entity.
// For deletes only the identifying fields of the row are guaranteed.
type ChangeEvent struct {
	Entity      EntityKind     `json:"entity"`
	Op          ChangeOp       `json:"op"`
	ChecklistID string         `json:"checklist_id"`
	Checklist   *Checklist     `json:"checklist,omitempty"`
	Item        *ChecklistItem `json:"item,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// ItemEvent builds an item event for row.
func ItemEvent(op ChangeOp, row ChecklistItem) ChangeEvent {
	return ChangeEvent{
		Entity:      EntityItem,
		Op:          op,
		ChecklistID: row.ChecklistID,
		Item:        &row,
		OccurredAt:  time.Now().UTC(),
	}
}

// ChecklistEvent builds a checklist event for row. Items are not carried.
func ChecklistEvent(op ChangeOp, row Checklist) ChangeEvent {
	row.Items = nil
	return ChangeEvent{
		Entity:      EntityChecklist,
		Op:          op,
		ChecklistID: row.ID,
		Checklist:   &row,
		OccurredAt:  time.Now().UTC(),
	}
}

package checklist

import "errors"

// Domain-specific errors for the checklist package.
var (
	ErrChecklistNotFound = errors.New("checklist not found")
	ErrItemNotFound      = errors.New("checklist item not found")
	ErrUnauthenticated   = errors.New("user not authenticated")
	ErrBatchFailed       = errors.New("one or more item updates failed")
	ErrInvalidPatch      = errors.New("invalid item update")
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmptyPatch        = errors.New("item update has no fields")
	ErrNoChecklistLoaded = errors.New("no checklist loaded")
	ErrEmptyImport       = errors.New("import content has no checkboxes")
)

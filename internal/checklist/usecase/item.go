package usecase

import (
	"context"
	"fmt"
	"time"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
)

func (uc *implUseCase) UpdateItem(ctx context.Context, input checklist.UpdateItemInput) (model.ChecklistItem, error) {
	if input.ItemID == "" {
		return model.ChecklistItem{}, fmt.Errorf("%w: item id is required", checklist.ErrInvalidInput)
	}
	if input.Patch.IsEmpty() {
		return model.ChecklistItem{}, checklist.ErrEmptyPatch
	}
	if err := uc.validatePatch(input.Patch); err != nil {
		return model.ChecklistItem{}, err
	}

	now := uc.now()
	patch := input.Patch

	if patch.IsCompleted != nil {
		if *patch.IsCompleted {
			actor, err := uc.currentActor(ctx)
			if err != nil {
				return model.ChecklistItem{}, err
			}
			patch.CompletedAt = &now
			patch.CompletedBy = &actor
		} else {
			var never time.Time
			var nobody string
			patch.CompletedAt = &never
			patch.CompletedBy = &nobody
		}
	}

	item, err := uc.repo.UpdateItem(ctx, repository.UpdateItemOptions{
		ID:        input.ItemID,
		Patch:     patch,
		UpdatedAt: now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateItem repo.UpdateItem: %v", err)
		return model.ChecklistItem{}, err
	}
	if item.ID == "" {
		return model.ChecklistItem{}, checklist.ErrItemNotFound
	}

	return item, nil
}

func (uc *implUseCase) AddNote(ctx context.Context, itemID, note string) error {
	_, err := uc.UpdateItem(ctx, checklist.UpdateItemInput{
		ItemID: itemID,
		Patch:  model.ItemPatch{Notes: &note},
	})
	return err
}

func (uc *implUseCase) AddEvidence(ctx context.Context, itemID, url string) error {
	_, err := uc.UpdateItem(ctx, checklist.UpdateItemInput{
		ItemID: itemID,
		Patch:  model.ItemPatch{EvidenceURL: &url},
	})
	return err
}

func (uc *implUseCase) validatePatch(p model.ItemPatch) error {
	if err := uc.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", checklist.ErrInvalidPatch, err)
	}
	// An empty evidence URL clears the column, so only a non-empty one is checked.
	if p.EvidenceURL != nil && *p.EvidenceURL != "" {
		if err := uc.validate.Var(*p.EvidenceURL, "url"); err != nil {
			return fmt.Errorf("%w: evidence_url must be a URL", checklist.ErrInvalidPatch)
		}
	}
	return nil
}

// currentActor resolves the authenticated actor; an empty id means unauthenticated.
func (uc *implUseCase) currentActor(ctx context.Context) (string, error) {
	actor, err := uc.actors.CurrentActor(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.currentActor actors.CurrentActor: %v", err)
		return "", err
	}
	if actor == "" {
		return "", checklist.ErrUnauthenticated
	}
	return actor, nil
}

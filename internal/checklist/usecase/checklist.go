package usecase

import (
	"context"
	"fmt"
	"strings"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input checklist.CreateInput) (checklist.CreateOutput, error) {
	if err := uc.validate.Struct(input); err != nil {
		return checklist.CreateOutput{}, fmt.Errorf("%w: %v", checklist.ErrInvalidInput, err)
	}

	actor, err := uc.currentActor(ctx)
	if err != nil {
		return checklist.CreateOutput{}, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = DefaultTitle
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = DefaultDescription
	}

	id, err := uc.repo.CreateChecklistWithItems(ctx, repository.CreateChecklistOptions{
		UserID:      actor,
		Title:       title,
		Description: description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.CreateChecklistWithItems: %v", err)
		return checklist.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: checklist %s created for %s", id, actor)
	return checklist.CreateOutput{ID: id}, nil
}

func (uc *implUseCase) List(ctx context.Context, input checklist.ListInput) (checklist.ListOutput, error) {
	actor, err := uc.currentActor(ctx)
	if err != nil {
		return checklist.ListOutput{}, err
	}

	list, err := uc.repo.ListChecklists(ctx, repository.ListChecklistsOptions{UserID: actor, Limit: input.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List repo.ListChecklists: %v", err)
		return checklist.ListOutput{}, err
	}

	return checklist.ListOutput{Checklists: list}, nil
}

// Detail reads the checklist row, then its items, in two separate reads.
func (uc *implUseCase) Detail(ctx context.Context, id string) (checklist.DetailOutput, error) {
	c, err := uc.repo.GetChecklist(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail repo.GetChecklist: %v", err)
		return checklist.DetailOutput{}, err
	}
	if c.ID == "" {
		return checklist.DetailOutput{}, checklist.ErrChecklistNotFound
	}

	items, err := uc.repo.ListItems(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail repo.ListItems: %v", err)
		return checklist.DetailOutput{}, err
	}
	c.Items = items

	return checklist.DetailOutput{
		Checklist: c,
		Stats:     checklist.CalculateStats(c, items),
	}, nil
}

func (uc *implUseCase) Watch(ctx context.Context, checklistID string) (repository.Subscription, error) {
	c, err := uc.repo.GetChecklist(ctx, checklistID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Watch repo.GetChecklist: %v", err)
		return nil, err
	}
	if c.ID == "" {
		return nil, checklist.ErrChecklistNotFound
	}

	sub, err := uc.repo.Subscribe(ctx, checklistID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Watch repo.Subscribe: %v", err)
		return nil, err
	}
	return sub, nil
}

func (uc *implUseCase) ImportMarkdown(ctx context.Context, input checklist.ImportMarkdownInput) (checklist.ImportMarkdownOutput, error) {
	boxes := checklist.ParseCheckboxes(input.Content)
	if len(boxes) == 0 {
		return checklist.ImportMarkdownOutput{}, checklist.ErrEmptyImport
	}

	detail, err := uc.Detail(ctx, input.ChecklistID)
	if err != nil {
		return checklist.ImportMarkdownOutput{}, err
	}

	matched, entries := checklist.PlanImport(detail.Checklist.Items, boxes)
	if err := uc.BatchUpdate(ctx, entries); err != nil {
		return checklist.ImportMarkdownOutput{Matched: matched}, err
	}

	return checklist.ImportMarkdownOutput{Matched: matched, Updated: len(entries)}, nil
}

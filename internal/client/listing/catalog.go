package listing

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/client/client"
	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/dmitrijs2005/stockkeeper/internal/client/validate"
)

// CatalogController lists catalog entries and applies entry mutations.
type CatalogController struct {
	*List[models.CatalogEntry]
	api client.EntryClient
}

func NewCatalogController(api client.EntryClient, opts ...Option) *CatalogController {
	return &CatalogController{
		List: NewList[models.CatalogEntry]("catalog entries", api.ListEntries, entryID, opts...),
		api:  api,
	}
}

func entryID(e models.CatalogEntry) int64 { return e.ID }

// Create submits draft and, once confirmed, reloads the list so the new row
// comes from the server.
func (c *CatalogController) Create(ctx context.Context, draft models.EntryDraft) (*models.CatalogEntry, error) {
	return mutate(ctx, c.List, mutation[*models.CatalogEntry]{
		op:    "create entry",
		check: func() error { return validate.Entry(draft.Name, draft.Description) },
		call: func(ctx context.Context) (*models.CatalogEntry, error) {
			return c.api.CreateEntry(ctx, draft)
		},
		success: "Catalog entry created",
		refetch: true,
	})
}

// Update sends only the fields set in patch. Rows are not touched until the
// server confirms.
func (c *CatalogController) Update(ctx context.Context, id int64, patch models.EntryPatch) (*models.CatalogEntry, error) {
	return mutate(ctx, c.List, mutation[*models.CatalogEntry]{
		op:    "update entry",
		check: func() error { return checkEntryPatch(patch) },
		call: func(ctx context.Context) (*models.CatalogEntry, error) {
			return c.api.UpdateEntry(ctx, id, patch)
		},
		success: "Catalog entry updated",
		refetch: true,
	})
}

// Remove deletes entry. If it was the only row on a page past the first,
// the list steps back a page before reloading.
func (c *CatalogController) Remove(ctx context.Context, entry models.CatalogEntry) error {
	_, err := mutate(ctx, c.List, mutation[done]{
		op:      "delete entry",
		call:    noResult(func(ctx context.Context) error { return c.api.DeleteEntry(ctx, entry.ID) }),
		apply:   func(context.Context, done) { c.drop(entry.ID) },
		success: "Catalog entry deleted",
		refetch: true,
	})
	return err
}

func checkEntryPatch(p models.EntryPatch) error {
	name, desc := "-", "-"
	if p.Name != nil {
		name = *p.Name
	}
	if p.Description != nil {
		desc = *p.Description
	}
	return validate.Entry(name, desc)
}

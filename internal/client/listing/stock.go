package listing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/stockkeeper/internal/client/client"
	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/dmitrijs2005/stockkeeper/internal/client/validate"
)

// StockAPI is what a stock controller needs from the resource client.
type StockAPI interface {
	client.UnitClient
	GetEntry(ctx context.Context, id int64) (*models.CatalogEntry, error)
}

// StockController lists the units of one catalog entry and keeps a cached
// copy of that entry whose CurrentStock mirrors the number of unsold units.
type StockController struct {
	*List[models.StockUnit]
	api     StockAPI
	entryID int64
	policy  StockPolicy

	mu    sync.Mutex
	entry models.CatalogEntry
}

func NewStockController(api StockAPI, entryID int64, opts ...Option) *StockController {
	c := &StockController{
		api:     api,
		entryID: entryID,
		policy:  buildOptions(opts).policy,
		entry:   models.CatalogEntry{ID: entryID},
	}
	fetch := func(ctx context.Context, q models.ListQuery) (*models.Page[models.StockUnit], error) {
		return api.ListUnits(ctx, entryID, q)
	}
	c.List = NewList[models.StockUnit]("stock units", fetch, unitID, opts...)
	return c
}

func unitID(u models.StockUnit) int64 { return u.ID }

func (c *StockController) EntryID() int64 { return c.entryID }

// Entry returns the cached catalog entry.
func (c *StockController) Entry() models.CatalogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry
}

// Load reads the entry and the current page of its units.
func (c *StockController) Load(ctx context.Context) error {
	return c.Refetch(ctx)
}

// Refetch re-reads the canonical entry, correcting any counter drift, then
// reloads the units. A failed entry read is reported and the units are not
// reloaded.
func (c *StockController) Refetch(ctx context.Context) error {
	e, err := c.api.GetEntry(ctx, c.entryID)
	if err != nil {
		c.opts.logger.Warn(ctx, "entry fetch failed", "entry_id", c.entryID, "error", err)
		c.notifyError(err)
		return err
	}
	c.setEntry(*e)
	return c.List.Refetch(ctx)
}

// Create adds a single unit. An unsold unit raises the counter by one.
func (c *StockController) Create(ctx context.Context, serial string, sold bool) (*models.StockUnit, error) {
	return mutate(ctx, c.List, mutation[*models.StockUnit]{
		op:    "create unit",
		check: func() error { return validate.SerialNumber(serial) },
		call: func(ctx context.Context) (*models.StockUnit, error) {
			return c.api.CreateUnit(ctx, models.UnitDraft{
				CatalogEntryID: c.entryID,
				SerialNumber:   strings.TrimSpace(serial),
				Sold:           sold,
			})
		},
		apply: func(ctx context.Context, u *models.StockUnit) {
			if !u.Sold {
				c.adjust(ctx, 1)
			}
		},
		success: "Stock unit added",
		refetch: true,
	})
}

// Update applies patch to before. The counter moves when the confirmed sold
// flag differs from before's.
func (c *StockController) Update(ctx context.Context, before models.StockUnit, patch models.UnitPatch) (*models.StockUnit, error) {
	return mutate(ctx, c.List, mutation[*models.StockUnit]{
		op: "update unit",
		check: func() error {
			if patch.SerialNumber == nil {
				return nil
			}
			return validate.SerialNumber(*patch.SerialNumber)
		},
		call: func(ctx context.Context) (*models.StockUnit, error) {
			return c.api.UpdateUnit(ctx, before.ID, patch)
		},
		apply: func(ctx context.Context, u *models.StockUnit) {
			c.adjust(ctx, soldDelta(c.soldBefore(before), u.Sold))
		},
		success: "Stock unit updated",
		refetch: true,
	})
}

// Remove deletes unit. An unsold unit lowers the counter by one, never
// below zero. Emptying a trailing page steps back one page.
func (c *StockController) Remove(ctx context.Context, unit models.StockUnit) error {
	_, err := mutate(ctx, c.List, mutation[done]{
		op:   "delete unit",
		call: noResult(func(ctx context.Context) error { return c.api.DeleteUnit(ctx, unit.ID) }),
		apply: func(ctx context.Context, _ done) {
			wasSold := c.soldBefore(unit)
			c.drop(unit.ID)
			if !wasSold {
				c.adjust(ctx, -1)
			}
		},
		success: "Stock unit deleted",
		refetch: true,
	})
	return err
}

// ToggleSold flips the sold flag. The row is patched in place from the
// server's echo and the list is not reloaded.
func (c *StockController) ToggleSold(ctx context.Context, unit models.StockUnit) (*models.StockUnit, error) {
	return mutate(ctx, c.List, mutation[*models.StockUnit]{
		op: "toggle sold",
		call: func(ctx context.Context) (*models.StockUnit, error) {
			return c.api.ToggleSold(ctx, unit.ID)
		},
		apply: func(ctx context.Context, u *models.StockUnit) {
			wasSold := c.soldBefore(unit)
			c.replace(*u)
			c.adjust(ctx, soldDelta(wasSold, u.Sold))
		},
	})
}

// BatchCreate normalizes lines and submits them. The counter grows by the
// number the server reports as created, which may be less than submitted.
func (c *StockController) BatchCreate(ctx context.Context, lines []string) (*models.BatchResult, error) {
	serials := NormalizeSerials(lines)
	return mutate(ctx, c.List, mutation[*models.BatchResult]{
		op:    "batch create units",
		check: func() error { return validate.Serials(serials) },
		call: func(ctx context.Context) (*models.BatchResult, error) {
			return c.api.BatchCreateUnits(ctx, models.BatchRequest{
				CatalogEntryID: c.entryID,
				SerialNumbers:  serials,
			})
		},
		apply: func(ctx context.Context, res *models.BatchResult) {
			c.adjust(ctx, res.Created)
			c.notifyInfo(fmt.Sprintf("%d of %d stock units added", res.Created, len(serials)))
		},
		refetch: true,
	})
}

// soldBefore prefers the visible row over the caller's copy.
func (c *StockController) soldBefore(u models.StockUnit) bool {
	if row, ok := c.Find(u.ID); ok {
		return row.Sold
	}
	return u.Sold
}

// soldDelta is the change in unsold units when a flag goes from before to after.
func soldDelta(before, after bool) int {
	switch {
	case before && !after:
		return 1
	case !before && after:
		return -1
	default:
		return 0
	}
}

// adjust applies a confirmed change of delta unsold units to the cached
// entry according to the stock policy.
func (c *StockController) adjust(ctx context.Context, delta int) {
	if c.policy == PolicyServer {
		e, err := c.api.GetEntry(ctx, c.entryID)
		if err == nil {
			c.setEntry(*e)
			return
		}
		c.opts.logger.Warn(ctx, "entry re-read failed, adjusting locally", "entry_id", c.entryID, "delta", delta, "error", err)
	}
	if delta == 0 {
		return
	}

	c.mu.Lock()
	c.entry.CurrentStock = max(0, c.entry.CurrentStock+delta)
	c.mu.Unlock()
}

func (c *StockController) setEntry(e models.CatalogEntry) {
	c.mu.Lock()
	c.entry = e
	c.mu.Unlock()
}

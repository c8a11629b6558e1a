package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stockkeeper/internal/client/listing"
	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
)

var errNoStockView = errors.New("no entry selected")

// Units opens the stock view of one catalog entry.
func (a *App) Units(ctx context.Context, entryID int64) error {
	var sc *listing.StockController
	sc = listing.NewStockController(a.api, entryID, a.listOptions(func() { a.renderStock(sc) })...)
	a.showStock(sc)

	if err := sc.Load(ctx); err != nil {
		a.showCatalog()
		return err
	}
	return nil
}

// stockOrHint returns the active stock view, telling the user how to open
// one when there is none.
func (a *App) stockOrHint() (*listing.StockController, error) {
	sc := a.currentStock()
	if sc == nil {
		a.printf("Open an entry first: units <entry id>\n")
		return nil, errNoStockView
	}
	return sc, nil
}

func (a *App) AddUnit(ctx context.Context) error {
	sc, err := a.stockOrHint()
	if err != nil {
		return err
	}

	serial, err := getSimpleText(a.reader, "Serial number", a.out)
	if err != nil {
		return err
	}
	sold := confirm(a.reader, "Already sold?", a.out)

	_, err = sc.Create(ctx, serial, sold)
	return err
}

// EditUnit prompts for a new serial and sold flag of a visible unit.
func (a *App) EditUnit(ctx context.Context, id int64) error {
	sc, err := a.stockOrHint()
	if err != nil {
		return err
	}
	u, ok := sc.Find(id)
	if !ok {
		a.printf("No stock unit %d on this page\n", id)
		return errNotFound
	}

	var patch models.UnitPatch
	serial, err := getSimpleText(a.reader, fmt.Sprintf("Serial number [%s]", u.SerialNumber), a.out)
	if err != nil {
		return err
	}
	if serial != "" && serial != u.SerialNumber {
		patch.SerialNumber = &serial
	}
	sold, err := optionalBool(a.reader, fmt.Sprintf("Sold [%t]", u.Sold), a.out)
	if err != nil {
		a.printf("[error] %v\n", err)
		return err
	}
	if sold != nil && *sold != u.Sold {
		patch.Sold = sold
	}

	if patch.SerialNumber == nil && patch.Sold == nil {
		a.printf("Nothing to update\n")
		return nil
	}
	_, err = sc.Update(ctx, u, patch)
	return err
}

func (a *App) RemoveUnit(ctx context.Context, id int64) error {
	sc, err := a.stockOrHint()
	if err != nil {
		return err
	}
	u, ok := sc.Find(id)
	if !ok {
		a.printf("No stock unit %d on this page\n", id)
		return errNotFound
	}
	if !confirm(a.reader, fmt.Sprintf("Delete unit %s?", u.SerialNumber), a.out) {
		return nil
	}
	return sc.Remove(ctx, u)
}

// Toggle flips the sold flag of a visible unit.
func (a *App) Toggle(ctx context.Context, id int64) error {
	sc, err := a.stockOrHint()
	if err != nil {
		return err
	}
	u, ok := sc.Find(id)
	if !ok {
		a.printf("No stock unit %d on this page\n", id)
		return errNotFound
	}
	_, err = sc.ToggleSold(ctx, u)
	return err
}

// Batch reads serial numbers, one per line, and adds them in a single
// request.
func (a *App) Batch(ctx context.Context) error {
	sc, err := a.stockOrHint()
	if err != nil {
		return err
	}
	lines, err := GetMultiline(a.reader, "Serial numbers, one per line", a.out)
	if err != nil {
		return err
	}

	var serials []string
	for _, l := range lines {
		serials = append(serials, listing.SplitSerials(l)...)
	}
	_, err = sc.BatchCreate(ctx, serials)
	return err
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/dmitrijs2005/stockkeeper/internal/filex"
)

var errNotFound = errors.New("not on the current page")

// readImage is a test seam for filex.ReadImage.
var readImage = filex.ReadImage

// AddEntry prompts for a new catalog entry. The image path is optional.
func (a *App) AddEntry(ctx context.Context) error {
	a.showCatalog()

	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	img, err := a.promptImage()
	if err != nil {
		return err
	}

	_, err = a.catalog.Create(ctx, models.EntryDraft{Name: name, Description: desc, Image: img})
	return err
}

// EditEntry prompts for new values of a visible entry. Empty answers keep
// the current value and are not sent.
func (a *App) EditEntry(ctx context.Context, id int64) error {
	a.showCatalog()

	e, ok := a.catalog.Find(id)
	if !ok {
		a.printf("No catalog entry %d on this page\n", id)
		return errNotFound
	}

	var patch models.EntryPatch
	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", e.Name), a.out)
	if err != nil {
		return err
	}
	if name != "" && name != e.Name {
		patch.Name = &name
	}
	desc, err := getSimpleText(a.reader, fmt.Sprintf("Description [%s]", e.Description), a.out)
	if err != nil {
		return err
	}
	if desc != "" && desc != e.Description {
		patch.Description = &desc
	}
	if patch.Image, err = a.promptImage(); err != nil {
		return err
	}

	if patch.Name == nil && patch.Description == nil && patch.Image == nil {
		a.printf("Nothing to update\n")
		return nil
	}
	_, err = a.catalog.Update(ctx, id, patch)
	return err
}

// RemoveEntry deletes a visible entry after confirmation.
func (a *App) RemoveEntry(ctx context.Context, id int64) error {
	a.showCatalog()

	e, ok := a.catalog.Find(id)
	if !ok {
		a.printf("No catalog entry %d on this page\n", id)
		return errNotFound
	}
	if !confirm(a.reader, fmt.Sprintf("Delete %q and all its stock units?", e.Name), a.out) {
		return nil
	}
	return a.catalog.Remove(ctx, e)
}

func (a *App) promptImage() (*models.Image, error) {
	path, err := getSimpleText(a.reader, "Image file (empty for none)", a.out)
	if err != nil || path == "" {
		return nil, err
	}
	up, err := readImage(path)
	if err != nil {
		a.printf("[error] %v\n", err)
		return nil, err
	}
	return &models.Image{Filename: up.Filename, ContentType: up.ContentType, Data: up.Data}, nil
}

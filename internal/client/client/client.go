package client

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// string means no session.
type TokenSource interface {
	Token() string
}

// AuthClient covers the unauthenticated session endpoints.
type AuthClient interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error)
	Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error)
}

// EntryClient covers catalog entries.
type EntryClient interface {
	ListEntries(ctx context.Context, q models.ListQuery) (*models.Page[models.CatalogEntry], error)
	GetEntry(ctx context.Context, id int64) (*models.CatalogEntry, error)
	CreateEntry(ctx context.Context, draft models.EntryDraft) (*models.CatalogEntry, error)
	UpdateEntry(ctx context.Context, id int64, patch models.EntryPatch) (*models.CatalogEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// UnitClient covers stock units, always scoped to one catalog entry when listing.
type UnitClient interface {
	ListUnits(ctx context.Context, entryID int64, q models.ListQuery) (*models.Page[models.StockUnit], error)
	CreateUnit(ctx context.Context, draft models.UnitDraft) (*models.StockUnit, error)
	UpdateUnit(ctx context.Context, id int64, patch models.UnitPatch) (*models.StockUnit, error)
	DeleteUnit(ctx context.Context, id int64) error
	ToggleSold(ctx context.Context, id int64) (*models.StockUnit, error)
	BatchCreateUnits(ctx context.Context, req models.BatchRequest) (*models.BatchResult, error)
}

type Client interface {
	AuthClient
	EntryClient
	UnitClient
}

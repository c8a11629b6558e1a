package listing

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
)

// fakeAPI is a hand-written stand-in for the resource client. Pages are
// served by page number; mutations return the configured Ret or Err.
type fakeAPI struct {
	mu sync.Mutex

	EntryPages   map[int]*models.Page[models.CatalogEntry]
	ListEntryErr error
	EntryQueries []models.ListQuery

	UnitPages   map[int]*models.Page[models.StockUnit]
	ListUnitErr error
	UnitQueries []models.ListQuery

	Entry         models.CatalogEntry
	GetEntryErr   error
	GetEntryCalls int

	CreateEntryRet   *models.CatalogEntry
	CreateEntryErr   error
	CreateEntryCalls int
	UpdateEntryRet   *models.CatalogEntry
	UpdateEntryErr   error
	LastEntryPatch   models.EntryPatch
	DeleteEntryErr   error
	LastDeletedEntry int64

	CreateUnitRet   *models.StockUnit
	CreateUnitErr   error
	CreateUnitCalls int
	LastUnitDraft   models.UnitDraft
	UpdateUnitRet   *models.StockUnit
	UpdateUnitErr   error
	DeleteUnitErr   error
	LastDeletedUnit int64

	// Sold tracks the server-side flag for ToggleSold.
	Sold        map[int64]bool
	ToggleErr   error
	ToggleCalls int

	BatchRet   *models.BatchResult
	BatchErr   error
	BatchCalls int
	LastBatch  models.BatchRequest
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		EntryPages: map[int]*models.Page[models.CatalogEntry]{},
		UnitPages:  map[int]*models.Page[models.StockUnit]{},
		Sold:       map[int64]bool{},
	}
}

func (f *fakeAPI) ListEntries(_ context.Context, q models.ListQuery) (*models.Page[models.CatalogEntry], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.EntryQueries = append(f.EntryQueries, q)
	if f.ListEntryErr != nil {
		return nil, f.ListEntryErr
	}
	if p, ok := f.EntryPages[q.Page]; ok {
		cp := *p
		cp.Items = append([]models.CatalogEntry(nil), p.Items...)
		return &cp, nil
	}
	return &models.Page[models.CatalogEntry]{Items: []models.CatalogEntry{}, CurrentPage: q.Page}, nil
}

func (f *fakeAPI) GetEntry(_ context.Context, id int64) (*models.CatalogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetEntryCalls++
	if f.GetEntryErr != nil {
		return nil, f.GetEntryErr
	}
	e := f.Entry
	e.ID = id
	return &e, nil
}

func (f *fakeAPI) CreateEntry(_ context.Context, _ models.EntryDraft) (*models.CatalogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateEntryCalls++
	return f.CreateEntryRet, f.CreateEntryErr
}

func (f *fakeAPI) UpdateEntry(_ context.Context, _ int64, patch models.EntryPatch) (*models.CatalogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastEntryPatch = patch
	return f.UpdateEntryRet, f.UpdateEntryErr
}

func (f *fakeAPI) DeleteEntry(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastDeletedEntry = id
	return f.DeleteEntryErr
}

func (f *fakeAPI) ListUnits(_ context.Context, _ int64, q models.ListQuery) (*models.Page[models.StockUnit], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UnitQueries = append(f.UnitQueries, q)
	if f.ListUnitErr != nil {
		return nil, f.ListUnitErr
	}
	if p, ok := f.UnitPages[q.Page]; ok {
		cp := *p
		cp.Items = append([]models.StockUnit(nil), p.Items...)
		return &cp, nil
	}
	return &models.Page[models.StockUnit]{Items: []models.StockUnit{}, CurrentPage: q.Page}, nil
}

func (f *fakeAPI) CreateUnit(_ context.Context, d models.UnitDraft) (*models.StockUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateUnitCalls++
	f.LastUnitDraft = d
	return f.CreateUnitRet, f.CreateUnitErr
}

func (f *fakeAPI) UpdateUnit(_ context.Context, _ int64, _ models.UnitPatch) (*models.StockUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.UpdateUnitRet, f.UpdateUnitErr
}

func (f *fakeAPI) DeleteUnit(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastDeletedUnit = id
	return f.DeleteUnitErr
}

func (f *fakeAPI) ToggleSold(_ context.Context, id int64) (*models.StockUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ToggleCalls++
	if f.ToggleErr != nil {
		return nil, f.ToggleErr
	}
	f.Sold[id] = !f.Sold[id]
	return &models.StockUnit{ID: id, SerialNumber: "SN", Sold: f.Sold[id]}, nil
}

func (f *fakeAPI) BatchCreateUnits(_ context.Context, req models.BatchRequest) (*models.BatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BatchCalls++
	f.LastBatch = req
	return f.BatchRet, f.BatchErr
}

func (f *fakeAPI) entryQueries() []models.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ListQuery(nil), f.EntryQueries...)
}

func (f *fakeAPI) unitQueries() []models.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ListQuery(nil), f.UnitQueries...)
}

const testPageSize = 10

func entryPage(current, last, total int, ids ...int64) *models.Page[models.CatalogEntry] {
	items := make([]models.CatalogEntry, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.CatalogEntry{ID: id, Name: "entry", Description: "d"})
	}
	return &models.Page[models.CatalogEntry]{
		Items: items, Total: total, PageSize: testPageSize, CurrentPage: current, LastPage: last,
	}
}

func unitPage(current, last, total int, units ...models.StockUnit) *models.Page[models.StockUnit] {
	if units == nil {
		units = []models.StockUnit{}
	}
	return &models.Page[models.StockUnit]{
		Items: units, Total: total, PageSize: testPageSize, CurrentPage: current, LastPage: last,
	}
}

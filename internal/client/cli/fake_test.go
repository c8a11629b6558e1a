package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/client/config"
	"github.com/dmitrijs2005/stockkeeper/internal/client/listing"
	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/dmitrijs2005/stockkeeper/internal/client/session"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
)

// fakeClient serves fixed pages and records mutations.
type fakeClient struct {
	mu sync.Mutex

	Entries      *models.Page[models.CatalogEntry]
	EntryQueries []models.ListQuery
	Entry        models.CatalogEntry
	GetEntryErr  error

	LastDraft   models.EntryDraft
	LastPatch   models.EntryPatch
	PatchCalls  int
	DeletedID   int64
	DeleteCalls int

	Units      *models.Page[models.StockUnit]
	UnitDraft  models.UnitDraft
	Sold       map[int64]bool
	LastBatch  models.BatchRequest
	BatchCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		Entries: &models.Page[models.CatalogEntry]{Items: []models.CatalogEntry{}},
		Units:   &models.Page[models.StockUnit]{Items: []models.StockUnit{}},
		Sold:    map[int64]bool{},
	}
}

func (f *fakeClient) Login(context.Context, models.Credentials) (*models.AuthResult, error) {
	return nil, nil
}

func (f *fakeClient) Register(context.Context, models.Registration) (*models.AuthResult, error) {
	return nil, nil
}

func (f *fakeClient) ListEntries(_ context.Context, q models.ListQuery) (*models.Page[models.CatalogEntry], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.EntryQueries = append(f.EntryQueries, q)
	cp := *f.Entries
	return &cp, nil
}

func (f *fakeClient) GetEntry(_ context.Context, id int64) (*models.CatalogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetEntryErr != nil {
		return nil, f.GetEntryErr
	}
	e := f.Entry
	e.ID = id
	return &e, nil
}

func (f *fakeClient) CreateEntry(_ context.Context, d models.EntryDraft) (*models.CatalogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastDraft = d
	return &models.CatalogEntry{ID: 99, Name: d.Name, Description: d.Description}, nil
}

func (f *fakeClient) UpdateEntry(_ context.Context, id int64, p models.EntryPatch) (*models.CatalogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PatchCalls++
	f.LastPatch = p
	return &models.CatalogEntry{ID: id}, nil
}

func (f *fakeClient) DeleteEntry(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	f.DeletedID = id
	return nil
}

func (f *fakeClient) ListUnits(context.Context, int64, models.ListQuery) (*models.Page[models.StockUnit], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *f.Units
	cp.Items = append([]models.StockUnit(nil), f.Units.Items...)
	return &cp, nil
}

func (f *fakeClient) CreateUnit(_ context.Context, d models.UnitDraft) (*models.StockUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UnitDraft = d
	return &models.StockUnit{ID: 50, CatalogEntryID: d.CatalogEntryID, SerialNumber: d.SerialNumber, Sold: d.Sold}, nil
}

func (f *fakeClient) UpdateUnit(_ context.Context, id int64, p models.UnitPatch) (*models.StockUnit, error) {
	u := models.StockUnit{ID: id}
	if p.Sold != nil {
		u.Sold = *p.Sold
	}
	return &u, nil
}

func (f *fakeClient) DeleteUnit(context.Context, int64) error { return nil }

func (f *fakeClient) ToggleSold(_ context.Context, id int64) (*models.StockUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sold[id] = !f.Sold[id]
	return &models.StockUnit{ID: id, SerialNumber: "SN-1", Sold: f.Sold[id]}, nil
}

func (f *fakeClient) BatchCreateUnits(_ context.Context, req models.BatchRequest) (*models.BatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BatchCalls++
	f.LastBatch = req
	return &models.BatchResult{Created: len(req.SerialNumbers)}, nil
}

func (f *fakeClient) entryQueries() []models.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ListQuery(nil), f.EntryQueries...)
}

// fakeSession returns canned states from Login and Register.
type fakeSession struct {
	state       session.State
	next        session.State
	lastEmail   string
	lastPass    string
	loginCalls  int
	logoutCalls int
}

func signedIn() session.State {
	return session.State{
		Status:   session.StatusAuthenticated,
		Identity: &models.Identity{ID: 1, Name: "Ann", Email: "ann@example.com"},
		Token:    "tok",
	}
}

func (s *fakeSession) State() session.State { return s.state }

func (s *fakeSession) Login(_ context.Context, email, password string) session.State {
	s.loginCalls++
	s.lastEmail, s.lastPass = email, password
	s.state = s.next
	return s.state
}

func (s *fakeSession) Register(_ context.Context, _, email, password, _ string) session.State {
	s.lastEmail, s.lastPass = email, password
	s.state = s.next
	return s.state
}

func (s *fakeSession) Logout(context.Context) session.State {
	s.logoutCalls++
	s.state = session.State{}
	return s.state
}

// syncBuffer is a bytes.Buffer safe for the debounce goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newTestApp builds an App reading input from in.
func newTestApp(t *testing.T, api *fakeClient, st *fakeSession, in string) (*App, *syncBuffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SearchDebounce = 5 * time.Millisecond

	out := &syncBuffer{}
	a := newApp(cfg, logging.Nop(), api, st, listing.PolicyIncremental, strings.NewReader(in), out)
	t.Cleanup(a.Close)
	return a, out
}

func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	old := getPassword
	t.Cleanup(func() { getPassword = old })

	i := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		pw := pws[i%len(pws)]
		i++
		return []byte(pw), nil
	}
}

func catalogPage(entries ...models.CatalogEntry) *models.Page[models.CatalogEntry] {
	return &models.Page[models.CatalogEntry]{
		Items: entries, Total: len(entries), PageSize: 10, CurrentPage: 1, LastPage: 1,
	}
}

func unitsPage(units ...models.StockUnit) *models.Page[models.StockUnit] {
	return &models.Page[models.StockUnit]{
		Items: units, Total: len(units), PageSize: 10, CurrentPage: 1, LastPage: 1,
	}
}

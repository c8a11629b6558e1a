package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/stockkeeper/internal/client/client"
	"github.com/dmitrijs2005/stockkeeper/internal/client/config"
	"github.com/dmitrijs2005/stockkeeper/internal/client/listing"
	"github.com/dmitrijs2005/stockkeeper/internal/client/session"
	"github.com/dmitrijs2005/stockkeeper/internal/filex"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
)

// sessionStore is the part of *session.Store the commands use.
type sessionStore interface {
	State() session.State
	Login(ctx context.Context, email, password string) session.State
	Register(ctx context.Context, name, email, password, confirmation string) session.State
	Logout(ctx context.Context) session.State
}

type viewKind int

const (
	viewCatalog viewKind = iota
	viewStock
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	api     client.Client
	session sessionStore
	catalog *listing.CatalogController
	policy  listing.StockPolicy
	reader  *bufio.Reader

	outMu sync.Mutex
	out   io.Writer

	closeOnce sync.Once

	viewMu sync.Mutex
	view   viewKind
	stock  *listing.StockController
}

// NewApp opens the local session database, restores any persisted session
// and wires the REST client and list controllers around it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	policy, err := listing.ParseStockPolicy(c.StockPolicy)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api := client.NewHTTPClient(c.APIBaseURL,
		client.WithLogger(logger),
		client.WithRateLimit(c.RequestsPerSecond, 1),
	)
	store := session.NewStore(ctx, api, db, logger)
	api.SetTokenSource(store)

	a := newApp(c, logger, api, store, policy, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, api client.Client, store sessionStore,
	policy listing.StockPolicy, in io.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		logger:  logger,
		api:     api,
		session: store,
		policy:  policy,
		reader:  bufio.NewReader(in),
		out:     out,
	}
	a.catalog = listing.NewCatalogController(api, a.listOptions(a.renderCatalog)...)
	return a
}

func (a *App) listOptions(onChange func()) []listing.Option {
	return []listing.Option{
		listing.WithQuietInterval(a.config.SearchDebounce),
		listing.WithNotifier(listing.NotifierFunc(a.notify)),
		listing.WithLogger(a.logger),
		listing.WithOnChange(onChange),
		listing.WithStockPolicy(a.policy),
	}
}

// Run starts the REPL and blocks until the user exits, stdin closes or ctx
// is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if st := a.session.State(); st.Authenticated() {
		a.printf("Welcome back, %s.\n", st.Identity.Name)
	}
	runREPL(ctx, a, a.status, a.reader)
}

// Close stops pending searches and releases the session database. It is
// safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.catalog.Close()
		if sc := a.currentStock(); sc != nil {
			sc.Close()
		}
		if a.db != nil {
			if err := a.db.Close(); err != nil {
				a.logger.Warn(context.Background(), "closing database", "error", err)
			}
		}
	})
}

func (a *App) sessionState() session.State {
	return a.session.State()
}

// status renders the prompt prefix.
func (a *App) status() string {
	st := a.session.State()
	if !st.Authenticated() {
		return st.Status.String()
	}
	if sc := a.currentStock(); sc != nil {
		return fmt.Sprintf("%s @ %s", st.Identity.Email, sc.Entry().Name)
	}
	return st.Identity.Email
}

func (a *App) currentStock() *listing.StockController {
	a.viewMu.Lock()
	defer a.viewMu.Unlock()
	if a.view != viewStock {
		return nil
	}
	return a.stock
}

// showCatalog makes the catalog the active view, dropping any stock view.
func (a *App) showCatalog() {
	a.viewMu.Lock()
	prev := a.stock
	a.stock = nil
	a.view = viewCatalog
	a.viewMu.Unlock()

	if prev != nil {
		prev.Close()
	}
}

func (a *App) showStock(sc *listing.StockController) {
	a.viewMu.Lock()
	prev := a.stock
	a.stock = sc
	a.view = viewStock
	a.viewMu.Unlock()

	if prev != nil && prev != sc {
		prev.Close()
	}
}

func (a *App) notify(n listing.Notification) {
	a.printf("[%s] %s\n", n.Level, n.Message)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

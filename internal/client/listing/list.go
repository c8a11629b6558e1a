// Package listing keeps paginated, searchable server collections in sync
// with local mutations.
//
// A List owns one (query, page) pair. Mutations go through mutate: nothing
// local changes until the server has confirmed, and every failure yields a
// single error notification. The stock controller additionally mirrors its
// catalog entry's counter of unsold units.
package listing

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/client/client"
	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
)

// Fetcher loads one page for a query.
type Fetcher[T any] func(ctx context.Context, q models.ListQuery) (*models.Page[T], error)

type options struct {
	quiet    time.Duration
	notifier Notifier
	logger   logging.Logger
	onChange func()
	policy   StockPolicy
}

type Option func(*options)

// WithQuietInterval sets the search debounce delay.
func WithQuietInterval(d time.Duration) Option {
	return func(o *options) { o.quiet = d }
}

func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithOnChange registers fn to run after the visible page or the cached
// entry changed. It runs without locks held.
func WithOnChange(fn func()) Option {
	return func(o *options) { o.onChange = fn }
}

// WithStockPolicy only affects stock controllers.
func WithStockPolicy(p StockPolicy) Option {
	return func(o *options) { o.policy = p }
}

func buildOptions(opts []Option) options {
	o := options{
		quiet:    DefaultQuietInterval,
		notifier: nopNotifier{},
		logger:   logging.Nop(),
		onChange: func() {},
		policy:   PolicyIncremental,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// List owns the query and the last successfully fetched page of one
// collection. It is safe for concurrent use.
type List[T any] struct {
	name     string
	fetch    Fetcher[T]
	key      func(T) int64
	debounce *Debouncer
	opts     options

	mu    sync.Mutex
	query models.ListQuery
	page  models.Page[T]
	// seq identifies the newest fetch; older responses are dropped.
	seq uint64
}

// NewList builds a list. name is used in logs and in the generic fetch
// failure message; key identifies rows for in-place patches.
func NewList[T any](name string, fetch Fetcher[T], key func(T) int64, opts ...Option) *List[T] {
	o := buildOptions(opts)
	o.logger = o.logger.With("list", name)
	return &List[T]{
		name:     name,
		fetch:    fetch,
		key:      key,
		debounce: NewDebouncer(o.quiet),
		opts:     o,
		query:    models.NewListQuery(),
		page:     models.Page[T]{Items: []T{}},
	}
}

func (l *List[T]) Query() models.ListQuery {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query
}

// Page returns a copy of the visible page.
func (l *List[T]) Page() models.Page[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.page
	p.Items = slices.Clone(l.page.Items)
	return p
}

// Find returns the visible row with the given id.
func (l *List[T]) Find(id int64) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.page.Items {
		if l.key(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// SetSearchTerm schedules term to be committed once input has been quiet
// for the configured interval. Committing a new term resets to page 1 and
// refetches; a term equal to the committed one does nothing.
func (l *List[T]) SetSearchTerm(ctx context.Context, term string) {
	l.debounce.Do(func() {
		l.mu.Lock()
		if l.query.SearchTerm == term {
			l.mu.Unlock()
			return
		}
		l.query = models.ListQuery{SearchTerm: term, Page: 1}
		l.mu.Unlock()

		_ = l.Refetch(ctx)
	})
}

// ClearSearch drops any pending term and refetches page 1 unfiltered.
func (l *List[T]) ClearSearch(ctx context.Context) error {
	l.debounce.Cancel()

	l.mu.Lock()
	l.query = models.NewListQuery()
	l.mu.Unlock()

	return l.Refetch(ctx)
}

// Reset returns the list to its initial state: page 1, no search term and
// no rows. A pending search commit is dropped and any fetch still in flight
// is discarded when it returns. Nothing is fetched.
func (l *List[T]) Reset() {
	l.debounce.Cancel()

	l.mu.Lock()
	l.seq++
	l.query = models.NewListQuery()
	l.page = models.Page[T]{Items: []T{}}
	l.mu.Unlock()
}

// SetPage moves to page n and refetches. It reports false, without doing
// anything, when n is outside [1, lastPage]. If the fetch fails the previous
// page number is restored.
func (l *List[T]) SetPage(ctx context.Context, n int) bool {
	l.mu.Lock()
	if n < 1 || n > l.page.LastPage {
		l.mu.Unlock()
		return false
	}
	prev := l.query.Page
	l.query.Page = n
	l.mu.Unlock()

	if err := l.Refetch(ctx); err != nil {
		l.mu.Lock()
		if l.query.Page == n {
			l.query.Page = prev
		}
		l.mu.Unlock()
	}
	return true
}

// Refetch reloads the current query. On failure the visible page is kept
// and an error notification is issued. A response overtaken by a newer
// fetch is discarded.
func (l *List[T]) Refetch(ctx context.Context) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	q := l.query
	l.mu.Unlock()

	page, err := l.fetch(ctx, q)

	l.mu.Lock()
	if seq != l.seq {
		l.mu.Unlock()
		l.opts.logger.Debug(ctx, "stale fetch dropped", "page", q.Page, "search", q.SearchTerm)
		return nil
	}
	if err != nil {
		l.mu.Unlock()
		l.opts.logger.Warn(ctx, "fetch failed", "page", q.Page, "search", q.SearchTerm, "error", err)
		l.notifyError(err)
		return err
	}
	l.page = *page
	if l.page.Items == nil {
		l.page.Items = []T{}
	}
	l.mu.Unlock()

	l.opts.onChange()
	return nil
}

// Close cancels a pending search commit.
func (l *List[T]) Close() {
	l.debounce.Cancel()
}

// replace swaps the visible row with the same key for item.
func (l *List[T]) replace(item T) {
	id := l.key(item)
	l.mu.Lock()
	for i, it := range l.page.Items {
		if l.key(it) == id {
			l.page.Items[i] = item
			break
		}
	}
	l.mu.Unlock()
}

// drop removes the row with id from the visible page. When that empties a
// page beyond the first, the query steps back one page.
func (l *List[T]) drop(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	before := len(l.page.Items)
	l.page.Items = slices.DeleteFunc(l.page.Items, func(it T) bool { return l.key(it) == id })
	if len(l.page.Items) == before {
		return
	}
	if l.page.Total > 0 {
		l.page.Total--
	}
	if len(l.page.Items) == 0 && l.query.Page > 1 {
		l.query.Page--
	}
}

func (l *List[T]) notifyError(err error) {
	msg := client.UserMessage(err)
	if msg == "" {
		msg = "Something went wrong with " + l.name
	}
	l.opts.notifier.Notify(Notification{Level: LevelError, Message: msg})
}

func (l *List[T]) notifyInfo(msg string) {
	l.opts.notifier.Notify(Notification{Level: LevelInfo, Message: msg})
}

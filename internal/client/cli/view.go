package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/stockkeeper/internal/client/listing"
	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
)

// navigator is the list surface shared by the catalog and stock views.
type navigator interface {
	SetSearchTerm(ctx context.Context, term string)
	ClearSearch(ctx context.Context) error
	SetPage(ctx context.Context, n int) bool
	Refetch(ctx context.Context) error
	Query() models.ListQuery
}

// pager reports the page position of the active view.
type pager interface {
	navigator
	position() (current, last int)
}

type catalogView struct{ *listing.CatalogController }

func (v catalogView) position() (int, int) {
	p := v.Page()
	return p.CurrentPage, p.LastPage
}

type stockView struct{ *listing.StockController }

func (v stockView) position() (int, int) {
	p := v.Page()
	return p.CurrentPage, p.LastPage
}

func (a *App) active() pager {
	if sc := a.currentStock(); sc != nil {
		return stockView{sc}
	}
	return catalogView{a.catalog}
}

// Entries switches to the catalog view and reloads it.
func (a *App) Entries(ctx context.Context) error {
	a.showCatalog()
	return a.catalog.Refetch(ctx)
}

// Search schedules term for the active view. The list is shown once the
// term has settled.
func (a *App) Search(ctx context.Context, term string) error {
	v := a.active()
	if v.Query().SearchTerm == term {
		a.printf("Already showing results for %q\n", term)
		return nil
	}
	v.SetSearchTerm(ctx, term)
	a.printf("Searching for %q...\n", term)
	return nil
}

func (a *App) ClearSearch(ctx context.Context) error {
	return a.active().ClearSearch(ctx)
}

// Page jumps to page n of the active view.
func (a *App) Page(ctx context.Context, n int) error {
	v := a.active()
	if !v.SetPage(ctx, n) {
		_, last := v.position()
		a.printf("No page %d (1-%d)\n", n, max(last, 1))
		return errNoSuchPage
	}
	return nil
}

func (a *App) Next(ctx context.Context) error {
	cur, _ := a.active().position()
	return a.Page(ctx, cur+1)
}

func (a *App) Prev(ctx context.Context) error {
	cur, _ := a.active().position()
	return a.Page(ctx, cur-1)
}

func (a *App) Refresh(ctx context.Context) error {
	return a.active().Refetch(ctx)
}

// renderCatalog is the catalog controller's change hook.
func (a *App) renderCatalog() {
	if a.currentStock() != nil {
		return
	}
	p := a.catalog.Page()
	q := a.catalog.Query()

	a.outMu.Lock()
	defer a.outMu.Unlock()
	writeEntries(a.out, p, q)
}

// renderStock is the change hook of sc; it draws only while sc is active.
func (a *App) renderStock(sc *listing.StockController) {
	if a.currentStock() != sc {
		return
	}
	e := sc.Entry()
	p := sc.Page()
	q := sc.Query()

	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, "%s (#%d): %d in stock\n", e.Name, e.ID, e.CurrentStock)
	writeUnits(a.out, p, q)
}

func writeEntries(w io.Writer, p models.Page[models.CatalogEntry], q models.ListQuery) {
	if p.Empty() {
		fmt.Fprintln(w, emptyMessage("No catalog entries", q))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTOCK\tDESCRIPTION")
	for _, e := range p.Items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", e.ID, e.Name, e.CurrentStock, e.Description)
	}
	tw.Flush()
	writeFooter(w, p.CurrentPage, p.LastPage, listing.Range(p))
}

func writeUnits(w io.Writer, p models.Page[models.StockUnit], q models.ListQuery) {
	if p.Empty() {
		fmt.Fprintln(w, emptyMessage("No stock units", q))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSERIAL\tSTATUS")
	for _, u := range p.Items {
		status := "available"
		if u.Sold {
			status = "sold"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.SerialNumber, status)
	}
	tw.Flush()
	writeFooter(w, p.CurrentPage, p.LastPage, listing.Range(p))
}

func emptyMessage(base string, q models.ListQuery) string {
	if q.SearchTerm != "" {
		return fmt.Sprintf("%s match %q", base, q.SearchTerm)
	}
	return base
}

// writeFooter prints the range line and, for more than one page, the pager
// with the current page in brackets.
func writeFooter(w io.Writer, current, last int, rng string) {
	if rng != "" {
		fmt.Fprintln(w, rng)
	}
	if last <= 1 {
		return
	}
	fmt.Fprintln(w, pagerLine(current, last))
}

func pagerLine(current, last int) string {
	var b strings.Builder
	b.WriteString("Pages:")
	for _, n := range listing.Window(current, last) {
		b.WriteByte(' ')
		switch n {
		case listing.Ellipsis:
			b.WriteString("...")
		case current:
			b.WriteString("[" + strconv.Itoa(n) + "]")
		default:
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

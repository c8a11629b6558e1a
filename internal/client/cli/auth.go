package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/stockkeeper/internal/client/session"
	"github.com/dmitrijs2005/stockkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotAuthenticated = errors.New("not authenticated")

// Register prompts for a name, email, password and its confirmation and
// creates an account. On success the new session is active immediately.
//
// Both password byte slices are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	st := a.session.Register(ctx, name, email, string(password), string(confirmation))
	return a.reportSession(ctx, st)
}

// Login prompts for credentials and authenticates. On success the catalog
// is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	st := a.session.Login(ctx, email, string(password))
	return a.reportSession(ctx, st)
}

func (a *App) reportSession(ctx context.Context, st session.State) error {
	switch {
	case st.Authenticated():
		a.printf("Signed in as %s <%s>\n", st.Identity.Name, st.Identity.Email)
		return a.Entries(ctx)
	case st.Status == session.StatusFailed:
		a.printf("[error] %s\n", st.Err)
		return errors.New(st.Err)
	case st.Pending():
		a.printf("Another sign-in is in progress\n")
		return nil
	default:
		return errNotAuthenticated
	}
}

// Logout ends the session and returns to the anonymous state. It always
// succeeds locally. Lists fetched for the old identity are dropped, so the
// next session starts on an unfiltered first page.
func (a *App) Logout(ctx context.Context) error {
	a.showCatalog()
	a.catalog.Reset()
	a.session.Logout(ctx)
	a.printf("Signed out\n")
	return nil
}

// WhoAmI prints the signed-in identity.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.State()
	if !st.Authenticated() {
		a.printf("Not signed in\n")
		return errNotAuthenticated
	}
	a.printf("%s <%s> (id %d)\n", st.Identity.Name, st.Identity.Email, st.Identity.ID)
	return nil
}

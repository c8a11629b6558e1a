// Package gate decides whether a screen may be shown for the current session.
package gate

import "github.com/dmitrijs2005/stockkeeper/internal/client/session"

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decision is the outcome for one screen. At most one of Allow, Loading and
// a non-empty RedirectTarget is set.
type Decision struct {
	Allow          bool
	Loading        bool
	RedirectTarget string
}

// Decide guards screens that need an authenticated session.
func Decide(st session.State) Decision {
	switch {
	case st.Pending():
		return Decision{Loading: true}
	case st.Authenticated():
		return Decision{Allow: true}
	default:
		return Decision{RedirectTarget: LoginPath}
	}
}

// DecideGuest guards the login and register screens, which make no sense
// once signed in.
func DecideGuest(st session.State) Decision {
	switch {
	case st.Pending():
		return Decision{Loading: true}
	case st.Authenticated():
		return Decision{RedirectTarget: DashboardPath}
	default:
		return Decision{Allow: true}
	}
}

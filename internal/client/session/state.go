package session

import "github.com/dmitrijs2005/stockkeeper/internal/client/models"

type Status int

const (
	StatusAnonymous Status = iota
	StatusPending
	StatusAuthenticated
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusPending:
		return "pending"
	case StatusAuthenticated:
		return "authenticated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Op names the operation a Pending session is waiting on.
type Op int

const (
	OpNone Op = iota
	OpLogin
	OpRegister
)

func (o Op) String() string {
	switch o {
	case OpLogin:
		return "login"
	case OpRegister:
		return "register"
	default:
		return "none"
	}
}

// State is a snapshot of the session. Identity and Token are set only when
// Status is StatusAuthenticated; Err only when it is StatusFailed.
type State struct {
	Status   Status
	Op       Op
	Identity *models.Identity
	Token    string
	Err      string
}

func (s State) Authenticated() bool { return s.Status == StatusAuthenticated }

func (s State) Pending() bool { return s.Status == StatusPending }

func (s State) clone() State {
	if s.Identity != nil {
		id := *s.Identity
		s.Identity = &id
	}
	return s
}

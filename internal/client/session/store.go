// Package session holds the process-wide authentication state machine:
//
//	Anonymous|Failed --login/register--> Pending(op) --ok--> Authenticated
//	                                               \--err--> Failed(message)
//	Authenticated --logout--> Anonymous
//
// The identity and bearer token are persisted in the local metadata store
// under separate keys. Only entering and leaving Authenticated touch storage.
// Operations never return errors; a failure is recorded as Failed(message).
package session

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/client/client"
	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/dmitrijs2005/stockkeeper/internal/client/validate"
	"github.com/dmitrijs2005/stockkeeper/internal/logging"
)

const persistFailedMessage = "Could not save the session, please try again"

// Store owns the session. It is safe for concurrent use.
type Store struct {
	auth   client.AuthClient
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time

	mu    sync.RWMutex
	state State
	// epoch is bumped by Logout so that a login finishing afterwards is dropped.
	epoch uint64
}

var _ client.TokenSource = (*Store)(nil)

type Option func(*Store)

// WithClock overrides the clock used to check persisted token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore builds the store and hydrates it from db. A persisted session
// that is incomplete, unparsable or expired is cleared and the store starts
// anonymous.
func NewStore(ctx context.Context, auth client.AuthClient, db *sql.DB, logger logging.Logger, opts ...Option) *Store {
	s := &Store{
		auth:   auth,
		db:     db,
		logger: logger.With("component", "session"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.hydrate(ctx)
	return s
}

// State returns a snapshot of the current session.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.state.Authenticated() {
		return ""
	}
	return s.state.Token
}

func (s *Store) Login(ctx context.Context, email, password string) State {
	return s.authenticate(ctx, OpLogin,
		func() error { return validate.Login(email, password) },
		func(ctx context.Context) (*models.AuthResult, error) {
			return s.auth.Login(ctx, models.Credentials{Email: email, Password: password})
		},
	)
}

func (s *Store) Register(ctx context.Context, name, email, password, confirmation string) State {
	return s.authenticate(ctx, OpRegister,
		func() error { return validate.Register(name, email, password, confirmation) },
		func(ctx context.Context) (*models.AuthResult, error) {
			return s.auth.Register(ctx, models.Registration{
				Name:                 name,
				Email:                email,
				Password:             password,
				PasswordConfirmation: confirmation,
			})
		},
	)
}

func (s *Store) authenticate(
	ctx context.Context,
	op Op,
	check func() error,
	call func(ctx context.Context) (*models.AuthResult, error),
) State {
	s.mu.Lock()
	switch s.state.Status {
	case StatusPending, StatusAuthenticated:
		st := s.state.clone()
		s.mu.Unlock()
		s.logger.Warn(ctx, "auth request ignored", "op", op.String(), "status", st.Status.String())
		return st
	}

	if err := check(); err != nil {
		s.state = failed(err)
		st := s.state.clone()
		s.mu.Unlock()
		return st
	}

	s.state = State{Status: StatusPending, Op: op}
	epoch := s.epoch
	s.mu.Unlock()

	res, err := call(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		s.logger.Info(ctx, "auth result dropped after logout", "op", op.String())
		return s.state.clone()
	}

	if err != nil {
		s.logger.Info(ctx, "auth failed", "op", op.String(), "error", err)
		s.state = failed(err)
		return s.state.clone()
	}

	if err := s.persist(ctx, &res.User, res.Token); err != nil {
		s.logger.Error(ctx, "failed to persist session", "error", err)
		s.state = State{Status: StatusFailed, Err: persistFailedMessage}
		return s.state.clone()
	}

	user := res.User
	s.state = State{Status: StatusAuthenticated, Identity: &user, Token: res.Token}
	s.logger.Info(ctx, "authenticated", "op", op.String(), "user_id", user.ID)
	return s.state.clone()
}

// Logout resets to Anonymous. Persisted credentials are cleared only when
// leaving Authenticated or Pending; an Anonymous or Failed session leaves
// storage alone. A storage error is logged; the transition still completes.
func (s *Store) Logout(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if s.state.Authenticated() || s.state.Pending() {
		if err := s.clear(ctx); err != nil {
			s.logger.Error(ctx, "failed to clear persisted session", "error", err)
		}
	}
	s.state = State{}
	return s.state
}

func failed(err error) State {
	return State{Status: StatusFailed, Err: client.UserMessage(err)}
}

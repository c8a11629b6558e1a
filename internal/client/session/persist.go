package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/client/models"
	"github.com/dmitrijs2005/stockkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errIncompleteSession = errors.New("incomplete session")
	errTokenExpired      = errors.New("token expired")
)

func (s *Store) hydrate(ctx context.Context) State {
	repo := metadata.NewSQLiteRepository(s.db)

	rawUser, err := repo.Get(ctx, common.SessionUserKey)
	if err != nil {
		s.discard(ctx, err)
		return State{}
	}
	rawToken, err := repo.Get(ctx, common.SessionTokenKey)
	if err != nil {
		s.discard(ctx, err)
		return State{}
	}

	if rawUser == nil && rawToken == nil {
		return State{}
	}

	identity, token, err := decodeSession(rawUser, rawToken, s.now())
	if err != nil {
		s.discard(ctx, err)
		return State{}
	}

	s.logger.Info(ctx, "session restored", "user_id", identity.ID)
	return State{Status: StatusAuthenticated, Identity: identity, Token: token}
}

func (s *Store) discard(ctx context.Context, reason error) {
	s.logger.Warn(ctx, "discarding persisted session", "reason", reason)
	if err := s.clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear persisted session", "error", err)
	}
}

func decodeSession(rawUser, rawToken []byte, now time.Time) (*models.Identity, string, error) {
	if len(rawUser) == 0 || len(rawToken) == 0 {
		return nil, "", errIncompleteSession
	}

	var identity *models.Identity
	if err := json.Unmarshal(rawUser, &identity); err != nil {
		return nil, "", fmt.Errorf("decode identity: %w", err)
	}
	if identity == nil {
		return nil, "", errIncompleteSession
	}

	token := strings.TrimSpace(string(rawToken))
	if token == "" {
		return nil, "", errIncompleteSession
	}
	if tokenExpired(token, now) {
		return nil, "", errTokenExpired
	}
	return identity, token, nil
}

// tokenExpired reports whether token is a JWT whose exp is not after now.
// The signature is not checked: the server stays the authority, this only
// avoids restoring a session that is certain to be rejected. Opaque tokens
// are never considered expired.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}

// persist writes identity and token together.
func (s *Store) persist(ctx context.Context, identity *models.Identity, token string) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionUserKey, raw); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionTokenKey, []byte(token))
	})
}

func (s *Store) clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, common.SessionUserKey, common.SessionTokenKey)
}

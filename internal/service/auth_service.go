package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type sessionRepository interface {
	Insert(ctx context.Context, session *models.AdminSession) error
	Find(ctx context.Context, token string) (*models.AdminSession, error)
	Delete(ctx context.Context, token string) error
}

// AuthService implements the single shared-password admin gate. There is no
// per-user identity: anyone holding the configured password gets a time-boxed
// opaque session token.
type AuthService struct {
	repo       sessionRepository
	password   string
	sessionTTL time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewAuthService constructs the service.
func NewAuthService(repo sessionRepository, password string, sessionTTL time.Duration, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sessionTTL <= 0 {
		sessionTTL = 8 * time.Hour
	}
	return &AuthService{repo: repo, password: password, sessionTTL: sessionTTL, logger: logger, now: time.Now}
}

// Login compares the submitted password against the configured shared secret
// and issues a session on match.
func (s *AuthService) Login(ctx context.Context, password string) (*models.AdminSession, error) {
	if s.password == "" {
		return nil, appErrors.Clone(appErrors.ErrConfiguration, "admin password is not configured")
	}
	if password != s.password {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid admin password")
	}

	now := s.now().UTC()
	session := &models.AdminSession{
		Token:     newSessionToken(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.repo.Insert(ctx, session); err != nil {
		return nil, storageError(err, "failed to issue admin session")
	}
	s.logger.Info("admin session issued", zap.Time("expires_at", session.ExpiresAt))
	return session, nil
}

// Validate reports whether the token names a live session. Missing, expired
// and empty tokens are all false, never an error; storage faults are the only
// error path.
func (s *AuthService) Validate(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	session, err := s.repo.Find(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, storageError(err, "failed to look up admin session")
	}
	return !session.Expired(s.now().UTC()), nil
}

// Logout revokes the token. Revoking an unknown token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, token); err != nil {
		return storageError(err, "failed to revoke admin session")
	}
	return nil
}

// newSessionToken concatenates two independent random sources. Both draw from
// crypto-grade randomness; the two-part shape matches what the front-end has
// always stored.
func newSessionToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// uuid alone still identifies the session uniquely
		return uuid.NewString()
	}
	return uuid.NewString() + "." + hex.EncodeToString(buf)
}

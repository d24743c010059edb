package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type sessionRepoStub struct {
	sessions map[string]models.AdminSession
	inserted *models.AdminSession
}

func newSessionRepoStub() *sessionRepoStub {
	return &sessionRepoStub{sessions: map[string]models.AdminSession{}}
}

func (s *sessionRepoStub) Insert(ctx context.Context, session *models.AdminSession) error {
	s.inserted = session
	s.sessions[session.Token] = *session
	return nil
}

func (s *sessionRepoStub) Find(ctx context.Context, token string) (*models.AdminSession, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &session, nil
}

func (s *sessionRepoStub) Delete(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newSessionRepoStub(), "Lions", 8*time.Hour, nil)

	_, err := svc.Login(context.Background(), "Tigers")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnconfigured(t *testing.T) {
	svc := NewAuthService(newSessionRepoStub(), "", 8*time.Hour, nil)

	_, err := svc.Login(context.Background(), "anything")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConfiguration.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginIssuesEightHourSession(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewAuthService(repo, "Lions", 8*time.Hour, nil)

	session, err := svc.Login(context.Background(), "Lions")
	require.NoError(t, err)
	require.NotNil(t, repo.inserted)
	assert.NotEmpty(t, session.Token)
	assert.Len(t, strings.Split(session.Token, "."), 2)
	assert.Equal(t, 8*time.Hour, session.ExpiresAt.Sub(session.CreatedAt))
}

func TestAuthServiceValidate(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewAuthService(repo, "Lions", 8*time.Hour, nil)

	session, err := svc.Login(context.Background(), "Lions")
	require.NoError(t, err)

	ok, err := svc.Validate(context.Background(), session.Token)
	require.NoError(t, err)
	assert.True(t, ok)

	// empty and unknown tokens are false, not errors
	ok, err = svc.Validate(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = svc.Validate(context.Background(), "unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthServiceValidateFalseAfterLogout(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewAuthService(repo, "Lions", 8*time.Hour, nil)

	session, err := svc.Login(context.Background(), "Lions")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), session.Token))

	ok, err := svc.Validate(context.Background(), session.Token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthServiceValidateFalseAfterExpiry(t *testing.T) {
	repo := newSessionRepoStub()
	svc := NewAuthService(repo, "Lions", 8*time.Hour, nil)

	session, err := svc.Login(context.Background(), "Lions")
	require.NoError(t, err)

	// move the clock past the expiry without revoking
	svc.now = func() time.Time { return time.Now().Add(9 * time.Hour) }
	ok, err := svc.Validate(context.Background(), session.Token)
	require.NoError(t, err)
	assert.False(t, ok)
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/pkg/config"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

func TestGuardAcquireWithoutDSN(t *testing.T) {
	guard := NewGuard(config.DatabaseConfig{}, nil)

	db, err := guard.Acquire()
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Equal(t, appErrors.ErrConfiguration.Code, appErrors.FromError(err).Code)
}

func TestGuardShutdownIdempotent(t *testing.T) {
	guard := NewGuard(config.DatabaseConfig{}, nil)

	require.NoError(t, guard.Shutdown())
	require.NoError(t, guard.Shutdown())
}

func TestHumanizeConnectionRefused(t *testing.T) {
	msg := humanize(assert.AnError)
	assert.Equal(t, "database is unreachable", msg)
}

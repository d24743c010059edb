package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type bannerRepoStub struct {
	stored   *models.Banner
	upserted *models.Banner
}

func (s *bannerRepoStub) Get(ctx context.Context, school models.School) (*models.Banner, error) {
	if s.stored == nil {
		return nil, sql.ErrNoRows
	}
	return s.stored, nil
}

func (s *bannerRepoStub) Upsert(ctx context.Context, banner *models.Banner) error {
	s.upserted = banner
	return nil
}

func TestBannerServiceGetDefaultsWhenAbsent(t *testing.T) {
	svc := NewBannerService(&bannerRepoStub{}, nil, nil, nil)

	banner, err := svc.Get(context.Background(), "wlhs")
	require.NoError(t, err)
	assert.False(t, banner.Active)
	assert.Equal(t, "medium", banner.TextSize)
	assert.Equal(t, "#00471b", banner.BackgroundColor)
}

func TestBannerServicePutActiveRequiresMessage(t *testing.T) {
	repo := &bannerRepoStub{}
	svc := NewBannerService(repo, nil, nil, nil)

	_, err := svc.Put(context.Background(), "wlhs", BannerRequest{Active: true})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.upserted)
}

func TestBannerServicePutFillsStyleDefaults(t *testing.T) {
	repo := &bannerRepoStub{}
	svc := NewBannerService(repo, nil, nil, nil)

	banner, err := svc.Put(context.Background(), "wvhs", BannerRequest{
		Message: "Late start Wednesday",
		Active:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, "medium", banner.TextSize)
	assert.Equal(t, "#ffffff", banner.TextColor)
	assert.Equal(t, "#00471b", banner.BackgroundColor)
}

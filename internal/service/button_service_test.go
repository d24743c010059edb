package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlsd/calendar-api/internal/models"
	appErrors "github.com/wlsd/calendar-api/pkg/errors"
)

type buttonRepoStub struct {
	upserted *models.HomeButton
}

func (s *buttonRepoStub) List(ctx context.Context) ([]models.HomeButton, error) {
	return []models.HomeButton{}, nil
}

func (s *buttonRepoStub) Get(ctx context.Context, school models.School) (*models.HomeButton, error) {
	return nil, sql.ErrNoRows
}

func (s *buttonRepoStub) Upsert(ctx context.Context, button *models.HomeButton) error {
	s.upserted = button
	return nil
}

func strPtr(s string) *string { return &s }

func TestButtonServicePutWithImage(t *testing.T) {
	repo := &buttonRepoStub{}
	svc := NewButtonService(repo, 64, nil)

	encoded := base64.StdEncoding.EncodeToString([]byte("png bytes"))
	button, err := svc.Put(context.Background(), "wlhs", ButtonRequest{
		Title:     "Athletics",
		ImageData: strPtr(encoded),
		ImageMime: strPtr("image/png"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, "Athletics", button.Title)
}

func TestButtonServicePutTextOnly(t *testing.T) {
	repo := &buttonRepoStub{}
	svc := NewButtonService(repo, 64, nil)

	_, err := svc.Put(context.Background(), "wvhs", ButtonRequest{Title: "Counseling"})
	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Nil(t, repo.upserted.ImageData)
}

func TestButtonServicePutImageValidation(t *testing.T) {
	svc := NewButtonService(&buttonRepoStub{}, 8, nil)

	cases := map[string]ButtonRequest{
		"mime without data": {Title: "x", ImageMime: strPtr("image/png")},
		"non-image mime": {
			Title:     "x",
			ImageData: strPtr(base64.StdEncoding.EncodeToString([]byte("a"))),
			ImageMime: strPtr("application/pdf"),
		},
		"invalid base64": {Title: "x", ImageData: strPtr("%%%"), ImageMime: strPtr("image/png")},
		"oversized image": {
			Title:     "x",
			ImageData: strPtr(base64.StdEncoding.EncodeToString(make([]byte, 9))),
			ImageMime: strPtr("image/png"),
		},
	}
	for name, req := range cases {
		_, err := svc.Put(context.Background(), "wlhs", req)
		require.Error(t, err, name)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code, name)
	}
}

func TestButtonServiceGetMissing(t *testing.T) {
	svc := NewButtonService(&buttonRepoStub{}, 64, nil)

	_, err := svc.Get(context.Background(), "wlhs")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

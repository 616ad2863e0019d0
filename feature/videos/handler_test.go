package videos_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"asset-sync/core/mapping"
	"asset-sync/feature/videos"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) Load(context.Context) (mapping.Mapping, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Save(context.Context, mapping.Mapping) error {
	return nil
}

func setupApp(t *testing.T, store mapping.Store) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := videos.NewFeature(store, func(ref string) string {
		return "https://cdn.example.com/" + ref
	}, zap.NewNop())
	require.Equal(t, "videos", feature.Name())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func seededStore(t *testing.T) mapping.Store {
	t.Helper()
	store := mapping.NewFileStore(filepath.Join(t.TempDir(), "assets_mapping.json"))
	require.NoError(t, store.Save(context.Background(), mapping.Mapping{
		"b": {},
		"a": {mapping.KindInfographic: "assets/a_infographic.png"},
	}))
	return store
}

func TestHandleListVideos(t *testing.T) {
	app := setupApp(t, seededStore(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/videos", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var view videos.ListView
	require.NoError(t, json.Unmarshal(body, &view))

	assert.Equal(t, 2, view.Videos)
	assert.Equal(t, 1, view.WithAssets)
	assert.Equal(t, 1, view.References)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "a", view.Items[0].VideoID)
	assert.Equal(t, "b", view.Items[1].VideoID)
	assert.Empty(t, view.Items[1].Assets)
}

func TestHandleGetVideo(t *testing.T) {
	app := setupApp(t, seededStore(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/videos/a", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var view videos.VideoView
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, videos.AssetView{
		Reference: "assets/a_infographic.png",
		URL:       "https://cdn.example.com/assets/a_infographic.png",
	}, view.Assets[mapping.KindInfographic])
}

func TestHandleGetVideo_NotFound(t *testing.T) {
	app := setupApp(t, seededStore(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/videos/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandlers_StoreFailure(t *testing.T) {
	app := setupApp(t, failingStore{})

	for _, path := range []string{"/videos", "/videos/a"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, path)
	}
}

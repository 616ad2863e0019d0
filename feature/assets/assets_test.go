package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"asset-sync/core/mapping"
	"asset-sync/feature/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	infographics := filepath.Join(root, "infographics")
	mindmaps := filepath.Join(root, "mindmaps")

	touch(t, filepath.Join(infographics, "b title.png"))
	touch(t, filepath.Join(infographics, "A Title.JPG"))
	touch(t, filepath.Join(infographics, "notes.txt"))
	touch(t, filepath.Join(infographics, "nested", "ignored.png"))
	touch(t, filepath.Join(mindmaps, "The Five Pillars of Stoicism.jpeg"))

	scanner := assets.NewScanner([]assets.Folder{
		{Kind: mapping.KindInfographic, Dir: infographics},
		{Kind: mapping.KindMindmap, Dir: mindmaps},
	}, []string{".png", "jpg", " .JPEG "})

	found, skipped, err := scanner.Scan()
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, []assets.Asset{
		{Kind: mapping.KindInfographic, Title: "A Title", Path: filepath.Join(infographics, "A Title.JPG")},
		{Kind: mapping.KindInfographic, Title: "b title", Path: filepath.Join(infographics, "b title.png")},
		{Kind: mapping.KindMindmap, Title: "The Five Pillars of Stoicism", Path: filepath.Join(mindmaps, "The Five Pillars of Stoicism.jpeg")},
	}, found)
}

func TestScanner_MissingFolderSkipped(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "mindmaps", "x.png"))

	scanner := assets.NewScanner([]assets.Folder{
		{Kind: mapping.KindInfographic, Dir: filepath.Join(root, "infographics")},
		{Kind: mapping.KindMindmap, Dir: filepath.Join(root, "mindmaps")},
	}, []string{".png"})

	found, skipped, err := scanner.Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "infographics")}, skipped)
	require.Len(t, found, 1)
	assert.Equal(t, "x", found[0].Title)
}

func TestConsume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	touch(t, path)

	require.NoError(t, assets.Consume(assets.Asset{Path: path}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, assets.Consume(assets.Asset{Path: path}))
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestSaveScreenshot(t *testing.T) {
	dir := t.TempDir()
	store, err := NewArtifactStore(dir, newTestLogger())
	require.NoError(t, err)

	record, err := store.SaveScreenshot("login-failed", "Rejecting invalid credentials", []byte("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "login-failed", record.Name)
	assert.Equal(t, filepath.Join(dir, "login-failed.png"), record.Path)
	assert.False(t, record.TakenAt.IsZero())

	data, err := os.ReadFile(record.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveScreenshotRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	store, err := NewArtifactStore(dir, newTestLogger())
	require.NoError(t, err)

	for _, name := range []string{"../outside", "a/b", "..", ".", ""} {
		_, err := store.SaveScreenshot(name, "", []byte{1})
		assert.Error(t, err, "name %q must be rejected", name)
	}

	// Nothing escaped the artifact directory or landed beside it.
	outside, err := os.ReadDir(filepath.Dir(dir))
	require.NoError(t, err)
	require.Len(t, outside, 1)
	assert.Equal(t, filepath.Base(dir), outside[0].Name())
}

func TestManifestSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store, err := NewArtifactStore(dir, newTestLogger())
	require.NoError(t, err)
	_, err = store.SaveScreenshot("first", "", []byte{1})
	require.NoError(t, err)

	reopened, err := NewArtifactStore(dir, newTestLogger())
	require.NoError(t, err)
	_, err = reopened.SaveScreenshot("second", "", []byte{2})
	require.NoError(t, err)

	manifest, err := reopened.Manifest()
	require.NoError(t, err)
	require.Len(t, manifest, 2)
	assert.Equal(t, "first", manifest[0].Name)
	assert.Equal(t, "second", manifest[1].Name)
}

func TestCorruptManifestIsLoggedAndIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFile), []byte("{not json"), 0644))

	logger, hook := test.NewNullLogger()
	store, err := NewArtifactStore(dir, logger)
	require.NoError(t, err)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "manifest")

	// The store starts clean and keeps working.
	manifest, err := store.Manifest()
	require.NoError(t, err)
	assert.Empty(t, manifest)

	_, err = store.SaveScreenshot("after-corruption", "", []byte{1})
	require.NoError(t, err)
}

func TestManifestReturnsCopy(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir(), newTestLogger())
	require.NoError(t, err)

	_, err = store.SaveScreenshot("only", "", []byte{1})
	require.NoError(t, err)

	manifest, err := store.Manifest()
	require.NoError(t, err)
	manifest[0].Name = "mutated"

	again, err := store.Manifest()
	require.NoError(t, err)
	assert.Equal(t, "only", again[0].Name)
}

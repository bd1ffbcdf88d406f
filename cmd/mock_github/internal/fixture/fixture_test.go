package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	fix := Default()

	require.NotEmpty(t, fix.Repos, "built-in fixture should carry repositories")
	for _, repo := range fix.Repos {
		assert.NotEmpty(t, repo.DefaultBranch, "every repo should have a branch")
		assert.NotZero(t, repo.ID, "every repo should have an id")
	}
}

func TestLoad(t *testing.T) {
	t.Run("FromFile", func(t *testing.T) {
		content := `token: sekrit
rate_limit: 3
repos:
  - full_name: acme/widgets
    description: Widget factory
  - full_name: acme/legacy
    default_branch: master
    id: 42
    private: true
`
		path := filepath.Join(t.TempDir(), "fixture.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		fix, err := Load(t.Context(), path)
		require.NoError(t, err, "fixture should parse")

		assert.Equal(t, "sekrit", fix.Token)
		assert.Equal(t, 3, fix.RateLimit)
		require.Len(t, fix.Repos, 2)

		assert.Equal(t, "main", fix.Repos[0].DefaultBranch, "missing branch should default to main")
		assert.NotZero(t, fix.Repos[0].ID, "missing id should be assigned")

		assert.Equal(t, "master", fix.Repos[1].DefaultBranch, "explicit branch should be kept")
		assert.EqualValues(t, 42, fix.Repos[1].ID, "explicit id should be kept")
		assert.True(t, fix.Repos[1].Private)
	})

	t.Run("EmptyPathUsesDefault", func(t *testing.T) {
		fix, err := Load(t.Context(), "")
		require.NoError(t, err)
		assert.NotEmpty(t, fix.Repos)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(t.Context(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err, "missing file should surface an error")
	})

	t.Run("MissingFullName", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixture.yaml")
		require.NoError(t, os.WriteFile(path, []byte("repos:\n  - description: nameless\n"), 0o600))

		_, err := Load(t.Context(), path)
		require.Error(t, err, "entries without full_name should be rejected")
	})
}

func TestLookup(t *testing.T) {
	fix := Default()

	repo, ok := fix.Lookup("OctoCat/Hello-World")
	require.True(t, ok, "lookup should ignore case")
	assert.Equal(t, "octocat/hello-world", repo.FullName)

	_, ok = fix.Lookup("octocat/absent")
	assert.False(t, ok, "unknown repos should not resolve")
}

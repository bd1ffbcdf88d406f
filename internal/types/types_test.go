package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoworks/process-repo-action/internal/types"
)

func TestParseRepoRef(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		ref, err := types.ParseRepoRef("octocat/hello-world")
		require.NoError(t, err, "failed to parse owner/repo pair")

		assert.Equal(t, "octocat", ref.Owner, "wrong owner")
		assert.Equal(t, "hello-world", ref.Name, "wrong name")
		assert.Equal(t, "octocat/hello-world", ref.FullName(), "wrong full name")
	})

	t.Run("NestedSlash", func(t *testing.T) {
		// Everything after the first separator belongs to the name.
		ref, err := types.ParseRepoRef("org/group/repo")
		require.NoError(t, err, "failed to parse")

		assert.Equal(t, "org", ref.Owner, "wrong owner")
		assert.Equal(t, "group/repo", ref.Name, "wrong name")
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, raw := range []string{"", "norepo", "/repo", "owner/"} {
			_, err := types.ParseRepoRef(raw)
			assert.Error(t, err, "expected %q to be rejected", raw)
		}
	})
}

package inputs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/repoworks/process-repo-action/cmd/action/internal/inputs"
	"github.com/repoworks/process-repo-action/cmd/action/internal/inputs/mock"
)

func sourceFor(ctrl *gomock.Controller, values map[string]string) *mock.MockSource {
	src := mock.NewMockSource(ctrl)
	src.EXPECT().
		GetInput(gomock.Any()).
		DoAndReturn(func(name string) string { return values[name] }).
		AnyTimes()

	return src
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("AllSet", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		got, err := inputs.Resolve(t.Context(), sourceFor(ctrl, map[string]string{
			"token":         "secret-token",
			"milliseconds":  "250",
			"example-input": "octocat",
		}))
		require.NoError(t, err, "all inputs are valid")

		assert.Equal(t, "secret-token", got.Token)
		assert.Equal(t, "octocat", got.ExampleInput)
		assert.Equal(t, 250, got.Milliseconds)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		got, err := inputs.Resolve(t.Context(), sourceFor(ctrl, map[string]string{
			"token": "secret-token",
		}))
		require.NoError(t, err, "token alone is enough")

		assert.Equal(t, "default", got.ExampleInput, "example-input should default")
		assert.Equal(t, 1000, got.Milliseconds, "milliseconds should default")
	})

	t.Run("LeadingSign", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		got, err := inputs.Resolve(t.Context(), sourceFor(ctrl, map[string]string{
			"token":        "secret-token",
			"milliseconds": "+250",
		}))
		require.NoError(t, err, "an explicit positive sign parses")

		assert.Equal(t, 250, got.Milliseconds)
	})

	t.Run("MissingToken", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		_, err := inputs.Resolve(t.Context(), sourceFor(ctrl, map[string]string{
			"milliseconds": "250",
		}))
		require.Error(t, err)

		var inErr *inputs.InputError
		require.ErrorAs(t, err, &inErr, "missing token is an input error")
		assert.Equal(t, "Input required and not supplied: token", inErr.Message)
	})

	t.Run("InvalidMilliseconds", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"not-a-number", "-500", "1.5", "1e3", "0x10"} {
			t.Run(raw, func(t *testing.T) {
				t.Parallel()
				ctrl := gomock.NewController(t)

				_, err := inputs.Resolve(t.Context(), sourceFor(ctrl, map[string]string{
					"token":        "secret-token",
					"milliseconds": raw,
				}))
				require.Error(t, err)

				var inErr *inputs.InputError
				require.ErrorAs(t, err, &inErr, "malformed milliseconds is an input error")
				assert.Equal(
					t,
					fmt.Sprintf("Invalid milliseconds value: %s. Must be a non-negative number.", raw),
					inErr.Message,
					"message should echo the raw value",
				)
			})
		}
	})
}

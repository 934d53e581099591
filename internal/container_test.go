//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/hubsync/internal"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	// given
	container := dig.New()

	// when
	err := internal.RegisterProviders(container)

	// then
	require.NoError(t, err)
	require.NoError(t, container.Invoke(func(app *internal.AppInternal) {
		uses := make([]string, 0)
		for _, ctrl := range app.GetControllers() {
			uses = append(uses, ctrl.GetBind().Use)
		}
		assert.Len(t, uses, 3)
		assert.Equal(t, "token", uses[0])
	}))
}

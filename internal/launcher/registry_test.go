package launcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExactAndAliases(t *testing.T) {
	r := DefaultRegistry()
	cases := map[string]AppID{
		"runner":      AppRunner,
		"Lane-Runner": AppRunner,
		" GAME ":      AppRunner,
		"cube":        AppCube,
		"3d":          AppCube,
		"calculator":  AppCalc,
	}
	for in, want := range cases {
		app, err := r.Resolve(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, app.ID, in)
	}
}

func TestResolveUniquePrefix(t *testing.T) {
	r := DefaultRegistry()

	app, err := r.Resolve("cu")
	require.NoError(t, err)
	assert.Equal(t, AppCube, app.ID)

	_, err = r.Resolve("ca")
	require.NoError(t, err, "both calc aliases point at the same app")
}

func TestResolveTypoSuggests(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Resolve("runer")
	var unknown *UnknownAppError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, AppRunner, unknown.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "runner"`)

	_, err = r.Resolve("cubr")
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, AppCube, unknown.Suggestion)
}

func TestResolveNoSuggestionForNonsense(t *testing.T) {
	r := DefaultRegistry()
	_, err := r.Resolve("spreadsheet")
	var unknown *UnknownAppError
	require.True(t, errors.As(err, &unknown))
	assert.Empty(t, unknown.Suggestion)

	_, err = r.Resolve("   ")
	assert.Error(t, err)
}

func TestAppsKeepRegistrationOrder(t *testing.T) {
	apps := DefaultRegistry().Apps()
	require.Len(t, apps, 3)
	assert.Equal(t, []AppID{AppRunner, AppCube, AppCalc}, []AppID{apps[0].ID, apps[1].ID, apps[2].ID})
	assert.True(t, apps[0].Graphical)
	assert.False(t, apps[2].Graphical)
}

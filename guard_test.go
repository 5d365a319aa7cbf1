package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	guard "github.com/guardhouse/guard"
)

func TestNotNil(t *testing.T) {
	var p *int
	require.Error(t, guard.NotNil(p, "p"))
	require.Error(t, guard.NotNil[any](nil, "v"))

	x := 1
	require.NoError(t, guard.NotNil(&x, "p"))
	// values of types that cannot hold nil always pass
	require.NoError(t, guard.NotNil(0, "n"))
	require.NoError(t, guard.NotNil("", "s"))
}

func TestNotZero(t *testing.T) {
	require.Error(t, guard.NotZero(0, "n"))
	require.Error(t, guard.NotZero("", "s"))
	require.NoError(t, guard.NotZero(1, "n"))

	type pair struct{ A, B int }
	require.Error(t, guard.NotZero(pair{}, "p"))
	require.NoError(t, guard.NotZero(pair{A: 1}, "p"))
}

func TestOneOf(t *testing.T) {
	require.NoError(t, guard.OneOf("eu", "region", "us", "eu", "ap"))

	err := guard.OneOf("mars", "region", "us", "eu", "ap")
	require.Error(t, err)
	iss, ok := guard.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, guard.CodeInvalidEnum, iss[0].Code)
	require.Equal(t, "/region", iss[0].Path)
}

func TestOrderedBounds(t *testing.T) {
	require.NoError(t, guard.InRange(5, "n", 1, 10))
	require.Error(t, guard.InRange(0, "n", 1, 10))
	require.Error(t, guard.InRange(11, "n", 1, 10))
	require.NoError(t, guard.InRange("m", "s", "a", "z"))

	require.NoError(t, guard.Min(3, "n", 3))
	require.Error(t, guard.Min(2, "n", 3))
	require.NoError(t, guard.Max(3, "n", 3))
	require.Error(t, guard.Max(4, "n", 3))
}

func TestFluentGuard(t *testing.T) {
	err := guard.For("", "tier").
		NotZero().
		OneOf("basic", "pro").
		Err()
	require.Error(t, err)

	iss, ok := guard.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	require.Equal(t, guard.CodeZeroValue, iss[0].Code)
	require.Equal(t, guard.CodeInvalidEnum, iss[1].Code)

	g := guard.For("pro", "tier").NotZero().OneOf("basic", "pro")
	require.NoError(t, g.Err())
	require.Equal(t, "pro", g.Value())
}

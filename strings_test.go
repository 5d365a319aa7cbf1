package guard_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	guard "github.com/guardhouse/guard"
)

func TestNotBlank(t *testing.T) {
	require.Error(t, guard.NotBlank("", "name"))
	require.Error(t, guard.NotBlank("   \t", "name"))
	require.NoError(t, guard.NotBlank("ada", "name"))
}

func TestLenInRange(t *testing.T) {
	require.NoError(t, guard.LenInRange("ada", "name", 1, 10))
	require.Error(t, guard.LenInRange("", "name", 1, 10))
	require.Error(t, guard.LenInRange("0123456789x", "name", 1, 10))

	// rune length, not byte length
	require.NoError(t, guard.LenInRange("日本語", "name", 1, 3))
}

func TestMatch(t *testing.T) {
	slug := regexp.MustCompile(`^[a-z0-9-]+$`)
	require.NoError(t, guard.Match("my-slug-1", "slug", slug))

	err := guard.Match("Not A Slug", "slug", slug)
	require.Error(t, err)
	iss, _ := guard.AsIssues(err)
	require.Equal(t, guard.CodePattern, iss[0].Code)
}

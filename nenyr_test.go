package nenyr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmptyCentral(t *testing.T) {
	ctx, diags := Parse(`Construct Central { }`)
	require.Empty(t, diags)
	require.NotNil(t, ctx)
	require.False(t, HasErrors(diags))
}

func TestParseMissingConstructHasErrors(t *testing.T) {
	ctx, diags := Parse(`Central { }`)
	require.Nil(t, ctx)
	require.True(t, HasErrors(diags))
}

func TestParseWithExplicitConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 4
	ctx, diags := Parse(`Construct Central { }`, cfg)
	require.Empty(t, diags)
	require.NotNil(t, ctx)
}

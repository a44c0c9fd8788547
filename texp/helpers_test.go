package texp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, ctx *TypeCtx, text string) TExp {
	t.Helper()
	te, err := ctx.ParseTE(text)
	require.NoError(t, err, "parsing %s", text)
	return te
}

func mustUnparse(t *testing.T, ctx *TypeCtx, te TExp) string {
	t.Helper()
	s, err := ctx.UnparseTExp(te)
	require.NoError(t, err, "unparsing %v", te)
	return s
}

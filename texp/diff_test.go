package texp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeDiffTExp(t *testing.T) {
	testCases := []struct {
		t1, t2   string
		expected string
	}{
		{"number", "number", "never"},
		{"any", "any", "never"},
		{"any", "number", "any"},
		{"number", "never", "number"},
		{"number", "any", "never"},
		{"number", "string", "number"},
		{"(union number string)", "number", "string"},
		{"(union number string boolean)", "(union number string)", "boolean"},
		{"(union number string)", "(union number string)", "never"},
		{"(union (number -> number) string)", "(number -> any)", "string"},
		{"(inter number string)", "string", "number"},
		// the components of (inter number string) do not relate, so nothing is subtracted
		{"number", "(inter number string)", "number"},
		{"number", "(union number string)", "(inter number string)"},
	}

	for _, testCase := range testCases {
		t.Run(fmt.Sprintf("%s - %s", testCase.t1, testCase.t2), func(t *testing.T) {
			ctx := NewTypeCtx()
			diff := ctx.MakeDiffTExp(mustParse(t, ctx, testCase.t1), mustParse(t, ctx, testCase.t2))
			assert.Equal(t, testCase.expected, mustUnparse(t, ctx, diff))
		})
	}
}

func TestDiffByComparableIntersection(t *testing.T) {
	ctx := NewTypeCtx()
	// not canonical, any is kept so that the components relate
	inter := Inter{Components: []TExp{NumTExp, AnyTExp}}
	assert.Equal(t, StrTExp, ctx.MakeDiffTExp(StrTExp, inter))
}

func TestDiffFollowsBindings(t *testing.T) {
	ctx := NewTypeCtx()
	v := ctx.NewTVar("T")
	ctx.TVarSetContents(v, mustParse(t, ctx, "(union number string)"))

	assert.Equal(t, StrTExp, ctx.MakeDiffTExp(v, NumTExp))

	w := ctx.NewTVar("S")
	ctx.TVarSetContents(w, v)
	assert.Equal(t, NeverTExp, ctx.MakeDiffTExp(w, v))
}

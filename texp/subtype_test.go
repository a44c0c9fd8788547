package texp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSubType(t *testing.T) {
	testCases := []struct {
		sub, super string
		expected   bool
	}{
		{"[number -> number]", "[number -> any]", true},
		{"[any -> number]", "[number -> number]", true},
		{"[number -> number]", "[any -> number]", false},
		{"(number -> never)", "(number -> number)", true},
		{"(number * number -> number)", "(number -> number)", false},
		{"(number * string -> void)", "(number -> void)", false},
		{"(Empty -> number)", "(Empty -> any)", true},
		{"(Empty -> number)", "(number -> number)", false},
		{"Empty", "Empty", true},
		{"number", "string", false},
		{"number", "(number -> number)", false},

		{"number", "(union number string)", true},
		{"boolean", "(union number string)", false},
		{"(union number string)", "(union number string boolean)", true},
		{"(union number string)", "number", false},
		{"(union number never)", "number", true},
		{"(number -> number)", "(union string (any -> number))", false},
		{"(number -> number)", "(union string (number -> any))", true},

		// both intersection rules require every component
		{"(inter number string)", "number", false},
		{"number", "(inter number string)", true},
		{"(inter number string)", "(inter number string)", true},
		{"(inter number string)", "any", true},

		{"T", "T", true},
		{"T", "S", false},
		{"T", "number", false},
		{"T", "(union T number)", true},
		{"(T -> number)", "(T -> any)", true},

		{"(is? number)", "(is? number)", true},
		{"(is? number)", "(is? string)", false},
	}

	for _, testCase := range testCases {
		t.Run(fmt.Sprintf("%s <: %s", testCase.sub, testCase.super), func(t *testing.T) {
			ctx := NewTypeCtx()
			sub, super := mustParse(t, ctx, testCase.sub), mustParse(t, ctx, testCase.super)
			assert.Equal(t, testCase.expected, ctx.IsSubType(sub, super))
		})
	}
}

func TestSubTypeBounds(t *testing.T) {
	texts := []string{
		"number", "never", "any", "T", "Empty",
		"(number -> string)", "(union number boolean)", "(inter boolean S)", "(is? void)",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			ctx := NewTypeCtx()
			te := mustParse(t, ctx, text)
			assert.True(t, ctx.IsSubType(te, te), "reflexive")
			assert.True(t, ctx.IsSubType(NeverTExp, te), "never is a bottom")
			assert.True(t, ctx.IsSubType(te, AnyTExp), "any is a top")
		})
	}
}

func TestUnionOnTheLeftNeedsEveryComponent(t *testing.T) {
	ctx := NewTypeCtx()
	texts := []string{"number", "string", "boolean", "any", "never", "(number -> number)", "(any -> number)"}
	tes := make([]TExp, 0, len(texts))
	for _, text := range texts {
		tes = append(tes, mustParse(t, ctx, text))
	}

	for _, a := range tes {
		for _, b := range tes {
			union := ctx.MakeUnionTExp([]TExp{a, b})
			for _, c := range tes {
				expected := ctx.IsSubType(a, c) && ctx.IsSubType(b, c)
				assert.Equal(t, expected, ctx.IsSubType(union, c), "(union %s %s) <: %s", a, b, c)
			}
		}
	}
}

func TestTupleSubType(t *testing.T) {
	ctx := NewTypeCtx()
	numStr := NonEmptyTuple{Elems: []TExp{NumTExp, StrTExp}}

	assert.True(t, ctx.IsSubType(EmptyTuple{}, EmptyTuple{}))
	assert.False(t, ctx.IsSubType(EmptyTuple{}, numStr))
	assert.True(t, ctx.IsSubType(numStr, NonEmptyTuple{Elems: []TExp{AnyTExp, StrTExp}}))
	assert.False(t, ctx.IsSubType(numStr, NonEmptyTuple{Elems: []TExp{StrTExp, StrTExp}}))
	assert.False(t, ctx.IsSubType(numStr, NonEmptyTuple{Elems: []TExp{NumTExp}}))

	// tuples are never included in a union, even one that lists them
	single := NonEmptyTuple{Elems: []TExp{NumTExp}}
	assert.False(t, ctx.IsSubType(single, ctx.MakeUnionTExp([]TExp{single, StrTExp})))
}

func TestSubTypeFollowsBindings(t *testing.T) {
	ctx := NewTypeCtx()
	v := ctx.NewTVar("T")
	ctx.TVarSetContents(v, NumTExp)

	assert.True(t, ctx.IsSubType(v, mustParse(t, ctx, "(union number string)")))
	assert.True(t, ctx.IsSubType(NumTExp, v))
	assert.False(t, ctx.IsSubType(StrTExp, v))
	assert.True(t, ctx.IsSubType(MakeProcTExp([]TExp{AnyTExp}, v), MakeProcTExp([]TExp{v}, NumTExp)))
}

func TestEqual(t *testing.T) {
	ctx := NewTypeCtx()
	v := ctx.NewTVar("T")
	ctx.TVarSetContents(v, StrTExp)

	assert.True(t, ctx.Equal(v, StrTExp))
	assert.True(t, ctx.Equal(nil, nil))
	assert.False(t, ctx.Equal(nil, NumTExp))
	assert.True(t, ctx.Equal(TVar{Name: "S"}, mustParse(t, ctx, "S")))
	assert.True(t, ctx.Equal(mustParse(t, ctx, "(union number string)"), mustParse(t, ctx, "(union string number)")))
	assert.False(t, ctx.Equal(Union{Components: []TExp{NumTExp, StrTExp}}, Inter{Components: []TExp{NumTExp, StrTExp}}))
	assert.False(t, ctx.Equal(Pred{Inner: NumTExp}, NumTExp))
}

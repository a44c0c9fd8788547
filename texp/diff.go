package texp

import "slices"

// MakeDiffTExp is the type difference t1 \ t2.
//
// Subtracting from a union or an intersection filters out the components that are subtypes of t2.
// An intersection t2 whose components are pairwise incomparable is not subtracted at all.
func (ctx *TypeCtx) MakeDiffTExp(t1, t2 TExp) TExp {
	t1, t2 = ctx.TVarDeref(t1), ctx.TVarDeref(t2)
	notSubTypeOfT2 := func(te TExp) bool { return !ctx.IsSubType(te, t2) }

	switch {
	case ctx.Equal(t1, t2):
		return NeverTExp
	case IsAny(t1):
		// any \ any is caught above
		return AnyTExp
	case IsNever(t2):
		return t1
	}
	if inter, ok := t2.(Inter); ok && ctx.pairwiseIncomparable(inter.Components) {
		return t1
	}
	if union, ok := t1.(Union); ok {
		return ctx.MakeUnionTExp(filter(union.Components, notSubTypeOfT2))
	}
	if inter, ok := t1.(Inter); ok {
		return ctx.MakeInterTExp(filter(inter.Components, notSubTypeOfT2))
	}
	if _, ok := t2.(Union); ok {
		return ctx.MakeInterTExp([]TExp{t1, ctx.MakeDiffTExp(t2, t1)})
	}
	if inter, ok := t2.(Inter); ok {
		diffs := make([]TExp, 0, len(inter.Components))
		for _, c := range inter.Components {
			diffs = append(diffs, ctx.MakeDiffTExp(t1, c))
		}
		return ctx.MakeUnionTExp(diffs)
	}
	if ctx.IsSubType(t1, t2) {
		return NeverTExp
	}
	return t1
}

// pairwiseIncomparable holds when no component is never and no two components are subtypes of one another
func (ctx *TypeCtx) pairwiseIncomparable(tes []TExp) bool {
	if slices.ContainsFunc(tes, IsNever) {
		return false
	}
	for i, a := range tes {
		for _, b := range tes[i+1:] {
			if ctx.IsSubType(a, b) || ctx.IsSubType(b, a) {
				return false
			}
		}
	}
	return true
}

func filter(tes []TExp, keep func(TExp) bool) []TExp {
	res := make([]TExp, 0, len(tes))
	for _, te := range tes {
		if keep(te) {
			res = append(res, te)
		}
	}
	return res
}

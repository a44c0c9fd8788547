package texp

import (
	"slices"
	"strings"

	"github.com/cottand/texp/util"
)

// MakeUnionTExp builds the canonical union of tes.
// Nested unions are inlined, never and every component subsumed by another one are dropped,
// and what is left is sorted with Compare. An empty result is never, a single component is returned as is
// and any absorbs everything.
func (ctx *TypeCtx) MakeUnionTExp(tes []TExp) TExp {
	flat := flatten(tes, func(te TExp) ([]TExp, bool) {
		u, ok := te.(Union)
		return u.Components, ok
	})
	flat = slices.DeleteFunc(flat, IsNever)
	// in a union, the more specific of two comparable types is redundant
	kept := ctx.removeSubsumed(flat, func(redundant, other TExp) bool {
		return ctx.IsSubType(redundant, other)
	})
	slices.SortStableFunc(kept, ctx.Compare)

	var res TExp
	switch {
	case len(kept) == 0:
		res = NeverTExp
	case slices.ContainsFunc(kept, IsAny):
		res = AnyTExp
	case len(kept) == 1:
		res = kept[0]
	default:
		res = Union{Components: kept}
	}
	return ctx.distribute(res)
}

// MakeInterTExp builds the canonical intersection of tes, the mirror image of MakeUnionTExp:
// any is dropped, never absorbs everything, the more general of two comparable types is dropped,
// and the result is distributed over any union component into a union of intersections.
func (ctx *TypeCtx) MakeInterTExp(tes []TExp) TExp {
	flat := flatten(tes, func(te TExp) ([]TExp, bool) {
		i, ok := te.(Inter)
		return i.Components, ok
	})
	flat = slices.DeleteFunc(flat, IsAny)
	if slices.ContainsFunc(flat, IsNever) {
		return NeverTExp
	}
	kept := ctx.removeSubsumed(flat, func(redundant, other TExp) bool {
		return ctx.IsSubType(other, redundant)
	})
	slices.SortStableFunc(kept, ctx.compareInter)

	var res TExp
	switch len(kept) {
	case 0:
		res = AnyTExp
	case 1:
		res = kept[0]
	default:
		res = Inter{Components: kept}
	}
	return ctx.distribute(res)
}

// flatten recursively inlines the components of tes for which nested returns true
func flatten(tes []TExp, nested func(TExp) ([]TExp, bool)) []TExp {
	res := make([]TExp, 0, len(tes))
	for _, te := range tes {
		if components, ok := nested(te); ok {
			res = append(res, flatten(components, nested)...)
			continue
		}
		res = append(res, te)
	}
	return res
}

// removeSubsumed scans left to right and drops every component that is redundant
// with a later component or with one already kept, so equal components survive once
func (ctx *TypeCtx) removeSubsumed(tes []TExp, isRedundant func(redundant, other TExp) bool) []TExp {
	kept := make([]TExp, 0, len(tes))
	for i, te := range tes {
		redundantWith := func(other TExp) bool { return isRedundant(te, other) }
		if slices.ContainsFunc(tes[i+1:], redundantWith) || slices.ContainsFunc(kept, redundantWith) {
			continue
		}
		kept = append(kept, te)
	}
	return kept
}

// Compare is the canonical order of union components: more general types sort later,
// and types the subtype relation cannot order sort by their printed form.
// It is a total order over a set of pairwise incomparable types, which canonical components always are.
func (ctx *TypeCtx) Compare(a, b TExp) int {
	switch {
	case ctx.Equal(a, b):
		return 0
	case ctx.IsSubType(b, a):
		return 1
	case ctx.IsSubType(a, b):
		return -1
	default:
		return strings.Compare(ctx.sortKey(a), ctx.sortKey(b))
	}
}

// compareInter orders intersection components: the subtype direction is reversed,
// the printed-form tie-break is not
func (ctx *TypeCtx) compareInter(a, b TExp) int {
	switch {
	case ctx.Equal(a, b):
		return 0
	case ctx.IsSubType(b, a):
		return -1
	case ctx.IsSubType(a, b):
		return 1
	default:
		return strings.Compare(ctx.sortKey(a), ctx.sortKey(b))
	}
}

// distribute rewrites an intersection with union components into disjunctive normal form:
// (A ∪ B) ∩ C becomes (A ∩ C) ∪ (B ∩ C). Any other te is returned unchanged.
//
// The number of alternatives is the product of the sizes of the unions, so nested unions grow exponentially.
// WithDNFLimit bounds it.
func (ctx *TypeCtx) distribute(te TExp) TExp {
	inter, ok := te.(Inter)
	if !ok {
		return te
	}
	var alternatives [][]TExp
	var factors []TExp
	for _, c := range inter.Components {
		if u, isUnion := c.(Union); isUnion {
			alternatives = append(alternatives, u.Components)
		} else {
			factors = append(factors, c)
		}
	}
	if len(alternatives) == 0 {
		return te
	}
	if size := util.ProductSize(alternatives, ctx.dnfLimit); ctx.dnfLimit > 0 && size > ctx.dnfLimit {
		ctx.nfLogger.Warn("not distributing intersection: too many alternatives", "inter", te, "limit", ctx.dnfLimit)
		return te
	}

	combinations := util.CartesianProduct(alternatives)
	ctx.nfLogger.Debug("distributing intersection over unions", "inter", te, "alternatives", len(combinations))
	disjuncts := make([]TExp, 0, len(combinations))
	for _, combination := range combinations {
		disjuncts = append(disjuncts, ctx.MakeInterTExp(slices.Concat(combination, factors)))
	}
	return ctx.MakeUnionTExp(disjuncts)
}

// Normalize rebuilds every union and intersection inside te with the canonical constructors.
// Variables are kept, not dereferenced.
func (ctx *TypeCtx) Normalize(te TExp) TExp {
	normalizeAll := func(tes []TExp) []TExp {
		res := make([]TExp, 0, len(tes))
		for _, t := range tes {
			res = append(res, ctx.Normalize(t))
		}
		return res
	}
	switch te := te.(type) {
	case Union:
		return ctx.MakeUnionTExp(normalizeAll(te.Components))
	case Inter:
		return ctx.MakeInterTExp(normalizeAll(te.Components))
	case Proc:
		return MakeProcTExp(normalizeAll(te.Params), ctx.Normalize(te.Return))
	case NonEmptyTuple:
		return NonEmptyTuple{Elems: normalizeAll(te.Elems)}
	case Pred:
		return Pred{Inner: ctx.Normalize(te.Inner)}
	default:
		return te
	}
}

package texp

import (
	"cmp"
	"sort"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/texp/util"
	"github.com/hashicorp/go-set/v3"
	xtset "github.com/xtgo/set"
)

type varPairs = *immutable.List[util.Pair[string, string]]

// EquivalentTEs reports whether t1 and t2 are the same type up to renaming of type variables.
//
// Both are traversed together and every pair of differently named variables met at the same position is recorded.
// The pairs are accepted when there are as many distinct names on the left as on the right; this does not
// check that the renaming is consistent at every position, so (T1 -> T2) and (T1 -> T1) are accepted.
func (ctx *TypeCtx) EquivalentTEs(t1, t2 TExp) bool {
	pairs, ok := ctx.matchTVarsInTEs(t1, t2, immutable.NewList[util.Pair[string, string]]())
	if !ok {
		return false
	}
	collected := make([]util.Pair[string, string], 0, pairs.Len())
	itr := pairs.Iterator()
	for !itr.Done() {
		_, pair := itr.Next()
		collected = append(collected, pair)
	}
	left, right := util.Unzip(collected)
	ctx.logger.Debug("matched type variables", "t1", t1, "t2", t2, "left", left, "right", right)
	return distinctCount(left) == distinctCount(right)
}

func distinctCount(names []string) int {
	sort.Strings(names)
	return xtset.Uniq(sort.StringSlice(names))
}

func (ctx *TypeCtx) matchTVarsInTEs(t1, t2 TExp, pairs varPairs) (varPairs, bool) {
	if IsTVar(t1) || IsTVar(t2) {
		d1, d2 := ctx.TVarDeref(t1), ctx.TVarDeref(t2)
		v1, isVar1 := d1.(TVar)
		v2, isVar2 := d2.(TVar)
		switch {
		case isVar1 && isVar2:
			if v1.Name == v2.Name {
				return pairs, true
			}
			return pairs.Append(util.NewPair(v1.Name, v2.Name)), true
		case isVar1 || isVar2:
			return pairs, false
		}
		t1, t2 = d1, d2
	}

	switch t1 := t1.(type) {
	case Atomic:
		a2, ok := t2.(Atomic)
		return pairs, ok && t1.Kind == a2.Kind
	case Proc:
		p2, ok := t2.(Proc)
		if !ok || len(t1.Params) != len(p2.Params) {
			return pairs, false
		}
		return ctx.matchAll(t1.Components(), p2.Components(), pairs)
	case EmptyTuple:
		_, ok := t2.(EmptyTuple)
		return pairs, ok
	case NonEmptyTuple:
		tuple2, ok := t2.(NonEmptyTuple)
		if !ok {
			return pairs, false
		}
		return ctx.matchAll(t1.Elems, tuple2.Elems, pairs)
	case Union:
		u2, ok := t2.(Union)
		if !ok {
			return pairs, false
		}
		return ctx.matchAll(t1.Components, u2.Components, pairs)
	case Inter:
		i2, ok := t2.(Inter)
		if !ok {
			return pairs, false
		}
		return ctx.matchAll(t1.Components, i2.Components, pairs)
	case Pred:
		p2, ok := t2.(Pred)
		if !ok {
			return pairs, false
		}
		return ctx.matchTVarsInTEs(t1.Inner, p2.Inner, pairs)
	}
	return pairs, false
}

func (ctx *TypeCtx) matchAll(tes1, tes2 []TExp, pairs varPairs) (varPairs, bool) {
	if len(tes1) != len(tes2) {
		return pairs, false
	}
	for i := range tes1 {
		var ok bool
		if pairs, ok = ctx.matchTVarsInTEs(tes1[i], tes2[i], pairs); !ok {
			return pairs, false
		}
	}
	return pairs, true
}

// FreeTVars returns the sorted names of the unbound variables reachable from te
func (ctx *TypeCtx) FreeTVars(te TExp) []string {
	names := set.NewTreeSet[string](cmp.Compare[string])
	ctx.collectFreeTVars(te, names)
	return names.Slice()
}

func (ctx *TypeCtx) collectFreeTVars(te TExp, into *set.TreeSet[string]) {
	switch te := ctx.TVarDeref(te).(type) {
	case TVar:
		into.Insert(te.Name)
	case Proc:
		for c := range te.All() {
			ctx.collectFreeTVars(c, into)
		}
	case NonEmptyTuple:
		for _, c := range te.Elems {
			ctx.collectFreeTVars(c, into)
		}
	case Union:
		for _, c := range te.Components {
			ctx.collectFreeTVars(c, into)
		}
	case Inter:
		for _, c := range te.Components {
			ctx.collectFreeTVars(c, into)
		}
	case Pred:
		ctx.collectFreeTVars(te.Inner, into)
	}
}

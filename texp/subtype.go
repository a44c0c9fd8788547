package texp

import (
	"slices"
)

// IsSubType decides t1 <: t2 structurally. Both sides are dereferenced first; an intersection on the left
// and a union on the right are brought to canonical form before the rules below apply, first match wins:
//
//   - equal types are subtypes
//   - everything is a subtype of any, never is a subtype of everything
//   - a union is a subtype if all its components are
//   - anything but a tuple is a subtype of a union if it is a subtype of one of its components
//   - an intersection is a subtype if all its components are
//   - anything but a tuple is a subtype of an intersection if it is a subtype of one of its components
//   - variables are subtypes when they have the same name, atomics when they are of the same kind
//   - procedures of the same arity are contravariant in their parameters and covariant in their return
//   - tuples of the same shape are covariant position-wise
func (ctx *TypeCtx) IsSubType(t1, t2 TExp) bool {
	t1, t2 = ctx.TVarDeref(t1), ctx.TVarDeref(t2)
	if inter, ok := t1.(Inter); ok {
		t1 = ctx.TVarDeref(ctx.MakeInterTExp(inter.Components))
	}
	if union, ok := t2.(Union); ok {
		t2 = ctx.TVarDeref(ctx.MakeUnionTExp(union.Components))
	}
	isSubTypeOfT2 := func(te TExp) bool { return ctx.IsSubType(te, t2) }
	t1IsSubTypeOf := func(te TExp) bool { return ctx.IsSubType(t1, te) }

	if ctx.Equal(t1, t2) || IsAny(t2) || IsNever(t1) {
		return true
	}
	if union, ok := t1.(Union); ok {
		return allOf(union.Components, isSubTypeOfT2)
	}
	if union, ok := t2.(Union); ok && !IsTuple(t1) {
		return slices.ContainsFunc(union.Components, t1IsSubTypeOf)
	}
	if inter, ok := t1.(Inter); ok {
		return allOf(inter.Components, isSubTypeOfT2)
	}
	if inter, ok := t2.(Inter); ok && !IsTuple(t1) {
		return slices.ContainsFunc(inter.Components, t1IsSubTypeOf)
	}

	switch t1 := t1.(type) {
	case TVar:
		v2, ok := t2.(TVar)
		return ok && t1.Name == v2.Name
	case Atomic:
		a2, ok := t2.(Atomic)
		return ok && t1.Kind == a2.Kind
	case Proc:
		p2, ok := t2.(Proc)
		if !ok || len(t1.Params) != len(p2.Params) {
			return false
		}
		for i := range t1.Params {
			if !ctx.IsSubType(p2.Params[i], t1.Params[i]) {
				return false
			}
		}
		return ctx.IsSubType(t1.Return, p2.Return)
	case EmptyTuple:
		_, ok := t2.(EmptyTuple)
		return ok
	case NonEmptyTuple:
		tuple2, ok := t2.(NonEmptyTuple)
		if !ok || len(t1.Elems) != len(tuple2.Elems) {
			return false
		}
		for i := range t1.Elems {
			if !ctx.IsSubType(t1.Elems[i], tuple2.Elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func allOf(tes []TExp, f func(TExp) bool) bool {
	for _, te := range tes {
		if !f(te) {
			return false
		}
	}
	return true
}

// Equal is structural equality after dereferencing variables, where variables are equal when their names are.
// Union and intersection components are compared in order, which is meaningful for canonical forms.
func (ctx *TypeCtx) Equal(t1, t2 TExp) bool {
	t1, t2 = ctx.TVarDeref(t1), ctx.TVarDeref(t2)
	switch t1 := t1.(type) {
	case nil:
		return t2 == nil
	case Atomic:
		a2, ok := t2.(Atomic)
		return ok && t1.Kind == a2.Kind
	case TVar:
		v2, ok := t2.(TVar)
		return ok && t1.Name == v2.Name
	case EmptyTuple:
		_, ok := t2.(EmptyTuple)
		return ok
	case NonEmptyTuple:
		tuple2, ok := t2.(NonEmptyTuple)
		return ok && slices.EqualFunc(t1.Elems, tuple2.Elems, ctx.Equal)
	case Proc:
		p2, ok := t2.(Proc)
		return ok && slices.EqualFunc(t1.Params, p2.Params, ctx.Equal) && ctx.Equal(t1.Return, p2.Return)
	case Union:
		u2, ok := t2.(Union)
		return ok && slices.EqualFunc(t1.Components, u2.Components, ctx.Equal)
	case Inter:
		i2, ok := t2.(Inter)
		return ok && slices.EqualFunc(t1.Components, i2.Components, ctx.Equal)
	case Pred:
		p2, ok := t2.(Pred)
		return ok && ctx.Equal(t1.Inner, p2.Inner)
	}
	return false
}

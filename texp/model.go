// Package texp is a type-expression algebra: atomic, procedure, tuple, union, intersection,
// predicate and variable types, together with their surface syntax, canonical forms,
// subtyping and alpha-equivalence.
//
// Everything that looks at type variable bindings is a method of TypeCtx, which owns the
// binding cells of the variables it created.
package texp

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cottand/texp/util"
)

// TExp is a type expression. The set of implementations is closed:
// Atomic, Proc, EmptyTuple, NonEmptyTuple, Union, Inter, Pred and TVar.
//
// Values are immutable once built; only the binding cells of type variables,
// which live in a TypeCtx, ever change.
type TExp interface {
	fmt.Stringer
	isTExp()
}

var (
	_ TExp = Atomic{}
	_ TExp = Proc{}
	_ TExp = EmptyTuple{}
	_ TExp = NonEmptyTuple{}
	_ TExp = Union{}
	_ TExp = Inter{}
	_ TExp = Pred{}
	_ TExp = TVar{}
)

type AtomicKind uint8

const (
	KindNumber AtomicKind = iota
	KindBoolean
	KindString
	KindVoid
	KindAny
	KindNever
)

var atomicKeywords = map[AtomicKind]string{
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindString:  "string",
	KindVoid:    "void",
	KindAny:     "any",
	KindNever:   "never",
}

// Keyword is the surface syntax of the kind
func (k AtomicKind) Keyword() string {
	if kw, ok := atomicKeywords[k]; ok {
		return kw
	}
	return fmt.Sprintf("atomic(%d)", uint8(k))
}

type Atomic struct {
	Kind AtomicKind
}

var (
	NumTExp   = Atomic{Kind: KindNumber}
	BoolTExp  = Atomic{Kind: KindBoolean}
	StrTExp   = Atomic{Kind: KindString}
	VoidTExp  = Atomic{Kind: KindVoid}
	AnyTExp   = Atomic{Kind: KindAny}
	NeverTExp = Atomic{Kind: KindNever}
)

// Proc is a procedure type. An empty Params is the Empty tuple.
type Proc struct {
	Params []TExp
	Return TExp
}

func MakeProcTExp(params []TExp, ret TExp) Proc {
	return Proc{Params: params, Return: ret}
}

// Components returns the parameters followed by the return type
func (t Proc) Components() []TExp {
	return append(slices.Clone(t.Params), t.Return)
}

// All iterates over Components without allocating
func (t Proc) All() iter.Seq[TExp] {
	return util.ConcatIter(slices.Values(t.Params), util.SingleIter(t.Return))
}

// Tuple returns the parameters as a tuple type
func (t Proc) Tuple() TExp {
	if len(t.Params) == 0 {
		return EmptyTuple{}
	}
	return NonEmptyTuple{Elems: t.Params}
}

type EmptyTuple struct{}

// NonEmptyTuple holds at least one element, none of which is itself a tuple
type NonEmptyTuple struct {
	Elems []TExp
}

// Union is a set of alternatives. Build it with TypeCtx.MakeUnionTExp to get its canonical form.
type Union struct {
	Components []TExp
}

// Inter is a set of types that all hold. Build it with TypeCtx.MakeInterTExp to get its canonical form.
type Inter struct {
	Components []TExp
}

// Pred marks a type-level predicate over Inner, written (is? Inner)
type Pred struct {
	Inner TExp
}

// TVar is a type variable. Its binding, if any, lives in the TypeCtx that created it.
//
// A TVar built as a literal has no cell and is always unbound.
// Two type variables are equal when their names are.
type TVar struct {
	Name string
	cell cellID
}

func (Atomic) isTExp()        {}
func (Proc) isTExp()          {}
func (EmptyTuple) isTExp()    {}
func (NonEmptyTuple) isTExp() {}
func (Union) isTExp()         {}
func (Inter) isTExp()         {}
func (Pred) isTExp()          {}
func (TVar) isTExp()          {}

func (t Atomic) String() string        { return t.Kind.Keyword() }
func (t Proc) String() string          { return debugString(t) }
func (t EmptyTuple) String() string    { return emptyTupleKeyword }
func (t NonEmptyTuple) String() string { return debugString(t) }
func (t Union) String() string         { return debugString(t) }
func (t Inter) String() string         { return debugString(t) }
func (t Pred) String() string          { return debugString(t) }
func (t TVar) String() string          { return t.Name }

func IsAtomic(te TExp) bool {
	_, ok := te.(Atomic)
	return ok
}

func isKind(te TExp, kind AtomicKind) bool {
	a, ok := te.(Atomic)
	return ok && a.Kind == kind
}

func IsAny(te TExp) bool   { return isKind(te, KindAny) }
func IsNever(te TExp) bool { return isKind(te, KindNever) }

func IsProc(te TExp) bool {
	_, ok := te.(Proc)
	return ok
}

func IsTuple(te TExp) bool {
	switch te.(type) {
	case EmptyTuple, NonEmptyTuple:
		return true
	}
	return false
}

func IsEmptyTuple(te TExp) bool {
	_, ok := te.(EmptyTuple)
	return ok
}

func IsUnion(te TExp) bool {
	_, ok := te.(Union)
	return ok
}

func IsInter(te TExp) bool {
	_, ok := te.(Inter)
	return ok
}

func IsPred(te TExp) bool {
	_, ok := te.(Pred)
	return ok
}

func IsTVar(te TExp) bool {
	_, ok := te.(TVar)
	return ok
}

package texp

import (
	"fmt"
	"strings"

	"github.com/cottand/texp/texp/texperr"
)

type printer struct {
	sb    *strings.Builder
	deref func(TExp) TExp
}

// UnparseTExp prints te in the surface syntax that ParseTE reads.
// Bound variables print as what they dereference to.
func (ctx *TypeCtx) UnparseTExp(te TExp) (string, error) {
	p := printer{sb: &strings.Builder{}, deref: ctx.TVarDeref}
	if err := p.write(te); err != nil {
		return "", err
	}
	return p.sb.String(), nil
}

// debugString prints without following bindings, and never fails
func debugString(te TExp) string {
	p := printer{sb: &strings.Builder{}, deref: func(te TExp) TExp { return te }}
	if err := p.write(te); err != nil {
		return "<" + err.Error() + ">"
	}
	return p.sb.String()
}

// sortKey is the printed form used to order types the subtype relation cannot order
func (ctx *TypeCtx) sortKey(te TExp) string {
	s, err := ctx.UnparseTExp(te)
	if err != nil {
		return debugString(te)
	}
	return s
}

func (p printer) write(te TExp) error {
	switch te := p.deref(te).(type) {
	case nil:
		return texperr.New(texperr.NewUnparse{Reason: "no value"})
	case Atomic:
		p.sb.WriteString(te.Kind.Keyword())
	case TVar:
		p.sb.WriteString(te.Name)
	case EmptyTuple:
		p.sb.WriteString(emptyTupleKeyword)
	case NonEmptyTuple:
		return p.writeTuple(te.Elems)
	case Proc:
		p.sb.WriteString("(")
		if err := p.writeTuple(te.Params); err != nil {
			return err
		}
		p.sb.WriteString(" " + arrowToken + " ")
		if err := p.write(te.Return); err != nil {
			return err
		}
		p.sb.WriteString(")")
	case Union:
		return p.writeUnion(te.Components)
	case Inter:
		p.sb.WriteString("(" + interKeyword)
		for _, c := range te.Components {
			p.sb.WriteString(" ")
			if err := p.write(c); err != nil {
				return err
			}
		}
		p.sb.WriteString(")")
	case Pred:
		p.sb.WriteString("(" + predKeyword + " ")
		if err := p.write(te.Inner); err != nil {
			return err
		}
		p.sb.WriteString(")")
	default:
		return texperr.New(texperr.NewUnparse{Reason: fmt.Sprintf("unknown type expression %T", te)})
	}
	return nil
}

func (p printer) writeTuple(elems []TExp) error {
	if len(elems) == 0 {
		p.sb.WriteString(emptyTupleKeyword)
		return nil
	}
	for i, elem := range elems {
		if i != 0 {
			p.sb.WriteString(" " + tupleSepToken + " ")
		}
		if err := p.write(elem); err != nil {
			return err
		}
	}
	return nil
}

// writeUnion nests to the right: (union a (union b c))
func (p printer) writeUnion(components []TExp) error {
	if len(components) == 0 {
		p.sb.WriteString("(" + unionKeyword + ")")
		return nil
	}
	p.sb.WriteString("(" + unionKeyword + " ")
	if err := p.write(components[0]); err != nil {
		return err
	}
	switch rest := components[1:]; len(rest) {
	case 0:
	case 1:
		p.sb.WriteString(" ")
		if err := p.write(rest[0]); err != nil {
			return err
		}
	default:
		p.sb.WriteString(" ")
		if err := p.writeUnion(rest); err != nil {
			return err
		}
	}
	p.sb.WriteString(")")
	return nil
}

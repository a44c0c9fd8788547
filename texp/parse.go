package texp

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/texp/sexp"
	"github.com/cottand/texp/texp/texperr"
	"github.com/cottand/texp/util"
)

const (
	arrowToken        = "->"
	tupleSepToken     = "*"
	unionKeyword      = "union"
	interKeyword      = "inter"
	predKeyword       = "is?"
	emptyTupleKeyword = "Empty"
)

var keywordAtomics = map[string]Atomic{
	"number":  NumTExp,
	"boolean": BoolTExp,
	"string":  StrTExp,
	"void":    VoidTExp,
	"any":     AnyTExp,
	"never":   NeverTExp,
}

var reservedTokens = []string{arrowToken, tupleSepToken, unionKeyword, interKeyword, predKeyword}

// parser resolves variable names to cells: within one parser, every occurrence
// of a name is the same TVar
type parser struct {
	ctx   *TypeCtx
	scope *immutable.Map[string, TVar]
}

func (ctx *TypeCtx) newParser() *parser {
	return &parser{ctx: ctx, scope: immutable.NewMap[string, TVar](nil)}
}

// ParseTE reads text and parses it as a single type expression
func (ctx *TypeCtx) ParseTE(text string) (TExp, error) {
	return ctx.newParser().parseText(text)
}

// ParseTExp parses an already read token tree
func (ctx *TypeCtx) ParseTExp(tree sexp.Sexp) (TExp, error) {
	return ctx.newParser().parseTExp(tree)
}

// ParseAll parses several texts in which type variables of the same name share a binding cell.
// It stops at the first text that fails.
func (ctx *TypeCtx) ParseAll(texts ...string) ([]TExp, error) {
	p := ctx.newParser()
	return util.MapErr(texts, p.parseText)
}

func (p *parser) parseText(text string) (TExp, error) {
	tree, err := sexp.Read(text)
	if err != nil {
		return nil, err
	}
	te, err := p.parseTExp(tree)
	if err != nil {
		p.ctx.logger.Debug("failed to parse type expression", "text", text, "error", err)
		return nil, err
	}
	return te, nil
}

func (p *parser) parseTExp(tree sexp.Sexp) (TExp, error) {
	switch tree := tree.(type) {
	case sexp.Atom:
		return p.parseAtom(tree)
	case sexp.List:
		return p.parseCompound(tree)
	default:
		return nil, texperr.New(texperr.NewUnexpectedToken{Token: tree.String(), Hint: "literals are not type expressions"})
	}
}

func (p *parser) parseAtom(atom sexp.Atom) (TExp, error) {
	name := string(atom)
	if atomic, ok := keywordAtomics[name]; ok {
		return atomic, nil
	}
	if name == emptyTupleKeyword {
		return EmptyTuple{}, nil
	}
	if slices.Contains(reservedTokens, name) {
		return nil, texperr.New(texperr.NewUnexpectedToken{Token: name, Hint: "reserved token"})
	}
	if first, _ := utf8.DecodeRuneInString(name); !(unicode.IsLetter(first) || first == '_') {
		return nil, texperr.New(texperr.NewUnexpectedToken{Token: name, Hint: "type variable names start with a letter"})
	}
	if v, ok := p.scope.Get(name); ok {
		return v, nil
	}
	v := p.ctx.NewTVar(name)
	p.scope = p.scope.Set(name, v)
	return v, nil
}

func (p *parser) parseCompound(list sexp.List) (TExp, error) {
	if len(list) == 0 {
		return nil, texperr.New(texperr.NewEmptyForm{Form: list.String()})
	}
	switch {
	case sexp.IsAtom(list[0], unionKeyword), sexp.IsAtom(list[0], interKeyword):
		if len(list) == 1 {
			return nil, texperr.New(texperr.NewEmptyForm{Form: list.String()})
		}
		components, err := util.MapErr(list[1:], p.parseTExp)
		if err != nil {
			return nil, err
		}
		if sexp.IsAtom(list[0], unionKeyword) {
			return p.ctx.MakeUnionTExp(components), nil
		}
		return p.ctx.MakeInterTExp(components), nil
	case sexp.IsAtom(list[0], predKeyword):
		if len(list) != 2 {
			return nil, texperr.New(texperr.NewPredicateArity{Got: len(list) - 1, Form: list.String()})
		}
		inner, err := p.parseTExp(list[1])
		if err != nil {
			return nil, err
		}
		return Pred{Inner: inner}, nil
	default:
		return p.parseProc(list)
	}
}

func (p *parser) parseProc(list sexp.List) (TExp, error) {
	arrowProblem := func(problem texperr.ArrowProblem) error {
		return texperr.New(texperr.NewProcArrow{Problem: problem, Form: list.String()})
	}
	isArrow := func(s sexp.Sexp) bool { return sexp.IsAtom(s, arrowToken) }

	pos := slices.IndexFunc(list, isArrow)
	switch {
	case pos == -1:
		return nil, arrowProblem(texperr.MissingArrow)
	case pos == 0:
		return nil, arrowProblem(texperr.NoParams)
	case pos == len(list)-1:
		return nil, arrowProblem(texperr.NoReturn)
	case slices.ContainsFunc(list[pos+1:], isArrow):
		return nil, arrowProblem(texperr.ManyArrows)
	}

	params, err := p.parseTuple(list[:pos])
	if err != nil {
		return nil, err
	}

	var retTree sexp.Sexp = list[pos+1]
	if rest := list[pos+1:]; len(rest) > 1 {
		retTree = sexp.List(rest)
	}
	ret, err := p.parseNonTuple(retTree)
	if err != nil {
		return nil, err
	}
	return MakeProcTExp(params, ret), nil
}

// parseTuple parses 'Empty' or 't1 * t2 * ... * tn'
func (p *parser) parseTuple(elems []sexp.Sexp) ([]TExp, error) {
	if len(elems) == 1 && sexp.IsAtom(elems[0], emptyTupleKeyword) {
		return []TExp{}, nil
	}
	sepError := func(pos int, found string) error {
		return texperr.New(texperr.NewTupleSeparator{Position: pos, Found: found, Params: sexp.Format(elems)})
	}

	types := make([]sexp.Sexp, 0, len(elems)/2+1)
	for i, elem := range elems {
		isSep := sexp.IsAtom(elem, tupleSepToken)
		if i%2 == 1 && !isSep {
			return nil, sepError(i, elem.String())
		}
		if i%2 == 0 {
			if isSep {
				return nil, sepError(i, elem.String())
			}
			types = append(types, elem)
		}
	}
	if len(elems)%2 == 0 {
		// trailing '*'
		return nil, sepError(len(elems), "")
	}
	return util.MapErr(types, p.parseNonTuple)
}

func (p *parser) parseNonTuple(tree sexp.Sexp) (TExp, error) {
	te, err := p.parseTExp(tree)
	if err != nil {
		return nil, err
	}
	if IsTuple(te) {
		return nil, texperr.New(texperr.NewNestedTuple{Form: tree.String()})
	}
	return te, nil
}

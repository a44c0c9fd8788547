package texperr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Syntax
	UnexpectedToken
	ProcArrow
	TupleSeparator
	NestedTuple
	PredicateArity
	EmptyForm
	Unparse
)

// TexpError is a user-facing failure produced while reading, parsing or printing type expressions.
//
// Build them with New so that the creation stack is recorded.
type TexpError interface {
	Error() string
	Code() ErrCode
	// Fragment is the offending piece of source, as written or re-printed
	Fragment() string

	withStack([]byte) TexpError
	getStack() []byte
}

func FormatWithCode(e TexpError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			if lines := strings.Split(stack, "\n"); len(lines) > 6 {
				stack = strings.TrimSpace(lines[6])
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E TexpError](err E) TexpError {
	return err.withStack(debug.Stack())
}

// CodeOf returns the ErrCode of the first TexpError in err's chain, or None
func CodeOf(err error) ErrCode {
	var texpErr TexpError
	if errors.As(err, &texpErr) {
		return texpErr.Code()
	}
	return None
}

// NewSyntax is a reader failure: unbalanced delimiters, unterminated strings, trailing input
type NewSyntax struct {
	Offset  int
	Message string
	Text    string
	stack   []byte
}

func (e NewSyntax) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}
func (e NewSyntax) Code() ErrCode    { return Syntax }
func (e NewSyntax) Fragment() string { return e.Text }
func (e NewSyntax) getStack() []byte { return e.stack }
func (e NewSyntax) withStack(stack []byte) TexpError {
	e.stack = stack
	return e
}

type NewUnexpectedToken struct {
	Token string
	Hint  string
	stack []byte
}

func (e NewUnexpectedToken) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("unexpected type expression '%s': %s", e.Token, e.Hint)
	}
	return fmt.Sprintf("unexpected type expression '%s'", e.Token)
}
func (e NewUnexpectedToken) Code() ErrCode    { return UnexpectedToken }
func (e NewUnexpectedToken) Fragment() string { return e.Token }
func (e NewUnexpectedToken) getStack() []byte { return e.stack }
func (e NewUnexpectedToken) withStack(stack []byte) TexpError {
	e.stack = stack
	return e
}

// ArrowProblem says what is wrong with the '->' of a procedure type
type ArrowProblem int

const (
	MissingArrow ArrowProblem = iota
	NoParams
	NoReturn
	ManyArrows
)

func (p ArrowProblem) String() string {
	switch p {
	case MissingArrow:
		return "procedure type expression without '->'"
	case NoParams:
		return "no parameter types before '->'"
	case NoReturn:
		return "no return type after '->'"
	case ManyArrows:
		return "only one '->' is allowed in a procedure type, parenthesize nested procedures"
	default:
		return "malformed procedure type"
	}
}

type NewProcArrow struct {
	Problem ArrowProblem
	Form    string
	stack   []byte
}

func (e NewProcArrow) Error() string {
	return fmt.Sprintf("%v: %s", e.Problem, e.Form)
}
func (e NewProcArrow) Code() ErrCode    { return ProcArrow }
func (e NewProcArrow) Fragment() string { return e.Form }
func (e NewProcArrow) getStack() []byte { return e.stack }
func (e NewProcArrow) withStack(stack []byte) TexpError {
	e.stack = stack
	return e
}

type NewTupleSeparator struct {
	// Position is the 0-based index of the offending element within the parameter list
	Position int
	Found    string
	Params   string
	stack    []byte
}

func (e NewTupleSeparator) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("parameters of procedure type must be separated by '*': expected a type at position %d in '%s'", e.Position, e.Params)
	}
	return fmt.Sprintf("parameters of procedure type must be separated by '*': found '%s' at position %d in '%s'", e.Found, e.Position, e.Params)
}
func (e NewTupleSeparator) Code() ErrCode    { return TupleSeparator }
func (e NewTupleSeparator) Fragment() string { return e.Params }
func (e NewTupleSeparator) getStack() []byte { return e.stack }
func (e NewTupleSeparator) withStack(stack []byte) TexpError {
	e.stack = stack
	return e
}

type NewNestedTuple struct {
	Form  string
	stack []byte
}

func (e NewNestedTuple) Error() string {
	return fmt.Sprintf("tuple types cannot be nested or used outside a parameter list: %s", e.Form)
}
func (e NewNestedTuple) Code() ErrCode    { return NestedTuple }
func (e NewNestedTuple) Fragment() string { return e.Form }
func (e NewNestedTuple) getStack() []byte { return e.stack }
func (e NewNestedTuple) withStack(stack []byte) TexpError {
	e.stack = stack
	return e
}

type NewPredicateArity struct {
	Got   int
	Form  string
	stack []byte
}

func (e NewPredicateArity) Error() string {
	return fmt.Sprintf("predicate type expects exactly one type, got %d: %s", e.Got, e.Form)
}
func (e NewPredicateArity) Code() ErrCode    { return PredicateArity }
func (e NewPredicateArity) Fragment() string { return e.Form }
func (e NewPredicateArity) getStack() []byte { return e.stack }
func (e NewPredicateArity) withStack(stack []byte) TexpError {
	e.stack = stack
	return e
}

type NewEmptyForm struct {
	Form  string
	stack []byte
}

func (e NewEmptyForm) Error() string {
	return fmt.Sprintf("empty type expression: %s", e.Form)
}
func (e NewEmptyForm) Code() ErrCode    { return EmptyForm }
func (e NewEmptyForm) Fragment() string { return e.Form }
func (e NewEmptyForm) getStack() []byte { return e.stack }
func (e NewEmptyForm) withStack(stack []byte) TexpError {
	e.stack = stack
	return e
}

type NewUnparse struct {
	Reason string
	stack  []byte
}

func (e NewUnparse) Error() string {
	return fmt.Sprintf("cannot unparse type expression: %s", e.Reason)
}
func (e NewUnparse) Code() ErrCode    { return Unparse }
func (e NewUnparse) Fragment() string { return "" }
func (e NewUnparse) getStack() []byte { return e.stack }
func (e NewUnparse) withStack(stack []byte) TexpError {
	e.stack = stack
	return e
}

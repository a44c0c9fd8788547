package sexp

import (
	"strings"
	"unicode"

	"github.com/antlr4-go/antlr/v4"
	"github.com/cottand/texp/internal/log"
	"github.com/cottand/texp/texp/texperr"
	"github.com/cottand/texp/util"
)

var logger = log.DefaultLogger.With("section", "texp.reader")

type openList struct {
	items []Sexp
	close rune
	start int
}

type reader struct {
	input *antlr.InputStream
	text  string
}

// Read reads exactly one tree from text. Anything but whitespace and comments after it is an error.
func Read(text string) (Sexp, error) {
	r := &reader{input: antlr.NewInputStream(text), text: text}
	all, err := r.readAll(true)
	if err != nil {
		logger.Debug("failed to read", "text", text, "error", err)
		return nil, err
	}
	if len(all) == 0 {
		return nil, r.fail(0, "no expression found")
	}
	return all[0], nil
}

// ReadAll reads every top-level tree in text, in order
func ReadAll(text string) ([]Sexp, error) {
	r := &reader{input: antlr.NewInputStream(text), text: text}
	res, err := r.readAll(false)
	if err != nil {
		logger.Debug("failed to read", "text", text, "error", err)
		return nil, err
	}
	return res, nil
}

func (r *reader) la() int {
	return r.input.LA(1)
}

func (r *reader) fail(at int, msg string) error {
	return texperr.New(texperr.NewSyntax{Offset: at, Message: msg, Text: r.text})
}

// readAll reads top-level trees until EOF. When single is set, a second top-level tree is an error.
func (r *reader) readAll(single bool) ([]Sexp, error) {
	var top []Sexp
	stack := &util.Stack[openList]{}
	emit := func(s Sexp) {
		if open, ok := stack.Peek(); ok {
			open.items = append(open.items, s)
		} else {
			top = append(top, s)
		}
	}

	for r.la() != antlr.TokenEOF {
		c := rune(r.la())
		if single && len(top) == 1 && !unicode.IsSpace(c) && c != ';' {
			return nil, r.fail(r.input.Index(), "unexpected input after expression "+top[0].String())
		}
		switch {
		case unicode.IsSpace(c):
			r.input.Consume()
		case c == ';':
			for r.la() != antlr.TokenEOF && r.la() != '\n' {
				r.input.Consume()
			}
		case c == '(' || c == '[':
			closing := ')'
			if c == '[' {
				closing = ']'
			}
			stack.Push(openList{items: []Sexp{}, close: closing, start: r.input.Index()})
			r.input.Consume()
		case c == ')' || c == ']':
			open, ok := stack.Pop()
			if !ok {
				return nil, r.fail(r.input.Index(), "unbalanced '"+string(c)+"'")
			}
			if open.close != c {
				return nil, r.fail(r.input.Index(), "expected '"+string(open.close)+"' but found '"+string(c)+"'")
			}
			r.input.Consume()
			emit(List(open.items))
		case c == '"':
			s, err := r.readString()
			if err != nil {
				return nil, err
			}
			emit(s)
		default:
			emit(r.readAtom())
		}
	}
	if open, ok := stack.Pop(); ok {
		return nil, r.fail(open.start, "missing '"+string(open.close)+"'")
	}
	return top, nil
}

func isDelimiter(c int) bool {
	switch c {
	case '(', ')', '[', ']', '"', ';':
		return true
	}
	return c == antlr.TokenEOF || unicode.IsSpace(rune(c))
}

func (r *reader) readAtom() Atom {
	start := r.input.Index()
	for !isDelimiter(r.la()) {
		r.input.Consume()
	}
	return Atom(r.input.GetText(start, r.input.Index()-1))
}

func (r *reader) readString() (String, error) {
	start := r.input.Index()
	r.input.Consume()
	sb := &strings.Builder{}
	for {
		switch c := r.la(); c {
		case antlr.TokenEOF:
			return "", r.fail(start, "unterminated string literal")
		case '"':
			r.input.Consume()
			return String(sb.String()), nil
		case '\\':
			r.input.Consume()
			escaped := r.la()
			switch escaped {
			case antlr.TokenEOF:
				return "", r.fail(start, "unterminated string literal")
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			default:
				sb.WriteRune(rune(escaped))
			}
			r.input.Consume()
		default:
			sb.WriteRune(rune(c))
			r.input.Consume()
		}
	}
}

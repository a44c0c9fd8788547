// Package sexp reads the parenthesized token trees that type expressions are written in.
//
// A tree is made of Atom tokens, String literals and List groups. Both (...) and [...]
// delimit a List; they must be closed by the matching delimiter.
package sexp

import (
	"strconv"
	"strings"
)

type Sexp interface {
	String() string
	isSexp()
}

var (
	_ Sexp = Atom("")
	_ Sexp = String("")
	_ Sexp = List(nil)
)

// Atom is any run of characters that is not whitespace, a delimiter, a quote or a comment
type Atom string

// String is a double-quoted literal, already unescaped
type String string

type List []Sexp

func (Atom) isSexp()   {}
func (String) isSexp() {}
func (List) isSexp()   {}

func (a Atom) String() string   { return string(a) }
func (s String) String() string { return strconv.Quote(string(s)) }

func (l List) String() string {
	sb := &strings.Builder{}
	sb.WriteString("(")
	for i, elem := range l {
		if i != 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(elem.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// IsAtom reports whether s is the Atom named name
func IsAtom(s Sexp, name string) bool {
	a, ok := s.(Atom)
	return ok && string(a) == name
}

// Format prints a slice of trees separated by spaces, without surrounding delimiters
func Format(s []Sexp) string {
	parts := make([]string, 0, len(s))
	for _, elem := range s {
		parts = append(parts, elem.String())
	}
	return strings.Join(parts, " ")
}

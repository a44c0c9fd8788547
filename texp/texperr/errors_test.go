package texperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWithCode(t *testing.T) {
	testCases := []struct {
		err      TexpError
		expected string
	}{
		{New(NewEmptyForm{Form: "()"}), "(E007) empty type expression: ()"},
		{New(NewProcArrow{Problem: NoReturn, Form: "(number ->)"}), "(E003) no return type after '->': (number ->)"},
		{New(NewUnexpectedToken{Token: "->"}), "(E002) unexpected type expression '->'"},
		{
			New(NewTupleSeparator{Position: 2, Params: "number *"}),
			"(E004) parameters of procedure type must be separated by '*': expected a type at position 2 in 'number *'",
		},
		{New(NewUnparse{Reason: "no value"}), "(E008) cannot unparse type expression: no value"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.expected, func(t *testing.T) {
			assert.Equal(t, testCase.expected, FormatWithCode(testCase.err))
		})
	}
}

func TestNewRecordsStack(t *testing.T) {
	err := New(NewPredicateArity{Got: 2, Form: "(is? a b)"})
	assert.NotEmpty(t, err.getStack())
	assert.Equal(t, "(is? a b)", err.Fragment())
}

func TestCodeOf(t *testing.T) {
	err := New(NewNestedTuple{Form: "number * number"})
	assert.Equal(t, NestedTuple, CodeOf(err))
	assert.Equal(t, NestedTuple, CodeOf(fmt.Errorf("while checking: %w", err)))
	assert.Equal(t, None, CodeOf(fmt.Errorf("plain")))
}

func TestErrors(t *testing.T) {
	var errs *Errors
	assert.False(t, errs.HasError())
	assert.Nil(t, errs.Errors())

	errs = errs.With(New(NewEmptyForm{Form: "()"}))
	other := (&Errors{}).With(New(NewUnparse{Reason: "no value"}))
	errs = errs.Merge(other).Merge(nil)

	assert.True(t, errs.HasError())
	assert.Len(t, errs.Errors(), 2)
	assert.Equal(t, Unparse, errs.Errors()[1].Code())

	value := errs.LogValue()
	assert.Len(t, value.Group(), 2)
	assert.Equal(t, "e0", value.Group()[0].Key)
}

package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cottand/texp/texp"
	"github.com/cottand/texp/texp/texperr"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	current = defaultSettings
	root := &cobra.Command{Use: "texp", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(c)
	defer root.RemoveCommand(c)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{c.Name()}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	testCases := []struct {
		name     string
		cmd      *cobra.Command
		args     []string
		expected string
	}{
		{"parse", ParseCmd, []string{"(union string number)", "T"}, "(union number string)\nT\n"},
		{"subtype", SubtypeCmd, []string{"[any -> number]", "[number -> number]"}, "true\n"},
		{"subtype with shared variables", SubtypeCmd, []string{"(T -> never)", "(T -> T)"}, "true\n"},
		{"equiv", EquivCmd, []string{"(T1 -> T2)", "(T3 -> T3)"}, "false\n"},
		{"diff", DiffCmd, []string{"(union number string boolean)", "(union number string)"}, "boolean\n"},
		{"union", UnionCmd, []string{"number", "string", "number"}, "(union number string)\n"},
		{
			"inter",
			InterCmd,
			[]string{"(union number string)", "boolean"},
			"(union (inter boolean number) (inter boolean string))\n",
		},
		{
			"inter past the dnf limit",
			InterCmd,
			[]string{"--dnf-limit", "1", "(union number string)", "boolean"},
			"(inter (union number string) boolean)\n",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			out, err := execute(t, testCase.cmd, testCase.args...)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, out)
		})
	}
}

func TestParseDump(t *testing.T) {
	out, err := execute(t, ParseCmd, "--dump", "(number -> T)")
	require.NoError(t, err)
	assert.Contains(t, out, "Params:")
	assert.Contains(t, out, "Return:")
	assert.True(t, strings.HasSuffix(out, "(number -> T)\n"))
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, ParseCmd, "(number number -> boolean)")
	assert.Equal(t, texperr.TupleSeparator, texperr.CodeOf(err))

	_, err = execute(t, SubtypeCmd, "number")
	assert.Error(t, err)

	_, err = execute(t, CheckCmd, filepath.Join(t.TempDir(), "missing.texp"))
	assert.ErrorContains(t, err, "could not read")
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		line     string
		expected string
	}{
		{"number <: (union number string)", "true"},
		{"(T1 -> T1) ~ (T2 -> T2)", "true"},
		{"(union number string) - number", "string"},
		{"(number -> number) <: (number -> any)", "true"},
		{"(inter (union number string) boolean)", "(union (inter boolean number) (inter boolean string))"},
		{"[Empty -> void]", "(Empty -> void)"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.line, func(t *testing.T) {
			res, err := evaluate(texp.NewTypeCtx(), testCase.line)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, res)
		})
	}

	_, err := evaluate(texp.NewTypeCtx(), "(is? number string) <: any")
	assert.Equal(t, texperr.PredicateArity, texperr.CodeOf(err))
}

const checkFile = `; a comment
number <: (union number string)

(number number -> boolean)
(union number string) - number ; trailing
()
`

func TestCheckLines(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	errs, err := checkLines(checkFile, out, errOut)
	require.NoError(t, err)

	assert.Equal(t, "2: true\n5: string\n", out.String())
	require.Len(t, errs.Errors(), 2)
	assert.Equal(t, texperr.TupleSeparator, errs.Errors()[0].Code())
	assert.Equal(t, texperr.EmptyForm, errs.Errors()[1].Code())
	assert.Contains(t, errOut.String(), "4: (E004)")
	assert.Contains(t, errOut.String(), "6: (E007)")
}

func TestCheckCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.texp")
	require.NoError(t, os.WriteFile(path, []byte(checkFile), 0o644))

	out, err := execute(t, CheckCmd, path)
	assert.ErrorContains(t, err, "2 type expressions in")
	assert.Contains(t, out, "5: string")

	ok := filepath.Join(t.TempDir(), "ok.texp")
	require.NoError(t, os.WriteFile(ok, []byte("number ~ number\n"), 0o644))
	out, err = execute(t, CheckCmd, ok)
	require.NoError(t, err)
	assert.Equal(t, "1: true\n", out)
}

type scriptedLines struct {
	lines []string
}

func (s *scriptedLines) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestRepl(t *testing.T) {
	testCases := []struct {
		name        string
		lines       []string
		expectedOut string
		expectedErr string
	}{
		{"until EOF", []string{"number", "", "T <: T"}, "number\ntrue\n", ""},
		{"quit", []string{"number", ":q", "string"}, "number\n", ""},
		{"errors do not stop it", []string{"(->)", "string"}, "string\n", "(E003) no parameter types before '->': (->)\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
			err := repl(texp.NewTypeCtx(), &scriptedLines{lines: testCase.lines}, out, errOut)
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedOut, out.String())
			assert.Equal(t, testCase.expectedErr, errOut.String())
		})
	}
}

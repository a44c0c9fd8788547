package cmd

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cottand/texp/texp"
	"github.com/cottand/texp/texp/texperr"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ReplCmd = withCommonFlags(&cobra.Command{
	Use:          "repl",
	Short:        "Evaluate type expressions interactively, :q to quit",
	RunE:         runRepl,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
})

const replPrompt = "texp> "

var resultColor = color.New(color.FgGreen)

type lineReader interface {
	Readline() (string, error)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	rl, err := readline.New(replPrompt)
	if err != nil {
		return errors.Wrap(err, "could not start the line editor")
	}
	defer func() { _ = rl.Close() }()
	return repl(newTypeCtx(), rl, rl.Stdout(), rl.Stderr())
}

// repl evaluates lines from lines until it is interrupted, reaches EOF or reads :q
func repl(ctx *texp.TypeCtx, lines lineReader, out, errOut io.Writer) error {
	for {
		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "could not read line")
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":q":
			return nil
		}
		res, err := evaluate(ctx, line)
		if err != nil {
			var texpErr texperr.TexpError
			if errors.As(err, &texpErr) {
				_, _ = errorColor.Fprintln(errOut, texperr.FormatWithCode(texpErr))
			} else {
				_, _ = errorColor.Fprintln(errOut, err)
			}
			continue
		}
		_, _ = resultColor.Fprintln(out, res)
	}
}

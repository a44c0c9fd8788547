package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cottand/texp/texp/texperr"
	"github.com/cottand/texp/util"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var CheckCmd = withCommonFlags(&cobra.Command{
	Use:   "check <file>",
	Short: "Evaluate every line of a file and report all the failures",
	Long: `Every line of the file is one of
  a <: b    print whether a is a subtype of b
  a ~ b     print whether a and b are alpha-equivalent
  a - b     print the difference of a and b
  a         print the canonical form of a
Blank lines and text after ';' are ignored.`,
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
})

var errorColor = color.New(color.FgRed)

func runCheck(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "could not read %s", args[0])
	}
	errs, err := checkLines(string(content), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrapf(err, "could not check %s", args[0])
	}
	if errs.HasError() {
		logger.Debug("check failed", "file", args[0], "errors", errs)
		return errors.Errorf("%d type expressions in %s failed", len(errs.Errors()), args[0])
	}
	return nil
}

// checkLines evaluates content line by line with a single type context. Failures to parse are
// collected and reported on errOut; any other failure stops the check.
func checkLines(content string, out, errOut io.Writer) (*texperr.Errors, error) {
	ctx := newTypeCtx()
	var errs *texperr.Errors
	for i, line := range strings.Split(content, "\n") {
		line, _ = util.StringTakeUntil(line, ';')
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res, err := evaluate(ctx, line)
		var texpErr texperr.TexpError
		switch {
		case errors.As(err, &texpErr):
			errs = errs.With(texpErr)
			_, _ = errorColor.Fprintf(errOut, "%d: %s\n", i+1, texperr.FormatWithCode(texpErr))
		case err != nil:
			return errs, errors.Wrapf(err, "line %d", i+1)
		default:
			_, _ = fmt.Fprintf(out, "%d: %s\n", i+1, res)
		}
	}
	return errs, nil
}

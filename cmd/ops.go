package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cottand/texp/texp"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var ParseCmd = withCommonFlags(&cobra.Command{
	Use:          "parse <texp>...",
	Short:        "Parse type expressions and print their canonical form",
	RunE:         runParse,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
})

var SubtypeCmd = withCommonFlags(&cobra.Command{
	Use:          "subtype <texp> <texp>",
	Short:        "Print whether the first type expression is a subtype of the second",
	RunE:         runBinary("<:"),
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
})

var EquivCmd = withCommonFlags(&cobra.Command{
	Use:          "equiv <texp> <texp>",
	Short:        "Print whether two type expressions are equal up to renaming of type variables",
	RunE:         runBinary("~"),
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
})

var DiffCmd = withCommonFlags(&cobra.Command{
	Use:          "diff <texp> <texp>",
	Short:        "Print the difference of two type expressions",
	RunE:         runBinary("-"),
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
})

var UnionCmd = withCommonFlags(&cobra.Command{
	Use:          "union <texp>...",
	Short:        "Print the canonical union of type expressions",
	RunE:         runNary((*texp.TypeCtx).MakeUnionTExp),
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
})

var InterCmd = withCommonFlags(&cobra.Command{
	Use:          "inter <texp>...",
	Short:        "Print the canonical intersection of type expressions",
	RunE:         runNary((*texp.TypeCtx).MakeInterTExp),
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
})

// dumper prints the structure of type expressions rather than their String form
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

func init() {
	ParseCmd.Flags().BoolVar(&current.dump, "dump", defaultSettings.dump, "also print the parsed structure")
}

type binaryOp struct {
	symbol string
	apply  func(ctx *texp.TypeCtx, t1, t2 texp.TExp) (string, error)
}

var binaryOps = []binaryOp{
	{"<:", func(ctx *texp.TypeCtx, t1, t2 texp.TExp) (string, error) {
		return strconv.FormatBool(ctx.IsSubType(t1, t2)), nil
	}},
	{"~", func(ctx *texp.TypeCtx, t1, t2 texp.TExp) (string, error) {
		return strconv.FormatBool(ctx.EquivalentTEs(t1, t2)), nil
	}},
	{"-", func(ctx *texp.TypeCtx, t1, t2 texp.TExp) (string, error) {
		return ctx.UnparseTExp(ctx.MakeDiffTExp(t1, t2))
	}},
}

func lookupOp(symbol string) binaryOp {
	for _, op := range binaryOps {
		if op.symbol == symbol {
			return op
		}
	}
	panic(fmt.Sprintf("unknown operator %s", symbol))
}

// applyBinary parses both sides with a shared variable scope, so T on the left is T on the right
func applyBinary(ctx *texp.TypeCtx, op binaryOp, left, right string) (string, error) {
	tes, err := ctx.ParseAll(left, right)
	if err != nil {
		return "", err
	}
	return op.apply(ctx, tes[0], tes[1])
}

// evaluate runs one line of the form `a <: b`, `a ~ b`, `a - b` or a single type expression,
// which is printed in canonical form
func evaluate(ctx *texp.TypeCtx, line string) (string, error) {
	for _, op := range binaryOps {
		if left, right, ok := strings.Cut(line, " "+op.symbol+" "); ok {
			logger.Debug("evaluating", "op", op.symbol, "left", left, "right", right)
			return applyBinary(ctx, op, left, right)
		}
	}
	te, err := ctx.ParseTE(line)
	if err != nil {
		return "", err
	}
	return ctx.UnparseTExp(te)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := newTypeCtx()
	tes, err := ctx.ParseAll(args...)
	if err != nil {
		return err
	}
	for _, te := range tes {
		if current.dump {
			dumper.Fdump(cmd.OutOrStdout(), te)
		}
		s, err := ctx.UnparseTExp(te)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}

func runBinary(symbol string) func(*cobra.Command, []string) error {
	op := lookupOp(symbol)
	return func(cmd *cobra.Command, args []string) error {
		res, err := applyBinary(newTypeCtx(), op, args[0], args[1])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	}
}

func runNary(combine func(*texp.TypeCtx, []texp.TExp) texp.TExp) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := newTypeCtx()
		tes, err := ctx.ParseAll(args...)
		if err != nil {
			return err
		}
		res, err := ctx.UnparseTExp(combine(ctx, tes))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	}
}

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/YasinAHA/calculator-mcp/pkg/calculator"
	"github.com/YasinAHA/calculator-mcp/pkg/types"
)

// Error codes reported by calculation commands.
const (
	CodeDivisionByZero  = "DIVISION_BY_ZERO"
	CodeOverflow        = "OVERFLOW"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeCalculation     = "CALCULATION_FAILED"
)

var calcShort = map[calculator.Op]string{
	calculator.OpAdd:      "Add two integers",
	calculator.OpSubtract: "Subtract B from A",
	calculator.OpMultiply: "Multiply two integers",
	calculator.OpDivide:   "Divide A by B, truncating toward zero",
}

// NewCalcCommand creates the command for a single arithmetic operation.
func NewCalcCommand(rootOpts *RootOptions, op calculator.Op) *cobra.Command {
	return &cobra.Command{
		Use:           fmt.Sprintf("%s <a> <b>", op),
		Short:         calcShort[op],
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(rootOpts, op, args, cmd)
		},
	}
}

func runCalc(opts *RootOptions, op calculator.Op, args []string, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	operands := make([]int64, len(args))
	for i, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			msg := fmt.Sprintf("operand %q is not a 64-bit integer", arg)
			if ferr := out.Error(CodeInvalidArgument, msg, nil); ferr != nil {
				return ferr
			}
			return &ExitError{Code: ExitCommandError, Message: msg, Err: err, Reported: true}
		}
		operands[i] = n
	}
	a, b := operands[0], operands[1]

	calc := cfg.NewCalculator()
	out.VerboseLog("%s %d %d (overflow=%s)", op, a, b, calc.Overflow)

	result, err := calc.Apply(op, a, b)
	if err != nil {
		resp := types.NewFailedCalculationResponse(string(op), op.Symbol(), a, b, err)
		if ferr := out.Error(errorCode(err), resp.Summary, resp); ferr != nil {
			return ferr
		}
		return &ExitError{Code: ExitFailure, Message: resp.Summary, Err: err, Reported: true}
	}

	resp := types.NewCalculationResponse(string(op), op.Symbol(), a, b, result)
	return out.Success(strconv.FormatInt(result, 10), resp)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return CodeDivisionByZero
	case errors.Is(err, calculator.ErrOverflow):
		return CodeOverflow
	}
	return CodeCalculation
}

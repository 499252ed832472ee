package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arvidh/bigint"
	"github.com/arvidh/bigint/context"
)

var resultColor = color.New(color.FgGreen, color.Bold)

// parseOperand reads one command-line operand in the input base selected
// by the --base flag.
func parseOperand(cmd *cobra.Command, cfg bigint.Config, s string) (*bigint.Int, error) {
	base, _ := cmd.Flags().GetInt("base")
	z, err := cfg.Parse(new(bigint.Int), s, base)
	if err != nil {
		return nil, fmt.Errorf("operand %q: %w", s, err)
	}
	return z, nil
}

func printResult(cmd *cobra.Command, cfg bigint.Config, z *bigint.Int) error {
	obase, _ := cmd.Flags().GetInt("obase")
	if obase < 2 || obase > bigint.MaxBase {
		return fmt.Errorf("output base %d out of range [2, %d]", obase, bigint.MaxBase)
	}
	resultColor.Println(cfg.Text(z, obase))
	return nil
}

// binaryRun builds the shared argument handling of the two-operand
// commands: parse both operands, apply op, print the result.
func binaryRun(op func(ctx *context.Context, z, x, y *bigint.Int) *bigint.Int) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		x, err := parseOperand(cmd, cfg, args[0])
		if err != nil {
			return err
		}
		y, err := parseOperand(cmd, cfg, args[1])
		if err != nil {
			return err
		}

		ctx := context.New(cfg)
		z := op(ctx, new(bigint.Int), x, y)
		if err := ctx.Err(); err != nil {
			return err
		}
		return printResult(cmd, cfg, z)
	}
}

var addCmd = &cobra.Command{
	Use:   "add <x> <y>",
	Short: "Print the sum x+y",
	Args:  cobra.ExactArgs(2),
	RunE: binaryRun(func(ctx *context.Context, z, x, y *bigint.Int) *bigint.Int {
		return ctx.Add(z, x, y)
	}),
}

var subCmd = &cobra.Command{
	Use:   "sub <x> <y>",
	Short: "Print the difference x-y",
	Args:  cobra.ExactArgs(2),
	RunE: binaryRun(func(ctx *context.Context, z, x, y *bigint.Int) *bigint.Int {
		return ctx.Sub(z, x, y)
	}),
}

var mulCmd = &cobra.Command{
	Use:   "mul <x> <y>",
	Short: "Print the product x*y",
	Args:  cobra.ExactArgs(2),
	RunE: binaryRun(func(ctx *context.Context, z, x, y *bigint.Int) *bigint.Int {
		return ctx.Mul(z, x, y)
	}),
}

var divCmd = &cobra.Command{
	Use:   "div <x> <y>",
	Short: "Print the truncated quotient x/y and remainder x%y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		x, err := parseOperand(cmd, cfg, args[0])
		if err != nil {
			return err
		}
		y, err := parseOperand(cmd, cfg, args[1])
		if err != nil {
			return err
		}

		ctx := context.New(cfg)
		q, r := ctx.QuoRem(new(bigint.Int), x, y, new(bigint.Int))
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := printResult(cmd, cfg, q); err != nil {
			return err
		}
		return printResult(cmd, cfg, r)
	},
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt <x>",
	Short: "Print the integer square root of x",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		x, err := parseOperand(cmd, cfg, args[0])
		if err != nil {
			return err
		}

		ctx := context.New(cfg)
		z := ctx.Sqrt(new(bigint.Int), x)
		if err := ctx.Err(); err != nil {
			return err
		}
		return printResult(cmd, cfg, z)
	},
}

var powCmd = &cobra.Command{
	Use:   "pow <x> <n>",
	Short: "Print the power x**n for n >= 0",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		x, err := parseOperand(cmd, cfg, args[0])
		if err != nil {
			return err
		}
		e, err := strconv.ParseInt(args[1], 0, 64)
		if err != nil {
			return fmt.Errorf("exponent %q: %w", args[1], err)
		}
		n, err := safecast.Conv[uint64](e)
		if err != nil {
			return fmt.Errorf("exponent must not be negative: %w", err)
		}

		ctx := context.New(cfg)
		z := ctx.Pow(new(bigint.Int), x, n)
		if err := ctx.Err(); err != nil {
			return err
		}
		return printResult(cmd, cfg, z)
	},
}

// Command decimalctl is a calculator built on top of the decimal package,
// exercising its public arithmetic, comparison, rounding, and
// transcendental surface from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/sumeric/decimal"
)

var logger log.Logger

func main() {
	logger = level.NewFilter(
		log.NewLogfmtLogger(os.Stderr),
		level.AllowInfo(),
	)

	root := &cobra.Command{
		Use:   "decimalctl",
		Short: "Exact decimal arithmetic from the command line",
	}
	var scale int
	root.PersistentFlags().IntVar(&scale, "scale", 16, "fractional digits for transcendental results (sqrt, exp, ln, log10, pow)")

	binary := func(name string, op func(a, b decimal.Decimal) (decimal.Decimal, error)) *cobra.Command {
		return &cobra.Command{
			Use:  name + " A B",
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, b, err := parseTwo(args)
				if err != nil {
					return err
				}
				result, err := op(a, b)
				if err != nil {
					level.Error(logger).Log("op", name, "err", err)
					return err
				}
				fmt.Println(result.String())
				return nil
			},
		}
	}

	root.AddCommand(
		binary("add", decimal.Add),
		binary("sub", decimal.Sub),
		binary("mul", decimal.Mul),
		binary("quo", decimal.Quo),
		binary("mod", decimal.Mod),
	)

	root.AddCommand(&cobra.Command{
		Use:  "round SCALE VALUE",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return roundLike(args, decimal.Round)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:  "trunc SCALE VALUE",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return roundLike(args, decimal.Trunc)
		},
	})

	unary := func(name string, op func(d decimal.Decimal, scale int) (decimal.Decimal, error)) *cobra.Command {
		return &cobra.Command{
			Use:  name + " VALUE",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := decimal.Parse(args[0])
				if err != nil {
					return err
				}
				result, err := op(d, scale)
				if err != nil {
					level.Error(logger).Log("op", name, "err", err)
					return err
				}
				fmt.Println(result.String())
				return nil
			},
		}
	}
	root.AddCommand(
		unary("sqrt", decimal.Sqrt),
		unary("exp", decimal.Exp),
		unary("ln", decimal.Ln),
		unary("log10", decimal.Log10),
	)

	root.AddCommand(&cobra.Command{
		Use:  "pow BASE EXP",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, exp, err := parseTwo(args)
			if err != nil {
				return err
			}
			result, err := decimal.Pow(base, exp, scale)
			if err != nil {
				level.Error(logger).Log("op", "pow", "err", err)
				return err
			}
			fmt.Println(result.String())
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:  "cmp A B",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseTwo(args)
			if err != nil {
				return err
			}
			fmt.Println(decimal.Cmp(a, b))
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func parseTwo(args []string) (decimal.Decimal, decimal.Decimal, error) {
	a, err := decimal.Parse(args[0])
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	b, err := decimal.Parse(args[1])
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return a, b, nil
}

func roundLike(args []string, op func(decimal.Decimal, int) (decimal.Decimal, error)) error {
	var scale int
	if _, err := fmt.Sscanf(args[0], "%d", &scale); err != nil {
		return err
	}
	d, err := decimal.Parse(args[1])
	if err != nil {
		return err
	}
	result, err := op(d, scale)
	if err != nil {
		level.Error(logger).Log("op", "round", "err", err)
		return err
	}
	fmt.Println(result.String())
	return nil
}

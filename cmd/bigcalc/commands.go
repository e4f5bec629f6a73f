package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/de-Manzanares/sch/bigint"
)

func parseOperand(s string) (bigint.BigInt, error) {
	v, err := bigint.FromString(s)
	if err != nil {
		return bigint.BigInt{}, fmt.Errorf("operand %q: %w", s, err)
	}
	return v, nil
}

func logOperands(cmd *cobra.Command, op string, operands ...bigint.BigInt) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return
	}
	log.Printf("op=%s operands=%v", op, operands)
}

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Print A + B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		logOperands(cmd, "add", a, b)
		cmd.Println(a.Add(b))
		return nil
	},
}

var subCmd = &cobra.Command{
	Use:   "sub A B",
	Short: "Print A - B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		logOperands(cmd, "sub", a, b)
		cmd.Println(a.Sub(b))
		return nil
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul A B",
	Short: "Print A * B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		logOperands(cmd, "mul", a, b)
		cmd.Println(a.Mul(b))
		return nil
	},
}

var divCmd = &cobra.Command{
	Use:   "div A B",
	Short: "Print the truncated quotient A / B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		logOperands(cmd, "div", a, b)
		q, err := a.Div(b)
		if err != nil {
			return err
		}
		cmd.Println(q)
		return nil
	},
}

var modCmd = &cobra.Command{
	Use:   "mod A B",
	Short: "Print the remainder of A / B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		logOperands(cmd, "mod", a, b)
		r, err := a.Mod(b)
		if err != nil {
			return err
		}
		cmd.Println(r)
		return nil
	},
}

var powCmd = &cobra.Command{
	Use:   "pow BASE EXP",
	Short: "Print BASE raised to the non-negative integer power EXP",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		exp, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		expV, ok := exp.Int64()
		if !ok {
			return fmt.Errorf("exponent %q does not fit in a machine integer", args[1])
		}
		logOperands(cmd, "pow", base, exp)
		result, err := bigint.Pow(base, expV)
		if err != nil {
			return err
		}
		cmd.Println(result)
		return nil
	},
}

// modexpCmd prints BASE^EXP mod MOD for one, two, or four exponents,
// sharing the precomputed powers-of-two ladder across them the same way
// bigint.PreTable's DoubleExp/FourfoldExp do.
var modexpCmd = &cobra.Command{
	Use:   "modexp BASE MOD EXP...",
	Short: "Print BASE^EXP mod MOD for 1, 2, or 4 exponents sharing one precomputed table",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		modulus, err := parseOperand(args[1])
		if err != nil {
			return err
		}

		exps := make([]bigint.BigInt, 0, len(args)-2)
		for _, a := range args[2:] {
			e, err := parseOperand(a)
			if err != nil {
				return err
			}
			exps = append(exps, e)
		}
		if len(exps) != 1 && len(exps) != 2 && len(exps) != 4 {
			return fmt.Errorf("modexp: expected 1, 2, or 4 exponents, got %d", len(exps))
		}

		bitLen := activeConfig.ModExp.TableBits
		for _, e := range exps {
			if bl := bigint.BitLen(e); bl > bitLen {
				bitLen = bl
			}
		}

		table, err := bigint.PreComputeTable(base, modulus, bitLen)
		if err != nil {
			return err
		}

		logOperands(cmd, "modexp", append([]bigint.BigInt{base, modulus}, exps...)...)

		switch len(exps) {
		case 1:
			z, err := table.Exp(exps[0])
			if err != nil {
				return err
			}
			cmd.Println(z)
		case 2:
			z1, z2, err := table.DoubleExp(exps[0], exps[1])
			if err != nil {
				return err
			}
			cmd.Println(z1)
			cmd.Println(z2)
		case 4:
			z, err := table.FourfoldExp([4]bigint.BigInt{exps[0], exps[1], exps[2], exps[3]})
			if err != nil {
				return err
			}
			for _, v := range z {
				cmd.Println(v)
			}
		}
		return nil
	},
}

var cmpCmd = &cobra.Command{
	Use:   "cmp A B",
	Short: "Print -1, 0, or 1 according to whether A is less than, equal to, or greater than B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		logOperands(cmd, "cmp", a, b)
		cmd.Println(a.Cmp(b))
		return nil
	},
}

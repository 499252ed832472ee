package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/arvidh/bigint"
)

var convCmd = &cobra.Command{
	Use:   "conv <value>",
	Short: "Convert a value between bases and digit alphabets",
	Long: `conv re-renders an integer in another base. The input base comes from
--base (0 infers it from a 0x or 0 prefix) and the output base from
--to. A custom digit alphabet for the output is given with --alphabet;
its first --to characters are the digits, in value order, and zero
prints as its first character.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		x, err := parseOperand(cmd, cfg, args[0])
		if err != nil {
			return err
		}

		to, _ := cmd.Flags().GetInt64("to")
		obase, err := safecast.Conv[int](to)
		if err != nil {
			return fmt.Errorf("output base %d: %w", to, err)
		}

		chars, _ := cmd.Flags().GetString("alphabet")
		if chars == "" {
			if obase < 2 || obase > bigint.MaxBase {
				return fmt.Errorf("output base %d out of range [2, %d]", obase, bigint.MaxBase)
			}
			resultColor.Println(x.Text(obase))
			return nil
		}

		alpha, err := bigint.NewAlphabet(chars)
		if err != nil {
			return err
		}
		if obase < 2 || obase > alpha.Len() {
			return fmt.Errorf("output base %d out of range [2, %d] for this alphabet", obase, alpha.Len())
		}
		resultColor.Println(x.TextAlphabet(obase, alpha))
		return nil
	},
}

func init() {
	convCmd.Flags().Int64("to", 10, "output base")
	convCmd.Flags().String("alphabet", "", "custom output digit alphabet")
}

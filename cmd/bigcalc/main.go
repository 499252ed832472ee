package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arvidh/bigint"
)

var rootCmd = &cobra.Command{
	Use:   "bigcalc",
	Short: "Arbitrary-precision integer calculator",
	Long: `bigcalc evaluates arbitrary-precision integer operations from the
command line. Operands are integers of any length, in any base from 2
to 62 (or a custom digit alphabet), with strategy selection between the
schoolbook, Karatsuba and FFT multipliers and the schoolbook and Newton
dividers.`,
	SilenceUsage: true,
}

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
	rootCmd.AddCommand(powCmd)
	rootCmd.AddCommand(sqrtCmd)
	rootCmd.AddCommand(convCmd)

	rootCmd.PersistentFlags().String("mul", "", "multiplication strategy (auto|classic|karatsuba|fft)")
	rootCmd.PersistentFlags().String("div", "", "division strategy (auto|classic|newton)")
	rootCmd.PersistentFlags().Int("base", 0, "input base; 0 infers from 0x/0 prefixes")
	rootCmd.PersistentFlags().Int("obase", 10, "output base")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colorized output")

	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

const version = "0.3.0"

// buildConfig resolves the strategy configuration for a command run:
// bigcalc.toml defaults first, then command-line flag overrides.
func buildConfig(cmd *cobra.Command) (bigint.Config, error) {
	cfg := bigint.Config{}

	if manifest, ok, err := loadManifest("."); err != nil {
		return cfg, err
	} else if ok {
		cfg = manifest.Config
	}

	if s, _ := cmd.Flags().GetString("mul"); s != "" {
		m, err := parseMulMode(s)
		if err != nil {
			return cfg, err
		}
		cfg.MulMode = m
	}
	if s, _ := cmd.Flags().GetString("div"); s != "" {
		m, err := parseDivMode(s)
		if err != nil {
			return cfg, err
		}
		cfg.DivMode = m
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}
	return cfg, nil
}

func parseMulMode(s string) (bigint.MulMode, error) {
	switch s {
	case "auto":
		return bigint.MulAuto, nil
	case "classic":
		return bigint.MulClassic, nil
	case "karatsuba":
		return bigint.MulKaratsuba, nil
	case "fft":
		return bigint.MulFFT, nil
	}
	return 0, fmt.Errorf("unknown multiplication strategy %q", s)
}

func parseDivMode(s string) (bigint.DivMode, error) {
	switch s {
	case "auto":
		return bigint.DivAuto, nil
	case "classic":
		return bigint.DivClassic, nil
	case "newton":
		return bigint.DivNewton, nil
	}
	return 0, fmt.Errorf("unknown division strategy %q", s)
}

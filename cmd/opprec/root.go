package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/opprec"
)

var rootCmd = &cobra.Command{
	Use:   "opprec [input]",
	Short: "Sum homework expressions under two precedence rules",
	Long: "opprec evaluates one expression per line of the input (default input.txt, or - for stdin)\n" +
		"and prints the sum with + and * applied left to right, then the sum with + before *.",
	Args:          cobra.MaximumNArgs(1),
	RunE:          runHomework,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each line's values")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetDefault("input", "input.txt")
}

func initConfig() {
	viper.SetEnvPrefix("OPPREC")
	viper.AutomaticEnv()
}

// inputName picks the input named on the command line or the configured
// default.
func inputName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return viper.GetString("input")
}

func runHomework(cmd *cobra.Command, args []string) error {
	name := inputName(args)
	exprs, err := loadExprs(name, cmd.InOrStdin())
	if err != nil {
		return err
	}
	var each func(*opprec.Expr, opprec.Answer)
	if viper.GetBool("verbose") {
		each = logAnswer
	}
	a, err := opprec.TotalsFunc(exprs, each)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1: %d\nPart 2: %d\n", a.Part1, a.Part2)
	return nil
}

func loadExprs(name string, stdin io.Reader) ([]*opprec.Expr, error) {
	if name != "-" {
		return opprec.LoadFile(name)
	}
	exprs, err := opprec.Load(stdin)
	if err != nil {
		return nil, &opprec.ReadError{Path: "stdin", Err: err}
	}
	return exprs, nil
}

// logAnswer logs the value of one expression under both rules.
func logAnswer(e *opprec.Expr, a opprec.Answer) {
	log.Printf("%d: %s = %d %v, %d %v", e.Line(), e, a.Part1, opprec.Flat, a.Part2, opprec.AdditionFirst)
}

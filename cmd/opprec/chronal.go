package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zephyrtronium/opprec/chronal"
)

var chronalCmd = &cobra.Command{
	Use:   "chronal [input]",
	Short: "Measure Manhattan-distance regions around coordinates",
	Long: "chronal reads one \"x, y\" coordinate per line and prints the largest finite area claimed\n" +
		"by a single coordinate, then the size of the region within --limit total distance of all of them.",
	Args: cobra.MaximumNArgs(1),
	RunE: runChronal,
}

func init() {
	chronalCmd.Flags().Int("size", 350, "Width and height of the grid")
	chronalCmd.Flags().Int("limit", 10000, "Exclusive bound on total distance for the safe region")
	chronalCmd.Flags().Bool("render", false, "Print the claimed grid before the answers")

	_ = viper.BindPFlag("size", chronalCmd.Flags().Lookup("size"))
	_ = viper.BindPFlag("limit", chronalCmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("render", chronalCmd.Flags().Lookup("render"))

	rootCmd.AddCommand(chronalCmd)
}

func runChronal(cmd *cobra.Command, args []string) error {
	name := inputName(args)
	size := viper.GetInt("size")
	if size <= 0 {
		return fmt.Errorf("grid size must be positive, not %d", size)
	}
	var in io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("reading coordinates: %w", err)
		}
		defer f.Close()
		in = f
	}
	coords, err := chronal.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	out := cmd.OutOrStdout()
	if viper.GetBool("render") {
		if _, err := chronal.Claim(coords, size).WriteTo(out); err != nil {
			return err
		}
	}
	r, err := chronal.LargestFiniteArea(coords, size)
	if err != nil {
		return fmt.Errorf("%s on a %d×%d grid: %w", name, size, size, err)
	}
	if viper.GetBool("verbose") {
		log.Printf("coordinate #%d %v has the largest finite area", r.Index+1, r.Coord)
	}
	fmt.Fprintf(out, "Part 1: %d\nPart 2: %d\n", r.Area, chronal.SafeRegion(coords, size, viper.GetInt("limit")))
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pumpkins",
	Short: "Plant cells on a grid and watch them merge into pumpkins",
	Long: `Drivers for the pumpkins square-merge engine.

Cells are planted one at a time in a random order; whenever the planted
cells exactly fill a square region, the region merges into one pumpkin.

Examples:
  pumpkins play --size 20
  pumpkins bench --sizes 10,20,40 -n 5 --json`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

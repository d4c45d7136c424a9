package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Alextopher/pumpkins"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

var playSize int

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Insert a random order interactively, one cell per keypress",
		RunE:  runPlay,
	}
	playCmd.Flags().IntVarP(&playSize, "size", "s", 20, "Grid size")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	start := time.Now()
	table, err := pumpkins.Build(playSize)
	if err != nil {
		return err
	}
	fmt.Printf("Built lookup table in %v\n", time.Since(start))

	patch, err := pumpkins.NewPatch(playSize, table)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	order := rand.Perm(playSize * playSize)
	for _, idx := range order {
		x, y := idx%playSize, idx/playSize
		sq, err := patch.Insert(x, y)
		if err != nil {
			return err
		}
		fmt.Printf("Insert: %d / (%d, %d) | %v\n", idx+1, x, y, sq)
		fmt.Print(colorize(patch))
		if _, err := reader.ReadString('\n'); err != nil {
			break
		}
	}
	return nil
}

// colorize renders the identity grid like Patch.Render (y inverted, 0
// for unplanted cells), cycling region identities through a small
// terminal palette.
func colorize(p *pumpkins.Patch) string {
	palette := []func(interface{}) aurora.Value{
		aurora.Red, aurora.Green, aurora.Yellow,
		aurora.Blue, aurora.Magenta, aurora.Cyan,
	}
	n := p.Size()
	var sb strings.Builder
	for y := n - 1; y >= 0; y-- {
		for x := 0; x < n; x++ {
			id, planted := p.Get(x, y)
			cell := fmt.Sprintf("%3d ", id)
			if planted {
				cell = palette[int(id)%len(palette)](cell).String()
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

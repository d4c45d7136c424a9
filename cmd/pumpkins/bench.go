package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Alextopher/pumpkins"
	"github.com/bytedance/sonic"
	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	benchSizes   []int
	benchSamples int
	benchJSON    bool
)

func init() {
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark random full fills across grid sizes",
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{10, 20, 30, 40, 50, 60, 70, 80}, "Grid sizes to benchmark")
	benchCmd.Flags().IntVarP(&benchSamples, "samples", "n", 5, "Random fills per grid size")
	benchCmd.Flags().BoolVar(&benchJSON, "json", false, "Emit results as JSON")
	rootCmd.AddCommand(benchCmd)
}

type benchResult struct {
	Size       int    `json:"size"`
	Samples    int    `json:"samples"`
	TableBuild string `json:"table_build"`
	Fill       string `json:"fill_average"`
	PerInsert  string `json:"per_insert"`
}

func runBench(cmd *cobra.Command, args []string) error {
	results := make([]benchResult, 0, len(benchSizes))
	for _, size := range benchSizes {
		res, err := benchSize(size, benchSamples)
		if err != nil {
			return err
		}
		results = append(results, res)
		if !benchJSON {
			fmt.Printf("Size %dx%d - Table: %s - Fill: %s - ΔT: %s\n",
				size, size, res.TableBuild, res.Fill, res.PerInsert)
		}
	}

	if benchJSON {
		out, err := sonic.MarshalString(results)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func benchSize(size, samples int) (benchResult, error) {
	buildStart := time.Now()
	table, err := pumpkins.Build(size)
	if err != nil {
		return benchResult{}, err
	}
	buildTime := time.Since(buildStart)

	orders := make([][]int, samples)
	for i := range orders {
		orders[i] = rand.Perm(size * size)
	}

	bar := newBar(samples*size*size, fmt.Sprintf("%dx%d", size, size))
	start := time.Now()
	for _, order := range orders {
		patch, err := pumpkins.NewPatch(size, table)
		if err != nil {
			return benchResult{}, err
		}
		for _, idx := range order {
			if _, err := patch.Insert(idx%size, idx/size); err != nil {
				return benchResult{}, err
			}
			bar.Add(1)
		}
	}
	elapsed := time.Since(start)
	bar.Finish()
	bar.Close()
	fmt.Println()

	return benchResult{
		Size:       size,
		Samples:    samples,
		TableBuild: buildTime.String(),
		Fill:       (elapsed / time.Duration(samples)).String(),
		PerInsert:  (elapsed / time.Duration(samples*size*size)).String(),
	}, nil
}

func newBar(length int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(length,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

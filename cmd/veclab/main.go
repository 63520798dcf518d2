package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvail/veclab/internal/config"
	"github.com/nvail/veclab/internal/store"
	"github.com/nvail/veclab/internal/tui"
	"github.com/nvail/veclab/internal/viz"
	"github.com/nvail/veclab/internal/workload"
	"github.com/nvail/veclab/vec"
)

var (
	dataDir    string
	configFile string
	seed       int64
	runs       int
	chart      bool
	chartH     int
	save       bool
	jsonOut    bool
	tail       int
	pushes     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "veclab",
		Short: "vector container workload lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".veclab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "replay a workload scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "override the scenario seed")
	runCmd.Flags().IntVar(&runs, "runs", 1, "number of concurrent seeded runs")
	runCmd.Flags().BoolVar(&chart, "chart", false, "plot capacity vs size")
	runCmd.Flags().IntVar(&chartH, "chart-height", 10, "chart height")
	runCmd.Flags().BoolVar(&save, "save", false, "persist the run under the data directory")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "write the full trace as JSON to stdout")
	runCmd.Flags().IntVar(&tail, "tail", 12, "trace table rows to show (0 disables)")

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "chart the capacity growth policy",
		RunE:  runGrowth,
	}
	growthCmd.Flags().IntVar(&pushes, "pushes", 64, "number of pushes to chart")
	growthCmd.Flags().IntVar(&chartH, "chart-height", 10, "chart height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				sc := config.GetPreset(name)
				fmt.Printf("%-18s %d ops, seed %d\n", name, len(sc.Ops), sc.Seed)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  runList,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive vector playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(time.Now().UnixNano())
		},
	}

	rootCmd.AddCommand(runCmd, growthCmd, presetsCmd, listCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadScenario(args []string) (*config.Scenario, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if len(args) == 1 {
		sc := config.GetPreset(args[0])
		if sc == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'veclab presets')", args[0])
		}
		return sc, nil
	}
	return config.Default(), nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}

	w := sc.Workload()
	if seed != 0 {
		w.Seed = seed
	}

	ctx := context.Background()

	if runs > 1 {
		results, err := workload.NewEnsemble(w, runs, w.Seed).Run(ctx)
		if err != nil {
			return err
		}
		s := workload.Summarize(results)
		fmt.Printf("%d runs of %q\n", s.Runs, w.Name)
		fmt.Printf("mean final size %.1f, max final cap %d\n", s.MeanFinalSize, s.MaxFinalCap)
		fmt.Printf("reallocs %d, rejected %d (totals)\n", s.TotalReallocs, s.TotalRejected)
		return nil
	}

	result, err := workload.NewRunner().Run(ctx, w)
	if err != nil {
		return err
	}

	if jsonOut {
		return store.ExportJSON(os.Stdout, result)
	}

	fmt.Print(viz.Summary(result))
	if tail > 0 {
		fmt.Println()
		fmt.Print(viz.TraceTable(result.Trace, tail))
	}
	if chart {
		fmt.Println()
		fmt.Println(viz.CapacityChart(result.Trace, chartH))
	}

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(result)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved as %s\n", id)
	}
	return nil
}

func runGrowth(cmd *cobra.Command, args []string) error {
	if pushes < 1 {
		return fmt.Errorf("--pushes must be positive")
	}

	v := vec.New[int]()
	caps := make([]int, pushes)
	for i := 0; i < pushes; i++ {
		v.PushBack(i)
		caps[i] = v.Cap()
	}

	fmt.Println(viz.GrowthChart(caps, chartH))
	fmt.Printf("\n%d pushes, final capacity %d, utilization %.0f%%\n",
		pushes, v.Cap(), 100*float64(v.Size())/float64(v.Cap()))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	runsMeta, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runsMeta) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tSTEPS\tREALLOCS\tREJECTED\tFINAL\tWHEN")
	for _, m := range runsMeta {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%dx%d\t%s\n",
			m.ID, m.Scenario, m.Steps, m.Reallocs, m.Rejected,
			m.FinalSize, m.FinalCap, m.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

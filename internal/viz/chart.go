package viz

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/nvail/veclab/internal/workload"
)

// CapacityChart plots the capacity and size trajectories of a trace on
// one chart.
func CapacityChart(trace []workload.Point, height int) string {
	if len(trace) == 0 {
		return Subtle.Render("(empty trace)")
	}

	caps := make([]float64, len(trace))
	sizes := make([]float64, len(trace))
	for i, p := range trace {
		caps[i] = float64(p.Cap)
		sizes[i] = float64(p.Size)
	}

	chart := asciigraph.PlotMany(
		[][]float64{caps, sizes},
		asciigraph.Height(height),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Cyan),
		asciigraph.Caption("capacity (red) vs size (cyan) per step"),
	)
	return chart
}

// GrowthChart plots the capacity after each of n pushes into an
// initially empty vector.
func GrowthChart(caps []int, height int) string {
	series := make([]float64, len(caps))
	for i, c := range caps {
		series[i] = float64(c)
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("capacity after each of %d pushes", len(caps))),
	)
}

// TraceTable renders the tail of a trace as an aligned table.
func TraceTable(trace []workload.Point, limit int) string {
	if limit > 0 && len(trace) > limit {
		trace = trace[len(trace)-limit:]
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tSIZE\tCAP")
	for _, p := range trace {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", p.Step, p.Op, p.Size, p.Cap)
	}
	w.Flush()
	return b.String()
}

// Summary renders a one-run result block.
func Summary(r *workload.Result) string {
	var b strings.Builder
	b.WriteString(Title.Render(r.Scenario) + "\n")
	line := func(label string, value interface{}) {
		b.WriteString(MetricLabel.Render(label) + " " + MetricValue.Render(fmt.Sprint(value)) + "\n")
	}
	line("steps:", r.Steps)
	line("reallocs:", r.Reallocs)
	line("rejected:", r.Rejected)
	line("final size:", r.FinalSize)
	line("final cap:", r.FinalCap)
	b.WriteString(MetricLabel.Render("final:") + " " + r.Final + "\n")
	return b.String()
}

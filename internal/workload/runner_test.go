package workload_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nvail/veclab/internal/workload"
	"github.com/nvail/veclab/vec"
)

var _ = Describe("Runner", func() {
	var (
		runner *workload.Runner
		ctx    context.Context
	)

	BeforeEach(func() {
		runner = workload.NewRunner()
		ctx = context.Background()
	})

	It("replays a push script and records the growth trajectory", func() {
		sc := workload.Scenario{
			Name: "pushes",
			Ops:  []workload.Op{{Kind: workload.OpPush, Count: 3, Value: 7}},
		}

		result, err := runner.Run(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Steps).To(Equal(3))
		Expect(result.FinalSize).To(Equal(3))
		// capacity walks 0 -> 1 -> 2 -> 4
		Expect(result.FinalCap).To(Equal(4))
		Expect(result.Reallocs).To(Equal(3))
		Expect(result.Final).To(Equal("[7, 7, 7]"))

		caps := make([]int, 0, len(result.Trace))
		for _, p := range result.Trace {
			caps = append(caps, p.Cap)
		}
		Expect(caps).To(Equal([]int{1, 2, 4}))
	})

	It("counts rejected operations without aborting the run", func() {
		sc := workload.Scenario{
			Name: "pop-from-empty",
			Ops: []workload.Op{
				{Kind: workload.OpPop},
				{Kind: workload.OpPush, Value: 1},
			},
		}

		result, err := runner.Run(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Rejected).To(Equal(1))
		Expect(result.Errors).To(HaveLen(1))
		Expect(result.Errors[0]).To(MatchError(vec.ErrEmpty))
		Expect(result.Final).To(Equal("[1]"))
	})

	It("leaves the vector unchanged across a rejected step", func() {
		sc := workload.Scenario{
			Name: "reject-insert",
			Ops: []workload.Op{
				{Kind: workload.OpPush, Count: 2, Value: 5},
				{Kind: workload.OpInsert, Index: 9, Value: 1},
			},
		}

		result, err := runner.Run(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Rejected).To(Equal(1))
		Expect(result.Errors[0]).To(MatchError(vec.ErrIterOutOfBounds))

		last := result.Trace[len(result.Trace)-1]
		prev := result.Trace[len(result.Trace)-2]
		Expect(last.Size).To(Equal(prev.Size))
		Expect(last.Cap).To(Equal(prev.Cap))
	})

	It("replays insert and erase at scripted offsets", func() {
		sc := workload.Scenario{
			Name: "walk",
			Ops: []workload.Op{
				{Kind: workload.OpPush, Value: 1},
				{Kind: workload.OpPush, Value: 2},
				{Kind: workload.OpPush, Value: 3},
				{Kind: workload.OpInsert, Index: 1, Value: 9},
				{Kind: workload.OpErase, Index: 0},
				{Kind: workload.OpPop},
			},
		}

		result, err := runner.Run(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Rejected).To(BeZero())
		Expect(result.Final).To(Equal("[9, 2]"))
		Expect(result.FinalCap).To(Equal(4))
	})

	It("applies reserve, shrink and clear", func() {
		sc := workload.Scenario{
			Name: "capacity-ops",
			Ops: []workload.Op{
				{Kind: workload.OpReserve, N: 32},
				{Kind: workload.OpPush, Count: 5, RandomValue: true},
				{Kind: workload.OpShrink},
				{Kind: workload.OpClear},
			},
		}

		result, err := runner.Run(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Trace[0].Cap).To(Equal(32))
		// pushes fit inside the reservation, so only reserve and shrink
		// reallocate
		Expect(result.Reallocs).To(Equal(2))
		Expect(result.FinalCap).To(Equal(5))
		Expect(result.FinalSize).To(BeZero())
	})

	It("is reproducible for a fixed seed", func() {
		sc := workload.Scenario{
			Name: "seeded",
			Seed: 42,
			Ops: []workload.Op{
				{Kind: workload.OpPush, Count: 20, RandomValue: true},
				{Kind: workload.OpErase, Count: 5, RandomIndex: true},
			},
		}

		a, err := runner.Run(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		b, err := workload.NewRunner().Run(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Final).To(Equal(b.Final))
		Expect(a.Trace).To(Equal(b.Trace))
	})

	It("stops between steps when the context is canceled", func() {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		sc := workload.Scenario{
			Name: "canceled",
			Ops:  []workload.Op{{Kind: workload.OpPush, Count: 100}},
		}

		result, err := runner.Run(canceled, sc)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.Steps).To(BeZero())
	})

	It("notifies observers once per step", func() {
		var seen []workload.Point
		runner.AddObserver(observerFunc(func(p workload.Point) {
			seen = append(seen, p)
		}))

		sc := workload.Scenario{
			Name: "observed",
			Ops:  []workload.Op{{Kind: workload.OpPush, Count: 4}},
		}

		result, err := runner.Run(ctx, sc)
		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(HaveLen(result.Steps))
		Expect(seen[3].Size).To(Equal(4))
	})
})

var _ = Describe("Ensemble", func() {
	It("runs every variant to completion and aggregates", func() {
		base := workload.Scenario{
			Name: "ensemble",
			Ops: []workload.Op{
				{Kind: workload.OpPush, Count: 50, RandomValue: true},
				{Kind: workload.OpErase, Count: 10, RandomIndex: true},
			},
		}

		results, err := workload.NewEnsemble(base, 8, 100).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(8))

		for i, r := range results {
			Expect(r).NotTo(BeNil())
			Expect(r.Seed).To(Equal(int64(100 + i)))
			Expect(r.FinalSize).To(Equal(40))
		}

		s := workload.Summarize(results)
		Expect(s.Runs).To(Equal(8))
		Expect(s.MeanFinalSize).To(Equal(40.0))
		Expect(s.MaxFinalCap).To(BeNumerically(">=", 50))
	})
})

type observerFunc func(workload.Point)

func (f observerFunc) OnStep(p workload.Point) { f(p) }

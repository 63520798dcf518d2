// Package workload replays scripted operation sequences against a
// vector and records how its size and capacity evolve.
//
//   - [Scenario]: a named script of [Op] steps with a seed
//   - [Runner]: applies a scenario to a fresh vector, producing a [Result]
//   - [Ensemble]: concurrent seeded variants of one scenario
//   - [Point]: one size/capacity sample per applied step
//
// Rejected operations (pop on empty, out-of-range insert) are recorded,
// not fatal; observing the container's error behavior is part of the
// workload.
//
// # Example
//
//	sc := workload.Scenario{
//	    Name: "churn",
//	    Ops: []workload.Op{
//	        {Kind: workload.OpPush, Count: 100, RandomValue: true},
//	        {Kind: workload.OpErase, Count: 20, RandomIndex: true},
//	    },
//	}
//	result, _ := workload.NewRunner().Run(ctx, sc)
//
// # Thread Safety
//
// A Runner drives exactly one vector and is single-threaded. [Ensemble]
// achieves parallelism by giving every goroutine its own Runner and
// vector, never by sharing a container.
package workload

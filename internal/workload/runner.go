package workload

import (
	"context"
	"math/rand"

	"github.com/nvail/veclab/vec"
)

// Runner replays a scenario against a fresh vector, sampling size and
// capacity after every step. Rejected operations (pop on empty, insert
// past the end, ...) are counted and collected, never fatal: the point
// of a workload is to observe the container's behavior, including its
// error taxonomy.
type Runner struct {
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run replays the scenario and returns the recorded trace. The context
// is checked between steps; cancellation returns the partial result
// alongside ctx.Err().
func (r *Runner) Run(ctx context.Context, sc Scenario) (*Result, error) {
	rng := rand.New(rand.NewSource(sc.Seed))
	v := vec.New[int]()

	result := &Result{
		Scenario: sc.Name,
		Seed:     sc.Seed,
		Trace:    make([]Point, 0, sc.Steps()),
	}

	step := 0
	for _, op := range sc.Ops {
		count := op.Count
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			select {
			case <-ctx.Done():
				r.finish(result, v)
				return result, ctx.Err()
			default:
			}

			capBefore := v.Cap()
			if err := r.apply(v, rng, op); err != nil {
				result.Rejected++
				result.Errors = append(result.Errors, err)
			}
			if v.Cap() != capBefore {
				result.Reallocs++
			}

			step++
			p := Point{Step: step, Op: op.Kind, Size: v.Size(), Cap: v.Cap()}
			result.Trace = append(result.Trace, p)
			for _, o := range r.observers {
				o.OnStep(p)
			}
		}
	}

	r.finish(result, v)
	return result, nil
}

func (r *Runner) finish(result *Result, v *vec.Vector[int]) {
	result.Steps = len(result.Trace)
	result.Final = v.String()
	result.FinalSize = v.Size()
	result.FinalCap = v.Cap()
}

func (r *Runner) apply(v *vec.Vector[int], rng *rand.Rand, op Op) error {
	switch op.Kind {
	case OpPush:
		v.PushBack(r.value(rng, op))
		return nil
	case OpPop:
		return v.PopBack()
	case OpInsert:
		pos := cursorAt(v, r.index(rng, op, v.Size()))
		_, err := v.Insert(pos, r.value(rng, op))
		return err
	case OpErase:
		pos := cursorAt(v, r.index(rng, op, v.Size()-1))
		_, err := v.Erase(pos)
		return err
	case OpReserve:
		v.Reserve(op.N)
		return nil
	case OpShrink:
		v.ShrinkToFit()
		return nil
	case OpClear:
		v.Clear()
		return nil
	}
	return nil
}

func (r *Runner) value(rng *rand.Rand, op Op) int {
	if op.RandomValue {
		return rng.Intn(1000)
	}
	return op.Value
}

func (r *Runner) index(rng *rand.Rand, op Op, max int) int {
	if !op.RandomIndex {
		return op.Index
	}
	if max < 0 {
		// empty vector: hand back offset 0 and let the container reject it
		return 0
	}
	return rng.Intn(max + 1)
}

// cursorAt builds a read-only cursor at the given offset. Offsets past
// the end are handed to the container as-is so it can reject them.
func cursorAt(v *vec.Vector[int], off int) vec.ConstIterator[int] {
	if off < 0 {
		off = -1
	}
	it := v.CBegin()
	for i := 0; i < off; i++ {
		it.Next()
	}
	if off < 0 {
		// no way to step a cursor backward; an end-plus-one offset is the
		// closest always-rejected stand-in
		it = v.CEnd()
		it.Next()
	}
	return it
}

package workload

// OpKind names one container operation a scenario can script.
type OpKind string

const (
	OpPush    OpKind = "push"
	OpPop     OpKind = "pop"
	OpInsert  OpKind = "insert"
	OpErase   OpKind = "erase"
	OpReserve OpKind = "reserve"
	OpShrink  OpKind = "shrink"
	OpClear   OpKind = "clear"
)

// KnownOp reports whether k names a scripted operation.
func KnownOp(k OpKind) bool {
	switch k {
	case OpPush, OpPop, OpInsert, OpErase, OpReserve, OpShrink, OpClear:
		return true
	}
	return false
}

// Op is one scripted step, applied Count times in a row.
// Index selects the offset for insert/erase; RandomIndex draws it from the
// run's seeded source instead. Value is the element pushed or inserted;
// RandomValue draws it. N is the capacity target for reserve.
type Op struct {
	Kind        OpKind
	Count       int
	Index       int
	RandomIndex bool
	Value       int
	RandomValue bool
	N           int
}

// Scenario is a named operation script with the seed its random draws
// start from.
type Scenario struct {
	Name string
	Seed int64
	Ops  []Op
}

// Steps returns the total number of container operations the scenario
// performs.
func (s Scenario) Steps() int {
	total := 0
	for _, op := range s.Ops {
		c := op.Count
		if c < 1 {
			c = 1
		}
		total += c
	}
	return total
}

// Point is one sample of the container's shape after a step.
type Point struct {
	Step int
	Op   OpKind
	Size int
	Cap  int
}

// Observer is notified after every applied step.
type Observer interface {
	OnStep(p Point)
}

// Result aggregates one scenario run.
type Result struct {
	Scenario  string
	Seed      int64
	Steps     int
	Reallocs  int
	Rejected  int
	Errors    []error
	Trace     []Point
	Final     string
	FinalSize int
	FinalCap  int
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nvail/veclab/internal/workload"
)

const (
	DefaultSeed   = 1
	DefaultPushes = 64
)

// Scenario is the yaml schema for a workload script.
type Scenario struct {
	Name string `yaml:"name"`
	Seed int64  `yaml:"seed"`
	Ops  []Op   `yaml:"ops"`
}

// Op mirrors workload.Op in yaml form. An omitted index requests a
// random offset, an omitted value a random element.
type Op struct {
	Op    string `yaml:"op"`
	Count int    `yaml:"count"`
	Index *int   `yaml:"index"`
	Value *int   `yaml:"value"`
	N     int    `yaml:"n"`
}

// Default returns a plain append workload.
func Default() *Scenario {
	return &Scenario{
		Name: "append",
		Seed: DefaultSeed,
		Ops:  []Op{{Op: string(workload.OpPush), Count: DefaultPushes}},
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := &Scenario{Seed: DefaultSeed}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Validate rejects unknown op kinds, negative repeat counts and empty
// scripts.
func (s *Scenario) Validate() error {
	if len(s.Ops) == 0 {
		return fmt.Errorf("scenario %q has no ops", s.Name)
	}
	for i, op := range s.Ops {
		if !workload.KnownOp(workload.OpKind(op.Op)) {
			return fmt.Errorf("scenario %q: op %d: unknown kind %q", s.Name, i, op.Op)
		}
		if op.Count < 0 {
			return fmt.Errorf("scenario %q: op %d: negative count %d", s.Name, i, op.Count)
		}
		if workload.OpKind(op.Op) == workload.OpReserve && op.N <= 0 {
			return fmt.Errorf("scenario %q: op %d: reserve needs n > 0", s.Name, i)
		}
	}
	return nil
}

// Workload converts the yaml form into the runnable scenario.
func (s *Scenario) Workload() workload.Scenario {
	ops := make([]workload.Op, 0, len(s.Ops))
	for _, op := range s.Ops {
		w := workload.Op{
			Kind:  workload.OpKind(op.Op),
			Count: op.Count,
			N:     op.N,
		}
		if op.Index == nil {
			w.RandomIndex = true
		} else {
			w.Index = *op.Index
		}
		if op.Value == nil {
			w.RandomValue = true
		} else {
			w.Value = *op.Value
		}
		ops = append(ops, w)
	}
	return workload.Scenario{Name: s.Name, Seed: s.Seed, Ops: ops}
}

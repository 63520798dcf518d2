package config

import "sort"

func intp(v int) *int { return &v }

var Presets = map[string]*Scenario{
	"append": {
		Name: "append", Seed: 1,
		Ops: []Op{{Op: "push", Count: 256}},
	},
	"churn": {
		Name: "churn", Seed: 7,
		Ops: []Op{
			{Op: "push", Count: 128},
			{Op: "pop", Count: 64},
			{Op: "push", Count: 128},
			{Op: "pop", Count: 64},
			{Op: "shrink"},
		},
	},
	"front-insert": {
		Name: "front-insert", Seed: 3,
		Ops: []Op{
			{Op: "insert", Count: 100, Index: intp(0)},
		},
	},
	"reserve-then-fill": {
		Name: "reserve-then-fill", Seed: 1,
		Ops: []Op{
			{Op: "reserve", N: 512},
			{Op: "push", Count: 512},
		},
	},
	"mixed": {
		Name: "mixed", Seed: 11,
		Ops: []Op{
			{Op: "push", Count: 64},
			{Op: "insert", Count: 32},
			{Op: "erase", Count: 16},
			{Op: "pop", Count: 8},
			{Op: "clear"},
			{Op: "push", Count: 32},
			{Op: "shrink"},
		},
	},
}

// GetPreset returns the named preset or nil.
func GetPreset(name string) *Scenario {
	return Presets[name]
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import "sort"

// Presets are ready-made run configurations per demo, mirroring the
// shot counts the original experiments used.
var Presets = map[string]map[string]*Config{
	"superposition": {
		"quick": {Demo: "superposition", Shots: 256},
		"fair":  {Demo: "superposition", Shots: 1024},
		"deep":  {Demo: "superposition", Shots: 8192},
	},
	"conditional": {
		"check": {Demo: "conditional", Shots: 100},
	},
	"bell": {
		"pairs": {Demo: "bell", Shots: 2048},
	},
	"teleport": {
		"single":  {Demo: "teleport", Shots: 1},
		"sampled": {Demo: "teleport", Shots: 1024},
	},
	"teleport-verify": {
		"verify": {Demo: "teleport-verify", Shots: 100},
	},
}

// GetPreset returns the named preset for a demo, or nil.
func GetPreset(demo, name string) *Config {
	presets, ok := Presets[demo]
	if !ok {
		return nil
	}
	return presets[name]
}

// ListPresets returns the preset names for a demo in sorted order, or
// nil for an unknown demo.
func ListPresets(demo string) []string {
	presets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package xgt

import (
	"fmt"
	"sort"
	"strings"
)

// Model describes a controller CPU family and the size of its M area.
type Model struct {
	Name           string
	MemorySizeBits int64
	Description    string
}

// DefaultModel is the model whose M area sets DefaultMemorySize.
const DefaultModel = "XGI-CPUU"

var builtinModels = []Model{
	{Name: "XGI-CPUU", MemorySizeBits: 32768 * 16, Description: "XGI high-end CPU, %M 64 KB"},
	{Name: "XGI-CPUS", MemorySizeBits: 16384 * 16, Description: "XGI standard CPU, %M 32 KB"},
	{Name: "XGK-CPUU", MemorySizeBits: 2048 * 16, Description: "XGK CPU, M0000-M2047F"},
	{Name: "XGB-XBC", MemorySizeBits: 1024 * 16, Description: "XGB compact (XBC), M0000-M1023F"},
	{Name: "XGB-XEC", MemorySizeBits: 8192 * 16, Description: "XGB IEC (XEC), %M 16 KB"},
}

// Models returns the built-in controller models sorted by name.
func Models() []Model {
	models := make([]Model, len(builtinModels))
	copy(models, builtinModels)
	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models
}

// LookupModel finds a model by case-insensitive name in models, falling back to
// the built-in table when models is empty.
func LookupModel(name string, models []Model) (Model, error) {
	if len(models) == 0 {
		models = builtinModels
	}
	for _, m := range models {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("unknown controller model %q", name)
}

// MergeModels overlays extra on the built-in table; entries in extra replace
// built-ins of the same name.
func MergeModels(extra []Model) []Model {
	byName := make(map[string]Model, len(builtinModels)+len(extra))
	for _, m := range builtinModels {
		byName[strings.ToUpper(m.Name)] = m
	}
	for _, m := range extra {
		byName[strings.ToUpper(m.Name)] = m
	}
	merged := make([]Model, 0, len(byName))
	for _, m := range byName {
		merged = append(merged, m)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	return merged
}

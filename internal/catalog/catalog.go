// Package catalog holds the registry of teachable simulations: their
// controllable parameters, the concepts each can demonstrate, and the
// explicit list of things each cannot. The registry is seeded at init and
// immutable afterwards.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Concept is one teachable unit in a simulation's lesson plan, ordered from
// foundational to advanced.
type Concept struct {
	ID          int
	Title       string
	Description string
	KeyInsight  string

	// RelatedParams names the simulation parameters that best demonstrate
	// this concept.
	RelatedParams []string
}

// ParamInfo describes one controllable simulation parameter.
type ParamInfo struct {
	Label  string
	Range  string // human-readable, e.g. "1-10 units"
	URLKey string
	Effect string
}

// Params maps parameter names to their current values. Values are float64
// for numeric parameters and string for categorical ones (object type in
// the shadows simulation).
type Params map[string]any

// Clone returns an independent copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Float returns the value of a numeric parameter.
func (p Params) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// FormatValue renders a parameter value for URLs and prompts.
func FormatValue(v any) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Simulation is one interactive simulation the tutor can teach with.
type Simulation struct {
	ID          string
	Title       string
	File        string // HTML file path relative to the simulation host
	Description string

	// CannotDemonstrate lists topics outside this simulation's reach.
	// The content generator must not bring these up.
	CannotDemonstrate []string

	InitialParams Params
	Parameters    map[string]ParamInfo
	Concepts      []Concept
}

// Summary is the list-view projection of a simulation.
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// registry is the package-level catalog, set by init() in seed.go.
var registry map[string]Simulation

// ErrUnknownSimulation is returned by Get for IDs not in the catalog.
var ErrUnknownSimulation = errors.New("unknown simulation")

// Get returns the simulation with the given ID.
func Get(id string) (Simulation, error) {
	sim, ok := registry[id]
	if !ok {
		return Simulation{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownSimulation, id, IDs())
	}
	return sim, nil
}

// IDs returns all simulation IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns id/title summaries for all simulations, sorted by ID.
func List() []Summary {
	out := make([]Summary, 0, len(registry))
	for _, id := range IDs() {
		out = append(out, Summary{ID: id, Title: registry[id].Title})
	}
	return out
}

// ParamRanges returns the range strings per parameter, as consumed by the
// quiz rules engine.
func (s Simulation) ParamRanges() map[string]string {
	out := make(map[string]string, len(s.Parameters))
	for name, info := range s.Parameters {
		out[name] = info.Range
	}
	return out
}

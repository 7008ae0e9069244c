package catalog

import (
	"fmt"
	"strings"
)

// validateRegistry performs all structural checks on the seeded catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateRegistry(sims map[string]Simulation) error {
	var errs []string

	for id, sim := range sims {
		if sim.ID != id {
			errs = append(errs, fmt.Sprintf("simulation %q registered under mismatched key %q", sim.ID, id))
		}
		if sim.Title == "" {
			errs = append(errs, fmt.Sprintf("simulation %q has no title", id))
		}
		if sim.File == "" {
			errs = append(errs, fmt.Sprintf("simulation %q has no file path", id))
		}
		if len(sim.Concepts) == 0 {
			errs = append(errs, fmt.Sprintf("simulation %q has no concepts", id))
		}

		// Every parameter must have both a starting value and display info.
		for name := range sim.InitialParams {
			if _, ok := sim.Parameters[name]; !ok {
				errs = append(errs, fmt.Sprintf("simulation %q: initial param %q has no parameter info", id, name))
			}
		}
		for name, info := range sim.Parameters {
			if _, ok := sim.InitialParams[name]; !ok {
				errs = append(errs, fmt.Sprintf("simulation %q: parameter %q has no initial value", id, name))
			}
			if info.URLKey == "" {
				errs = append(errs, fmt.Sprintf("simulation %q: parameter %q has no URL key", id, name))
			}
		}

		// Check for duplicate concept IDs and dangling related params.
		conceptIDs := make(map[int]bool, len(sim.Concepts))
		for _, c := range sim.Concepts {
			if conceptIDs[c.ID] {
				errs = append(errs, fmt.Sprintf("simulation %q: duplicate concept ID %d", id, c.ID))
			}
			conceptIDs[c.ID] = true
			if c.Title == "" {
				errs = append(errs, fmt.Sprintf("simulation %q: concept %d has no title", id, c.ID))
			}
			if c.KeyInsight == "" {
				errs = append(errs, fmt.Sprintf("simulation %q: concept %d (%s) has no key insight", id, c.ID, c.Title))
			}
			for _, p := range c.RelatedParams {
				if _, ok := sim.Parameters[p]; !ok {
					errs = append(errs, fmt.Sprintf("simulation %q: concept %d references nonexistent parameter %q", id, c.ID, p))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d validation error(s):\n  - %s", len(errs), strings.Join(errs, "\n  - "))
	}
	return nil
}

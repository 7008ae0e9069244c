package catalog

import (
	"net/url"
	"strings"
)

// DefaultBaseURL hosts the static simulation pages.
const DefaultBaseURL = "https://imhv0609.github.io/simulation_to_concept_github/SimulationsNCERT-main"

// BuildURL constructs the simulation page URL with the given parameter
// values applied as query parameters, mapped through each parameter's
// URL key. Unknown parameter names are skipped rather than passed
// through, so a stale or misspelled key never reaches the page.
// url.Values.Encode sorts keys, so generated URLs are stable.
func (s Simulation) BuildURL(base string, params Params, autoStart bool) string {
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimRight(base, "/")

	// The catalog file path is like "simulations/simple_pendulum.html";
	// the hosted site serves pages at the root.
	file := s.File
	if i := strings.LastIndex(file, "/"); i >= 0 {
		file = file[i+1:]
	}

	q := url.Values{}
	for name, value := range params {
		info, ok := s.Parameters[name]
		if !ok {
			continue
		}
		q.Set(info.URLKey, FormatValue(value))
	}
	if autoStart {
		q.Set("autoStart", "true")
	}

	return base + "/" + file + "?" + q.Encode()
}

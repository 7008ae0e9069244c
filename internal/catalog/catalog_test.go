package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func TestSeededRegistryIsValid(t *testing.T) {
	if err := validateRegistry(registry); err != nil {
		t.Fatalf("seeded registry failed validation: %v", err)
	}
	if len(registry) != 3 {
		t.Errorf("len(registry) = %d, want 3", len(registry))
	}
}

func TestGet(t *testing.T) {
	sim, err := Get("simple_pendulum")
	if err != nil {
		t.Fatalf("Get(simple_pendulum) error: %v", err)
	}
	if sim.Title != "Time & Pendulums" {
		t.Errorf("Title = %q, want %q", sim.Title, "Time & Pendulums")
	}
	if len(sim.Concepts) != 2 {
		t.Errorf("len(Concepts) = %d, want 2", len(sim.Concepts))
	}

	if _, err := Get("bouncing_ball"); err == nil {
		t.Error("Get(bouncing_ball) = nil error, want unknown simulation error")
	}
}

func TestIDsSorted(t *testing.T) {
	want := []string{"earth_rotation_revolution", "light_shadows", "simple_pendulum"}
	if got := IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestListMatchesRegistry(t *testing.T) {
	list := List()
	if len(list) != len(registry) {
		t.Fatalf("len(List()) = %d, want %d", len(list), len(registry))
	}
	for _, s := range list {
		sim, err := Get(s.ID)
		if err != nil {
			t.Errorf("List entry %q not retrievable: %v", s.ID, err)
			continue
		}
		if s.Title != sim.Title {
			t.Errorf("summary title for %q = %q, want %q", s.ID, s.Title, sim.Title)
		}
	}
}

func TestParamsClone(t *testing.T) {
	sim, _ := Get("light_shadows")
	clone := sim.InitialParams.Clone()
	clone["lightDistance"] = float64(9)

	orig, ok := sim.InitialParams.Float("lightDistance")
	if !ok || orig != 5 {
		t.Errorf("original lightDistance after clone mutation = %v, want 5", orig)
	}
}

func TestParamsFloat(t *testing.T) {
	p := Params{"length": float64(5), "objectType": "Opaque"}

	if got, ok := p.Float("length"); !ok || got != 5 {
		t.Errorf("Float(length) = %v, %v, want 5, true", got, ok)
	}
	if _, ok := p.Float("objectType"); ok {
		t.Error("Float(objectType) ok = true, want false for categorical value")
	}
	if _, ok := p.Float("missing"); ok {
		t.Error("Float(missing) ok = true, want false")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{float64(5), "5"},
		{23.5, "23.5"},
		{10, "10"},
		{"Opaque", "Opaque"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	sim, _ := Get("simple_pendulum")
	url := sim.BuildURL("", Params{
		"length":                 float64(7),
		"number_of_oscillations": float64(20),
	}, true)

	for _, want := range []string{
		"simple_pendulum.html?",
		"length=7",
		"oscillations=20",
		"autoStart=true",
	} {
		if !strings.Contains(url, want) {
			t.Errorf("BuildURL missing %q in %q", want, url)
		}
	}
}

func TestBuildURLSkipsUnknownParams(t *testing.T) {
	sim, _ := Get("simple_pendulum")
	url := sim.BuildURL("https://example.com/sims/", Params{
		"length":  float64(3),
		"gravity": float64(9.8),
	}, false)

	if !strings.HasPrefix(url, "https://example.com/sims/simple_pendulum.html?") {
		t.Errorf("BuildURL base handling wrong: %q", url)
	}
	if strings.Contains(url, "gravity") {
		t.Errorf("BuildURL passed through unknown param: %q", url)
	}
	if strings.Contains(url, "autoStart") {
		t.Errorf("BuildURL added autoStart when disabled: %q", url)
	}
}

func TestParamRanges(t *testing.T) {
	sim, _ := Get("earth_rotation_revolution")
	ranges := sim.ParamRanges()
	if got := ranges["axialTilt"]; got != "0-30 degrees" {
		t.Errorf("ParamRanges()[axialTilt] = %q, want %q", got, "0-30 degrees")
	}
	if len(ranges) != len(sim.Parameters) {
		t.Errorf("len(ParamRanges()) = %d, want %d", len(ranges), len(sim.Parameters))
	}
}

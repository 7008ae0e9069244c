package assess

import "testing"

func TestLevelOrder(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Score() >= levels[i].Score() {
			t.Errorf("levels out of order: %s >= %s", levels[i-1], levels[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    UnderstandingLevel
		wantErr bool
	}{
		{"none", LevelNone, false},
		{"partial", LevelPartial, false},
		{"mostly", LevelMostly, false},
		{"complete", LevelComplete, false},
		{"", 0, true},
		{"Complete", 0, true},
		{"almost", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_ClearsObservationOnly(t *testing.T) {
	a := Assessment{Level: LevelPartial, ObservationOnly: true}
	if got := a.Normalize(); got.ObservationOnly {
		t.Error("ObservationOnly survived Normalize at level partial")
	}

	a = Assessment{Level: LevelMostly, ObservationOnly: true}
	if got := a.Normalize(); !got.ObservationOnly {
		t.Error("ObservationOnly cleared at level mostly")
	}
}

package presets

import (
	"sort"
	"testing"
)

func TestList(t *testing.T) {
	names := List()
	if len(names) != len(Registry) {
		t.Errorf("List returned %d names, registry has %d", len(names), len(Registry))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("List must return sorted names")
	}
}

func TestGet(t *testing.T) {
	p, err := Get("koch")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.Axiom != "F" || p.AngleDeg != 90 || p.Iterations != 4 {
		t.Errorf("unexpected koch preset: %+v", p)
	}
	if _, err := Get("nonexistent"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestEveryPresetBuilds(t *testing.T) {
	for name, p := range Registry {
		t.Run(name, func(t *testing.T) {
			if p.Name != name {
				t.Errorf("preset name %q does not match registry key %q", p.Name, name)
			}
			sys, err := p.System()
			if err != nil {
				t.Fatalf("preset does not build: %v", err)
			}
			if warnings := sys.Validate(); len(warnings) != 0 {
				t.Errorf("preset has validation warnings: %v", warnings)
			}
			if _, err := p.Model(); err != nil {
				t.Errorf("preset does not convert to a model: %v", err)
			}
		})
	}
}

func TestPresetModelMatches(t *testing.T) {
	p, err := Get("plant")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	m, err := p.Model()
	if err != nil {
		t.Fatalf("model conversion failed: %v", err)
	}
	if m.Name != "plant" || m.Axiom != "X" || m.Angle != 25 || m.Iterations != 5 {
		t.Errorf("model fields wrong: %+v", m)
	}
	if m.Rules["X"] != "F-[[X]+X]+F[+FX]-X" {
		t.Errorf("model rules wrong: %v", m.Rules)
	}
}

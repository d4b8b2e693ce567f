package prefabs

import "testing"

func TestLoadWorldSpec(t *testing.T) {
	spec, err := LoadWorldSpec("demo.yaml")
	if err != nil {
		t.Fatalf("LoadWorldSpec: %v", err)
	}
	if spec.Name != "demo" {
		t.Fatalf("name = %q, want demo", spec.Name)
	}
	if spec.Gravity.Y != 600 {
		t.Fatalf("gravity y = %v, want 600", spec.Gravity.Y)
	}
	if len(spec.Bodies) == 0 {
		t.Fatal("demo spec has no bodies")
	}

	byName := make(map[string]BodySpec, len(spec.Bodies))
	for _, b := range spec.Bodies {
		if b.Name == "" {
			t.Fatal("body without a name")
		}
		if b.Width <= 0 || b.Height <= 0 {
			t.Fatalf("body %s has degenerate bounds %vx%v", b.Name, b.Width, b.Height)
		}
		byName[b.Name] = b
	}

	orbiter, ok := byName["orbiter"]
	if !ok {
		t.Fatal("demo spec missing the orbiter")
	}
	if orbiter.Kind != "kinematic_position" || !orbiter.Mirror || orbiter.Script == "" {
		t.Fatalf("orbiter = %+v, want a mirrored kinematic body with a script", orbiter)
	}
}

func TestLoadWorldSpecMissing(t *testing.T) {
	if _, err := LoadWorldSpec("nope.yaml"); err == nil {
		t.Fatal("expected an error for a missing spec")
	}
}

func TestLoadScriptPathCleaning(t *testing.T) {
	cases := []string{
		"orbit.tengo",
		"scripts/orbit.tengo",
		"prefabs/scripts/orbit.tengo",
	}
	for _, name := range cases {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
}

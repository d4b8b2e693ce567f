package script

import (
	"math"
	"testing"
)

func TestMoverStep(t *testing.T) {
	cases := []struct {
		name         string
		src          string
		x, y, t      float64
		wantX, wantY float64
	}{
		{
			name:  "offset",
			src:   `update := func(x, y, t) { return [x + 1, y + 2] }`,
			x:     10, y: 20,
			wantX: 11, wantY: 22,
		},
		{
			name:  "time_driven",
			src:   `update := func(x, y, t) { return [t * 60, y] }`,
			y:     5, t: 2,
			wantX: 120, wantY: 5,
		},
		{
			name:  "integer_result",
			src:   `update := func(x, y, t) { return [3, 4] }`,
			wantX: 3, wantY: 4,
		},
		{
			name: "math_module",
			src: `math := import("math")
update := func(x, y, t) { return [math.cos(0.0), y] }`,
			y:     7,
			wantX: 1, wantY: 7,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := NewMover([]byte(c.src))
			if err != nil {
				t.Fatalf("NewMover: %v", err)
			}
			gotX, gotY, err := m.Step(c.x, c.y, c.t)
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if math.Abs(gotX-c.wantX) > 1e-9 || math.Abs(gotY-c.wantY) > 1e-9 {
				t.Fatalf("Step = (%v, %v), want (%v, %v)", gotX, gotY, c.wantX, c.wantY)
			}
		})
	}
}

func TestMoverStepRepeatable(t *testing.T) {
	m, err := NewMover([]byte(`update := func(x, y, t) { return [x + 1, y] }`))
	if err != nil {
		t.Fatalf("NewMover: %v", err)
	}
	x := 0.0
	for i := 1; i <= 5; i++ {
		var err error
		x, _, err = m.Step(x, 0, 0)
		if err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		if x != float64(i) {
			t.Fatalf("Step %d: x = %v, want %d", i, x, i)
		}
	}
}

func TestMoverErrors(t *testing.T) {
	t.Run("compile_error", func(t *testing.T) {
		if _, err := NewMover([]byte(`update := func(`)); err == nil {
			t.Fatal("expected a compile error")
		}
	})

	t.Run("non_array_result", func(t *testing.T) {
		m, err := NewMover([]byte(`update := func(x, y, t) { return 5 }`))
		if err != nil {
			t.Fatalf("NewMover: %v", err)
		}
		if _, _, err := m.Step(0, 0, 0); err == nil {
			t.Fatal("expected an error for a non-array result")
		}
	})

	t.Run("short_array", func(t *testing.T) {
		m, err := NewMover([]byte(`update := func(x, y, t) { return [1] }`))
		if err != nil {
			t.Fatalf("NewMover: %v", err)
		}
		if _, _, err := m.Step(0, 0, 0); err == nil {
			t.Fatal("expected an error for a short result")
		}
	})

	t.Run("runtime_error_keeps_position", func(t *testing.T) {
		m, err := NewMover([]byte(`update := func(x, y, t) { return [1 / int(t), y] }`))
		if err != nil {
			t.Fatalf("NewMover: %v", err)
		}
		x, y, err := m.Step(3, 4, 0)
		if err == nil {
			t.Fatal("expected a runtime error")
		}
		if x != 3 || y != 4 {
			t.Fatalf("position after error = (%v, %v), want (3, 4)", x, y)
		}
	})
}

package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// The mover source defines update(x, y, t) returning the next [x, y]; this
// dispatch line is appended so each run captures the result in a global.
const moverDispatch = `
__out := update(__x, __y, __t)
`

// Mover is a compiled tengo script that drives a display object's position.
type Mover struct {
	compiled *tengo.Compiled
}

func NewMover(src []byte) (*Mover, error) {
	full := make([]byte, 0, len(src)+len(moverDispatch)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, moverDispatch...)

	s := tengo.NewScript(full)
	_ = s.Add("__x", 0.0)
	_ = s.Add("__y", 0.0)
	_ = s.Add("__t", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile mover: %w", err)
	}
	return &Mover{compiled: compiled}, nil
}

// Step evaluates the script for the current position and elapsed time and
// returns the next position.
func (m *Mover) Step(x, y, t float64) (float64, float64, error) {
	if m == nil || m.compiled == nil {
		return x, y, fmt.Errorf("script: nil mover")
	}
	if err := m.compiled.Set("__x", x); err != nil {
		return x, y, err
	}
	if err := m.compiled.Set("__y", y); err != nil {
		return x, y, err
	}
	if err := m.compiled.Set("__t", t); err != nil {
		return x, y, err
	}
	if err := m.compiled.Run(); err != nil {
		return x, y, fmt.Errorf("script: run mover: %w", err)
	}

	out := m.compiled.Get("__out").Array()
	if len(out) < 2 {
		return x, y, fmt.Errorf("script: mover update returned %v, want [x, y]", out)
	}
	nx, okX := asFloat(out[0])
	ny, okY := asFloat(out[1])
	if !okX || !okY {
		return x, y, fmt.Errorf("script: mover update returned non-numeric %v", out)
	}
	return nx, ny, nil
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

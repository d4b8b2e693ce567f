package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BodySpec describes one display object and the physics body attached to it.
type BodySpec struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Shape    string  `yaml:"shape"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Rotation float64 `yaml:"rotation"`
	Color    string  `yaml:"color"`
	Mirror   bool    `yaml:"mirror"`
	// Script names a mover script in scripts/ that drives this body's display
	// position each frame.
	Script string `yaml:"script"`
}

// WorldSpec is a complete demo world: gravity plus the bodies to attach.
type WorldSpec struct {
	Name    string     `yaml:"name"`
	Gravity Vec2Spec   `yaml:"gravity"`
	Debug   bool       `yaml:"debug"`
	Bodies  []BodySpec `yaml:"bodies"`
}

func LoadWorldSpec(name string) (*WorldSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	var spec WorldSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return &spec, nil
}

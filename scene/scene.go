// Package scene builds spaces from declarative YAML descriptions.
//
// A scene lists box bodies and space tuning, e.g.:
//
//	tick_rate: 0.0166
//	gravity: [0, 98]
//	bodies:
//	  - name: floor
//	    size: [60, 2]
//	    position: [30, 20]
//	  - name: crate
//	    size: [4, 4]
//	    position: [30, 5]
//	    mass: 2
package scene

import (
	"fmt"
	"os"

	"github.com/setanarut/sat"
	"github.com/setanarut/v"
	"gopkg.in/yaml.v3"
)

// Def is the YAML definition of a simulation scene. Zero values defer to
// the space defaults.
type Def struct {
	TickRate   float64    `yaml:"tick_rate,omitempty"`
	Iterations uint       `yaml:"iterations,omitempty"`
	Gravity    [2]float64 `yaml:"gravity,omitempty"`
	Bodies     []BodyDef  `yaml:"bodies"`
}

// BodyDef is the YAML definition of one box body. A zero or omitted mass
// makes the body static.
type BodyDef struct {
	Name     string     `yaml:"name,omitempty"`
	Size     [2]float64 `yaml:"size"`
	Position [2]float64 `yaml:"position"`
	Mass     float64    `yaml:"mass,omitempty"`
	Velocity [2]float64 `yaml:"velocity,omitempty"`
	Damping  float64    `yaml:"damping,omitempty"`
}

// Load parses a YAML scene and builds the space it describes.
func Load(data []byte) (*sat.Space, error) {
	var def Def
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	return Build(&def)
}

// LoadFile reads and parses the scene at path.
func LoadFile(path string) (*sat.Space, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return Load(data)
}

// Build constructs a space from an already parsed definition. Body names
// end up in Body.UserData so callers can find them again.
func Build(def *Def) (*sat.Space, error) {
	space := sat.NewSpace()
	if def.TickRate > 0 {
		space.TickRate = def.TickRate
	}
	if def.Iterations > 0 {
		space.Iterations = def.Iterations
	}
	if def.Gravity != [2]float64{} {
		space.AddForceGenerator(sat.NewGravity(def.Gravity[0], def.Gravity[1]))
	}

	for i, bd := range def.Bodies {
		if bd.Size[0] <= 0 || bd.Size[1] <= 0 {
			return nil, fmt.Errorf("scene: body %d: size must be positive", i)
		}
		body := sat.NewBody(
			sat.NewBox(bd.Size[0], bd.Size[1]),
			v.Vec{X: bd.Position[0], Y: bd.Position[1]},
			bd.Mass,
		)
		body.SetVelocity(bd.Velocity[0], bd.Velocity[1])
		if bd.Damping > 0 {
			body.SetDamping(bd.Damping)
		}
		if bd.Name != "" {
			body.UserData = bd.Name
		}
		space.AddBody(body)
	}
	return space, nil
}

// Find returns the first body whose UserData matches name, or nil.
func Find(space *sat.Space, name string) *sat.Body {
	for _, body := range space.Bodies {
		if body.UserData == name {
			return body
		}
	}
	return nil
}

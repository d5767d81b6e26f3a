// Package tools defines the playground's interaction tools and turns pointer
// events into simulation commands for the selected tool.
package tools

import (
	"fmt"

	"github.com/pthm-cable/playground/components"
)

// Tool is a selectable interaction mode.
type Tool uint8

const (
	SpawnHuman Tool = iota
	SpawnBox
	SpawnBall
	SpawnPlatform
	Drag
	Damage
	Explode
)

// NumTools is the number of selectable tools.
const NumTools = int(Explode) + 1

var toolNames = [NumTools]string{
	SpawnHuman:    "spawn_human",
	SpawnBox:      "spawn_box",
	SpawnBall:     "spawn_ball",
	SpawnPlatform: "spawn_platform",
	Drag:          "drag",
	Damage:        "damage",
	Explode:       "explode",
}

var toolLabels = [NumTools]string{
	SpawnHuman:    "Human",
	SpawnBox:      "Box",
	SpawnBall:     "Ball",
	SpawnPlatform: "Platform",
	Drag:          "Drag",
	Damage:        "Damage",
	Explode:       "Explode",
}

// All returns every tool in toolbar order.
func All() []Tool {
	all := make([]Tool, NumTools)
	for i := range all {
		all[i] = Tool(i)
	}
	return all
}

// Valid reports whether t is a known tool.
func (t Tool) Valid() bool {
	return int(t) < NumTools
}

// String returns the tool identifier, e.g. "spawn_box".
func (t Tool) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tool(%d)", uint8(t))
	}
	return toolNames[t]
}

// Label returns the toolbar caption.
func (t Tool) Label() string {
	if !t.Valid() {
		return t.String()
	}
	return toolLabels[t]
}

// SpawnKind returns the body kind a spawn tool creates.
func (t Tool) SpawnKind() (components.Kind, bool) {
	switch t {
	case SpawnHuman:
		return components.KindHuman, true
	case SpawnBox:
		return components.KindBox, true
	case SpawnBall:
		return components.KindBall, true
	case SpawnPlatform:
		return components.KindPlatform, true
	}
	return 0, false
}

// Parse returns the tool with the given identifier.
func Parse(s string) (Tool, error) {
	for i, name := range toolNames {
		if name == s {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

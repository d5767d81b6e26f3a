package tools

import "github.com/pthm-cable/playground/sim"

// PointerAction is what the pointer did.
type PointerAction uint8

const (
	Press PointerAction = iota
	Move
	Release
	Leave // Pointer left the play field
)

// PointerEvent is a pointer action at a world position.
type PointerEvent struct {
	Action PointerAction
	X, Y   float32
}

// Mapper turns pointer events into commands for the selected tool.
//
// The drag tool acts on press, move and release. Every other tool acts on a
// click: a press followed by a release without leaving the play field.
type Mapper struct {
	tool    Tool
	pressed bool
}

// NewMapper creates a mapper with the given tool selected.
func NewMapper(tool Tool) *Mapper {
	return &Mapper{tool: tool}
}

// Tool returns the selected tool.
func (m *Mapper) Tool() Tool {
	return m.tool
}

// Pressed reports whether a press is in progress.
func (m *Mapper) Pressed() bool {
	return m.pressed
}

// SetTool selects a tool. Switching away from an active drag releases the
// grabbed body.
func (m *Mapper) SetTool(tool Tool) []sim.Command {
	if !tool.Valid() || tool == m.tool {
		return nil
	}
	var cmds []sim.Command
	if m.tool == Drag && m.pressed {
		cmds = append(cmds, sim.DragEnd{})
	}
	m.tool = tool
	m.pressed = false
	return cmds
}

// Handle maps one pointer event to zero or more commands.
func (m *Mapper) Handle(ev PointerEvent) []sim.Command {
	switch ev.Action {
	case Press:
		m.pressed = true
		if m.tool == Drag {
			return []sim.Command{sim.DragStart{X: ev.X, Y: ev.Y}}
		}

	case Move:
		if m.tool == Drag && m.pressed {
			return []sim.Command{sim.DragMove{X: ev.X, Y: ev.Y}}
		}

	case Release:
		if !m.pressed {
			return nil
		}
		m.pressed = false
		if m.tool == Drag {
			return []sim.Command{sim.DragEnd{}}
		}
		if cmd, ok := m.click(ev.X, ev.Y); ok {
			return []sim.Command{cmd}
		}

	case Leave:
		if !m.pressed {
			return nil
		}
		m.pressed = false
		if m.tool == Drag {
			return []sim.Command{sim.DragEnd{}}
		}
	}
	return nil
}

// click returns the command a click with the selected tool produces.
func (m *Mapper) click(x, y float32) (sim.Command, bool) {
	if kind, ok := m.tool.SpawnKind(); ok {
		return sim.Spawn{Kind: kind, X: x, Y: y}, true
	}
	switch m.tool {
	case Damage:
		return sim.Damage{X: x, Y: y}, true
	case Explode:
		return sim.Explode{X: x, Y: y}, true
	}
	return nil, false
}

package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/tools"
)

// ToolbarData holds what the toolbar displays.
type ToolbarData struct {
	Selected       tools.Tool
	Bodies         int
	Particles      int
	StepsPerUpdate int
}

// ToolbarResult reports what the user did this frame.
type ToolbarResult struct {
	Selected       tools.Tool
	Clear          bool
	StepsPerUpdate int
}

// hints are shown at the bottom of the toolbar.
var hints = []string{
	"- Pick a tool",
	"- Click the play field",
	"- Drag bodies around",
	"- Space pauses, N steps",
}

// Toolbar renders the tool selector, clear button and counters.
type Toolbar struct {
	renderer *Renderer
	x, y     int32
	width    int32
	height   int32
}

// NewToolbar creates a toolbar at the given screen rectangle.
func NewToolbar(x, y, width, height int32) *Toolbar {
	return &Toolbar{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		height:   height,
	}
}

// Draw renders the toolbar and returns the user's choices.
// The returned Y is where callers may stack further panels.
func (t *Toolbar) Draw(data ToolbarData) (ToolbarResult, int32) {
	r := t.renderer
	th := r.Theme
	padding := th.Padding
	contentW := t.width - padding*2

	result := ToolbarResult{
		Selected:       data.Selected,
		StepsPerUpdate: data.StepsPerUpdate,
	}

	r.DrawPanel(t.x, t.y, t.width, t.height)

	x := t.x + padding
	y := t.y + padding
	rl.DrawText("Playground", x, y, th.TitleFontSize, th.TitleColor)
	y += th.TitleFontSize + 10

	// Tool buttons
	for _, tool := range tools.All() {
		bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(contentW), Height: float32(th.ButtonHeight)}
		if gui.Button(bounds, tool.Label()) {
			result.Selected = tool
		}
		if tool == result.Selected {
			rl.DrawRectangleLinesEx(bounds, 2, th.Selected)
		}
		y += th.ButtonHeight + 4
	}

	y = r.DrawSeparator(x, y, contentW)

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(contentW), Height: float32(th.ButtonHeight)}, "Clear") {
		result.Clear = true
	}
	y += th.ButtonHeight + 8

	y = r.DrawLabelValue(x, y, "Objects", fmt.Sprintf("%d", data.Bodies), contentW)
	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", data.Particles), contentW)

	// Simulation speed
	rl.DrawText("Speed", x, y+2, th.FontSize, th.LabelColor)
	speed := gui.SliderBar(
		rl.Rectangle{X: float32(x + th.LabelWidth), Y: float32(y), Width: float32(contentW - th.LabelWidth - 30), Height: 16},
		"", fmt.Sprintf("%dx", data.StepsPerUpdate),
		float32(data.StepsPerUpdate), 1, 10,
	)
	if s := int(speed + 0.5); s != data.StepsPerUpdate {
		result.StepsPerUpdate = s
	}
	y += th.LineHeight + 4

	y = r.DrawSeparator(x, y, contentW)

	for _, hint := range hints {
		y = r.DrawHint(x, y, hint)
	}

	return result, y + padding
}

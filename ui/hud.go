package ui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the data for the header above the play field.
type HUDData struct {
	Title          string
	ToolLabel      string
	Tick           int64
	StepsPerUpdate int
	FPS            int32
	Paused         bool
}

// HUD renders the header line above the play field.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the header in the band above the field, spanning width pixels from x.
func (h *HUD) Draw(x, y, width int32, data HUDData) {
	th := h.renderer.Theme

	rl.DrawText(data.Title, x, y, 20, th.TitleColor)

	toolText := "Tool: " + data.ToolLabel
	toolWidth := rl.MeasureText(toolText, th.FontSize)
	rl.DrawText(toolText, x+width-toolWidth, y+4, th.FontSize, th.ValueColor)

	status := fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.StepsPerUpdate, data.FPS)
	if data.Paused {
		status += " | PAUSED"
	}
	titleWidth := rl.MeasureText(data.Title, 20)
	rl.DrawText(status, x+titleWidth+20, y+4, th.FontSize-2, th.HintColor)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	AvgTick  time.Duration
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64
}

// PerfPanel renders the tick phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new perf panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders phase timings sorted by cost.
func (p *PerfPanel) Draw(data PerfPanelData) {
	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	phases := make([]string, 0, len(data.PhaseAvg))
	for name := range data.PhaseAvg {
		phases = append(phases, name)
	}
	sort.Slice(phases, func(i, j int) bool {
		return data.PhaseAvg[phases[i]] > data.PhaseAvg[phases[j]]
	})

	height := int32(len(phases)+2)*lineHeight + padding*2
	r.DrawPanel(p.x, p.y, p.width, height)

	y := r.DrawSectionHeader(p.x+padding, p.y+padding, "Tick")
	y = r.DrawLabelValue(p.x+padding, y, "Total", data.AvgTick.Round(time.Microsecond).String(), p.width)
	for _, name := range phases {
		text := fmt.Sprintf("%s %5.1f%%", data.PhaseAvg[name].Round(time.Microsecond), data.PhasePct[name])
		y = r.DrawLabelValue(p.x+padding, y, name, text, p.width)
	}
}

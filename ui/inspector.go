package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/sim"
)

// BodyPanel describes the inspector layout for a sim.BodyView.
var BodyPanel = PanelDescriptor{
	ID:    "body",
	Title: "Body",
	Sections: []SectionDescriptor{
		{
			ID: "identity",
			Fields: []FieldDescriptor{
				{ID: "kind", Label: "Kind", Widget: WidgetText, TextGetter: func(d any) string {
					b := d.(*sim.BodyView)
					return fmt.Sprintf("%s #%d", b.Kind, b.ID)
				}},
				{ID: "state", Label: "State", Widget: WidgetText, TextGetter: bodyState},
				{ID: "color", Label: "Color", Widget: WidgetColorSwatch, ColorGetter: func(d any) rl.Color {
					c := d.(*sim.BodyView).Color
					return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
				}},
			},
		},
		{
			ID:    "health",
			Title: "Health",
			Fields: []FieldDescriptor{
				{ID: "health", Label: "HP", Widget: WidgetHealthBar,
					Getter:    func(d any) float32 { return float32(d.(*sim.BodyView).Health) },
					MaxGetter: func(d any) float32 { return float32(d.(*sim.BodyView).MaxHealth) },
				},
			},
		},
		{
			ID:    "motion",
			Title: "Motion",
			Fields: []FieldDescriptor{
				{ID: "position", Label: "Pos", Widget: WidgetText, TextGetter: func(d any) string {
					b := d.(*sim.BodyView)
					return fmt.Sprintf("%.1f, %.1f", b.X, b.Y)
				}},
				{ID: "velocity", Label: "Vel", Widget: WidgetText, TextGetter: func(d any) string {
					b := d.(*sim.BodyView)
					return fmt.Sprintf("%.2f, %.2f", b.VX, b.VY)
				}},
				{ID: "size", Label: "Size", Widget: WidgetText, TextGetter: func(d any) string {
					b := d.(*sim.BodyView)
					return fmt.Sprintf("%.0f x %.0f", b.W, b.H)
				}},
			},
			Visible: func(d any) bool { return !d.(*sim.BodyView).Kind.Static() },
		},
	},
}

// bodyState summarizes the lifecycle and drag flags.
func bodyState(d any) string {
	b := d.(*sim.BodyView)
	switch {
	case b.Dead:
		return "dead"
	case b.Dragging:
		return "dragging"
	case b.Kind.Static():
		return "static"
	default:
		return "alive"
	}
}

// Inspector renders the body inspection panel.
type Inspector struct {
	renderer *Renderer
	panel    PanelDescriptor
	x, y     int32
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		panel:    BodyPanel,
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector panel for body and returns the Y below it.
func (ins *Inspector) Draw(body *sim.BodyView) int32 {
	r := ins.renderer
	padding := r.Theme.Padding
	contentWidth := ins.width - padding*2

	r.DrawPanel(ins.x, ins.y, ins.width, ins.height(body))

	y := ins.y + padding
	if ins.panel.Title != "" {
		y = r.DrawSectionHeader(ins.x+padding, y, ins.panel.Title)
	}
	for _, sd := range ins.panel.Sections {
		y = r.DrawSection(ins.x+padding, y, sd, body, contentWidth)
	}
	return y + padding
}

// height estimates the panel height for the visible sections.
func (ins *Inspector) height(body *sim.BodyView) int32 {
	th := ins.renderer.Theme
	h := th.Padding * 2
	if ins.panel.Title != "" {
		h += th.LineHeight
	}
	for _, sd := range ins.panel.Sections {
		if sd.Visible != nil && !sd.Visible(body) {
			continue
		}
		if sd.Title != "" {
			h += th.LineHeight
		}
		h += int32(len(sd.Fields))*(th.LineHeight+2) + 4
	}
	return h
}

package ui

import (
	"image/color"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/playground/components"
	"github.com/pthm-cable/playground/sim"
)

func TestOverlayDefaults(t *testing.T) {
	reg := NewOverlayRegistry()

	if !reg.IsEnabled(OverlayHealthBars) {
		t.Error("health bars should be enabled by default")
	}
	if reg.IsEnabled(OverlayCollisionBoxes) {
		t.Error("collision boxes should be disabled by default")
	}
	if got := reg.Categories(); len(got) != 2 || got[0] != "visual" || got[1] != "debug" {
		t.Errorf("Categories() = %v, want [visual debug]", got)
	}
}

func TestOverlayToggle(t *testing.T) {
	reg := NewOverlayRegistry()

	if !reg.Toggle(OverlayVelocities) {
		t.Error("first toggle should enable")
	}
	if reg.Toggle(OverlayVelocities) {
		t.Error("second toggle should disable")
	}
	if reg.Toggle("missing") {
		t.Error("toggling an unknown overlay should report false")
	}
}

func TestOverlayExclusive(t *testing.T) {
	reg := NewOverlayRegistry()
	reg.Register(OverlayDescriptor{ID: "a", Category: "test", Exclusive: []OverlayID{"b"}})
	reg.Register(OverlayDescriptor{ID: "b", Category: "test", Exclusive: []OverlayID{"a"}})

	reg.SetEnabled("a", true)
	reg.SetEnabled("b", true)

	if reg.IsEnabled("a") {
		t.Error("enabling b should disable a")
	}
	if !reg.IsEnabled("b") {
		t.Error("b should be enabled")
	}
}

func TestOverlayHandleKeyPress(t *testing.T) {
	reg := NewOverlayRegistry()

	id, state, ok := reg.HandleKeyPress(rl.KeyB)
	if !ok || id != OverlayCollisionBoxes || !state {
		t.Errorf("HandleKeyPress(B) = %v, %v, %v", id, state, ok)
	}
	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key should not match")
	}
}

func TestBodyPanelFields(t *testing.T) {
	body := &sim.BodyView{
		ID:        7,
		Kind:      components.KindBox,
		X:         10,
		Y:         20,
		W:         40,
		H:         40,
		VX:        1.5,
		Health:    50,
		MaxHealth: 150,
		Color:     color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF},
	}

	texts := map[string]string{}
	for _, sd := range BodyPanel.Sections {
		for _, fd := range sd.Fields {
			if fd.Widget == WidgetText {
				texts[fd.ID] = FieldText(fd, body)
			}
		}
	}

	want := map[string]string{
		"kind":     "box #7",
		"state":    "alive",
		"position": "10.0, 20.0",
		"velocity": "1.50, 0.00",
		"size":     "40 x 40",
	}
	for id, w := range want {
		if texts[id] != w {
			t.Errorf("field %s = %q, want %q", id, texts[id], w)
		}
	}

	body.Dead = true
	if got := bodyState(body); got != "dead" {
		t.Errorf("bodyState(dead) = %q", got)
	}
}

func TestBodyPanelHidesMotionForPlatforms(t *testing.T) {
	platform := &sim.BodyView{Kind: components.KindPlatform}
	for _, sd := range BodyPanel.Sections {
		if sd.ID == "motion" && sd.Visible(platform) {
			t.Error("motion section visible for a platform")
		}
	}
}

func TestFieldTextFormat(t *testing.T) {
	fd := FieldDescriptor{Getter: func(any) float32 { return 0.5 }}
	if got := FieldText(fd, nil); got != "0.50" {
		t.Errorf("default format = %q, want 0.50", got)
	}
	fd.Format = "%.0f%%"
	if got := FieldText(fd, nil); got != "0%" {
		t.Errorf("custom format = %q", got)
	}
}

// Package ui provides a descriptor-driven UI for the playground.
// Panels are described through field metadata so layouts follow the
// simulation's data types instead of hard-coding them.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText        WidgetType = iota // Plain text with format string
	WidgetBar                           // Progress bar [0, 1]
	WidgetHealthBar                     // Current/max bar with color thresholds
	WidgetColorSwatch                   // Color preview square
	WidgetSection                       // Section header
	WidgetSpacer                        // Vertical spacing
)

// FieldDescriptor defines how to display a single piece of data.
type FieldDescriptor struct {
	ID          string             // Unique identifier for the field
	Label       string             // Display label
	Widget      WidgetType         // How to render
	Format      string             // Printf format for text (e.g., "%.2f")
	Color       rl.Color           // Optional color override
	Visible     func(any) bool     // Optional visibility check (nil = always visible)
	Getter      func(any) float32  // Value extractor (for numeric fields)
	MaxGetter   func(any) float32  // Maximum extractor (for health bars)
	TextGetter  func(any) string   // Value extractor (for text fields)
	ColorGetter func(any) rl.Color // Color extractor (for color swatches)
}

// SectionDescriptor defines a group of fields with a header.
type SectionDescriptor struct {
	ID      string            // Unique identifier
	Title   string            // Section header text
	Fields  []FieldDescriptor // Fields in this section
	Visible func(any) bool    // Optional visibility check for entire section
}

// PanelDescriptor defines a complete panel layout.
type PanelDescriptor struct {
	ID       string              // Unique identifier
	Title    string              // Panel title (optional)
	Sections []SectionDescriptor // Sections in order
	Width    int32               // Panel width (0 = auto)
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	TitleColor     rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	HintColor      rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	BarFillLow     rl.Color
	BarFillMedium  rl.Color
	BarFillHigh    rl.Color
	Selected       rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	ButtonHeight   int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 248, G: 250, B: 252, A: 255},
		PanelBorder:    rl.Color{R: 203, G: 213, B: 225, A: 255},
		SectionHeader:  rl.Color{R: 37, G: 99, B: 235, A: 255},
		TitleColor:     rl.Color{R: 30, G: 64, B: 175, A: 255},
		LabelColor:     rl.Color{R: 71, G: 85, B: 105, A: 255},
		ValueColor:     rl.Color{R: 15, G: 23, B: 42, A: 255},
		HintColor:      rl.Color{R: 100, G: 116, B: 139, A: 255},
		BarBg:          rl.Color{R: 226, G: 232, B: 240, A: 255},
		BarFill:        rl.Color{R: 100, G: 150, B: 200, A: 255},
		BarFillLow:     rl.Color{R: 220, G: 38, B: 38, A: 255},
		BarFillMedium:  rl.Color{R: 234, G: 179, B: 8, A: 255},
		BarFillHigh:    rl.Color{R: 22, G: 163, B: 74, A: 255},
		Selected:       rl.Color{R: 37, G: 99, B: 235, A: 255},
		Padding:        12,
		LineHeight:     18,
		LabelWidth:     80,
		BarHeight:      12,
		ButtonHeight:   30,
		FontSize:       14,
		HeaderFontSize: 14,
		TitleFontSize:  22,
	}
}

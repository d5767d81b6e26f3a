package components

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind identifies the type of a body. Fixed at creation.
type Kind uint8

const (
	KindHuman Kind = iota
	KindBox
	KindBall
	KindPlatform

	NumKinds = int(KindPlatform) + 1
)

// KindSpec holds the fixed attributes every body of a kind is created with.
type KindSpec struct {
	Name   string
	Width  float32
	Height float32
	Health int32
	Color  color.RGBA
	Static bool // Static bodies are never integrated
}

var kindSpecs = [NumKinds]KindSpec{
	KindHuman:    {Name: "human", Width: 30, Height: 60, Health: 100, Color: color.RGBA{R: 0xff, G: 0xdb, B: 0xac, A: 0xff}},
	KindBox:      {Name: "box", Width: 40, Height: 40, Health: 50, Color: color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}},
	KindBall:     {Name: "ball", Width: 30, Height: 30, Health: 30, Color: color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}},
	KindPlatform: {Name: "platform", Width: 100, Height: 20, Health: 200, Color: color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}, Static: true},
}

// Spec returns the fixed attributes for k. ok is false for unknown kinds.
func (k Kind) Spec() (spec KindSpec, ok bool) {
	if !k.Valid() {
		return KindSpec{}, false
	}
	return kindSpecs[k], true
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return int(k) < NumKinds
}

// Static reports whether bodies of this kind are immovable.
func (k Kind) Static() bool {
	return k.Valid() && kindSpecs[k].Static
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindSpecs[k].Name
}

// ParseKind parses a lowercase kind name such as "ball".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i := range kindSpecs {
		if kindSpecs[i].Name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown body kind %q", s)
}

// MarshalText implements encoding.TextMarshaler so kinds read well in YAML and logs.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown body kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

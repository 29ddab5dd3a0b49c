package creational

import "fmt"

// Button is one member of a widget family.
type Button interface {
	// Paint returns the rendered representation of the button.
	Paint() string
}

// Checkbox is the second member of a widget family.
type Checkbox interface {
	// Paint returns the rendered representation of the checkbox.
	Paint() string
}

// WidgetFactory produces a matched family of widgets. Concrete factories
// guarantee that every widget they produce belongs to the same visual
// family, so a client never mixes light and dark variants by accident.
type WidgetFactory interface {
	NewButton() Button
	NewCheckbox() Checkbox
}

// LightFactory produces the light widget family.
type LightFactory struct{}

// NewButton returns a light-themed button.
func (LightFactory) NewButton() Button { return lightButton{} }

// NewCheckbox returns a light-themed checkbox.
func (LightFactory) NewCheckbox() Checkbox { return lightCheckbox{} }

// DarkFactory produces the dark widget family.
type DarkFactory struct{}

// NewButton returns a dark-themed button.
func (DarkFactory) NewButton() Button { return darkButton{} }

// NewCheckbox returns a dark-themed checkbox.
func (DarkFactory) NewCheckbox() Checkbox { return darkCheckbox{} }

type lightButton struct{}

func (lightButton) Paint() string { return "[light button]" }

type lightCheckbox struct{}

func (lightCheckbox) Paint() string { return "[light checkbox]" }

type darkButton struct{}

func (darkButton) Paint() string { return "[dark button]" }

type darkCheckbox struct{}

func (darkCheckbox) Paint() string { return "[dark checkbox]" }

// RenderDialog is the single client routine of the pattern: it consumes
// one widget family exactly once and never names a concrete variant.
func RenderDialog(f WidgetFactory) string {
	return fmt.Sprintf("%s %s", f.NewButton().Paint(), f.NewCheckbox().Paint())
}

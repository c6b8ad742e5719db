// Package modifier defines the annotation values that can be attached to a
// node through a Modified wrapper: style modifiers, which the style collector
// converts into CSS declarations, and behavior modifiers, which the binding
// extractor turns into client-side event listeners.
//
// Modifiers are immutable value data. They carry no logic of their own; the
// conversion tables live with their consumers (internal/css, internal/script).
package modifier

// Modifier is a style or behavior annotation attached to a node.
type Modifier interface {
	isModifier()
}

// Style marks modifiers that contribute CSS declarations.
type Style interface {
	Modifier
	isStyle()
}

// Behavior marks modifiers that contribute client-side behavior and
// produce no CSS.
type Behavior interface {
	Modifier
	isBehavior()
}

type style struct{}

func (style) isModifier() {}
func (style) isStyle()    {}

type behavior struct{}

func (behavior) isModifier() {}
func (behavior) isBehavior() {}

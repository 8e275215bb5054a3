// Package events models user interaction with a page
// as typed events dispatched on a synchronous Bus.
package events

import (
	"fmt"

	"golang.org/x/net/html"
)

// Type identifies the kind of an Event.
type Type int

const (
	TypeLoad Type = iota
	TypeClick
	TypeKeyDown
	TypeInput
	TypeChange
	TypeSubmit
)

func (t Type) String() string {
	switch t {
	case TypeLoad:
		return "load"
	case TypeClick:
		return "click"
	case TypeKeyDown:
		return "keydown"
	case TypeInput:
		return "input"
	case TypeChange:
		return "change"
	case TypeSubmit:
		return "submit"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Event is implemented by all event types.
type Event interface {
	Type() Type
	// Target is the element the event was dispatched on,
	// nil for document level events.
	Target() *html.Node

	// PreventDefault suppresses the default action of the host,
	// like following a link or submitting a form.
	PreventDefault()
	DefaultPrevented() bool

	// StopPropagation skips all handlers not yet called.
	StopPropagation()
	PropagationStopped() bool
}

// Base implements the flag methods of Event.
type Base struct {
	Node               *html.Node
	defaultPrevented   bool
	propagationStopped bool
}

func (b *Base) Target() *html.Node       { return b.Node }
func (b *Base) PreventDefault()          { b.defaultPrevented = true }
func (b *Base) DefaultPrevented() bool   { return b.defaultPrevented }
func (b *Base) StopPropagation()         { b.propagationStopped = true }
func (b *Base) PropagationStopped() bool { return b.propagationStopped }

// Load is dispatched once after the document has been parsed
// and all handlers have been registered.
type Load struct{ Base }

func (*Load) Type() Type { return TypeLoad }

// Click is a pointer activation of Target
// at viewport coordinates ClientX, ClientY.
type Click struct {
	Base
	ClientX, ClientY float64
}

func (*Click) Type() Type { return TypeClick }

// KeyDown is a key press while Target has focus.
// Key uses the names of the DOM KeyboardEvent.key property,
// like "Enter", "Escape" or "n".
type KeyDown struct {
	Base
	Key  string
	Ctrl bool
	Meta bool
}

func (*KeyDown) Type() Type { return TypeKeyDown }

// Input is dispatched on every edit of a text field.
// The field already holds Value.
type Input struct {
	Base
	Value string
}

func (*Input) Type() Type { return TypeInput }

// Change is dispatched when a field value was committed.
// The field already holds Value.
type Change struct {
	Base
	Value string
}

func (*Change) Type() Type { return TypeChange }

// Submit is dispatched on a form before it is sent.
type Submit struct{ Base }

func (*Submit) Type() Type { return TypeSubmit }

// NewClick returns a Click on target.
func NewClick(target *html.Node, clientX, clientY float64) *Click {
	return &Click{Base: Base{Node: target}, ClientX: clientX, ClientY: clientY}
}

// NewKeyDown returns a KeyDown on target.
func NewKeyDown(target *html.Node, key string, ctrl, meta bool) *KeyDown {
	return &KeyDown{Base: Base{Node: target}, Key: key, Ctrl: ctrl, Meta: meta}
}

// NewInput returns an Input on target.
func NewInput(target *html.Node, value string) *Input {
	return &Input{Base: Base{Node: target}, Value: value}
}

// NewChange returns a Change on target.
func NewChange(target *html.Node, value string) *Change {
	return &Change{Base: Base{Node: target}, Value: value}
}

// NewSubmit returns a Submit on form.
func NewSubmit(form *html.Node) *Submit {
	return &Submit{Base: Base{Node: form}}
}

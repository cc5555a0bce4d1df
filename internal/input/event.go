// Package input turns pointer, wheel and step-button events into camera state changes.
// Two interchangeable strategies implement Controller: Manual does the drag math itself,
// Orbit hands gestures to an orbit helper and mirrors the helper's camera back into the state.
package input

// Kind identifies an input event.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	Wheel
	Step
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case Wheel:
		return "wheel"
	case Step:
		return "step"
	}
	return "unknown"
}

// ButtonID is the element identifier of a discrete step button.
type ButtonID string

const (
	IncreaseZ     ButtonID = "increaseZ"
	DecreaseZ     ButtonID = "decreaseZ"
	IncreaseR     ButtonID = "increaseR"
	DecreaseR     ButtonID = "decreaseR"
	IncreaseTheta ButtonID = "increaseTheta"
	DecreaseTheta ButtonID = "decreaseTheta"
	IncreasePhi   ButtonID = "increasePhi"
	DecreasePhi   ButtonID = "decreasePhi"
)

// Buttons lists every step button the controllers understand, in display order.
var Buttons = []ButtonID{
	IncreaseZ, DecreaseZ,
	IncreaseR, DecreaseR,
	IncreaseTheta, DecreaseTheta,
	IncreasePhi, DecreasePhi,
}

// IsButton reports whether id names a known step button.
func IsButton(id string) bool {
	for _, b := range Buttons {
		if string(b) == id {
			return true
		}
	}
	return false
}

// Event is one input occurrence. X/Y are screen pixels for pointer events; DeltaY is the
// wheel delta in pixels (positive scrolls away, increasing the radius); Button is set for Step.
type Event struct {
	Kind   Kind
	X, Y   float32
	DeltaY float32
	Button ButtonID
}

// Press, Move, Release, Scroll and PressButton build events.
func Press(x, y float32) Event   { return Event{Kind: PointerDown, X: x, Y: y} }
func Move(x, y float32) Event    { return Event{Kind: PointerMove, X: x, Y: y} }
func Release(x, y float32) Event { return Event{Kind: PointerUp, X: x, Y: y} }
func Scroll(deltaY float32) Event {
	return Event{Kind: Wheel, DeltaY: deltaY}
}
func PressButton(id ButtonID) Event {
	return Event{Kind: Step, Button: id}
}

package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-viewer/internal/input"
)

func sliderEngine() (*Engine, *Node) {
	e := New()
	s := NewNode(TypeSlider, "param", "param-radius", "radius")
	s.Bounds = rl.Rectangle{X: 100, Y: 10, Width: 200, Height: 20}
	s.Min, s.Max, s.Value = 0, 100, 50
	e.AddNode(s)
	return e, s
}

func TestHandleSliderDrag(t *testing.T) {
	e, s := sliderEngine()

	actions, consumed := e.Handle(input.Press(150, 20))
	assert.True(t, consumed)
	require.Len(t, actions, 1)
	assert.Equal(t, Action{Kind: Changed, ID: "param-radius", Value: 25}, actions[0])
	assert.Equal(t, float32(25), s.Value)

	actions, consumed = e.Handle(input.Move(400, 90))
	assert.True(t, consumed, "moves belong to the slider while dragging, even off its bounds")
	require.Len(t, actions, 1)
	assert.Equal(t, float32(100), actions[0].Value)

	actions, consumed = e.Handle(input.Move(420, 95))
	assert.True(t, consumed)
	assert.Empty(t, actions, "no action when the value does not change")

	actions, consumed = e.Handle(input.Release(420, 95))
	assert.True(t, consumed)
	assert.Empty(t, actions)

	_, consumed = e.Handle(input.Move(150, 20))
	assert.False(t, consumed, "hover without a drag reaches the camera")
}

func TestHandleMissesReachCamera(t *testing.T) {
	e, _ := sliderEngine()
	actions, consumed := e.Handle(input.Press(10, 200))
	assert.False(t, consumed)
	assert.Empty(t, actions)

	_, consumed = e.Handle(input.Release(10, 200))
	assert.False(t, consumed)

	wheel := input.Scroll(100)
	wheel.X, wheel.Y = 120, 15
	_, consumed = e.Handle(wheel)
	assert.True(t, consumed, "wheel over a widget does not zoom")
	wheel.X = 10
	_, consumed = e.Handle(wheel)
	assert.False(t, consumed)
}

func TestHandleButtonAndHidden(t *testing.T) {
	e := New()
	b := NewNode(TypeButton, "step", "increaseR", "R +")
	b.Bounds = rl.Rectangle{X: 10, Y: 10, Width: 110, Height: 28}
	e.AddNode(b)

	actions, consumed := e.Handle(input.Press(20, 20))
	assert.True(t, consumed)
	assert.Equal(t, []Action{{Kind: Clicked, ID: "increaseR"}}, actions)

	b.Hidden = true
	_, consumed = e.Handle(input.Press(20, 20))
	assert.False(t, consumed)
}

func TestLayoutPositionsDeclaredNodes(t *testing.T) {
	sheet, err := ParseCSS(`#params { left: 100%; top: 10px; width: 300px; } .param { height: 22px; }`)
	require.NoError(t, err)
	e := New()
	e.SetStylesheet(sheet)
	frame := NewNode(TypePanel, "", "params", "")
	row := NewNode(TypeSlider, "param", "param-phi", "phi")
	row.Bounds.X, row.Bounds.Y, row.Bounds.Width = 7, 9, 50
	e.AddNode(frame)
	e.AddNode(row)

	e.Layout(1280, 720)
	assert.Equal(t, rl.Rectangle{X: 980, Y: 10, Width: 300}, frame.Bounds)
	assert.Equal(t, rl.Rectangle{X: 7, Y: 9, Width: 50, Height: 22}, row.Bounds, "unpositioned nodes keep X/Y")
	assert.Same(t, row, e.NodeAt(7, 9))
	assert.Nil(t, e.NodeAt(0, 0))
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	draws    [][3]float32
	scales   []float32
	unloaded bool
}

func (n *fakeNode) Draw(position [3]float32, scale float32) {
	n.draws = append(n.draws, position)
	n.scales = append(n.scales, scale)
}

func (n *fakeNode) Unload() { n.unloaded = true }

func TestAddAndDraw(t *testing.T) {
	s := New()
	assert.True(t, s.GridVisible)

	a := &fakeNode{}
	b := &fakeNode{}
	s.Add(&Object{Name: "a", Node: a, Position: [3]float32{1, 2, 3}, Scale: 0.5})
	s.Add(&Object{Name: "b", Node: b})
	require.Equal(t, 2, s.Len())

	s.Draw()
	assert.Equal(t, [][3]float32{{1, 2, 3}}, a.draws)
	assert.Equal(t, []float32{0.5}, a.scales)
	assert.Equal(t, []float32{1}, b.scales, "zero scale becomes 1")

	obj, ok := s.Find("b")
	require.True(t, ok)
	assert.Same(t, b, obj.Node)
	_, ok = s.Find("c")
	assert.False(t, ok)
}

func TestObjectsIsACopy(t *testing.T) {
	s := New()
	s.Add(&Object{Name: "a", Node: &fakeNode{}})
	objs := s.Objects()
	objs[0] = nil
	assert.NotNil(t, s.Objects()[0])
}

func TestClose(t *testing.T) {
	s := New()
	n := &fakeNode{}
	s.Add(&Object{Name: "a", Node: n})
	s.Close()
	assert.True(t, n.unloaded)
	assert.Zero(t, s.Len())
}

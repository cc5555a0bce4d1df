// Package scene is the registry of loaded objects. Objects are added once and live until Close.
package scene

import "sync"

// Node is a model instance owned by the rendering backend.
type Node interface {
	// Draw renders the node at position with a uniform scale. Must be called between camera begin/end.
	Draw(position [3]float32, scale float32)
	// Unload releases backend resources.
	Unload()
}

// Object is a loaded model placed in the scene.
type Object struct {
	Name     string
	Node     Node
	Position [3]float32
	Scale    float32
}

// Scene holds loaded objects in insertion order plus scene-level display flags.
// All mutation happens on the frame loop; the mutex only guards reads from overlay/console code.
type Scene struct {
	mu          sync.RWMutex
	objects     []*Object
	GridVisible bool
}

// New returns an empty scene with the grid shown.
func New() *Scene {
	return &Scene{GridVisible: true}
}

// SetGridVisible sets whether the reference grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Add registers obj. Scale 0 is treated as 1.
func (s *Scene) Add(obj *Object) {
	if obj.Scale == 0 {
		obj.Scale = 1
	}
	s.mu.Lock()
	s.objects = append(s.objects, obj)
	s.mu.Unlock()
}

// Objects returns a copy of the object list.
func (s *Scene) Objects() []*Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len returns the number of loaded objects.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) (*Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Draw renders every object in insertion order.
func (s *Scene) Draw() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.objects {
		o.Node.Draw(o.Position, o.Scale)
	}
}

// Close unloads every object and empties the scene.
func (s *Scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.objects {
		o.Node.Unload()
	}
	s.objects = nil
}

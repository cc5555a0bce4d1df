package assets

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"scene-viewer/internal/scene"
	"scene-viewer/internal/shading"
)

// Model is a parsed asset: drawable by the scene and shadeable part by part.
type Model interface {
	scene.Node
	shading.Surface
}

// Backend parses a fetched scene file into a Model. It runs on the frame loop.
type Backend interface {
	Load(path string) (Model, error)
}

// Registry receives loaded objects.
type Registry interface {
	Add(obj *scene.Object)
}

// Shader installs the lighting model on a freshly loaded model.
type Shader interface {
	Assign(s shading.Surface) int
}

// Reporter receives progress lines and load failures.
type Reporter interface {
	Logf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Status is the progress of one in-flight asset. Total is -1 when unknown.
type Status struct {
	Name     string
	Received int64
	Total    int64
}

// Percent returns received/total as a percentage, or -1 when the total is unknown.
func (s Status) Percent() float64 {
	if s.Total <= 0 {
		return -1
	}
	return float64(s.Received) * 100 / float64(s.Total)
}

// String formats the status for the overlay: "eye 42%" or "eye 1.5 MiB" without a total.
func (s Status) String() string {
	if pct := s.Percent(); pct >= 0 {
		return fmt.Sprintf("%s %d%%", s.Name, int(pct))
	}
	return fmt.Sprintf("%s %.1f MiB", s.Name, float64(s.Received)/(1<<20))
}

type event struct {
	id       int
	req      Request
	path     string
	err      error
	received int64
	total    int64
	done     bool
}

// Loader fetches assets on background goroutines and finishes them on the frame loop:
// Poll parses, places, registers and shades each fetched asset. Failed assets are reported
// once and never retried.
type Loader struct {
	fetcher  Fetcher
	backend  Backend
	registry Registry
	shader   Shader
	report   Reporter

	events   chan event
	wg       sync.WaitGroup
	inflight int
	nextID   int
	status   map[int]Status // by load id; one name may be loading more than once
	lastPct  map[int]int
}

// NewLoader wires a loader. All collaborators are required.
func NewLoader(fetcher Fetcher, backend Backend, registry Registry, shader Shader, report Reporter) *Loader {
	return &Loader{
		fetcher:  fetcher,
		backend:  backend,
		registry: registry,
		shader:   shader,
		report:   report,
		events:   make(chan event, 64),
		status:   make(map[int]Status),
		lastPct:  make(map[int]int),
	}
}

// Load starts fetching req in the background. Cancel ctx to abandon the fetch.
func (l *Loader) Load(ctx context.Context, req Request) {
	l.inflight++
	l.nextID++
	id := l.nextID
	l.status[id] = Status{Name: req.Name, Total: -1}
	l.lastPct[id] = -1
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		path, err := l.fetcher.Fetch(ctx, req.Name, func(received, total int64) {
			l.send(ctx, event{id: id, req: req, received: received, total: total})
		})
		l.send(ctx, event{id: id, req: req, path: path, err: err, done: true})
	}()
}

// LoadAll starts every request in m.
func (l *Loader) LoadAll(ctx context.Context, m Manifest) {
	for _, req := range m.Models {
		l.Load(ctx, req)
	}
}

func (l *Loader) send(ctx context.Context, ev event) {
	select {
	case l.events <- ev:
	case <-ctx.Done():
	}
}

// Poll handles every queued event without blocking and returns how many objects were added.
func (l *Loader) Poll() int {
	added := 0
	for {
		select {
		case ev := <-l.events:
			if l.handle(ev) {
				added++
			}
		default:
			return added
		}
	}
}

// Wait handles events until nothing is in flight or ctx ends.
func (l *Loader) Wait(ctx context.Context) error {
	for l.inflight > 0 {
		select {
		case ev := <-l.events:
			l.handle(ev)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Pending returns the number of assets still being fetched.
func (l *Loader) Pending() int {
	return l.inflight
}

// Progress returns the status of in-flight loads sorted by name, then by start order.
func (l *Loader) Progress() []Status {
	ids := make([]int, 0, len(l.status))
	for id := range l.status {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := l.status[ids[i]], l.status[ids[j]]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return ids[i] < ids[j]
	})
	out := make([]Status, len(ids))
	for i, id := range ids {
		out[i] = l.status[id]
	}
	return out
}

// Close waits for background fetches to return. Cancel their context first.
func (l *Loader) Close() {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()
	for {
		select {
		case <-done:
			return
		case <-l.events:
		}
	}
}

func (l *Loader) handle(ev event) bool {
	name := ev.req.Name
	if !ev.done {
		l.progress(ev.id, name, ev.received, ev.total)
		return false
	}
	l.inflight--
	delete(l.status, ev.id)
	delete(l.lastPct, ev.id)
	if ev.err != nil {
		l.report.Errorf("load %s: %v", name, ev.err)
		return false
	}
	model, err := l.backend.Load(ev.path)
	if err != nil {
		l.report.Errorf("load %s: %v", name, err)
		return false
	}
	obj := &scene.Object{Name: name, Node: model, Position: ev.req.Position, Scale: ev.req.Scale}
	l.registry.Add(obj)
	parts := l.shader.Assign(model)
	l.report.Logf("%s loaded at (%g, %g, %g) scale %g, %d parts shaded",
		name, obj.Position[0], obj.Position[1], obj.Position[2], obj.Scale, parts)
	return true
}

const unknownTotalStep = 1 << 20

// progress records the status and reports each whole-percent step once. Without a total
// it reports every MiB received instead.
func (l *Loader) progress(id int, name string, received, total int64) {
	s := Status{Name: name, Received: received, Total: total}
	l.status[id] = s
	pct := s.Percent()
	step := int(pct)
	if pct < 0 {
		step = int(received / unknownTotalStep)
	}
	if step == l.lastPct[id] {
		return
	}
	l.lastPct[id] = step
	if pct < 0 {
		l.report.Logf("%s: %d bytes received", name, received)
		return
	}
	l.report.Logf("%s: %d%% loaded", name, step)
}
